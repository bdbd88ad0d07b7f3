package batch

import (
	"fmt"

	conductor "Voltra/internal/calc/conductor"

	"golang.org/x/sync/errgroup"
)

type SizingBatchInput struct {
	Items []conductor.SizingRequest `json:"items"`
}

type SizingBatchResult struct {
	Results []conductor.SizingResult `json:"results"`
}

// The engine is pure and its tables are shared-immutable, so requests
// evaluate concurrently without coordination. Results keep input order.
const batchWorkers = 4

func CalculateSizing(in SizingBatchInput) (SizingBatchResult, error) {
	if len(in.Items) == 0 {
		return SizingBatchResult{}, fmt.Errorf("no items")
	}

	out := SizingBatchResult{Results: make([]conductor.SizingResult, len(in.Items))}

	var g errgroup.Group
	g.SetLimit(batchWorkers)
	for i, item := range in.Items {
		i, item := i, item
		g.Go(func() error {
			res, err := conductor.SizeConductor(item)
			if err != nil {
				return fmt.Errorf("item %d: %w", i, err)
			}
			out.Results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return SizingBatchResult{}, err
	}
	return out, nil
}
