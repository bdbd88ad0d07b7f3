package importer

import (
	"encoding/json"
	"fmt"
	"net/http"

	conductor "Voltra/internal/calc/conductor"

	"github.com/xuri/excelize/v2"
)

type Handler struct{}

type SizingImportResult struct {
	Count   int                      `json:"count"`
	Skipped int                      `json:"skipped"`
	Results []conductor.SizingResult `json:"results"`
}

// Sizing accepts an .xlsx upload and runs the sizing engine per row.
// Unparseable rows are skipped, not fatal.
func (h *Handler) Sizing(w http.ResponseWriter, r *http.Request) {
	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "File required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	f, err := excelize.OpenReader(file)
	if err != nil {
		http.Error(w, "Invalid file", http.StatusBadRequest)
		return
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil || len(rows) < 2 {
		http.Error(w, "Empty sheet", http.StatusBadRequest)
		return
	}

	out := SizingImportResult{}
	for i := 1; i < len(rows); i++ {
		req, err := parseSizingRow(rows[i])
		if err != nil {
			out.Skipped++
			continue
		}
		res, err := conductor.SizeConductor(req)
		if err != nil {
			out.Skipped++
			continue
		}
		out.Results = append(out.Results, res)
	}
	out.Count = len(out.Results)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(out)
}

// expected columns: standard, material, voltage, current, length, phase,
// ambient, conductor_count, insulation_class (trailing columns optional)
func parseSizingRow(row []string) (conductor.SizingRequest, error) {
	if len(row) < 5 {
		return conductor.SizingRequest{}, fmt.Errorf("bad row")
	}

	voltage, err := toFloat(row[2])
	if err != nil {
		return conductor.SizingRequest{}, err
	}
	current, err := toFloat(row[3])
	if err != nil {
		return conductor.SizingRequest{}, err
	}
	length, err := toFloat(row[4])
	if err != nil {
		return conductor.SizingRequest{}, err
	}

	req := conductor.SizingRequest{
		Standard:      conductor.Standard(row[0]),
		Material:      conductor.Material(row[1]),
		SystemVoltage: voltage,
		CurrentAmps:   current,
		Length:        length,
	}
	if len(row) > 5 && row[5] != "" {
		req.Phase = conductor.PhaseConfig(row[5])
	}
	if len(row) > 6 && row[6] != "" {
		req.AmbientC, _ = toFloat(row[6])
	}
	if len(row) > 7 && row[7] != "" {
		count, _ := toFloat(row[7])
		req.ConductorCount = int(count)
	}
	if len(row) > 8 && row[8] != "" {
		class, _ := toFloat(row[8])
		req.Insulation = conductor.InsulationClass(class)
	}
	return req, nil
}

func toFloat(s string) (float64, error) {
	var v float64
	_, err := fmt.Sscanf(s, "%f", &v)
	return v, err
}
