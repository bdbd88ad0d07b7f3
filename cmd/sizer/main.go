package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	conductor "Voltra/internal/calc/conductor"

	"github.com/spf13/cobra"
)

var (
	standard   string
	material   string
	voltage    float64
	current    float64
	length     float64
	phase      string
	ambient    float64
	count      int
	insulation int
	method     string
	dropLimit  float64
	fault      float64
	asJSON     bool
)

func main() {
	root := &cobra.Command{
		Use:   "sizer",
		Short: "Conductor sizing from the command line",
		Long: `Runs the conductor sizing engine offline: smallest conductor (or
parallel-run configuration) meeting both the derated ampacity and the
voltage drop limit, plus the protective earth conductor.`,
		RunE: run,
	}

	f := root.Flags()
	f.StringVar(&standard, "standard", "metric", "metric or imperial")
	f.StringVar(&material, "material", "copper", "copper or aluminum")
	f.Float64Var(&voltage, "voltage", 0, "system voltage (0 = standard default)")
	f.Float64Var(&current, "current", 0, "load current in amps")
	f.Float64Var(&length, "length", 0, "run length (m for metric, ft for imperial)")
	f.StringVar(&phase, "phase", "single", "single or three")
	f.Float64Var(&ambient, "ambient", 30, "ambient temperature in °C")
	f.IntVar(&count, "conductors", 0, "grouped current-carrying conductors")
	f.IntVar(&insulation, "insulation", 0, "insulation class °C (0 = standard default)")
	f.StringVar(&method, "method", "conduit", "installation method: conduit, tray, buried, air")
	f.Float64Var(&dropLimit, "drop-limit", 0, "voltage drop limit percent (0 = 3%)")
	f.Float64Var(&fault, "fault", 0, "prospective fault current in amps")
	f.BoolVar(&asJSON, "json", false, "print the full result as JSON")

	root.MarkFlagRequired("current")
	root.MarkFlagRequired("length")

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	res, err := conductor.SizeConductor(conductor.SizingRequest{
		SystemVoltage:    voltage,
		CurrentAmps:      current,
		Length:           length,
		Material:         conductor.Material(material),
		InstallMethod:    method,
		AmbientC:         ambient,
		Phase:            conductor.PhaseConfig(phase),
		ConductorCount:   count,
		Insulation:       conductor.InsulationClass(insulation),
		Standard:         conductor.Standard(standard),
		MaxDropPercent:   dropLimit,
		FaultCurrentAmps: fault,
	})
	if err != nil {
		return err
	}

	if asJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "Conductor\t%s x%d\n", res.RecommendedSize, res.ParallelRuns)
	fmt.Fprintf(w, "Voltage drop\t%.2f V (%.2f%%)\n", res.VoltageDrop.DropVolts, res.VoltageDrop.DropPercent)
	fmt.Fprintf(w, "Derated ampacity\t%.2f A (factor %.2f)\n", res.DeratedAmpacity, res.Derating.TotalFactor)
	fmt.Fprintf(w, "Utilization\t%.1f%%\n", res.UtilizationPercent)
	fmt.Fprintf(w, "Earth conductor\t%s (%s)\n", res.Earth.Size, res.Earth.RuleApplied)
	fmt.Fprintf(w, "Fully compliant\t%t\n", res.Compliance.IsFullyCompliant)
	for _, alt := range res.Alternatives {
		fmt.Fprintf(w, "Alternative\t%s (%.1f%% drop, %.1f%% utilized)\n", alt.Size, alt.DropPercent, alt.UtilizationPercent)
	}
	for _, opt := range res.ParallelOptions {
		fmt.Fprintf(w, "Parallel option\t%dx %s (score %d, compliant %t)\n", opt.RunsPerPhase, opt.Size, opt.CostScore, opt.IsCompliant)
	}
	for _, warn := range res.Warnings {
		fmt.Fprintf(w, "Warning\t%s\n", warn)
	}
	return w.Flush()
}
