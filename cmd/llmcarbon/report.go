package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	json "github.com/goccy/go-json"

	"github.com/carbonscope/llmcarbon/internal/carbon"
)

// Output formats accepted by --format.
const (
	formatTable = "table"
	formatJSON  = "json"
)

// renderEstimate writes the estimate in the requested format.
// withEmbodied controls whether the embodied/total split appears in the
// table; operational-only runs report just operational figures, as the
// split would misleadingly read as "embodied = 0".
func renderEstimate(w io.Writer, est carbon.CarbonEstimate, format string, withEmbodied bool) error {
	switch format {
	case formatTable:
		return renderTable(w, est, withEmbodied)
	case formatJSON:
		return renderJSON(w, est)
	default:
		return fmt.Errorf("unknown output format %q: valid formats are %s, %s", format, formatTable, formatJSON)
	}
}

func renderTable(w io.Writer, est carbon.CarbonEstimate, withEmbodied bool) error {
	title := "LLM Training Carbon Footprint"
	if est.Phase == carbon.PhaseInference {
		title = "LLM Inference Carbon Footprint"
	}
	fmt.Fprintf(w, "\n%s\n%s\n", title, strings.Repeat("=", len(title)))

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	// Inference durations are sub-second to minutes; day granularity
	// only suits training runs.
	if est.Phase == carbon.PhaseInference {
		fmt.Fprintf(tw, "Execution time:\t%.4f s\n", est.ExecutionSeconds)
		fmt.Fprintf(tw, "Total energy:\t%.8f MWh\n", est.EnergyMWh)
		fmt.Fprintf(tw, "Operational emissions:\t%.8f tCO2eq\n", est.OperationalTonnes)
		if withEmbodied {
			fmt.Fprintf(tw, "Embodied emissions:\t%.8f tCO2eq\n", est.EmbodiedTonnes)
			fmt.Fprintf(tw, "Total emissions:\t%.8f tCO2eq\n", est.TotalTonnes)
		}
	} else {
		fmt.Fprintf(tw, "Execution time:\t%.2f days\n", est.ExecutionDays)
		fmt.Fprintf(tw, "Total energy:\t%.2f MWh\n", est.EnergyMWh)
		fmt.Fprintf(tw, "Operational emissions:\t%.4f tCO2eq\n", est.OperationalTonnes)
		if withEmbodied {
			fmt.Fprintf(tw, "Embodied emissions:\t%.4f tCO2eq\n", est.EmbodiedTonnes)
			fmt.Fprintf(tw, "Total emissions:\t%.4f tCO2eq\n", est.TotalTonnes)
		}
	}

	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(w, "\nEstimates follow the LLMCarbon methodology; actual emissions vary with workload and grid conditions.")
	return nil
}

func renderJSON(w io.Writer, est carbon.CarbonEstimate) error {
	data, err := json.MarshalIndent(est, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s\n", data)
	return err
}
