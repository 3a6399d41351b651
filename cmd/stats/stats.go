// Package stats implements the one-shot analysis mode: load the dataset,
// print the per-month summary table for a species and exit.
package stats

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"birdcount-go/internal/conf"
	"birdcount-go/internal/dataset"
	"birdcount-go/internal/survey"
)

// Command returns the stats command.
func Command(settings *conf.Settings) *cobra.Command {
	var (
		species    string
		startYear  int
		endYear    int
		population bool
	)

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Print per-month statistics for a species",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := survey.Options{PopulationStd: settings.Stats.Population || population}
			filter := survey.Filter{
				Species:   species,
				StartYear: startYear,
				EndYear:   endYear,
			}
			return runStats(settings, filter, opts, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&species, "species", "", "Species name to summarize")
	cmd.Flags().IntVar(&startYear, "start-year", 0, "First survey year to include (inclusive)")
	cmd.Flags().IntVar(&endYear, "end-year", 0, "Last survey year to include (inclusive)")
	cmd.Flags().BoolVar(&population, "population", false, "Use population standard deviation instead of sample")
	_ = cmd.MarkFlagRequired("species")

	return cmd
}

func runStats(settings *conf.Settings, filter survey.Filter, opts survey.Options, out io.Writer) error {
	ds, err := dataset.Load(settings)
	if err != nil {
		return err
	}

	summaries := survey.ComputeStats(ds.Records(), filter, opts)
	if len(summaries) == 0 {
		fmt.Fprintf(out, "No records for species %q\n", filter.Species)
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 8, 2, ' ', 0)
	fmt.Fprintln(w, "Month\tSpecies\tMean\tMedian\tStd\tMin\tMax\tN")
	for i := range summaries {
		s := &summaries[i]
		fmt.Fprintf(w, "%s\t%s\t%.2f\t%.1f\t%.2f\t%.0f\t%.0f\t%d\n",
			s.Month, s.Species, s.Mean, s.Median, s.Std, s.Min, s.Max, s.Count)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if settings.Debug {
		fmt.Fprintf(out, "\n%d records loaded\n", ds.Len())
	}
	return nil
}
