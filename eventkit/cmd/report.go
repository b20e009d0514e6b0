package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/sarchlab/eventkit/datarecording"
)

func newReportCmd() *cobra.Command {
	var (
		dbFile string
		runID  string
	)

	reportCmd := &cobra.Command{
		Use:   "report",
		Short: "Print the summaries stored by run --record.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return printReport(cmd.Context(), cmd.OutOrStdout(), dbFile, runID)
		},
	}

	reportCmd.Flags().StringVar(&dbFile, "db", "", "database file")
	reportCmd.Flags().StringVar(&runID, "run", "", "only this run ID")
	_ = reportCmd.MarkFlagRequired("db")

	return reportCmd
}

func printReport(
	ctx context.Context,
	out io.Writer,
	dbFile, runID string,
) error {
	if ctx == nil {
		ctx = context.Background()
	}

	if _, err := os.Stat(dbFile); err != nil {
		return err
	}

	reader, err := datarecording.NewReader(dbFile)
	if err != nil {
		return err
	}
	defer reader.Close()

	summaries, err := datarecording.ReadSummaries(ctx, reader, runID)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "Run\tRep\tStatistic\tKind\tMean\tStdDev\tCount\tEndTime")

	for _, s := range summaries {
		fmt.Fprintf(w, "%s\t%d\t%s\t%s\t%.4f\t%.4f\t%d\t%g\n",
			s.RunID, s.Replication, s.Name, s.Kind,
			s.Mean, s.StdDev, s.Count, s.EndTime)
	}

	return w.Flush()
}
