package cmd

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/sarchlab/eventkit/sim/rng"
)

func newStreamsCmd() *cobra.Command {
	var (
		stream int
		count  int
		state  int64
	)

	streamsCmd := &cobra.Command{
		Use:   "streams",
		Short: "Print the first values of a random number stream.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return printStream(cmd.OutOrStdout(), stream, count, state)
		},
	}

	streamsCmd.Flags().IntVar(&stream, "stream", 1, "stream number (1-100)")
	streamsCmd.Flags().IntVar(&count, "count", 10, "number of values")
	streamsCmd.Flags().Int64Var(&state, "state", 0,
		"initial stream state (default seed when 0)")

	return streamsCmd
}

func printStream(out io.Writer, stream, count int, state int64) error {
	if !rng.ValidStream(stream) {
		return fmt.Errorf("stream %d out of range [1, %d]",
			stream, rng.NumStreams)
	}

	if count < 0 {
		return fmt.Errorf("negative count %d", count)
	}

	if state < 0 || state >= 2147483647 {
		return fmt.Errorf("state %d out of range", state)
	}

	gen := rng.NewGenerator()
	if state != 0 {
		gen.SetStreamState(stream, state)
	}

	for i := 0; i < count; i++ {
		u := gen.UniformUnit(stream)
		fmt.Fprintf(out, "%d\t%s\t%d\n",
			i+1, strconv.FormatFloat(u, 'g', -1, 64), gen.StreamState(stream))
	}

	return nil
}
