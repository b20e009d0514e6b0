package cmd

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"github.com/shirou/gopsutil/process"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/sarchlab/eventkit/config"
	"github.com/sarchlab/eventkit/datarecording"
	"github.com/sarchlab/eventkit/examples/mmc"
	"github.com/sarchlab/eventkit/sim/id"
)

type runOptions struct {
	configPath string
	envFile    string
	logLevel   string
	record     string
	trace      bool
}

func newRunCmd() *cobra.Command {
	opts := &runOptions{}

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Run the replications of an experiment.",
		Long: "Run loads the experiment from --config (or uses the built-in " +
			"single-server experiment), applies EVENTKIT_* environment " +
			"overrides and prints one line per replication followed by the " +
			"across-replication estimates.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExperiment(cmd.OutOrStdout(), cmd.ErrOrStderr(), opts)
		},
	}

	runCmd.Flags().StringVar(&opts.configPath, "config", "",
		"experiment YAML file")
	runCmd.Flags().StringVar(&opts.envFile, "env", "",
		"file with EVENTKIT_* variables (default .env if present)")
	runCmd.Flags().StringVar(&opts.logLevel, "log", "info",
		"log level (trace, debug, info, warn, error)")
	runCmd.Flags().StringVar(&opts.record, "record", "",
		"record summaries to this path (.sqlite3 is appended)")
	runCmd.Flags().BoolVar(&opts.trace, "trace", false,
		"log every event at debug level")

	return runCmd
}

func runExperiment(out, errOut io.Writer, opts *runOptions) (err error) {
	level, err := logrus.ParseLevel(opts.logLevel)
	if err != nil {
		return fmt.Errorf("invalid log level: %s", opts.logLevel)
	}

	logger := logrus.New()
	logger.SetOutput(errOut)
	logger.SetLevel(level)

	exp := config.Default()
	if opts.configPath != "" {
		exp, err = config.Load(opts.configPath)
		if err != nil {
			return err
		}
	}

	if err := config.ApplyEnv(&exp, opts.envFile); err != nil {
		return err
	}

	if opts.record != "" {
		exp.Output = opts.record
	}

	if err := exp.Validate(); err != nil {
		return err
	}

	runner := mmc.NewRunner(exp, logger).WithEventTrace(opts.trace)

	var recorder datarecording.DataRecorder
	if exp.Output != "" {
		recorder, err = datarecording.New(exp.Output)
		if err != nil {
			return err
		}
		defer closeRecorder(recorder, &err)

		summaryRecorder, err := datarecording.NewSummaryRecorder(
			recorder, id.NewRunID())
		if err != nil {
			return err
		}

		runner.WithRecorder(summaryRecorder)

		logger.WithFields(logrus.Fields{
			"file":   exp.Output + ".sqlite3",
			"run_id": summaryRecorder.RunID(),
		}).Info("recording summaries")
	}

	start := time.Now()

	results, err := runner.Run()
	if err != nil {
		return err
	}

	printResults(out, exp, results)
	reportResourceUsage(logger, time.Since(start))

	return nil
}

// closeRecorder closes c and keeps its error unless an earlier error is
// already being returned.
func closeRecorder(c io.Closer, err *error) {
	if cerr := c.Close(); cerr != nil && *err == nil {
		*err = fmt.Errorf("closing recorder: %w", cerr)
	}
}

func printResults(out io.Writer, exp config.Experiment, results []mmc.Result) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)

	fmt.Fprintf(w, "Experiment %s: %d server(s), run length %g, warm-up %g\n\n",
		exp.Name, exp.Servers, exp.RunLength, exp.WarmUp)
	fmt.Fprintln(w, "Rep\tServed\tWait\tTimeInSystem\tQueueLength\tUtilization")

	for _, r := range results {
		fmt.Fprintf(w, "%d\t%d\t%.4f\t%.4f\t%.4f\t%.4f\n",
			r.Replication, r.Served, r.MeanWait, r.MeanTimeInSystem,
			r.MeanQueueLength, r.Utilization)
	}

	agg := mmc.Summarize(results)

	fmt.Fprintf(w, "Mean\t\t%.4f\t%.4f\t%.4f\t%.4f\n",
		agg.Wait.Mean, agg.TimeInSystem.Mean,
		agg.QueueLength.Mean, agg.Utilization.Mean)
	fmt.Fprintf(w, "StdDev\t\t%.4f\t%.4f\t%.4f\t%.4f\n",
		agg.Wait.StdDev, agg.TimeInSystem.StdDev,
		agg.QueueLength.StdDev, agg.Utilization.StdDev)

	w.Flush()
}

func reportResourceUsage(logger logrus.FieldLogger, wall time.Duration) {
	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		logger.WithError(err).Warn("cannot inspect process")
		return
	}

	fields := logrus.Fields{"wall_time": wall.String()}

	if cpu, err := p.CPUPercent(); err == nil {
		fields["cpu_percent"] = cpu
	}

	if mem, err := p.MemoryInfo(); err == nil {
		fields["rss_bytes"] = mem.RSS
	}

	logger.WithFields(fields).Info("resource usage")
}
