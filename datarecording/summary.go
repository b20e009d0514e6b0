package datarecording

import (
	"context"
	"fmt"

	"github.com/sarchlab/eventkit/sim/simulation"
	"github.com/sarchlab/eventkit/sim/timing"
)

// SummaryTable is the table that SummaryRecorder writes to.
const SummaryTable = "replication_summary"

// Statistic kinds stored in Summary.Kind.
const (
	KindTimeWeighted = "time_weighted"
	KindDiscrete     = "discrete"
)

// Summary is the end-of-replication value of one statistic.
type Summary struct {
	RunID       string
	Replication int
	Name        string
	Kind        string
	Mean        float64
	StdDev      float64
	Count       int
	EndTime     float64
}

// StatisticSource is a simulation whose statistics can be summarized.
type StatisticSource interface {
	timing.TimeTeller
	Statistics() []simulation.Statistic
}

// observationCounter is implemented by statistics made of discrete
// observations.
type observationCounter interface {
	Count() int
	SampleStdDev() float64
}

// SummaryRecorder writes one Summary row per statistic per replication.
type SummaryRecorder struct {
	recorder DataRecorder
	runID    string
}

// NewSummaryRecorder creates the summary table on the recorder.
func NewSummaryRecorder(
	recorder DataRecorder,
	runID string,
) (*SummaryRecorder, error) {
	if err := recorder.CreateTable(SummaryTable, Summary{}); err != nil {
		return nil, err
	}

	return &SummaryRecorder{
		recorder: recorder,
		runID:    runID,
	}, nil
}

// RunID returns the identifier stamped on every row.
func (r *SummaryRecorder) RunID() string {
	return r.runID
}

// Summarize builds the summary rows of a simulation without writing them.
func Summarize(
	runID string,
	replication int,
	sim StatisticSource,
) []Summary {
	stats := sim.Statistics()
	summaries := make([]Summary, 0, len(stats))

	for _, stat := range stats {
		s := Summary{
			RunID:       runID,
			Replication: replication,
			Name:        stat.Name(),
			Kind:        KindTimeWeighted,
			Mean:        stat.Mean(),
			EndTime:     sim.Now(),
		}

		if d, ok := stat.(observationCounter); ok {
			s.Kind = KindDiscrete
			s.StdDev = d.SampleStdDev()
			s.Count = d.Count()
		}

		summaries = append(summaries, s)
	}

	return summaries
}

// RecordReplication buffers the summaries of every statistic registered with
// sim.
func (r *SummaryRecorder) RecordReplication(
	replication int,
	sim StatisticSource,
) error {
	for _, s := range Summarize(r.runID, replication, sim) {
		if err := r.recorder.InsertData(SummaryTable, s); err != nil {
			return fmt.Errorf("recording replication %d: %w", replication, err)
		}
	}

	return nil
}

// Flush writes the buffered summaries.
func (r *SummaryRecorder) Flush() error {
	return r.recorder.Flush()
}

// ReadSummaries returns the summaries of a run ordered by replication. An
// empty runID returns every run.
func ReadSummaries(
	ctx context.Context,
	reader DataReader,
	runID string,
) ([]Summary, error) {
	reader.MapTable(SummaryTable, Summary{})

	params := QueryParams{OrderBy: "Replication, rowid"}
	if runID != "" {
		params.Where = "RunID = ?"
		params.Args = []any{runID}
	}

	rows, _, err := reader.Query(ctx, SummaryTable, params)
	if err != nil {
		return nil, err
	}

	summaries := make([]Summary, 0, len(rows))
	for _, row := range rows {
		summaries = append(summaries, *row.(*Summary))
	}

	return summaries, nil
}
