// Package config loads experiment descriptions from YAML files and the
// environment.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/sarchlab/eventkit/sim/rng"
	"github.com/sarchlab/eventkit/sim/timing"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid experiment")

// Calendar implementations selectable in the configuration.
const (
	CalendarHeap      = "heap"
	CalendarInsertion = "insertion"
)

// Experiment describes a set of replications of one model.
type Experiment struct {
	Name         string  `yaml:"name"`
	Replications int     `yaml:"replications"`
	RunLength    float64 `yaml:"run_length"`
	WarmUp       float64 `yaml:"warm_up"`
	Servers      int     `yaml:"servers"`

	// Calendar is heap or insertion. Empty means heap.
	Calendar string `yaml:"calendar"`

	// Streams overrides the initial state of generator streams.
	Streams map[int]int64 `yaml:"streams"`

	// Variates names the distributions the model samples from.
	Variates map[string]rng.DistSpec `yaml:"variates"`

	// Output is the path of the results database, without the .sqlite3
	// suffix. Empty disables recording.
	Output string `yaml:"output"`
}

// Default returns a single-server experiment with unit arrival rate and a
// service rate of 1.25.
func Default() Experiment {
	return Experiment{
		Name:         "mmc",
		Replications: 10,
		RunLength:    10000,
		WarmUp:       1000,
		Servers:      1,
		Calendar:     CalendarHeap,
		Variates: map[string]rng.DistSpec{
			"interarrival": {
				Type:   "exponential",
				Stream: 1,
				Params: map[string]float64{"mean": 1},
			},
			"service": {
				Type:   "exponential",
				Stream: 2,
				Params: map[string]float64{"mean": 0.8},
			},
		},
	}
}

// Load reads an experiment from a YAML file. Fields missing from the file
// keep their Default values. A variates section replaces the default
// variates as a whole. Unknown fields are errors.
func Load(path string) (Experiment, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Experiment{}, fmt.Errorf("reading experiment: %w", err)
	}

	return Parse(data)
}

// Parse decodes an experiment from YAML the same way Load does.
func Parse(data []byte) (Experiment, error) {
	exp := Default()
	defaultVariates := exp.Variates
	exp.Variates = nil

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	err := decoder.Decode(&exp)
	if err != nil && !errors.Is(err, io.EOF) {
		return Experiment{}, fmt.Errorf("parsing experiment: %w", err)
	}

	if exp.Variates == nil {
		exp.Variates = defaultVariates
	}

	return exp, nil
}

// Environment variables read by ApplyEnv.
const (
	EnvReplications = "EVENTKIT_REPLICATIONS"
	EnvRunLength    = "EVENTKIT_RUN_LENGTH"
	EnvWarmUp       = "EVENTKIT_WARM_UP"
	EnvServers      = "EVENTKIT_SERVERS"
	EnvCalendar     = "EVENTKIT_CALENDAR"
	EnvOutput       = "EVENTKIT_OUTPUT"
)

// ApplyEnv overrides fields from EVENTKIT_* environment variables. Variables
// in envFile are loaded first without replacing variables that are already
// set. An empty envFile loads .env if it exists.
func ApplyEnv(exp *Experiment, envFile string) error {
	if err := loadEnvFile(envFile); err != nil {
		return err
	}

	if err := envInt(EnvReplications, &exp.Replications); err != nil {
		return err
	}

	if err := envInt(EnvServers, &exp.Servers); err != nil {
		return err
	}

	if err := envFloat(EnvRunLength, &exp.RunLength); err != nil {
		return err
	}

	if err := envFloat(EnvWarmUp, &exp.WarmUp); err != nil {
		return err
	}

	if v, ok := os.LookupEnv(EnvCalendar); ok {
		exp.Calendar = v
	}

	if v, ok := os.LookupEnv(EnvOutput); ok {
		exp.Output = v
	}

	return nil
}

func loadEnvFile(envFile string) error {
	if envFile == "" {
		if _, err := os.Stat(".env"); err != nil {
			return nil
		}

		envFile = ".env"
	}

	if err := godotenv.Load(envFile); err != nil {
		return fmt.Errorf("loading %s: %w", envFile, err)
	}

	return nil
}

func envInt(key string, dst *int) error {
	v, ok := os.LookupEnv(key)
	if !ok {
		return nil
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}

	*dst = n

	return nil
}

func envFloat(key string, dst *float64) error {
	v, ok := os.LookupEnv(key)
	if !ok {
		return nil
	}

	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}

	*dst = f

	return nil
}

// Validate checks that the experiment can be run.
func (e Experiment) Validate() error {
	switch {
	case e.Replications < 1:
		return fmt.Errorf("%w: replications must be at least 1, got %d",
			ErrInvalid, e.Replications)
	case e.RunLength <= 0:
		return fmt.Errorf("%w: run_length must be positive, got %v",
			ErrInvalid, e.RunLength)
	case e.WarmUp < 0 || e.WarmUp >= e.RunLength:
		return fmt.Errorf("%w: warm_up must be in [0, run_length), got %v",
			ErrInvalid, e.WarmUp)
	case e.Servers < 1:
		return fmt.Errorf("%w: servers must be at least 1, got %d",
			ErrInvalid, e.Servers)
	}

	if e.Calendar != "" && e.Calendar != CalendarHeap &&
		e.Calendar != CalendarInsertion {
		return fmt.Errorf("%w: unknown calendar %q", ErrInvalid, e.Calendar)
	}

	for stream, state := range e.Streams {
		if !rng.ValidStream(stream) {
			return fmt.Errorf("%w: stream %d out of range [1, %d]",
				ErrInvalid, stream, rng.NumStreams)
		}

		if state < 1 || state >= 2147483647 {
			return fmt.Errorf("%w: stream %d state %d out of range",
				ErrInvalid, stream, state)
		}
	}

	for _, name := range e.VariateNames() {
		if _, err := rng.NewSampler(e.Variates[name], rng.NewGenerator()); err != nil {
			return fmt.Errorf("%w: variate %s: %v", ErrInvalid, name, err)
		}
	}

	return nil
}

// VariateNames returns the configured variate names, sorted.
func (e Experiment) VariateNames() []string {
	names := make([]string, 0, len(e.Variates))
	for name := range e.Variates {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// NewGenerator creates a generator with the default seeds and the
// configured stream overrides applied.
func (e Experiment) NewGenerator() *rng.Generator {
	gen := rng.NewGenerator()
	for stream, state := range e.Streams {
		gen.SetStreamState(stream, state)
	}

	return gen
}

// NewSamplers creates one sampler per configured variate, all drawing from
// gen.
func (e Experiment) NewSamplers(gen *rng.Generator) (map[string]rng.Sampler, error) {
	samplers := make(map[string]rng.Sampler, len(e.Variates))

	for _, name := range e.VariateNames() {
		s, err := rng.NewSampler(e.Variates[name], gen)
		if err != nil {
			return nil, fmt.Errorf("variate %s: %w", name, err)
		}

		samplers[name] = s
	}

	return samplers, nil
}

// NewCalendar creates the configured calendar implementation.
func (e Experiment) NewCalendar() timing.Calendar {
	if e.Calendar == CalendarInsertion {
		return timing.NewInsertionCalendar()
	}

	return timing.NewCalendar()
}
