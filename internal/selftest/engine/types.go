// Package engine executes self-test scenarios against a control
// board rig.
package engine

import (
	"time"

	"github.com/regkit-io/regkit-go/internal/selftest/loader"
	"github.com/regkit-io/regkit-go/pkg/board"
	"github.com/regkit-io/regkit-go/pkg/tracelog"
)

// ScenarioResult represents the outcome of a single scenario.
type ScenarioResult struct {
	// Scenario is the scenario that was executed.
	Scenario *loader.Scenario

	// Passed indicates if all steps passed.
	Passed bool

	// Error is the error that caused failure, if any.
	Error error

	// StepResults contains results for each executed step.
	StepResults []*StepResult

	// Duration is how long the scenario took.
	Duration time.Duration

	// StartTime when the scenario started.
	StartTime time.Time

	// EndTime when the scenario finished.
	EndTime time.Time
}

// StepResult represents the outcome of a single step.
type StepResult struct {
	// Step is the step that was executed.
	Step *loader.Step

	// StepIndex is the index of this step (0-based).
	StepIndex int

	// Passed indicates if the step passed.
	Passed bool

	// Error is the error that caused failure, if any.
	Error error

	// ExpectResults maps expectation keys to their assertion results.
	ExpectResults map[string]*ExpectResult

	// Output contains the outputs produced by the step's action.
	Output map[string]interface{}
}

// ExpectResult represents the result of checking an expectation.
type ExpectResult struct {
	// Key is the expectation key (e.g., "state").
	Key string

	// Expected is the expected value.
	Expected interface{}

	// Actual is the actual value.
	Actual interface{}

	// Passed indicates if the expectation was met.
	Passed bool

	// Message describes the result.
	Message string
}

// SuiteResult represents the outcome of running a scenario suite.
type SuiteResult struct {
	// SuiteName identifies the suite.
	SuiteName string

	// Results contains results for each scenario.
	Results []*ScenarioResult

	// PassCount is the number of passed scenarios.
	PassCount int

	// FailCount is the number of failed scenarios.
	FailCount int

	// Duration is the total time for all scenarios.
	Duration time.Duration
}

// Rig is the hardware stand-in a scenario runs against. Each scenario
// gets a fresh rig, so construction defaults are always observable.
type Rig struct {
	// Board is the control board under test.
	Board *board.ControlBoard
}

// State holds execution state while a scenario runs.
type State struct {
	// Rig is the scenario's fresh control board.
	Rig *Rig

	// Outputs accumulated from previous steps.
	Outputs map[string]interface{}
}

// NewState creates execution state around a rig.
func NewState(rig *Rig) *State {
	return &State{
		Rig:     rig,
		Outputs: make(map[string]interface{}),
	}
}

// Get retrieves a value from outputs.
func (s *State) Get(key string) (interface{}, bool) {
	v, ok := s.Outputs[key]
	return v, ok
}

// Set stores a value in outputs.
func (s *State) Set(key string, value interface{}) {
	s.Outputs[key] = value
}

// ActionHandler processes a scenario step action.
// Returns outputs to check expectations against, and an error if the
// action itself failed (unknown parameters, not register semantics).
type ActionHandler func(state *State, step *loader.Step) (map[string]interface{}, error)

// ExpectChecker checks an expectation against actual outputs.
type ExpectChecker func(key string, expected interface{}, state *State) *ExpectResult

// Config configures the scenario engine.
type Config struct {
	// SuiteName labels the suite in results and reports.
	SuiteName string

	// StopOnFirstFailure stops execution after the first scenario failure.
	StopOnFirstFailure bool

	// TraceLogger receives register trace events from every rig.
	// Nil disables tracing.
	TraceLogger tracelog.Logger

	// OnScenarioComplete is called after each scenario finishes.
	OnScenarioComplete func(*ScenarioResult)
}

// DefaultConfig returns the default engine configuration.
func DefaultConfig() *Config {
	return &Config{
		SuiteName: "Register Self Test",
	}
}
