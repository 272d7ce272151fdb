package engine

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/regkit-io/regkit-go/internal/selftest/loader"
	"github.com/regkit-io/regkit-go/pkg/board"
)

// CheckerNameDefault is the registry key of the fallback checker used
// for expectation keys without a dedicated checker.
const CheckerNameDefault = "__default__"

// Engine executes self-test scenarios.
type Engine struct {
	config   *Config
	handlers map[string]ActionHandler
	checkers map[string]ExpectChecker
	mu       sync.RWMutex
}

// New creates a new engine with the default configuration and the
// built-in register actions registered.
func New() *Engine {
	return NewWithConfig(DefaultConfig())
}

// NewWithConfig creates a new engine with the given configuration.
func NewWithConfig(config *Config) *Engine {
	if config == nil {
		config = DefaultConfig()
	}

	e := &Engine{
		config:   config,
		handlers: make(map[string]ActionHandler),
		checkers: make(map[string]ExpectChecker),
	}

	e.RegisterChecker(CheckerNameDefault, defaultChecker)
	registerBuiltinActions(e)

	return e
}

// RegisterHandler registers an action handler.
func (e *Engine) RegisterHandler(action string, handler ActionHandler) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.handlers[action] = handler
}

// RegisterChecker registers an expectation checker.
func (e *Engine) RegisterChecker(key string, checker ExpectChecker) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.checkers[key] = checker
}

// Run executes a single scenario against a fresh rig.
func (e *Engine) Run(sc *loader.Scenario) *ScenarioResult {
	result := &ScenarioResult{
		Scenario:  sc,
		StartTime: time.Now(),
	}

	rig := &Rig{
		Board: board.NewControlBoard(board.Config{
			TraceLogger: e.config.TraceLogger,
		}),
	}
	state := NewState(rig)

	for i := range sc.Steps {
		step := &sc.Steps[i]
		stepResult := e.executeStep(step, i, state)
		result.StepResults = append(result.StepResults, stepResult)

		if !stepResult.Passed {
			result.Error = stepResult.Error
			break
		}
	}

	result.Passed = result.Error == nil
	result.EndTime = time.Now()
	result.Duration = result.EndTime.Sub(result.StartTime)

	return result
}

// executeStep executes a single step.
func (e *Engine) executeStep(step *loader.Step, index int, state *State) *StepResult {
	result := &StepResult{
		Step:          step,
		StepIndex:     index,
		ExpectResults: make(map[string]*ExpectResult),
		Output:        make(map[string]interface{}),
	}

	e.mu.RLock()
	handler, exists := e.handlers[step.Action]
	e.mu.RUnlock()

	if !exists {
		result.Error = fmt.Errorf("unknown action: %s", step.Action)
		return result
	}

	outputs, err := handler(state, step)
	if err != nil {
		result.Error = err
		return result
	}

	for k, v := range outputs {
		state.Set(k, v)
		result.Output[k] = v
	}

	result.Passed = true
	for key, expected := range step.Expect {
		expectResult := e.checkExpectation(key, expected, state)
		result.ExpectResults[key] = expectResult
		if !expectResult.Passed {
			result.Passed = false
			result.Error = fmt.Errorf("expectation failed: %s - %s", key, expectResult.Message)
		}
	}

	return result
}

// checkExpectation checks a single expectation.
func (e *Engine) checkExpectation(key string, expected interface{}, state *State) *ExpectResult {
	e.mu.RLock()
	checker, exists := e.checkers[key]
	if !exists {
		checker = e.checkers[CheckerNameDefault]
	}
	e.mu.RUnlock()

	return checker(key, expected, state)
}

// defaultChecker compares the expected value against the step output
// under the same key, via their %v renderings so YAML integers match
// Go's unsigned register values.
func defaultChecker(key string, expected interface{}, state *State) *ExpectResult {
	actual, exists := state.Get(key)
	if !exists {
		return &ExpectResult{
			Key:      key,
			Expected: expected,
			Actual:   nil,
			Passed:   false,
			Message:  fmt.Sprintf("key %q not found in outputs", key),
		}
	}

	// "present" means the key exists with any non-nil value.
	if expStr, ok := expected.(string); ok && expStr == "present" {
		return &ExpectResult{
			Key:      key,
			Expected: expected,
			Actual:   actual,
			Passed:   actual != nil,
			Message:  fmt.Sprintf("%s = %v", key, actual),
		}
	}

	passed := fmt.Sprintf("%v", expected) == fmt.Sprintf("%v", actual)
	result := &ExpectResult{
		Key:      key,
		Expected: expected,
		Actual:   actual,
		Passed:   passed,
	}

	if passed {
		result.Message = fmt.Sprintf("%s = %v", key, expected)
	} else {
		result.Message = fmt.Sprintf("expected %v, got %v", expected, actual)
	}

	return result
}

// RunSuite executes all scenarios in order. The context is checked
// between scenarios; a cancelled context returns the partial result.
func (e *Engine) RunSuite(ctx context.Context, scenarios []*loader.Scenario) *SuiteResult {
	result := &SuiteResult{
		SuiteName: e.config.SuiteName,
	}

	startTime := time.Now()
	defer func() { result.Duration = time.Since(startTime) }()

	for _, sc := range scenarios {
		select {
		case <-ctx.Done():
			return result
		default:
		}

		scenarioResult := e.Run(sc)
		result.Results = append(result.Results, scenarioResult)

		if scenarioResult.Passed {
			result.PassCount++
		} else {
			result.FailCount++
		}

		if e.config.OnScenarioComplete != nil {
			e.config.OnScenarioComplete(scenarioResult)
		}

		if !scenarioResult.Passed && e.config.StopOnFirstFailure {
			break
		}
	}

	return result
}
