// Package loader provides YAML scenario loading for the register
// self-test harness.
package loader

// Scenario represents a single self-test scenario loaded from YAML.
// Every scenario runs against a fresh, zero-initialized control board.
type Scenario struct {
	// ID is the unique scenario identifier (e.g., "ut00").
	ID string `yaml:"id"`

	// Name is a human-readable name for the scenario.
	Name string `yaml:"name"`

	// Description explains what the scenario verifies. It forms the
	// left column of the test report.
	Description string `yaml:"description"`

	// Steps are the actions to execute in order.
	Steps []Step `yaml:"steps"`

	// Tags for categorizing scenarios.
	Tags []string `yaml:"tags,omitempty"`
}

// Step represents a single action in a scenario.
type Step struct {
	// Action is the action to perform (e.g., "set_lamp", "read_word").
	Action string `yaml:"action"`

	// Params are parameters for the action.
	Params map[string]interface{} `yaml:"params,omitempty"`

	// Expect defines expected outputs after the action.
	Expect map[string]interface{} `yaml:"expect,omitempty"`

	// Description explains what this step does.
	Description string `yaml:"description,omitempty"`
}

// LoadError provides details about a scenario loading error.
type LoadError struct {
	// File is the path to the file that failed to load.
	File string

	// Message describes the error.
	Message string

	// Cause is the underlying error, if any.
	Cause error
}

func (e *LoadError) Error() string {
	if e.File != "" {
		return e.File + ": " + e.Message
	}
	return e.Message
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}
