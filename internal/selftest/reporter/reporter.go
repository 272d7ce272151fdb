// Package reporter provides self-test result formatting and output.
package reporter

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/regkit-io/regkit-go/internal/selftest/engine"
)

// Reporter formats and outputs self-test results.
type Reporter interface {
	// ReportSuite reports results for a whole suite, verdict included.
	ReportSuite(result *engine.SuiteResult)

	// ReportScenario reports the result line(s) for a single scenario.
	ReportScenario(result *engine.ScenarioResult)
}

// OKColumn is the column where the "ok" marker starts on a pass line.
// Scenario descriptions are padded with dots up to this column so that
// a run of passing tests blends together and any failure visually
// clashes with it.
const OKColumn = 72

// TextReporter outputs the two-column text report:
//
//	ut00: verifying that construction initialized solenoid2 to OFF.......ok
//	ut12: FAILED!
//	verifying that an out-of-range power level is rejected
//	expected(4)
//	encountered(7)
type TextReporter struct {
	writer  io.Writer
	verbose bool
}

// NewTextReporter creates a new text reporter.
func NewTextReporter(w io.Writer, verbose bool) *TextReporter {
	return &TextReporter{
		writer:  w,
		verbose: verbose,
	}
}

// ReportSuite reports all scenario lines followed by the verdict.
// The verdict line is the machine-facing part of the format: build
// drivers grep it together with the process exit status.
func (r *TextReporter) ReportSuite(result *engine.SuiteResult) {
	for _, sr := range result.Results {
		r.ReportScenario(sr)
	}

	fmt.Fprintln(r.writer)
	if result.FailCount > 0 {
		fmt.Fprintln(r.writer, "SELF TEST FAILED!")
	} else {
		fmt.Fprintln(r.writer, "SELF TEST passed!")
	}
	if r.verbose {
		fmt.Fprintf(r.writer, "%d passed, %d failed in %s\n",
			result.PassCount, result.FailCount, result.Duration.Round(time.Millisecond))
	}
}

// ReportScenario reports a single scenario result.
func (r *TextReporter) ReportScenario(result *engine.ScenarioResult) {
	sc := result.Scenario
	head := fmt.Sprintf("%s: %s", sc.ID, sc.Description)

	if result.Passed {
		fmt.Fprintln(r.writer, passLine(head))
		if r.verbose {
			for _, sr := range result.StepResults {
				for _, er := range sr.ExpectResults {
					fmt.Fprintf(r.writer, "    %s\n", er.Message)
				}
			}
		}
		return
	}

	fmt.Fprintf(r.writer, "%s: FAILED!\n", sc.ID)
	fmt.Fprintln(r.writer, sc.Description)
	if er := firstFailedExpect(result); er != nil {
		fmt.Fprintf(r.writer, "expected(%v)\n", er.Expected)
		fmt.Fprintf(r.writer, "encountered(%v)\n", er.Actual)
	} else if result.Error != nil {
		fmt.Fprintf(r.writer, "error(%v)\n", result.Error)
	}
}

// passLine pads the description with dots so "ok" lands at OKColumn.
// Descriptions that overrun the column get a single space before the
// marker instead.
func passLine(head string) string {
	if len(head) >= OKColumn {
		return head + " ok"
	}
	return head + strings.Repeat(".", OKColumn-len(head)) + "ok"
}

// firstFailedExpect finds the first failing expectation, stepping in
// execution order.
func firstFailedExpect(result *engine.ScenarioResult) *engine.ExpectResult {
	for _, sr := range result.StepResults {
		if sr.Passed {
			continue
		}
		for _, key := range sortedKeys(sr.ExpectResults) {
			if er := sr.ExpectResults[key]; !er.Passed {
				return er
			}
		}
	}
	return nil
}

func sortedKeys(m map[string]*engine.ExpectResult) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// JSONReporter outputs JSON-formatted reports.
type JSONReporter struct {
	writer io.Writer
	pretty bool
}

// NewJSONReporter creates a new JSON reporter.
func NewJSONReporter(w io.Writer, pretty bool) *JSONReporter {
	return &JSONReporter{
		writer: w,
		pretty: pretty,
	}
}

// JSONSuiteResult is the JSON representation of suite results.
type JSONSuiteResult struct {
	SuiteName string               `json:"suite_name"`
	Duration  string               `json:"duration"`
	Total     int                  `json:"total"`
	Passed    int                  `json:"passed"`
	Failed    int                  `json:"failed"`
	Scenarios []JSONScenarioResult `json:"scenarios"`
}

// JSONScenarioResult is the JSON representation of a scenario result.
type JSONScenarioResult struct {
	ID          string           `json:"id"`
	Name        string           `json:"name,omitempty"`
	Description string           `json:"description,omitempty"`
	Status      string           `json:"status"`
	Duration    string           `json:"duration"`
	Error       string           `json:"error,omitempty"`
	Steps       []JSONStepResult `json:"steps,omitempty"`
}

// JSONStepResult is the JSON representation of a step result.
type JSONStepResult struct {
	Index   int                   `json:"index"`
	Action  string                `json:"action"`
	Status  string                `json:"status"`
	Error   string                `json:"error,omitempty"`
	Expects map[string]JSONExpect `json:"expects,omitempty"`
	Outputs map[string]any        `json:"outputs,omitempty"`
}

// JSONExpect is the JSON representation of an expectation result.
type JSONExpect struct {
	Passed   bool   `json:"passed"`
	Expected any    `json:"expected"`
	Actual   any    `json:"actual"`
	Message  string `json:"message"`
}

// ReportSuite reports suite results in JSON format.
func (r *JSONReporter) ReportSuite(result *engine.SuiteResult) {
	jr := JSONSuiteResult{
		SuiteName: result.SuiteName,
		Duration:  result.Duration.Round(time.Millisecond).String(),
		Total:     len(result.Results),
		Passed:    result.PassCount,
		Failed:    result.FailCount,
		Scenarios: make([]JSONScenarioResult, 0, len(result.Results)),
	}

	for _, sr := range result.Results {
		jr.Scenarios = append(jr.Scenarios, r.scenarioToJSON(sr))
	}

	r.writeJSON(jr)
}

// ReportScenario reports a single scenario result in JSON format.
func (r *JSONReporter) ReportScenario(result *engine.ScenarioResult) {
	r.writeJSON(r.scenarioToJSON(result))
}

func (r *JSONReporter) scenarioToJSON(result *engine.ScenarioResult) JSONScenarioResult {
	sc := result.Scenario

	status := "failed"
	if result.Passed {
		status = "passed"
	}

	jr := JSONScenarioResult{
		ID:          sc.ID,
		Name:        sc.Name,
		Description: sc.Description,
		Status:      status,
		Duration:    result.Duration.Round(time.Millisecond).String(),
	}

	if result.Error != nil {
		jr.Error = result.Error.Error()
	}

	for _, sr := range result.StepResults {
		stepStatus := "passed"
		if !sr.Passed {
			stepStatus = "failed"
		}

		jsr := JSONStepResult{
			Index:   sr.StepIndex,
			Action:  sr.Step.Action,
			Status:  stepStatus,
			Expects: make(map[string]JSONExpect),
			Outputs: sr.Output,
		}

		if sr.Error != nil {
			jsr.Error = sr.Error.Error()
		}

		for key, er := range sr.ExpectResults {
			jsr.Expects[key] = JSONExpect{
				Passed:   er.Passed,
				Expected: er.Expected,
				Actual:   er.Actual,
				Message:  er.Message,
			}
		}

		jr.Steps = append(jr.Steps, jsr)
	}

	return jr
}

func (r *JSONReporter) writeJSON(v any) {
	var data []byte
	var err error

	if r.pretty {
		data, err = json.MarshalIndent(v, "", "  ")
	} else {
		data, err = json.Marshal(v)
	}

	if err != nil {
		fmt.Fprintf(r.writer, `{"error": "failed to marshal: %s"}`, err)
		return
	}

	fmt.Fprintln(r.writer, string(data))
}
