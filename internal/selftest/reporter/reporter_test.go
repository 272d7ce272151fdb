package reporter_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/regkit-io/regkit-go/internal/selftest/engine"
	"github.com/regkit-io/regkit-go/internal/selftest/loader"
	"github.com/regkit-io/regkit-go/internal/selftest/reporter"
)

func passedScenario(id, desc string) *engine.ScenarioResult {
	return &engine.ScenarioResult{
		Scenario: &loader.Scenario{ID: id, Description: desc},
		Passed:   true,
		Duration: 3 * time.Millisecond,
	}
}

func failedScenario(id, desc string, expected, actual interface{}) *engine.ScenarioResult {
	er := &engine.ExpectResult{
		Key:      "level",
		Expected: expected,
		Actual:   actual,
		Passed:   false,
		Message:  "expected vs actual mismatch",
	}
	return &engine.ScenarioResult{
		Scenario: &loader.Scenario{ID: id, Description: desc},
		Passed:   false,
		Error:    errors.New("expectation failed: level"),
		StepResults: []*engine.StepResult{
			{
				Step:          &loader.Step{Action: "read_lamp"},
				Passed:        false,
				ExpectResults: map[string]*engine.ExpectResult{"level": er},
			},
		},
	}
}

// TestTextReporterPassLine checks the two-column ok layout.
func TestTextReporterPassLine(t *testing.T) {
	var buf bytes.Buffer
	r := reporter.NewTextReporter(&buf, false)

	r.ReportScenario(passedScenario("ut00", "verifying that construction initialized solenoid2 to OFF"))

	line := strings.TrimRight(buf.String(), "\n")
	if !strings.HasPrefix(line, "ut00: verifying") {
		t.Errorf("line = %q", line)
	}
	if !strings.HasSuffix(line, "ok") {
		t.Errorf("line should end with ok: %q", line)
	}
	if !strings.Contains(line, "....") {
		t.Errorf("line should be dot-padded: %q", line)
	}
	// "ok" starts exactly at the ok column.
	if idx := strings.Index(line, "ok"); idx != reporter.OKColumn {
		t.Errorf("ok at column %d, want %d", idx, reporter.OKColumn)
	}
}

// TestTextReporterLongDescription must not panic or misalign badly.
func TestTextReporterLongDescription(t *testing.T) {
	var buf bytes.Buffer
	r := reporter.NewTextReporter(&buf, false)

	long := strings.Repeat("x", reporter.OKColumn+10)
	r.ReportScenario(passedScenario("ut01", long))

	line := strings.TrimRight(buf.String(), "\n")
	if !strings.HasSuffix(line, " ok") {
		t.Errorf("line = %q", line)
	}
}

// TestTextReporterFailure emits the clashing FAILED! block.
func TestTextReporterFailure(t *testing.T) {
	var buf bytes.Buffer
	r := reporter.NewTextReporter(&buf, false)

	r.ReportScenario(failedScenario("ut12", "verifying out-of-range rejection", 4, 7))

	out := buf.String()
	for _, want := range []string{
		"ut12: FAILED!",
		"verifying out-of-range rejection",
		"expected(4)",
		"encountered(7)",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "....") {
		t.Errorf("failure block should not be dot-padded:\n%s", out)
	}
}

// TestTextReporterVerdict prints passed/FAILED depending on counts.
func TestTextReporterVerdict(t *testing.T) {
	var buf bytes.Buffer
	r := reporter.NewTextReporter(&buf, false)

	r.ReportSuite(&engine.SuiteResult{
		Results:   []*engine.ScenarioResult{passedScenario("ut00", "ok case")},
		PassCount: 1,
	})
	if !strings.Contains(buf.String(), "SELF TEST passed!") {
		t.Errorf("missing pass verdict:\n%s", buf.String())
	}

	buf.Reset()
	r.ReportSuite(&engine.SuiteResult{
		Results:   []*engine.ScenarioResult{failedScenario("ut12", "bad case", 4, 7)},
		FailCount: 1,
	})
	if !strings.Contains(buf.String(), "SELF TEST FAILED!") {
		t.Errorf("missing fail verdict:\n%s", buf.String())
	}
}

// TestJSONReporterSuite round-trips through encoding/json.
func TestJSONReporterSuite(t *testing.T) {
	var buf bytes.Buffer
	r := reporter.NewJSONReporter(&buf, true)

	r.ReportSuite(&engine.SuiteResult{
		SuiteName: "Register Self Test",
		Results: []*engine.ScenarioResult{
			passedScenario("ut00", "defaults"),
			failedScenario("ut12", "rejection", 4, 7),
		},
		PassCount: 1,
		FailCount: 1,
		Duration:  10 * time.Millisecond,
	})

	var jr reporter.JSONSuiteResult
	if err := json.Unmarshal(buf.Bytes(), &jr); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, buf.String())
	}

	if jr.SuiteName != "Register Self Test" {
		t.Errorf("SuiteName = %s", jr.SuiteName)
	}
	if jr.Total != 2 || jr.Passed != 1 || jr.Failed != 1 {
		t.Errorf("counts = %d/%d/%d", jr.Total, jr.Passed, jr.Failed)
	}
	if jr.Scenarios[0].Status != "passed" || jr.Scenarios[1].Status != "failed" {
		t.Errorf("statuses = %s, %s", jr.Scenarios[0].Status, jr.Scenarios[1].Status)
	}
	if jr.Scenarios[1].Error == "" {
		t.Error("failed scenario should carry an error")
	}
	if len(jr.Scenarios[1].Steps) != 1 {
		t.Fatalf("steps = %d", len(jr.Scenarios[1].Steps))
	}
	if jr.Scenarios[1].Steps[0].Expects["level"].Passed {
		t.Error("expectation should be failed")
	}
}
