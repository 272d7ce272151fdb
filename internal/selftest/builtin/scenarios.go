// Package builtin carries the normative self-test scenario set for
// GPIO register #23. The scenarios cover construction defaults,
// previous-value reporting, a walking-ones sweep of the lamp field,
// out-of-range rejection, and field isolation; external YAML
// scenarios loaded at run time extend this set, never replace it.
package builtin

import "github.com/regkit-io/regkit-go/internal/selftest/loader"

// Scenarios returns the built-in scenario set in execution order.
// Callers get a fresh slice; mutating it does not affect later calls.
func Scenarios() []*loader.Scenario {
	return []*loader.Scenario{
		{
			ID:          "ut00",
			Name:        "Solenoid 2 construction default",
			Description: "verifying that construction initialized solenoid2 to OFF",
			Tags:        []string{"defaults"},
			Steps: []loader.Step{
				{Action: "read_solenoid", Params: params{"solenoid": 2},
					Expect: expect{"state": "OFF"}},
			},
		},
		{
			ID:          "ut01",
			Name:        "Solenoid 3 construction default",
			Description: "verifying that construction initialized solenoid3 to OFF",
			Tags:        []string{"defaults"},
			Steps: []loader.Step{
				{Action: "read_solenoid", Params: params{"solenoid": 3},
					Expect: expect{"state": "OFF"}},
			},
		},
		{
			ID:          "ut02",
			Name:        "Lamp construction default",
			Description: "verifying that construction initialized the floodlamp to lights out",
			Tags:        []string{"defaults"},
			Steps: []loader.Step{
				{Action: "read_lamp", Expect: expect{"level": 0}},
				{Action: "read_word", Expect: expect{"word": "0x0000"}},
			},
		},
		{
			ID:          "ut03",
			Name:        "Solenoid 2 energize",
			Description: "verifying that solenoid2 reports the prior state and energizes",
			Tags:        []string{"solenoid"},
			Steps: []loader.Step{
				{Action: "set_solenoid", Params: params{"solenoid": 2, "state": "ON"},
					Expect: expect{"prev": "OFF"}},
				{Action: "read_solenoid", Params: params{"solenoid": 2},
					Expect: expect{"state": "ON"}},
			},
		},
		{
			ID:          "ut04",
			Name:        "Solenoid 3 energize",
			Description: "verifying that solenoid3 reports the prior state and energizes",
			Tags:        []string{"solenoid"},
			Steps: []loader.Step{
				{Action: "set_solenoid", Params: params{"solenoid": 3, "state": "ON"},
					Expect: expect{"prev": "OFF"}},
				{Action: "read_solenoid", Params: params{"solenoid": 3},
					Expect: expect{"state": "ON"}},
			},
		},
		{
			ID:          "ut05",
			Name:        "Solenoid 2 de-energize",
			Description: "verifying that solenoid2 reports the prior state and de-energizes",
			Tags:        []string{"solenoid"},
			Steps: []loader.Step{
				{Action: "set_solenoid", Params: params{"solenoid": 2, "state": "ON"},
					Expect: expect{"prev": "OFF"}},
				{Action: "set_solenoid", Params: params{"solenoid": 2, "state": "OFF"},
					Expect: expect{"prev": "ON"}},
				{Action: "read_solenoid", Params: params{"solenoid": 2},
					Expect: expect{"state": "OFF"}},
			},
		},
		{
			ID:          "ut06",
			Name:        "Solenoid 3 de-energize",
			Description: "verifying that solenoid3 reports the prior state and de-energizes",
			Tags:        []string{"solenoid"},
			Steps: []loader.Step{
				{Action: "set_solenoid", Params: params{"solenoid": 3, "state": "ON"},
					Expect: expect{"prev": "OFF"}},
				{Action: "set_solenoid", Params: params{"solenoid": 3, "state": "OFF"},
					Expect: expect{"prev": "ON"}},
				{Action: "read_solenoid", Params: params{"solenoid": 3},
					Expect: expect{"state": "OFF"}},
			},
		},
		{
			ID:          "ut07",
			Name:        "Lamp full power",
			Description: "verifying that the floodlamp can be set to full illumination",
			Tags:        []string{"lamp"},
			Steps: []loader.Step{
				{Action: "set_lamp", Params: params{"level": 7},
					Expect: expect{"prev": 0, "rejected": false}},
				{Action: "read_lamp", Expect: expect{"level": 7}},
			},
		},
		{
			ID:          "ut08",
			Name:        "Lamp walking ones 100",
			Description: "walking-ones: floodlamp power level 100 (bright lights)",
			Tags:        []string{"lamp", "walking-ones"},
			Steps: []loader.Step{
				{Action: "set_lamp", Params: params{"level": 7}, Expect: expect{"prev": 0}},
				{Action: "set_lamp", Params: params{"level": 4}, Expect: expect{"prev": 7}},
				{Action: "read_lamp", Expect: expect{"level": 4}},
			},
		},
		{
			ID:          "ut09",
			Name:        "Lamp walking ones 010",
			Description: "walking-ones: floodlamp power level 010 (mood lighting)",
			Tags:        []string{"lamp", "walking-ones"},
			Steps: []loader.Step{
				{Action: "set_lamp", Params: params{"level": 4}, Expect: expect{"prev": 0}},
				{Action: "set_lamp", Params: params{"level": 2}, Expect: expect{"prev": 4}},
				{Action: "read_lamp", Expect: expect{"level": 2}},
			},
		},
		{
			ID:          "ut10",
			Name:        "Lamp walking ones 001",
			Description: "walking-ones: floodlamp power level 001 (very dim lights)",
			Tags:        []string{"lamp", "walking-ones"},
			Steps: []loader.Step{
				{Action: "set_lamp", Params: params{"level": 2}, Expect: expect{"prev": 0}},
				{Action: "set_lamp", Params: params{"level": 1}, Expect: expect{"prev": 2}},
				{Action: "read_lamp", Expect: expect{"level": 1}},
			},
		},
		{
			ID:          "ut11",
			Name:        "Lamp lights out",
			Description: "verifying that the floodlamp can be powered back down to lights out",
			Tags:        []string{"lamp", "walking-ones"},
			Steps: []loader.Step{
				{Action: "set_lamp", Params: params{"level": 1}, Expect: expect{"prev": 0}},
				{Action: "set_lamp", Params: params{"level": 0}, Expect: expect{"prev": 1}},
				{Action: "read_lamp", Expect: expect{"level": 0}},
				{Action: "read_word", Expect: expect{"word": "0x0000"}},
			},
		},
		{
			ID:          "ut12",
			Name:        "Lamp out-of-range rejection",
			Description: "verifying that an out-of-range power level is rejected and the register untouched",
			Tags:        []string{"lamp", "range"},
			Steps: []loader.Step{
				{Action: "set_lamp", Params: params{"level": 4},
					Expect: expect{"prev": 0, "rejected": false}},
				{Action: "set_lamp", Params: params{"level": 8},
					Expect: expect{"rejected": true, "error": "present"}},
				{Action: "read_lamp", Expect: expect{"level": 4}},
			},
		},
		{
			ID:          "ut13",
			Name:        "Field isolation",
			Description: "verifying that accessors on the same register do not disturb each other",
			Tags:        []string{"isolation"},
			Steps: []loader.Step{
				{Action: "set_solenoid", Params: params{"solenoid": 2, "state": "ON"},
					Expect: expect{"prev": "OFF"}},
				{Action: "read_solenoid", Params: params{"solenoid": 3},
					Expect: expect{"state": "OFF"}},
				{Action: "set_lamp", Params: params{"level": 7},
					Expect: expect{"prev": 0}},
				{Action: "read_solenoid", Params: params{"solenoid": 2},
					Expect: expect{"state": "ON"}},
				{Action: "read_solenoid", Params: params{"solenoid": 3},
					Expect: expect{"state": "OFF"}},
				{Action: "read_word", Expect: expect{"word": "0x001D"}},
			},
		},
	}
}

type params = map[string]interface{}

type expect = map[string]interface{}
