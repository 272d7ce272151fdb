package engine

import (
	"errors"
	"fmt"
	"strings"

	"github.com/regkit-io/regkit-go/internal/selftest/loader"
	"github.com/regkit-io/regkit-go/pkg/board"
	"github.com/regkit-io/regkit-go/pkg/regmap"
)

// Built-in actions operate the rig's control board. Outputs:
//
//	set_solenoid  {solenoid, state}  -> prev
//	read_solenoid {solenoid}         -> state
//	set_lamp      {level}            -> prev, rejected     (accepted write)
//	                                 -> rejected, error    (range rejection)
//	read_lamp     {}                 -> level
//	read_word     {}                 -> word (hex string)
func registerBuiltinActions(e *Engine) {
	e.RegisterHandler("set_solenoid", actionSetSolenoid)
	e.RegisterHandler("read_solenoid", actionReadSolenoid)
	e.RegisterHandler("set_lamp", actionSetLamp)
	e.RegisterHandler("read_lamp", actionReadLamp)
	e.RegisterHandler("read_word", actionReadWord)
}

func actionSetSolenoid(state *State, step *loader.Step) (map[string]interface{}, error) {
	sol, err := solenoidParam(state, step)
	if err != nil {
		return nil, err
	}

	v, err := vacuumParam(step, "state")
	if err != nil {
		return nil, err
	}

	prev := sol.Set(v)
	return map[string]interface{}{
		"prev": prev.String(),
	}, nil
}

func actionReadSolenoid(state *State, step *loader.Step) (map[string]interface{}, error) {
	sol, err := solenoidParam(state, step)
	if err != nil {
		return nil, err
	}

	return map[string]interface{}{
		"state": sol.Read().String(),
	}, nil
}

func actionSetLamp(state *State, step *loader.Step) (map[string]interface{}, error) {
	level, err := intParam(step, "level")
	if err != nil {
		return nil, err
	}
	if level < 0 || level > 255 {
		return nil, fmt.Errorf("lamp level %d does not fit a byte", level)
	}

	prev, err := state.Rig.Board.Lamp().Set(uint8(level))
	if err != nil {
		var re *regmap.RangeError
		if !errors.As(err, &re) {
			return nil, err
		}
		// Range rejections are an outcome scenarios assert on, not a
		// harness failure.
		return map[string]interface{}{
			"rejected": true,
			"error":    re.Error(),
		}, nil
	}

	return map[string]interface{}{
		"prev":     int(prev),
		"rejected": false,
	}, nil
}

func actionReadLamp(state *State, step *loader.Step) (map[string]interface{}, error) {
	return map[string]interface{}{
		"level": int(state.Rig.Board.Lamp().Read()),
	}, nil
}

func actionReadWord(state *State, step *loader.Step) (map[string]interface{}, error) {
	return map[string]interface{}{
		"word": fmt.Sprintf("0x%04X", state.Rig.Board.Register().Load()),
	}, nil
}

// solenoidParam selects the accessor named by the "solenoid" param.
func solenoidParam(state *State, step *loader.Step) (*board.Solenoid, error) {
	n, err := intParam(step, "solenoid")
	if err != nil {
		return nil, err
	}

	switch n {
	case 2:
		return state.Rig.Board.Solenoid2(), nil
	case 3:
		return state.Rig.Board.Solenoid3(), nil
	default:
		return nil, fmt.Errorf("no solenoid #%d on this board", n)
	}
}

// vacuumParam parses an ON/OFF state param.
func vacuumParam(step *loader.Step, key string) (board.Vacuum, error) {
	raw, ok := step.Params[key]
	if !ok {
		return board.VacuumOff, fmt.Errorf("action %s: missing param %q", step.Action, key)
	}
	s, ok := raw.(string)
	if !ok {
		return board.VacuumOff, fmt.Errorf("action %s: param %q must be a string", step.Action, key)
	}

	switch strings.ToUpper(s) {
	case "ON":
		return board.VacuumOn, nil
	case "OFF":
		return board.VacuumOff, nil
	default:
		return board.VacuumOff, fmt.Errorf("action %s: param %q must be ON or OFF, got %q", step.Action, key, s)
	}
}

// intParam extracts an integer param, accepting the numeric types
// yaml.v3 produces.
func intParam(step *loader.Step, key string) (int, error) {
	raw, ok := step.Params[key]
	if !ok {
		return 0, fmt.Errorf("action %s: missing param %q", step.Action, key)
	}

	switch v := raw.(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case uint64:
		return int(v), nil
	case float64:
		return int(v), nil
	default:
		return 0, fmt.Errorf("action %s: param %q must be an integer, got %T", step.Action, key, raw)
	}
}
