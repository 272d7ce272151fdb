package board

// Vacuum is the commanded state of a vacuum solenoid coil. The type
// is closed: the only values are VacuumOff and VacuumOn, so a
// solenoid write can never carry an out-of-range state and needs no
// runtime validation.
type Vacuum uint8

const (
	// VacuumOff de-energizes the coil; the spring-return valve closes.
	VacuumOff Vacuum = 0
	// VacuumOn energizes the coil; the valve opens and pulls vacuum.
	VacuumOn Vacuum = 1
)

// String returns the state name.
func (v Vacuum) String() string {
	switch v {
	case VacuumOff:
		return "OFF"
	case VacuumOn:
		return "ON"
	default:
		return "UNKNOWN"
	}
}

// vacuumFromBit maps a solenoid bit to its Vacuum state.
func vacuumFromBit(bit uint16) Vacuum {
	if bit == 0 {
		return VacuumOff
	}
	return VacuumOn
}
