// Package board models the vacuum-chamber control board: GPIO
// register #23 and the typed accessors that drive the hardware wired
// to it.
//
// # Register Map
//
// GPIO register #23 is a 16-bit register. Its layout, LSB first:
//
//	 15                    5   4   3   2     1        0
//	+----------------------+-----------+--------+--------+
//	|       reserved       | lamp_pwr  | sol #3 | sol #2 |
//	+----------------------+-----------+--------+--------+
//
//	bit 0      energize_vac_solenoid2 (1 = coil energized)
//	bit 1      energize_vac_solenoid3 (1 = coil energized)
//	bits 2..4  lamp_pwr, floodlamp power level 0 (off) to 7 (full)
//	bits 5..15 reserved
//
// All field access goes through explicit mask/shift arithmetic on
// regmap.Field descriptors; nothing here relies on compiler-laid-out
// bit-fields.
//
// # Accessors
//
// Each accessor binds to one field of one register at construction
// and forces that field to its safe default (solenoids de-energized,
// lamp off). Setters return the value they replaced:
//
//	reg := board.NewGPIO23()
//	sol2 := board.NewSolenoid2(reg)
//	prev := sol2.Set(board.VacuumOn) // prev == board.VacuumOff
//	state := sol2.Read()             // state == board.VacuumOn
//
// The solenoid input type is closed: the only values are VacuumOff
// and VacuumOn, so a solenoid write cannot carry an illegal state and
// Set has no error path. The lamp level is an open numeric input and
// IS validated: levels above 7 are rejected with *regmap.RangeError
// and the register is left untouched.
//
// ControlBoard bundles the register and all three accessors, giving
// them a shared trace session:
//
//	brd := board.NewControlBoard(board.Config{TraceLogger: tl})
//	if _, err := brd.Lamp().Set(board.BrightLights); err != nil {
//	    ...
//	}
//
// # Concurrency
//
// Like package regmap, board performs no locking: every setter is a
// non-atomic read-modify-write of the shared register word. Keep a
// board on a single goroutine.
package board
