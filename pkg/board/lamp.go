package board

import (
	"github.com/regkit-io/regkit-go/pkg/regmap"
	"github.com/regkit-io/regkit-go/pkg/tracelog"
)

// Floodlamp power levels for the 3-bit lamp_pwr field. BrightLights,
// MoodLighting and VeryDimLights each light a single bit of the
// field, which makes them handy for walking-ones checks.
const (
	// LightsOut turns the floodlamp off.
	LightsOut uint8 = 0
	// VeryDimLights is the lowest visible level.
	VeryDimLights uint8 = 1
	// MoodLighting is a low-glare working level.
	MoodLighting uint8 = 2
	// BrightLights is the normal working level.
	BrightLights uint8 = 4
	// FullIllumination is the highest level the field can hold.
	FullIllumination uint8 = 7
)

// Lamp drives the floodlamp power field. Unlike the solenoids, the
// lamp level is an open numeric input, so writes are range-checked.
type Lamp struct {
	reg   *regmap.Register
	field regmap.Field
	unit  string
	trace *tracer
}

// NewLamp binds an accessor to the lamp_pwr field (bits 2..4) and
// forces the level to 0, turning the floodlamp off.
func NewLamp(reg *regmap.Register) *Lamp {
	return newLamp(reg, FieldLampPwr, UnitFloodlamp, newTracer("", nil))
}

func newLamp(reg *regmap.Register, field regmap.Field, unit string, tr *tracer) *Lamp {
	l := &Lamp{reg: reg, field: field, unit: unit, trace: tr}
	reg.Store(field.Insert(reg.Load(), uint16(LightsOut)))
	tr.emit(tracelog.OpInit, reg, field, unit, 0, uint16(LightsOut), nil)
	return l
}

// Set writes a new power level and returns the level it replaced.
// Levels above FullIllumination are rejected with a
// *regmap.RangeError naming the rejected value, the valid range and
// the lamp; the register is left unmodified.
func (l *Lamp) Set(level uint8) (uint8, error) {
	if uint16(level) > l.field.Max() {
		err := &regmap.RangeError{
			Register: l.reg.Name(),
			Field:    l.field.Name,
			Unit:     l.unit,
			Value:    uint16(level),
			Min:      0,
			Max:      l.field.Max(),
		}
		l.trace.emit(tracelog.OpReject, l.reg, l.field, l.unit, 0, uint16(level), err)
		return 0, err
	}

	word := l.reg.Load()
	prev := uint8(l.field.Extract(word))
	l.reg.Store(l.field.Insert(word, uint16(level)))
	l.trace.emit(tracelog.OpWrite, l.reg, l.field, l.unit, uint16(prev), uint16(level), nil)
	return prev, nil
}

// Read returns the current power level. Extraction of the 3-bit
// field is total, so Read has no error path.
func (l *Lamp) Read() uint8 {
	level := uint8(l.field.Extract(l.reg.Load()))
	l.trace.emit(tracelog.OpRead, l.reg, l.field, l.unit, 0, uint16(level), nil)
	return level
}

// Unit returns the accessor's unit identifier, "floodlamp #42".
func (l *Lamp) Unit() string {
	return l.unit
}
