package board

import (
	"github.com/google/uuid"
	"github.com/regkit-io/regkit-go/pkg/regmap"
	"github.com/regkit-io/regkit-go/pkg/tracelog"
)

// Config configures a ControlBoard.
type Config struct {
	// TraceLogger receives every register operation, construction
	// defaults included. Nil disables tracing.
	TraceLogger tracelog.Logger

	// SessionID overrides the generated session UUID. Leave empty to
	// get a fresh one.
	SessionID string
}

// ControlBoard owns GPIO register #23 and the typed accessors bound
// to it. The accessors share the one register; their fields do not
// overlap, so operating one never disturbs the others.
type ControlBoard struct {
	register  *regmap.Register
	solenoid2 *Solenoid
	solenoid3 *Solenoid
	lamp      *Lamp
	trace     *tracer
}

// NewControlBoard constructs the board register and binds all three
// accessors. Construction forces every field to its safe default,
// both solenoids de-energized and the lamp off, so the register reads
// 0x0000 afterwards.
func NewControlBoard(cfg Config) *ControlBoard {
	session := cfg.SessionID
	if session == "" {
		session = uuid.New().String()
	}

	b := &ControlBoard{
		register: NewGPIO23(),
		trace:    newTracer(session, cfg.TraceLogger),
	}
	b.solenoid2 = newSolenoid(b.register, FieldSolenoid2, UnitSolenoid2, b.trace)
	b.solenoid3 = newSolenoid(b.register, FieldSolenoid3, UnitSolenoid3, b.trace)
	b.lamp = newLamp(b.register, FieldLampPwr, UnitFloodlamp, b.trace)
	return b
}

// Register returns the board's register cell.
func (b *ControlBoard) Register() *regmap.Register {
	return b.register
}

// Solenoid2 returns the accessor for vacuum solenoid #2.
func (b *ControlBoard) Solenoid2() *Solenoid {
	return b.solenoid2
}

// Solenoid3 returns the accessor for vacuum solenoid #3.
func (b *ControlBoard) Solenoid3() *Solenoid {
	return b.solenoid3
}

// Lamp returns the floodlamp accessor.
func (b *ControlBoard) Lamp() *Lamp {
	return b.lamp
}

// SessionID returns the board's trace session identifier.
func (b *ControlBoard) SessionID() string {
	return b.trace.session
}

// SetTraceLogger replaces the trace logger at runtime. Nil disables
// tracing. Events already emitted are unaffected.
func (b *ControlBoard) SetTraceLogger(logger tracelog.Logger) {
	b.trace.setLogger(logger)
}
