package board

import "github.com/regkit-io/regkit-go/pkg/regmap"

// RegisterName identifies GPIO register #23 in traces and errors.
const RegisterName = "gpio23"

// Hardware unit identifiers on the control board. They name accessor
// instances in traces and range errors.
const (
	// FloodlampID is the chamber floodlamp driven by lamp_pwr.
	FloodlampID = 42

	// UnitSolenoid2 names the accessor for vacuum solenoid #2.
	UnitSolenoid2 = "vacuum solenoid #2"

	// UnitSolenoid3 names the accessor for vacuum solenoid #3.
	UnitSolenoid3 = "vacuum solenoid #3"

	// UnitFloodlamp names the floodlamp accessor.
	UnitFloodlamp = "floodlamp #42"
)

// Field descriptors for GPIO register #23. See the package
// documentation for the full bit diagram. Bits 5..15 are reserved.
var (
	// FieldSolenoid2 is the energize bit for vacuum solenoid #2.
	FieldSolenoid2 = regmap.Field{Name: "energize_vac_solenoid2", Offset: 0, Width: 1}

	// FieldSolenoid3 is the energize bit for vacuum solenoid #3.
	FieldSolenoid3 = regmap.Field{Name: "energize_vac_solenoid3", Offset: 1, Width: 1}

	// FieldLampPwr is the floodlamp power level, 0 (off) to 7 (full).
	FieldLampPwr = regmap.Field{Name: "lamp_pwr", Offset: 2, Width: 3}
)

// Fields lists the register's defined fields in bit order, low to
// high. Useful for layout dumps.
func Fields() []regmap.Field {
	return []regmap.Field{FieldSolenoid2, FieldSolenoid3, FieldLampPwr}
}

// NewGPIO23 returns a fresh in-memory stand-in for GPIO register #23,
// holding 0x0000.
func NewGPIO23() *regmap.Register {
	return regmap.NewRegister(RegisterName)
}
