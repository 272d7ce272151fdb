package regmap

import "fmt"

// Register is a single 16-bit storage cell standing in for a
// memory-mapped peripheral register. The zero value is an unnamed
// register holding 0x0000.
//
// Register does not synchronize access. See the package documentation
// for the concurrency caveat.
type Register struct {
	name string
	word uint16
}

// NewRegister returns a register with the given diagnostic name,
// holding 0x0000. The name appears in trace output and errors only;
// it has no effect on register behavior.
func NewRegister(name string) *Register {
	return &Register{name: name}
}

// Name returns the register's diagnostic name.
func (r *Register) Name() string {
	return r.name
}

// Load returns the current 16-bit word.
func (r *Register) Load() uint16 {
	return r.word
}

// Store replaces the whole 16-bit word.
func (r *Register) Store(word uint16) {
	r.word = word
}

// String renders the register as name=0xXXXX, or just the hex word
// for an unnamed register.
func (r *Register) String() string {
	if r.name == "" {
		return fmt.Sprintf("0x%04X", r.word)
	}
	return fmt.Sprintf("%s=0x%04X", r.name, r.word)
}
