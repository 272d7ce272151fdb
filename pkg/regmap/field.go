package regmap

import "fmt"

// Field describes one contiguous run of bits within a 16-bit register
// word. Offset is the zero-based index of the field's least
// significant bit; Width is the number of bits.
//
// A Field is a plain descriptor and carries no register state. The
// same descriptor can be applied to any number of words.
type Field struct {
	Name   string
	Offset uint
	Width  uint
}

// Validate reports whether the descriptor names a legal bit range:
// width between 1 and 16 bits, and the whole field inside the 16-bit
// word.
func (f Field) Validate() error {
	if f.Width < 1 || f.Width > 16 {
		return fmt.Errorf("%w: field %q has width %d", ErrFieldWidth, f.Name, f.Width)
	}
	if f.Offset > 15 || f.Offset+f.Width > 16 {
		return fmt.Errorf("%w: field %q spans bits %d..%d", ErrFieldOverflow, f.Name, f.Offset+f.Width-1, f.Offset)
	}
	return nil
}

// Max returns the largest value the field can hold, (1 << Width) - 1.
func (f Field) Max() uint16 {
	return 1<<f.Width - 1
}

// Mask returns the field's in-place mask: Max shifted up to the
// field's position in the word.
func (f Field) Mask() uint16 {
	return f.Max() << f.Offset
}

// Extract returns the field's value from word, shifted down to bit 0.
// Extraction is total: the result is always in [0, Max] and there is
// no failure path.
func (f Field) Extract(word uint16) uint16 {
	return (word & f.Mask()) >> f.Offset
}

// Insert returns word with the field replaced by value. Bits outside
// the field are preserved unchanged. The value is truncated to the
// field width; callers that must reject out-of-range values check
// against Max before inserting.
func (f Field) Insert(word, value uint16) uint16 {
	return (word &^ f.Mask()) | (value&f.Max())<<f.Offset
}

// String renders the field in bit-range notation: lamp_pwr[4:2] for a
// 3-bit field at offset 2, energize_vac_solenoid2[0] for one bit.
func (f Field) String() string {
	if f.Width == 1 {
		return fmt.Sprintf("%s[%d]", f.Name, f.Offset)
	}
	return fmt.Sprintf("%s[%d:%d]", f.Name, f.Offset+f.Width-1, f.Offset)
}
