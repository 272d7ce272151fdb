// Package inspect renders register words as human-readable bit
// diagrams and field tables. It is used by the console's dump command
// and by the demo program.
package inspect

import (
	"fmt"
	"strings"

	"github.com/regkit-io/regkit-go/pkg/regmap"
)

// Formatter formats register inspection output.
type Formatter struct {
	// ShowReserved includes a row for bits not covered by any field.
	ShowReserved bool

	// ShowBinary appends the field value in binary to each table row.
	ShowBinary bool

	// IndentWidth is the number of spaces per indent level.
	IndentWidth int

	// Names maps a field name to a function rendering the meaning of
	// a field value, e.g. 1 -> "ON". Fields without an entry show no
	// meaning column.
	Names map[string]func(uint16) string
}

// NewFormatter creates a new Formatter with default settings.
func NewFormatter() *Formatter {
	return &Formatter{
		ShowReserved: true,
		ShowBinary:   true,
		IndentWidth:  2,
		Names:        make(map[string]func(uint16) string),
	}
}

// Indent returns the content with indentation.
func (f *Formatter) Indent(depth int, content string) string {
	width := f.IndentWidth
	if width == 0 {
		width = 2
	}
	return strings.Repeat(" ", depth*width) + content
}

// FormatRegister renders the register's current word against the
// given field layout. See FormatWord.
func (f *Formatter) FormatRegister(reg *regmap.Register, fields []regmap.Field) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", reg)
	b.WriteString(f.FormatWord(reg.Load(), fields))
	return b.String()
}

// FormatWord renders a 16-bit word as a bit diagram followed by one
// table row per field:
//
//	bit  15 14 13 12 11 10  9  8  7  6  5  4  3  2  1  0
//	      0  0  0  0  0  0  0  0  0  0  0  1  1  1  0  1
//
//	  energize_vac_solenoid2[0]    = 1  (0b1)    ON
//	  energize_vac_solenoid3[1]    = 0  (0b0)    OFF
//	  lamp_pwr[4:2]                = 7  (0b111)
//	  reserved[15:5]               = 0
func (f *Formatter) FormatWord(word uint16, fields []regmap.Field) string {
	var b strings.Builder

	b.WriteString("bit ")
	for bit := 15; bit >= 0; bit-- {
		fmt.Fprintf(&b, " %2d", bit)
	}
	b.WriteString("\n    ")
	for bit := 15; bit >= 0; bit-- {
		fmt.Fprintf(&b, "  %d", word>>uint(bit)&1)
	}
	b.WriteString("\n\n")

	// Field table rows, widest name first for alignment.
	nameWidth := 0
	for _, fd := range fields {
		if w := len(fd.String()); w > nameWidth {
			nameWidth = w
		}
	}
	reserved := f.reservedField(fields)
	if f.ShowReserved && reserved.Width > 0 {
		if w := len(reserved.String()); w > nameWidth {
			nameWidth = w
		}
	}

	for _, fd := range fields {
		b.WriteString(f.fieldRow(word, fd, nameWidth))
	}
	if f.ShowReserved && reserved.Width > 0 {
		b.WriteString(f.Indent(1, fmt.Sprintf("%-*s = %d\n", nameWidth, reserved.String(), reserved.Extract(word))))
	}

	return b.String()
}

// FormatField renders a single field table row without alignment
// padding.
func (f *Formatter) FormatField(word uint16, fd regmap.Field) string {
	return f.fieldRow(word, fd, len(fd.String()))
}

func (f *Formatter) fieldRow(word uint16, fd regmap.Field, nameWidth int) string {
	value := fd.Extract(word)
	row := fmt.Sprintf("%-*s = %d", nameWidth, fd.String(), value)
	if f.ShowBinary {
		row += fmt.Sprintf("  (0b%0*b)", fd.Width, value)
	}
	if name, ok := f.Names[fd.Name]; ok && name != nil {
		row += "  " + name(value)
	}
	return f.Indent(1, row+"\n")
}

// reservedField returns a synthetic descriptor covering every bit not
// claimed by any field. Only a single contiguous run above the
// defined fields is reported; gaps between fields are rare in
// practice and would be visible in the bit diagram anyway.
func (f *Formatter) reservedField(fields []regmap.Field) regmap.Field {
	var used uint16
	for _, fd := range fields {
		used |= fd.Mask()
	}
	if used == 0xFFFF {
		return regmap.Field{}
	}
	low := uint(0)
	for low < 16 && used>>low&1 == 1 {
		low++
	}
	return regmap.Field{Name: "reserved", Offset: low, Width: 16 - low}
}
