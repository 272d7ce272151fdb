package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/regkit-io/regkit-go/pkg/regmap"
)

// RawLayoutDef represents a register layout loaded from YAML.
type RawLayoutDef struct {
	Register    string        `yaml:"register"`
	Layout      string        `yaml:"layout"`
	Description string        `yaml:"description"`
	Fields      []RawFieldDef `yaml:"fields"`
}

// RawFieldDef represents one bit field within the register.
type RawFieldDef struct {
	Name        string      `yaml:"name"`
	Offset      uint        `yaml:"offset"`
	Width       uint        `yaml:"width"`
	Accessor    string      `yaml:"accessor"` // Optional: Go name for the accessor type
	Unit        string      `yaml:"unit"`     // Optional: unit identifier for range errors
	Default     uint16      `yaml:"default"`
	Enum        *RawEnumDef `yaml:"enum"` // Optional: named values for the field
	Description string      `yaml:"description"`
}

// RawEnumDef represents named values for a field.
type RawEnumDef struct {
	Name   string         `yaml:"name"`
	Values []RawEnumValue `yaml:"values"`
}

// RawEnumValue represents a single named value.
type RawEnumValue struct {
	Name        string `yaml:"name"`
	Value       uint16 `yaml:"value"`
	Description string `yaml:"description"`
}

// ParseLayoutDef parses a register layout from YAML bytes and
// validates it.
func ParseLayoutDef(data []byte) (*RawLayoutDef, error) {
	var def RawLayoutDef
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("parsing layout: %w", err)
	}
	if err := validateLayout(&def); err != nil {
		return nil, err
	}
	return &def, nil
}

// LoadLayoutDef loads and parses a register layout from a file.
func LoadLayoutDef(path string) (*RawLayoutDef, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return ParseLayoutDef(data)
}

func validateLayout(def *RawLayoutDef) error {
	if def.Register == "" {
		return fmt.Errorf("layout missing register name")
	}
	if len(def.Fields) == 0 {
		return fmt.Errorf("layout %s has no fields", def.Register)
	}

	var occupied uint16
	for i, f := range def.Fields {
		if f.Name == "" {
			return fmt.Errorf("field %d has no name", i)
		}

		field := regmap.Field{Name: f.Name, Offset: f.Offset, Width: f.Width}
		if err := field.Validate(); err != nil {
			return fmt.Errorf("field %s: %w", f.Name, err)
		}

		mask := field.Mask()
		if occupied&mask != 0 {
			return fmt.Errorf("field %s overlaps a previous field", f.Name)
		}
		occupied |= mask

		if f.Default > field.Max() {
			return fmt.Errorf("field %s default %d exceeds max %d", f.Name, f.Default, field.Max())
		}

		if f.Enum != nil {
			if f.Enum.Name == "" {
				return fmt.Errorf("field %s enum has no name", f.Name)
			}
			for _, v := range f.Enum.Values {
				if v.Value > field.Max() {
					return fmt.Errorf("field %s enum value %s (%d) exceeds max %d",
						f.Name, v.Name, v.Value, field.Max())
				}
			}
		}
	}

	return nil
}
