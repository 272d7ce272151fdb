package main

import (
	"strings"
	"unicode"
)

// GenerateLayout renders a complete typed accessor package for the
// register layout. The output is raw Go source; callers run it
// through goimports before writing.
func GenerateLayout(def *RawLayoutDef, pkgName string) (string, error) {
	var b strings.Builder

	renderTemplate(&b, "header", layoutData{
		Package:     pkgName,
		Register:    def.Register,
		GoName:      goTitleCase(def.Register),
		Layout:      def.Layout,
		Description: def.Description,
	})

	renderTemplate(&b, "register", layoutData{
		Register: def.Register,
		GoName:   goTitleCase(def.Register),
		Layout:   def.Layout,
	})

	// Fields may share an enum type; render each type once.
	seenEnums := make(map[string]bool)
	for _, f := range def.Fields {
		if f.Enum == nil || seenEnums[f.Enum.Name] {
			continue
		}
		seenEnums[f.Enum.Name] = true
		renderTemplate(&b, "enum", fieldForTemplate(def, f))
	}

	for _, f := range def.Fields {
		renderTemplate(&b, "fields", fieldForTemplate(def, f))
	}

	for _, f := range def.Fields {
		renderTemplate(&b, "accessor", fieldForTemplate(def, f))
	}

	return b.String(), nil
}

func fieldForTemplate(def *RawLayoutDef, f RawFieldDef) fieldData {
	accessor := f.Accessor
	if accessor == "" {
		accessor = goTitleCase(f.Name)
	}
	return fieldData{
		Name:        f.Name,
		Accessor:    accessor,
		Offset:      f.Offset,
		Width:       f.Width,
		Unit:        f.Unit,
		Default:     f.Default,
		Description: f.Description,
		Enum:        f.Enum,
		Register:    def.Register,
	}
}

// --- Naming helpers ---

// goTitleCase converts a field or register name to an exported Go
// identifier: "lamp_pwr" -> "LampPwr", "gpio23" -> "Gpio23".
func goTitleCase(name string) string {
	var b strings.Builder
	upper := true
	for _, r := range name {
		switch {
		case r == '_' || r == '-' || r == ' ':
			upper = true
		case upper:
			b.WriteRune(unicode.ToUpper(r))
			upper = false
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// enumValueSuffix converts an enum value name to a Go constant
// suffix: "SHUTTING_DOWN" -> "ShuttingDown", "OFF" -> "Off".
func enumValueSuffix(name string) string {
	parts := strings.Split(name, "_")
	var b strings.Builder
	for _, p := range parts {
		if p == "" {
			continue
		}
		b.WriteString(strings.ToUpper(p[:1]))
		b.WriteString(strings.ToLower(p[1:]))
	}
	return b.String()
}

// firstLower lowercases the first rune of a sentence or identifier.
func firstLower(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToLower(r[0])
	return string(r)
}
