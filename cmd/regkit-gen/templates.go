package main

import (
	"fmt"
	"strings"
	"text/template"
)

// funcMap provides helper functions available to all templates.
var funcMap = template.FuncMap{
	"concat":          func(a, b string) string { return a + b },
	"firstLower":      firstLower,
	"goTitleCase":     goTitleCase,
	"enumValueSuffix": enumValueSuffix,
	"quote":           func(s string) string { return fmt.Sprintf("%q", s) },
	"hexWord":         func(v uint16) string { return fmt.Sprintf("0x%04X", v) },
	"recv":            func(name string) string { return strings.ToLower(name[:1]) },
}

// templates holds all parsed code generation templates.
var templates = template.Must(template.New("").Funcs(funcMap).Parse(
	headerTmpl +
		registerTmpl +
		enumTmpl +
		fieldsTmpl +
		accessorTmpl,
))

// renderTemplate executes a named template into the builder.
func renderTemplate(b *strings.Builder, name string, data any) {
	if err := templates.ExecuteTemplate(b, name, data); err != nil {
		panic(fmt.Sprintf("template %s: %v", name, err))
	}
}

// --- Template data types ---

// layoutData holds pre-computed data for the register templates.
type layoutData struct {
	Package     string
	Register    string
	GoName      string
	Layout      string
	Description string
}

// fieldData holds pre-computed data for one field's templates.
type fieldData struct {
	Name        string
	Accessor    string
	Offset      uint
	Width       uint
	Unit        string
	Default     uint16
	Description string
	Enum        *RawEnumDef
	Register    string
}

// --- Template definitions ---

const headerTmpl = `{{define "header"}}// Code generated by regkit-gen. DO NOT EDIT.

{{if .Description}}// Package {{.Package}} provides typed accessors for {{firstLower .Description}}.
{{else}}// Package {{.Package}} provides typed accessors for the {{.Register}} register.
{{end}}package {{.Package}}

import (
	"github.com/regkit-io/regkit-go/pkg/regmap"
)

{{end}}`

const registerTmpl = `{{define "register"}}// RegisterName identifies the register in traces and errors.
const RegisterName = {{quote .Register}}

{{if .Layout}}// LayoutRevision is the layout revision this package was generated from.
const LayoutRevision = {{quote .Layout}}

{{end}}// New{{.GoName}} returns a fresh in-memory register holding 0x0000.
func New{{.GoName}}() *regmap.Register {
	return regmap.NewRegister(RegisterName)
}

{{end}}`

const enumTmpl = `{{define "enum"}}
{{- $typeName := .Enum.Name}}
// {{$typeName}} enumerates the values of the {{.Name}} field.
type {{$typeName}} uint16

const (
{{- range .Enum.Values}}
{{- $constName := concat $typeName (enumValueSuffix .Name)}}
{{- if .Description}}
// {{$constName}} {{firstLower .Description}}.
{{- end}}
{{$constName}} {{$typeName}} = {{.Value}}
{{- end}}
)

// String returns the {{firstLower $typeName}} name.
func (v {{$typeName}}) String() string {
switch v {
{{- range .Enum.Values}}
case {{concat $typeName (enumValueSuffix .Name)}}:
return {{quote .Name}}
{{- end}}
default:
return "UNKNOWN"
}
}

{{end}}`

const fieldsTmpl = `{{define "fields"}}
{{- if .Description}}
// Field{{.Accessor}} is {{firstLower .Description}}.
{{- else}}
// Field{{.Accessor}} is the {{.Name}} field.
{{- end}}
var Field{{.Accessor}} = regmap.Field{Name: {{quote .Name}}, Offset: {{.Offset}}, Width: {{.Width}}}

{{end}}`

const accessorTmpl = `{{define "accessor"}}
{{- $recv := recv .Accessor}}
// {{.Accessor}} accesses the {{.Name}} field.
type {{.Accessor}} struct {
reg *regmap.Register
}

// New{{.Accessor}} binds an accessor to the {{.Name}} field and
// forces it to {{.Default}}.
func New{{.Accessor}}(reg *regmap.Register) *{{.Accessor}} {
	reg.Store(Field{{.Accessor}}.Insert(reg.Load(), {{.Default}}))
	return &{{.Accessor}}{reg: reg}
}

// Set writes a new value and returns the value it replaced. Values
// above the field maximum are rejected with a *regmap.RangeError and
// the register is left unmodified.
func ({{$recv}} *{{.Accessor}}) Set(value uint16) (uint16, error) {
	if value > Field{{.Accessor}}.Max() {
		return 0, &regmap.RangeError{
			Register: {{$recv}}.reg.Name(),
			Field: Field{{.Accessor}}.Name,
			{{- if .Unit}}
			Unit: {{quote .Unit}},
			{{- end}}
			Value: value,
			Min: 0,
			Max: Field{{.Accessor}}.Max(),
		}
	}

	word := {{$recv}}.reg.Load()
	prev := Field{{.Accessor}}.Extract(word)
	{{$recv}}.reg.Store(Field{{.Accessor}}.Insert(word, value))
	return prev, nil
}

// Read returns the current value of the field.
func ({{$recv}} *{{.Accessor}}) Read() uint16 {
	return Field{{.Accessor}}.Extract({{$recv}}.reg.Load())
}

{{end}}`
