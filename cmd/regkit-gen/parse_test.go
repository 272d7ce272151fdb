package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const gpio23Layout = `
register: gpio23
layout: "1.0"
description: control board GPIO register 23
fields:
  - name: energize_vac_solenoid2
    offset: 0
    width: 1
    accessor: Solenoid2
    unit: "vacuum solenoid #2"
    enum:
      name: Vacuum
      values:
        - name: "OFF"
          value: 0
        - name: "ON"
          value: 1
  - name: lamp_pwr
    offset: 2
    width: 3
    accessor: Lamp
    unit: "floodlamp #42"
    description: the floodlamp power level
`

func TestParseLayoutDef(t *testing.T) {
	def, err := ParseLayoutDef([]byte(gpio23Layout))
	if err != nil {
		t.Fatalf("ParseLayoutDef failed: %v", err)
	}

	if def.Register != "gpio23" {
		t.Errorf("expected register gpio23, got %q", def.Register)
	}
	if def.Layout != "1.0" {
		t.Errorf("expected layout 1.0, got %q", def.Layout)
	}
	if len(def.Fields) != 2 {
		t.Fatalf("expected 2 fields, got %d", len(def.Fields))
	}

	lamp := def.Fields[1]
	if lamp.Name != "lamp_pwr" || lamp.Offset != 2 || lamp.Width != 3 {
		t.Errorf("unexpected lamp field: %+v", lamp)
	}
	if lamp.Unit != "floodlamp #42" {
		t.Errorf("unexpected lamp unit: %q", lamp.Unit)
	}

	sol := def.Fields[0]
	if sol.Enum == nil || sol.Enum.Name != "Vacuum" {
		t.Fatalf("expected Vacuum enum, got %+v", sol.Enum)
	}
	if len(sol.Enum.Values) != 2 || sol.Enum.Values[1].Name != "ON" || sol.Enum.Values[1].Value != 1 {
		t.Errorf("unexpected enum values: %+v", sol.Enum.Values)
	}
}

func TestParseLayoutMissingRegister(t *testing.T) {
	_, err := ParseLayoutDef([]byte("fields:\n  - name: f\n    offset: 0\n    width: 1\n"))
	if err == nil {
		t.Fatal("expected error for missing register name")
	}
	if !strings.Contains(err.Error(), "missing register name") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestParseLayoutNoFields(t *testing.T) {
	_, err := ParseLayoutDef([]byte("register: gpio23\n"))
	if err == nil {
		t.Fatal("expected error for layout without fields")
	}
}

func TestParseLayoutRejectsOverlap(t *testing.T) {
	layout := `
register: gpio23
fields:
  - name: a
    offset: 0
    width: 3
  - name: b
    offset: 2
    width: 1
`
	_, err := ParseLayoutDef([]byte(layout))
	if err == nil {
		t.Fatal("expected error for overlapping fields")
	}
	if !strings.Contains(err.Error(), "overlaps") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestParseLayoutRejectsWideField(t *testing.T) {
	layout := `
register: gpio23
fields:
  - name: wide
    offset: 12
    width: 8
`
	_, err := ParseLayoutDef([]byte(layout))
	if err == nil {
		t.Fatal("expected error for field spanning past bit 15")
	}
}

func TestParseLayoutRejectsBadDefault(t *testing.T) {
	layout := `
register: gpio23
fields:
  - name: lamp_pwr
    offset: 2
    width: 3
    default: 8
`
	_, err := ParseLayoutDef([]byte(layout))
	if err == nil {
		t.Fatal("expected error for default above field max")
	}
	if !strings.Contains(err.Error(), "default 8 exceeds max 7") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestParseLayoutRejectsBadEnumValue(t *testing.T) {
	layout := `
register: gpio23
fields:
  - name: sol2
    offset: 0
    width: 1
    enum:
      name: Vacuum
      values:
        - name: "ON"
          value: 2
`
	_, err := ParseLayoutDef([]byte(layout))
	if err == nil {
		t.Fatal("expected error for enum value above field max")
	}
}

func TestLoadLayoutDef(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gpio23.yaml")
	if err := os.WriteFile(path, []byte(gpio23Layout), 0o644); err != nil {
		t.Fatalf("writing layout: %v", err)
	}

	def, err := LoadLayoutDef(path)
	if err != nil {
		t.Fatalf("LoadLayoutDef failed: %v", err)
	}
	if def.Register != "gpio23" {
		t.Errorf("expected register gpio23, got %q", def.Register)
	}
}

func TestLoadLayoutDefMissingFile(t *testing.T) {
	_, err := LoadLayoutDef(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}
