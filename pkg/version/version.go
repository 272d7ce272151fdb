// Package version provides register layout revision parsing and
// comparison.
package version

import (
	"fmt"
	"strconv"
	"strings"
)

// Current is the control board register layout revision implemented
// by this library.
const Current = "1.0"

// LayoutVersion represents a parsed "major.minor" layout revision.
// A major bump means fields moved or changed width; a minor bump adds
// fields to previously reserved bits.
type LayoutVersion struct {
	Major uint16
	Minor uint16
}

// Parse parses a "major.minor" revision string.
func Parse(s string) (LayoutVersion, error) {
	parts := strings.Split(s, ".")
	if len(parts) != 2 {
		return LayoutVersion{}, fmt.Errorf("invalid layout revision %q: expected major.minor", s)
	}

	major, err := strconv.ParseUint(parts[0], 10, 16)
	if err != nil || parts[0] == "" {
		return LayoutVersion{}, fmt.Errorf("invalid layout revision %q: bad major component", s)
	}

	minor, err := strconv.ParseUint(parts[1], 10, 16)
	if err != nil || parts[1] == "" {
		return LayoutVersion{}, fmt.Errorf("invalid layout revision %q: bad minor component", s)
	}

	return LayoutVersion{Major: uint16(major), Minor: uint16(minor)}, nil
}

// String returns the revision as "major.minor".
func (v LayoutVersion) String() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

// Compatible returns true if the other revision has the same major
// version. Tools built against one minor revision can read traces
// from another as long as the majors match.
func (v LayoutVersion) Compatible(other LayoutVersion) bool {
	return v.Major == other.Major
}
