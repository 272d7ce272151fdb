package tracelog

import "time"

// Event represents one traced register operation.
// CBOR encoding uses integer keys for compactness.
type Event struct {
	// Timestamp when the operation happened (nanosecond precision).
	Timestamp time.Time `cbor:"1,keyasint"`

	// SessionID uniquely identifies the board session (UUID).
	SessionID string `cbor:"2,keyasint"`

	// Seq numbers operations within a session, starting at 1.
	Seq uint64 `cbor:"3,keyasint"`

	// Op is the kind of register operation.
	Op Op `cbor:"4,keyasint"`

	// Register is the diagnostic name of the register.
	Register string `cbor:"5,keyasint,omitempty"`

	// Field is the bit-field name within the register.
	Field string `cbor:"6,keyasint,omitempty"`

	// Unit identifies the accessor instance, e.g. "floodlamp #42".
	Unit string `cbor:"7,keyasint,omitempty"`

	// Prev is the field value before a write (Write events only).
	Prev uint16 `cbor:"8,keyasint,omitempty"`

	// Value is the field value read, written, or rejected.
	Value uint16 `cbor:"9,keyasint,omitempty"`

	// Word is the whole register word after the operation.
	Word uint16 `cbor:"10,keyasint,omitempty"`

	// Error is the rejection message (Reject events only).
	Error string `cbor:"11,keyasint,omitempty"`

	// Layout is the register layout revision (Init events only).
	Layout string `cbor:"12,keyasint,omitempty"`
}

// Op is the kind of register operation an event records.
type Op uint8

const (
	// OpInit records an accessor forcing its field to the construction default.
	OpInit Op = 0
	// OpRead records a field read.
	OpRead Op = 1
	// OpWrite records a completed field write.
	OpWrite Op = 2
	// OpReject records a write refused by range validation.
	OpReject Op = 3
)

// String returns the operation name.
func (o Op) String() string {
	switch o {
	case OpInit:
		return "INIT"
	case OpRead:
		return "READ"
	case OpWrite:
		return "WRITE"
	case OpReject:
		return "REJECT"
	default:
		return "UNKNOWN"
	}
}
