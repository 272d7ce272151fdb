// Package regmap provides a software model of small memory-mapped
// peripheral registers: a 16-bit storage cell plus field descriptors
// that pack and unpack named bit ranges with explicit mask and shift
// arithmetic.
//
// # Bit Layout
//
// Fields are described LSB-first: Offset is the zero-based index of
// the field's least significant bit within the register word, and
// Width is the number of bits. A 3-bit field at offset 2 occupies
// bits 4..2:
//
//	 15                              5   4   3   2   1   0
//	+--------------------------------+-------------+---+---+
//	|            (other)             |    field    | . | . |
//	+--------------------------------+-------------+---+---+
//
// All packing is explicit shift-and-mask arithmetic. No struct
// bit-fields or other compiler-controlled layout are involved, so the
// position of every bit is visible in the code that defines it.
//
// # Concurrency
//
// Register performs no locking or synchronization. A field write is a
// read-modify-write of the whole word and is NOT atomic: concurrent
// writers from multiple goroutines will race and lose updates.
// Callers that share a register across goroutines must provide their
// own serialization; the types here are intended for single-threaded
// use.
package regmap
