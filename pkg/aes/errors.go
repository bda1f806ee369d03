package aes

import (
	"errors"
	"fmt"
)

// ErrorKind classifies the contract violations reported by this package.
type ErrorKind int

const (
	InvalidKeyLength      ErrorKind = iota + 1 // key length not 16, 24 or 32 bytes
	InvalidBlockLength                         // block operand not exactly BlockSize bytes
	UninitializedSchedule                      // nil or zero Schedule used for a block operation
	UnknownVariant                             // built-in key requested for an unknown Variant
)

func (k ErrorKind) String() string {
	switch k {
	case InvalidKeyLength:
		return "invalid key length"
	case InvalidBlockLength:
		return "invalid block length"
	case UninitializedSchedule:
		return "uninitialized schedule"
	case UnknownVariant:
		return "unknown variant"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// Error is returned by every failing operation in this package.
type Error struct {
	Op    string    // Operation that failed (e.g. "build schedule")
	Kind  ErrorKind // What went wrong
	Value int       // Offending length or variant, when relevant
}

func (e *Error) Error() string {
	switch e.Kind {
	case InvalidKeyLength:
		return fmt.Sprintf("aes: %s: %s %d (want 16, 24 or 32)", e.Op, e.Kind, e.Value)
	case InvalidBlockLength:
		return fmt.Sprintf("aes: %s: %s %d (want %d)", e.Op, e.Kind, e.Value, BlockSize)
	case UnknownVariant:
		return fmt.Sprintf("aes: %s: %s %d", e.Op, e.Kind, e.Value)
	default:
		return fmt.Sprintf("aes: %s: %s", e.Op, e.Kind)
	}
}

func kindOf(err error) ErrorKind {
	var aesErr *Error
	if errors.As(err, &aesErr) {
		return aesErr.Kind
	}
	return 0
}

// IsInvalidKeyLength reports whether err was caused by an unsupported key length.
func IsInvalidKeyLength(err error) bool {
	return kindOf(err) == InvalidKeyLength
}

// IsInvalidBlockLength reports whether err was caused by a block operand of the wrong size.
func IsInvalidBlockLength(err error) bool {
	return kindOf(err) == InvalidBlockLength
}

// IsUninitialized reports whether err was caused by using a schedule that was never built.
func IsUninitialized(err error) bool {
	return kindOf(err) == UninitializedSchedule
}

// IsUnknownVariant reports whether err was caused by an unknown built-in key selector.
func IsUnknownVariant(err error) bool {
	return kindOf(err) == UnknownVariant
}
