package softfloat

import "strings"

// StatusFlag is one of the five sticky IEEE 754 exceptional conditions.
type StatusFlag uint

const (
	InvalidOperation StatusFlag = 1 << iota
	DivisionByZero
	Overflow
	Underflow
	Inexact
)

var statusFlagOrder = []struct {
	flag StatusFlag
	name string
}{
	{InvalidOperation, "INVALID_OPERATION"},
	{DivisionByZero, "DIVISION_BY_ZERO"},
	{Overflow, "OVERFLOW"},
	{Underflow, "UNDERFLOW"},
	{Inexact, "INEXACT"},
}

func (f StatusFlag) String() string {
	for _, e := range statusFlagOrder {
		if e.flag == f {
			return e.name
		}
	}
	return "StatusFlag(invalid)"
}

// StatusFlags is a sticky set over the five exceptional conditions. Flags
// only ever accumulate: the result of any operation is input ∪ generated
// (spec.md §3).
type StatusFlags uint

// Has reports whether flag is set.
func (s StatusFlags) Has(flag StatusFlag) bool {
	return s&StatusFlags(flag) != 0
}

// With returns s with flag set.
func (s StatusFlags) With(flag StatusFlag) StatusFlags {
	return s | StatusFlags(flag)
}

// Union returns the sticky join of s and other.
func (s StatusFlags) Union(other StatusFlags) StatusFlags {
	return s | other
}

// Contains reports whether s is a superset of other. Used to test the
// flag-monotonicity invariant of spec.md §8: output_flags ⊇ input_flags.
func (s StatusFlags) Contains(other StatusFlags) bool {
	return s&other == other
}

// String renders the flag set in the §6 vector format: pipe-separated flag
// names in canonical order, or the literal "(empty)" when no flag is set.
func (s StatusFlags) String() string {
	if s == 0 {
		return "(empty)"
	}
	var names []string
	for _, e := range statusFlagOrder {
		if s.Has(e.flag) {
			names = append(names, e.name)
		}
	}
	return strings.Join(names, "|")
}

// RoundingMode selects one of the five IEEE 754 rounding-direction
// attributes.
type RoundingMode int

const (
	TiesToEven RoundingMode = iota
	TiesToAway
	TowardZero
	TowardPositive
	TowardNegative
)

var roundingModeNames = [...]string{
	"TiesToEven", "TiesToAway", "TowardZero", "TowardPositive", "TowardNegative",
}

func (m RoundingMode) String() string {
	if m < 0 || int(m) >= len(roundingModeNames) {
		return "RoundingMode(invalid)"
	}
	return roundingModeNames[m]
}

// TininessDetectionMode governs whether UNDERFLOW is determined from the
// pre-rounded or post-rounded magnitude of a tiny, inexact result.
type TininessDetectionMode int

const (
	BeforeRounding TininessDetectionMode = iota
	AfterRounding
)

func (m TininessDetectionMode) String() string {
	if m == BeforeRounding {
		return "BeforeRounding"
	}
	return "AfterRounding"
}

// ExceptionHandlingMode governs whether a subnormal *exact* result raises
// UNDERFLOW.
type ExceptionHandlingMode int

const (
	IgnoreExactUnderflow ExceptionHandlingMode = iota
	SignalExactUnderflow
)

func (m ExceptionHandlingMode) String() string {
	if m == IgnoreExactUnderflow {
		return "IgnoreExactUnderflow"
	}
	return "SignalExactUnderflow"
}

// FPState is the (rounding_mode, status_flags, exception_handling_mode)
// tuple threaded explicitly through every operation (spec.md §3). There is
// no hidden thread-local float-control register: callers who want a shared
// "current exception state" own that aggregation themselves.
type FPState struct {
	Rounding          RoundingMode
	Flags             StatusFlags
	ExceptionHandling ExceptionHandlingMode
}

// WithFlags returns a copy of s with its Flags unioned with extra.
func (s FPState) WithFlags(extra StatusFlags) FPState {
	s.Flags = s.Flags.Union(extra)
	return s
}

// NewFPState returns the FPState a caller typically starts a computation
// with: the given rounding mode, no flags set, and IgnoreExactUnderflow.
func NewFPState(rounding RoundingMode) FPState {
	return FPState{Rounding: rounding, ExceptionHandling: IgnoreExactUnderflow}
}
