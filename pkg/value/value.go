// Package value defines carrier types for Julia value kinds that have no
// distinct Go representation. Resolution in pkg/kind dispatches on these
// types where Go's own kinds are ambiguous or absent: rune is an alias of
// int32, and Go has no range, symbol, module or irrational-constant type.
package value

import "math"

// Char is a single character. Go's rune aliases int32, so a dedicated
// type is needed for character values to resolve to the characters
// topic rather than the integers topic.
type Char rune

// Irrational is an irrational mathematical constant such as pi or e.
type Irrational float64

// Well-known irrational constants
const (
	Pi     Irrational = math.Pi
	E      Irrational = math.E
	Sqrt2  Irrational = math.Sqrt2
	Golden Irrational = math.Phi
)

// Range is an arithmetic progression of integers with a start, step and
// stop, mirroring start:step:stop range syntax.
type Range struct {
	Start int
	Step  int
	Stop  int
}

// Len returns the number of elements in the range. An empty range has
// length zero; a zero step also yields zero rather than dividing by it.
func (r Range) Len() int {
	if r.Step == 0 {
		return 0
	}
	n := (r.Stop-r.Start)/r.Step + 1
	if n < 0 {
		return 0
	}
	return n
}

// Symbol is an interned identifier, written :name in source
type Symbol string

// Module references a named namespace such as Base or Core
type Module struct {
	Name string
}
