package quiz

import (
	"fmt"
	"strconv"

	"github.com/dustin/go-humanize"
)

// AlphabetSize is the number of letters questions are drawn from.
const AlphabetSize = 26

const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Letter returns the letter at a 1-based alphabet position.
func Letter(pos int) rune {
	if pos < 1 || pos > AlphabetSize {
		return '?'
	}
	return rune(alphabet[pos-1])
}

// PositionOf returns the 1-based alphabet position of an upper-case letter,
// or 0 when r is not one.
func PositionOf(r rune) int {
	if r < 'A' || r > 'Z' {
		return 0
	}
	return int(r-'A') + 1
}

// Opposite mirrors a letter across the alphabet: A<->Z, B<->Y, ...
// PositionOf(l) + PositionOf(Opposite(l)) is always 27.
func Opposite(r rune) rune {
	pos := PositionOf(r)
	if pos == 0 {
		return '?'
	}
	return Letter(AlphabetSize + 1 - pos)
}

// Kind tells how a Value is interpreted and displayed.
type Kind int

const (
	KindPosition Kind = iota
	KindLetter
	KindNumber
)

func (k Kind) String() string {
	switch k {
	case KindPosition:
		return "position"
	case KindLetter:
		return "letter"
	case KindNumber:
		return "number"
	default:
		return "unknown"
	}
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(b []byte) error {
	switch string(b) {
	case "position":
		*k = KindPosition
	case "letter":
		*k = KindLetter
	case "number":
		*k = KindNumber
	default:
		return fmt.Errorf("unknown value kind %q", b)
	}
	return nil
}

// Value is an answer or option. Letters are stored by alphabet position so
// all kinds compare with ==.
type Value struct {
	Kind Kind `json:"kind"`
	N    int  `json:"n"`
}

// PositionValue builds a position answer (1..26).
func PositionValue(pos int) Value { return Value{Kind: KindPosition, N: pos} }

// LetterValue builds a letter answer.
func LetterValue(r rune) Value { return Value{Kind: KindLetter, N: PositionOf(r)} }

// NumberValue builds a numeric answer.
func NumberValue(n int) Value { return Value{Kind: KindNumber, N: n} }

// Letter returns the letter for letter values.
func (v Value) Letter() rune { return Letter(v.N) }

func (v Value) String() string {
	switch v.Kind {
	case KindPosition:
		return humanize.Ordinal(v.N)
	case KindLetter:
		return string(Letter(v.N))
	default:
		return strconv.Itoa(v.N)
	}
}
