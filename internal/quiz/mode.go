package quiz

import (
	"fmt"
	"strings"
)

// Mode selects the question generation logic for a session.
type Mode int

const (
	ModePosition Mode = iota
	ModeOpposite
	ModeLetterMath
	ModeMixed
	ModePureMath
)

var modeNames = map[Mode]string{
	ModePosition:   "position",
	ModeOpposite:   "opposite",
	ModeLetterMath: "letterMath",
	ModeMixed:      "mixed",
	ModePureMath:   "pureMath",
}

func (m Mode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}
	return "unknown"
}

// ParseMode accepts the names produced by Mode.String, case-insensitively.
func ParseMode(s string) (Mode, error) {
	for m, name := range modeNames {
		if strings.EqualFold(name, s) {
			return m, nil
		}
	}
	return 0, fmt.Errorf("unknown mode %q", s)
}

// Alphabet reports whether the mode draws from the 26-letter alphabet.
func (m Mode) Alphabet() bool {
	return m != ModePureMath
}

// Leaderboard board names.
const (
	BoardAlphabet = "alphabet"
	BoardMath     = "math"
	BoardOverall  = "overall"
)

// Board returns the leaderboard a finished session of this mode is ranked on.
func (m Mode) Board() string {
	if m == ModePureMath {
		return BoardMath
	}
	return BoardAlphabet
}

// Operation is an arithmetic operator. OpMixed picks one of the four per question.
type Operation int

const (
	OpAdd Operation = iota
	OpSub
	OpMul
	OpDiv
	OpMixed
)

var operationNames = map[Operation]string{
	OpAdd:   "add",
	OpSub:   "sub",
	OpMul:   "mul",
	OpDiv:   "div",
	OpMixed: "mixed",
}

func (o Operation) String() string {
	if name, ok := operationNames[o]; ok {
		return name
	}
	return "unknown"
}

// ParseOperation accepts add, sub, mul, div and mixed.
func ParseOperation(s string) (Operation, error) {
	for o, name := range operationNames {
		if strings.EqualFold(name, s) {
			return o, nil
		}
	}
	return 0, fmt.Errorf("unknown operation %q", s)
}

// Symbol returns the operator as displayed in a prompt.
func (o Operation) Symbol() string {
	switch o {
	case OpAdd:
		return "+"
	case OpSub:
		return "−"
	case OpMul:
		return "×"
	case OpDiv:
		return "÷"
	default:
		return "?"
	}
}

// Apply evaluates a op b. Division is integer division.
func (o Operation) Apply(a, b int) int {
	switch o {
	case OpAdd:
		return a + b
	case OpSub:
		return a - b
	case OpMul:
		return a * b
	case OpDiv:
		if b == 0 {
			return 0
		}
		return a / b
	default:
		return 0
	}
}

var concreteOperations = []Operation{OpAdd, OpSub, OpMul, OpDiv}

// Settings is the mode-specific configuration of a session. Only pure math
// reads it.
type Settings struct {
	Operation Operation
	Digits    int
}

// DefaultSettings returns single-digit mixed arithmetic.
func DefaultSettings() Settings {
	return Settings{Operation: OpMixed, Digits: 1}
}

// Validate checks the digit width and operation.
func (s Settings) Validate() error {
	if s.Digits < 1 || s.Digits > 3 {
		return fmt.Errorf("digits must be 1, 2 or 3, got %d", s.Digits)
	}
	if _, ok := operationNames[s.Operation]; !ok {
		return fmt.Errorf("unknown operation %d", s.Operation)
	}
	return nil
}

// digitRange returns the operand range for a digit width.
func digitRange(digits int) (lo, hi int) {
	switch digits {
	case 2:
		return 10, 99
	case 3:
		return 100, 999
	default:
		return 1, 9
	}
}
