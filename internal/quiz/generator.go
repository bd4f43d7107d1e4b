package quiz

import (
	"fmt"
	"math/rand"
	"time"
)

// OptionCount is the number of options every question offers.
const OptionCount = 4

// RNG is the uniform random source the generators draw from.
// *math/rand.Rand satisfies it.
type RNG interface {
	Intn(n int) int
}

// NewRNG returns a seeded source. A zero seed uses the current time.
func NewRNG(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// Prompt is the display payload of a question.
type Prompt struct {
	Letter rune      `json:"letter,omitempty"`
	Left   int       `json:"left,omitempty"`
	Right  int       `json:"right,omitempty"`
	Op     Operation `json:"-"`
	Text   string    `json:"text"`
}

// Question is one round's prompt, answer and options.
type Question struct {
	Mode    Mode    `json:"-"`
	Prompt  Prompt  `json:"prompt"`
	Answer  Value   `json:"-"`
	Options []Value `json:"options"`
}

// Instruction is the line shown above the prompt.
func (q Question) Instruction() string {
	switch q.Mode {
	case ModePosition:
		return "What position is this letter?"
	case ModeOpposite:
		return "What is the opposite letter?"
	case ModeLetterMath:
		return "Which letter solves the equation?"
	case ModePureMath:
		return "Solve the problem"
	default:
		return ""
	}
}

// OptionIndex returns the index of v among the options, or -1.
func (q Question) OptionIndex(v Value) int {
	for i, o := range q.Options {
		if o == v {
			return i
		}
	}
	return -1
}

// Reveal describes the correct answer for feedback text.
func (q Question) Reveal() string {
	switch q.Mode {
	case ModePosition:
		return fmt.Sprintf("%c is the %s letter", q.Prompt.Letter, q.Answer)
	case ModeOpposite:
		return fmt.Sprintf("The opposite of %c is %s", q.Prompt.Letter, q.Answer)
	default:
		return fmt.Sprintf("%s = %s", q.Prompt.Text, q.Answer)
	}
}

type generateFunc func(s Settings) Question

// Generator produces questions for every mode from an injected RNG.
// It is not safe for concurrent use.
type Generator struct {
	rng   RNG
	table map[Mode]generateFunc
}

// NewGenerator builds a generator over rng.
func NewGenerator(rng RNG) *Generator {
	g := &Generator{rng: rng}
	g.table = map[Mode]generateFunc{
		ModePosition:   g.position,
		ModeOpposite:   g.opposite,
		ModeLetterMath: g.letterMath,
		ModeMixed:      g.mixed,
		ModePureMath:   g.pureMath,
	}
	return g
}

// Generate produces a question for mode. Unknown modes fall back to position.
func (g *Generator) Generate(mode Mode, s Settings) Question {
	fn, ok := g.table[mode]
	if !ok {
		fn = g.position
	}
	return fn(s)
}

func (g *Generator) between(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + g.rng.Intn(hi-lo+1)
}

func (g *Generator) shuffle(xs []int) {
	for i := len(xs) - 1; i > 0; i-- {
		j := g.rng.Intn(i + 1)
		xs[i], xs[j] = xs[j], xs[i]
	}
}

// pickWithDecoys returns correct plus OptionCount-1 distinct values from
// [lo, hi], shuffled.
func (g *Generator) pickWithDecoys(correct, lo, hi int) []int {
	pool := make([]int, 0, hi-lo)
	for v := lo; v <= hi; v++ {
		if v != correct {
			pool = append(pool, v)
		}
	}
	for i := 0; i < OptionCount-1; i++ {
		j := i + g.rng.Intn(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	out := append([]int{correct}, pool[:OptionCount-1]...)
	g.shuffle(out)
	return out
}

func values(ns []int, mk func(int) Value) []Value {
	out := make([]Value, len(ns))
	for i, n := range ns {
		out[i] = mk(n)
	}
	return out
}

func letterValueAt(pos int) Value { return Value{Kind: KindLetter, N: pos} }

func (g *Generator) position(Settings) Question {
	pos := g.between(1, AlphabetSize)
	letter := Letter(pos)
	return Question{
		Mode:    ModePosition,
		Prompt:  Prompt{Letter: letter, Text: string(letter)},
		Answer:  PositionValue(pos),
		Options: values(g.pickWithDecoys(pos, 1, AlphabetSize), PositionValue),
	}
}

func (g *Generator) opposite(Settings) Question {
	letter := Letter(g.between(1, AlphabetSize))
	answer := PositionOf(Opposite(letter))
	return Question{
		Mode:    ModeOpposite,
		Prompt:  Prompt{Letter: letter, Text: string(letter)},
		Answer:  letterValueAt(answer),
		Options: values(g.pickWithDecoys(answer, 1, AlphabetSize), letterValueAt),
	}
}

// letterMath keeps both operands and the result inside 1..26.
func (g *Generator) letterMath(Settings) Question {
	op := concreteOperations[g.rng.Intn(len(concreteOperations))]
	var a, b int
	switch op {
	case OpAdd:
		a = g.between(1, AlphabetSize-1)
		b = g.between(1, AlphabetSize-a)
	case OpSub:
		a = g.between(2, AlphabetSize)
		b = g.between(1, a-1)
	case OpMul:
		a = g.between(1, AlphabetSize)
		b = g.between(1, AlphabetSize)
		if a*b > AlphabetSize {
			b = AlphabetSize / a
		}
	case OpDiv:
		b = g.between(1, AlphabetSize)
		a = b * g.between(1, AlphabetSize/b)
	}
	result := op.Apply(a, b)
	return Question{
		Mode: ModeLetterMath,
		Prompt: Prompt{
			Left:  a,
			Right: b,
			Op:    op,
			Text:  fmt.Sprintf("%c %s %c", Letter(a), op.Symbol(), Letter(b)),
		},
		Answer:  letterValueAt(result),
		Options: values(g.pickWithDecoys(result, 1, AlphabetSize), letterValueAt),
	}
}

var mixedModes = []Mode{ModePosition, ModeOpposite, ModeLetterMath}

func (g *Generator) mixed(s Settings) Question {
	return g.table[mixedModes[g.rng.Intn(len(mixedModes))]](s)
}

const maxDecoyAttempts = 200

func (g *Generator) pureMath(s Settings) Question {
	op := s.Operation
	if op == OpMixed {
		op = concreteOperations[g.rng.Intn(len(concreteOperations))]
	}
	lo, hi := digitRange(s.Digits)

	var a, b int
	switch op {
	case OpAdd, OpMul:
		a = g.between(lo, hi)
		b = g.between(lo, hi)
	case OpSub:
		a = g.between(lo, hi)
		b = g.between(lo, a)
	case OpDiv:
		b = g.between(lo, hi)
		a = b * g.between(lo, hi)
	}
	result := op.Apply(a, b)

	spread := (hi - lo + 1) / 2
	if op == OpDiv {
		spread = 10
	}
	opts := []int{result}
	seen := map[int]bool{result: true}
	for i := 0; len(opts) < OptionCount && i < maxDecoyAttempts; i++ {
		c := result + g.between(-spread, spread)
		if c < 0 {
			c = 0
		}
		if seen[c] {
			continue
		}
		seen[c] = true
		opts = append(opts, c)
	}
	for c := result + 1; len(opts) < OptionCount; c++ {
		if !seen[c] {
			seen[c] = true
			opts = append(opts, c)
		}
	}
	g.shuffle(opts)

	return Question{
		Mode: ModePureMath,
		Prompt: Prompt{
			Left:  a,
			Right: b,
			Op:    op,
			Text:  fmt.Sprintf("%d %s %d", a, op.Symbol(), b),
		},
		Answer:  NumberValue(result),
		Options: values(opts, NumberValue),
	}
}
