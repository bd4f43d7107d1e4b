package quiz_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vytor/letterflash/internal/quiz"
)

const rounds = 2000

func assertWellFormed(t *testing.T, q quiz.Question) {
	t.Helper()
	require.Len(t, q.Options, quiz.OptionCount)

	seen := map[quiz.Value]bool{}
	matches := 0
	for _, o := range q.Options {
		assert.False(t, seen[o], "duplicate option %v in %+v", o, q)
		seen[o] = true
		if o == q.Answer {
			matches++
		}
	}
	assert.Equal(t, 1, matches, "answer must appear exactly once: %+v", q)
}

func TestOpposite_Involution(t *testing.T) {
	for pos := 1; pos <= quiz.AlphabetSize; pos++ {
		l := quiz.Letter(pos)
		assert.Equal(t, l, quiz.Opposite(quiz.Opposite(l)))
		assert.Equal(t, 27, quiz.PositionOf(l)+quiz.PositionOf(quiz.Opposite(l)))
	}
	assert.Equal(t, 'Z', quiz.Opposite('A'))
	assert.Equal(t, 'M', quiz.Opposite('N'))
}

func TestGenerate_Position(t *testing.T) {
	g := quiz.NewGenerator(quiz.NewRNG(1))
	for i := 0; i < rounds; i++ {
		q := g.Generate(quiz.ModePosition, quiz.DefaultSettings())
		assertWellFormed(t, q)
		assert.Equal(t, quiz.ModePosition, q.Mode)
		assert.Equal(t, quiz.KindPosition, q.Answer.Kind)
		assert.Equal(t, quiz.PositionOf(q.Prompt.Letter), q.Answer.N)
		for _, o := range q.Options {
			assert.GreaterOrEqual(t, o.N, 1)
			assert.LessOrEqual(t, o.N, quiz.AlphabetSize)
		}
	}
}

func TestGenerate_Opposite(t *testing.T) {
	g := quiz.NewGenerator(quiz.NewRNG(2))
	for i := 0; i < rounds; i++ {
		q := g.Generate(quiz.ModeOpposite, quiz.DefaultSettings())
		assertWellFormed(t, q)
		assert.Equal(t, quiz.KindLetter, q.Answer.Kind)
		assert.Equal(t, quiz.Opposite(q.Prompt.Letter), q.Answer.Letter())
	}
}

func TestGenerate_LetterMath(t *testing.T) {
	g := quiz.NewGenerator(quiz.NewRNG(3))
	ops := map[quiz.Operation]int{}
	for i := 0; i < rounds; i++ {
		q := g.Generate(quiz.ModeLetterMath, quiz.DefaultSettings())
		assertWellFormed(t, q)
		p := q.Prompt
		ops[p.Op]++

		for _, n := range []int{p.Left, p.Right, q.Answer.N} {
			assert.GreaterOrEqual(t, n, 1, "%+v", q)
			assert.LessOrEqual(t, n, quiz.AlphabetSize, "%+v", q)
		}
		assert.Equal(t, q.Answer.N, p.Op.Apply(p.Left, p.Right), "%+v", q)
		if p.Op == quiz.OpDiv {
			assert.Zero(t, p.Left%p.Right)
		}
	}
	assert.Len(t, ops, 4, "all four operators should appear")
}

func TestGenerate_PureMath(t *testing.T) {
	ops := []quiz.Operation{quiz.OpAdd, quiz.OpSub, quiz.OpMul, quiz.OpDiv, quiz.OpMixed}
	for digits := 1; digits <= 3; digits++ {
		for _, op := range ops {
			g := quiz.NewGenerator(quiz.NewRNG(int64(digits*10) + int64(op)))
			s := quiz.Settings{Operation: op, Digits: digits}
			for i := 0; i < rounds/4; i++ {
				q := g.Generate(quiz.ModePureMath, s)
				assertWellFormed(t, q)
				p := q.Prompt
				if op != quiz.OpMixed {
					assert.Equal(t, op, p.Op)
				}
				assert.Equal(t, q.Answer.N, p.Op.Apply(p.Left, p.Right))
				assert.GreaterOrEqual(t, q.Answer.N, 0, "results are never negative")
				if p.Op == quiz.OpDiv {
					require.NotZero(t, p.Right)
					assert.Zero(t, p.Left%p.Right)
					assert.Equal(t, p.Left/p.Right, q.Answer.N)
				}
				for _, o := range q.Options {
					assert.GreaterOrEqual(t, o.N, 0)
				}
			}
		}
	}
}

func TestGenerate_PureMathOperandRanges(t *testing.T) {
	tests := []struct {
		digits int
		lo, hi int
	}{
		{1, 1, 9},
		{2, 10, 99},
		{3, 100, 999},
	}
	for _, tt := range tests {
		g := quiz.NewGenerator(quiz.NewRNG(42))
		for i := 0; i < 500; i++ {
			q := g.Generate(quiz.ModePureMath, quiz.Settings{Operation: quiz.OpAdd, Digits: tt.digits})
			assert.GreaterOrEqual(t, q.Prompt.Left, tt.lo)
			assert.LessOrEqual(t, q.Prompt.Left, tt.hi)
			assert.GreaterOrEqual(t, q.Prompt.Right, tt.lo)
			assert.LessOrEqual(t, q.Prompt.Right, tt.hi)
		}
	}
}

func TestGenerate_PureMathDecoySpread(t *testing.T) {
	// Decoys stay within half the operand range of the answer, or 10 for
	// division. Fill values sit at most OptionCount-1 above it, inside every
	// spread below.
	tests := []struct {
		name   string
		op     quiz.Operation
		digits int
		spread int
	}{
		{"add 1 digit", quiz.OpAdd, 1, 4},
		{"sub 1 digit", quiz.OpSub, 1, 4},
		{"mul 2 digits", quiz.OpMul, 2, 45},
		{"sub 3 digits", quiz.OpSub, 3, 450},
		{"div 1 digit", quiz.OpDiv, 1, 10},
		{"div 3 digits", quiz.OpDiv, 3, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := quiz.NewGenerator(quiz.NewRNG(int64(tt.digits) * 31))
			s := quiz.Settings{Operation: tt.op, Digits: tt.digits}
			for i := 0; i < rounds/4; i++ {
				q := g.Generate(quiz.ModePureMath, s)
				for _, o := range q.Options {
					diff := o.N - q.Answer.N
					if diff < 0 {
						diff = -diff
					}
					require.LessOrEqual(t, diff, tt.spread, "option %d for %s = %d", o.N, q.Prompt.Text, q.Answer.N)
				}
			}
		})
	}
}

func TestGenerate_MixedDelegates(t *testing.T) {
	g := quiz.NewGenerator(quiz.NewRNG(7))
	seen := map[quiz.Mode]int{}
	for i := 0; i < rounds; i++ {
		q := g.Generate(quiz.ModeMixed, quiz.DefaultSettings())
		assertWellFormed(t, q)
		seen[q.Mode]++
	}
	assert.Len(t, seen, 3)
	assert.NotContains(t, seen, quiz.ModePureMath)
	assert.NotContains(t, seen, quiz.ModeMixed)
}

func TestGenerate_Deterministic(t *testing.T) {
	a := quiz.NewGenerator(quiz.NewRNG(99))
	b := quiz.NewGenerator(quiz.NewRNG(99))
	for i := 0; i < 50; i++ {
		assert.Equal(t,
			a.Generate(quiz.ModeMixed, quiz.DefaultSettings()),
			b.Generate(quiz.ModeMixed, quiz.DefaultSettings()))
	}
}

func TestValue_String(t *testing.T) {
	assert.Equal(t, "1st", quiz.PositionValue(1).String())
	assert.Equal(t, "22nd", quiz.PositionValue(22).String())
	assert.Equal(t, "Q", quiz.LetterValue('Q').String())
	assert.Equal(t, "144", quiz.NumberValue(144).String())
}

func TestParseMode(t *testing.T) {
	for _, m := range []quiz.Mode{quiz.ModePosition, quiz.ModeOpposite, quiz.ModeLetterMath, quiz.ModeMixed, quiz.ModePureMath} {
		got, err := quiz.ParseMode(m.String())
		require.NoError(t, err)
		assert.Equal(t, m, got)
	}
	got, err := quiz.ParseMode("LETTERMATH")
	require.NoError(t, err)
	assert.Equal(t, quiz.ModeLetterMath, got)

	_, err = quiz.ParseMode("checkers")
	assert.Error(t, err)
}

func TestSettings_Validate(t *testing.T) {
	assert.NoError(t, quiz.DefaultSettings().Validate())
	assert.Error(t, quiz.Settings{Operation: quiz.OpAdd, Digits: 0}.Validate())
	assert.Error(t, quiz.Settings{Operation: quiz.OpAdd, Digits: 4}.Validate())
	assert.Error(t, quiz.Settings{Operation: quiz.Operation(9), Digits: 1}.Validate())
}

func TestQuestion_Reveal(t *testing.T) {
	q := quiz.Question{
		Mode:   quiz.ModePosition,
		Prompt: quiz.Prompt{Letter: 'C', Text: "C"},
		Answer: quiz.PositionValue(3),
	}
	assert.Equal(t, "C is the 3rd letter", q.Reveal())
}
