package intcalc_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zephyrtronium/intcalc"
)

func TestEvalString(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want string
	}{
		{"numeral", "7", "7"},
		{"add", "4 + 5 + 6", "15"},
		{"sub-left", "2 - 3 - 4", "-5"},
		{"mul", "4 x 5 x 6", "120"},
		{"grouped-power", "(2 x 3) ^ 2", "36"},
		{"power-right", "2 ^ 3 ^ 2", "512"},
		{"negation", "-3 + 4", "1"},
		{"negated-power", "-2 ^ 2", "4"},
		{"double-negation", "--3", "3"},
		{"sub-negation", "1 - -2", "3"},
		{"add-negation", "5 + -3", "2"},
		{"precedence", "2 + 3 x 4", "14"},
		{"parens", "(2 + 3) x 4", "20"},
		{"div", "10 / 2 / 5", "1"},
		{"mod", "10 % 3", "1"},
		{"zero-base", "0 ^ 5", "0"},
		{"zero-power", "5 ^ 0", "1"},
		{"negative-exponent", "2 ^ -3", "0"},
		{"negative-exponent-chain", "2 ^ -3 ^ 2", "0"},
		{"one-negative-exponent", "1 ^ -5", "1"},
		{"minus-one-negative-exponent", "-1 ^ -3", "-1"},
		{"exact-power", "2 ^ 100", "1267650600228229401496703205376"},
		{"big-times-big", "99999999999999999999 x 99999999999999999999", "9999999999999999999800000000000000000001"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r, err := intcalc.EvalString(c.src)
			require.NoError(t, err)
			assert.Equal(t, c.want, r.String())
		})
	}
}

func TestEvalTruncation(t *testing.T) {
	// Division truncates toward zero and the remainder takes the sign of
	// the dividend.
	cases := []struct {
		src  string
		want string
	}{
		{"7 / 2", "3"},
		{"-7 / 2", "-3"},
		{"7 / -2", "-3"},
		{"-7 / -2", "3"},
		{"7 % 2", "1"},
		{"-7 % 2", "-1"},
		{"7 % -2", "1"},
		{"-7 % -2", "-1"},
	}
	for _, c := range cases {
		t.Run(c.src, func(t *testing.T) {
			r, err := intcalc.EvalString(c.src)
			require.NoError(t, err)
			assert.Equal(t, c.want, r.String())
		})
	}
}

func TestEvalDomainErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		msg  string
	}{
		{"div-zero", "5 / 0", "Cannot evaluate expression, division by zero."},
		{"mod-zero", "5 % 0", "Cannot evaluate expression, division by zero."},
		{"div-grouped-zero", "1 / (2 - 2)", "Cannot evaluate expression, division by zero."},
		{"zero-to-zero", "0 ^ 0", "Cannot evaluate expression, 0^0 is undefined."},
		{"zero-negative-exponent", "0 ^ -1", "Cannot evaluate expression, division by zero."},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r, err := intcalc.EvalString(c.src)
			assert.Nil(t, r)
			require.EqualError(t, err, c.msg)
			var derr *intcalc.DomainError
			assert.ErrorAs(t, err, &derr)
		})
	}
}

func TestEvalIdempotent(t *testing.T) {
	// Every stage returns immutable values, so re-running any of them gives
	// the same answer.
	e, err := intcalc.Parse("-(2 x 3) ^ 2 + 10 % 4")
	require.NoError(t, err)
	p := e.Postfix()
	assert.Equal(t, p.String(), e.Postfix().String())
	a, err := p.Eval()
	require.NoError(t, err)
	b, err := p.Eval()
	require.NoError(t, err)
	assert.Zero(t, a.Cmp(b))
	c, err := intcalc.EvalString("-(2 x 3) ^ 2 + 10 % 4")
	require.NoError(t, err)
	assert.Zero(t, a.Cmp(c))
}

func TestEvalWhitespaceInsensitive(t *testing.T) {
	want, err := intcalc.EvalString("2+3x4^2-1")
	require.NoError(t, err)
	for _, src := range []string{
		"2 + 3 x 4 ^ 2 - 1",
		"2\t+ 3 x\n4 ^ 2 - 1",
		"  2+3 x 4^2    -1  ",
	} {
		got, err := intcalc.EvalString(src)
		require.NoError(t, err, "evaluating %q", src)
		assert.Zero(t, want.Cmp(got), "value of %q: want %v, got %v", src, want, got)
	}
}
