package regex

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustCompile(t *testing.T, pattern string) *Regex {
	t.Helper()
	r, err := Compile(pattern)
	require.NoError(t, err)
	return r
}

func TestCompileSingleSymbol(t *testing.T) {
	r := mustCompile(t, "a")
	assert.True(t, r.IsMatch("a"))
	assert.False(t, r.IsMatch(""))
	assert.False(t, r.IsMatch("aa"))
}

func TestCompileUnionGroupStar(t *testing.T) {
	r := mustCompile(t, "(ab|cd)*")
	for _, s := range []string{"", "ab", "cd", "abcd", "cdab", "ababcdcd"} {
		assert.True(t, r.IsMatch(s), "expected match: %q", s)
	}
	for _, s := range []string{"a", "abc", "abcdx"} {
		assert.False(t, r.IsMatch(s), "expected no match: %q", s)
	}
}

func TestCompileEmailLikePattern(t *testing.T) {
	r := mustCompile(t, "[a-zA-Z0-9+_.-]+@[a-zA-Z0-9.-]+")
	assert.True(t, r.IsMatch("example.samplemail@gmail.com"))
	assert.True(t, r.IsMatch("a@b"))
	assert.False(t, r.IsMatch("sample?examplemail@gmail.com"))
	assert.False(t, r.IsMatch("@gmail.com"))
	assert.False(t, r.IsMatch("a@"))
}

func TestCompileEmptyPatternMatchesOnlyEmptyString(t *testing.T) {
	r := mustCompile(t, "")
	assert.True(t, r.IsMatch(""))
	assert.False(t, r.IsMatch("a"))
}

func TestCompilePlusExcludesEmptyString(t *testing.T) {
	r := mustCompile(t, "a+")
	assert.False(t, r.IsMatch(""))
	assert.True(t, r.IsMatch("a"))
	assert.True(t, r.IsMatch("aaaaa"))
}

func TestCompileStarIncludesEmptyString(t *testing.T) {
	r := mustCompile(t, "a*")
	assert.True(t, r.IsMatch(""))
	assert.True(t, r.IsMatch("aaaaa"))
}

func TestCompileDigitRange(t *testing.T) {
	r := mustCompile(t, "[0-9]+")
	assert.True(t, r.IsMatch("0"))
	assert.True(t, r.IsMatch("1234567890"))
	assert.False(t, r.IsMatch(""))
	assert.False(t, r.IsMatch("12a"))
}

func TestCompileNestedGroups(t *testing.T) {
	r := mustCompile(t, "((a|b)(c|d))+")
	assert.True(t, r.IsMatch("ac"))
	assert.True(t, r.IsMatch("bdac"))
	assert.False(t, r.IsMatch(""))
	assert.False(t, r.IsMatch("ab"))
}

func TestCompileErrorsReturnExactMessages(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		wantMsg string
		invalid bool
	}{
		{
			name:    "unmatched open paren",
			pattern: "(",
			wantMsg: "Invalid group: missing closing parenthesis!",
		},
		{
			name:    "unmatched close paren",
			pattern: "a)",
			wantMsg: "Unmatched parenthesis.",
		},
		{
			name:    "unterminated class",
			pattern: "[a-z",
			wantMsg: "Brackets at position 0 doesn't have a closing brackets!",
		},
		{
			name:    "inverted range",
			pattern: "[9-0]",
			wantMsg: `Invalid Range: "9" is bigger than "0"!`,
			invalid: true,
		},
		{
			name:    "leading closure plus",
			pattern: "+",
			wantMsg: `Invalid Closure: ClosurePlus operator needs a preceding literal, e.g. "a+", "(ab)+", "(a|c)+".`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Compile(tc.pattern)
			require.Error(t, err)
			assert.Equal(t, tc.wantMsg, err.Error())
			if tc.invalid {
				_, ok := err.(*InvalidRangeError)
				assert.True(t, ok, "expected *InvalidRangeError, got %T", err)
			} else {
				_, ok := err.(*SyntaxError)
				assert.True(t, ok, "expected *SyntaxError, got %T", err)
			}
		})
	}
}

// Law: is_match(compile(""), s) is true iff s == "".
func TestEmptyStringMembershipLaw(t *testing.T) {
	r := mustCompile(t, "")
	for _, s := range []string{"", "a", "ab", " "} {
		assert.Equal(t, s == "", r.IsMatch(s), "mismatch for %q", s)
	}
}

// Law: is_match(compile(p1 + "|" + p2), s) equals
// is_match(compile(p1), s) || is_match(compile(p2), s).
func TestUnionLawAtPublicAPI(t *testing.T) {
	p1, p2 := "a(bb)*", "c+d"
	r1 := mustCompile(t, p1)
	r2 := mustCompile(t, p2)
	combined := mustCompile(t, p1+"|"+p2)

	for _, s := range []string{"", "a", "abb", "abbbb", "cd", "ccd", "x"} {
		want := r1.IsMatch(s) || r2.IsMatch(s)
		assert.Equal(t, want, combined.IsMatch(s), "mismatch for %q", s)
	}
}

// Law: closure under + never accepts the empty string unless the
// operand itself does; closure under * always does.
func TestClosureEmptyStringLaw(t *testing.T) {
	plus := mustCompile(t, "(ab)+")
	star := mustCompile(t, "(ab)*")
	assert.False(t, plus.IsMatch(""))
	assert.True(t, star.IsMatch(""))
}

func TestInspectExposesStartAndReachableStates(t *testing.T) {
	r := mustCompile(t, "ab")
	view := r.Inspect()
	states := view.States()
	assert.Contains(t, states, view.Start())
	assert.NotEmpty(t, view.Finals())
}

func TestInspectNFADiffersFromInspectBeforeMinimization(t *testing.T) {
	r := mustCompile(t, "(a|a)")
	nfaView := r.InspectNFA()
	dfaView := r.Inspect()
	// The unminimized NFA for "a|a" carries redundant states that
	// Brzozowski minimization collapses away.
	assert.Greater(t, len(nfaView.States()), len(dfaView.States()))
}
