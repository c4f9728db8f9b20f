package printer_test

import (
	"testing"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/stretchr/testify/require"

	"luaprint/pkg/printer"
)

// assertRoundTrips is the fixture harness for spec.md §8's primary
// invariant: transpiling source with type annotations retained must
// reproduce the original bytes exactly. On mismatch it renders a
// unified diff (pmezard/go-difflib) instead of testify's default
// string dump, since a byte-for-byte mismatch across a whole source
// file is unreadable as a raw string comparison.
func assertRoundTrips(t *testing.T, source string) {
	t.Helper()
	result := printer.TranspileWithTypes(source)
	require.Empty(t, result.Errors, "unexpected parse errors for %q", source)
	if result.Output == source {
		return
	}
	diff := difflib.UnifiedDiff{
		A:        difflib.SplitLines(source),
		B:        difflib.SplitLines(result.Output),
		FromFile: "source",
		ToFile:   "printed",
		Context:  3,
	}
	text, err := difflib.GetUnifiedDiffString(diff)
	require.NoError(t, err)
	t.Fatalf("round-trip mismatch:\n%s", text)
}

func TestRoundTripStatements(t *testing.T) {
	cases := []string{
		"local x = 1\n",
		"local x, y = 1, 2\n",
		"local x: number = 1\n",
		"x = x + 1\n",
		"x += 1\n",
		"x, y = y, x\n",
		"return\n",
		"return 1, 2\n",
		"break\n",
		"continue\n",
		"do\n    local x = 1\nend\n",
		"while x do\n    x = x - 1\nend\n",
		"repeat\n    x = x - 1\nuntil x == 0\n",
		"for i = 1, 10 do\n    print(i)\nend\n",
		"for i = 1, 10, 2 do\n    print(i)\nend\n",
		"for k, v in pairs(t) do\n    print(k, v)\nend\n",
		"function f(x, y)\n    return x + y\nend\n",
		"local function f(x)\n    return x\nend\n",
		"function t.f(x)\n    return x\nend\n",
		"function t:f(x)\n    return x\nend\n",
		"local x = 1; local y = 2\n",
	}
	for _, src := range cases {
		src := src
		t.Run(src, func(t *testing.T) {
			assertRoundTrips(t, src)
		})
	}
}

func TestRoundTripIfChains(t *testing.T) {
	cases := []string{
		"if x then\n    return 1\nend\n",
		"if x then\n    return 1\nelse\n    return 2\nend\n",
		"if x then\n    return 1\nelseif y then\n    return 2\nelse\n    return 3\nend\n",
		"if a then\n    return 1\nelseif b then\n    return 2\nelseif c then\n    return 3\nend\n",
	}
	for _, src := range cases {
		src := src
		t.Run(src, func(t *testing.T) {
			assertRoundTrips(t, src)
		})
	}
}

func TestRoundTripExpressions(t *testing.T) {
	cases := []string{
		"local x = 1 + 2 * 3\n",
		"local x = (1 + 2) * 3\n",
		"local x = not true\n",
		"local x = -1\n",
		"local x = #t\n",
		"local x = a and b or c\n",
		"local x = a .. b .. c\n",
		"local x = f(1, 2, 3)\n",
		"local x = f()\n",
		"local x = t.a.b.c\n",
		"local x = t[1]\n",
		"local x = t:m(1)\n",
		"local x = { 1, 2, 3 }\n",
		"local x = { a = 1, b = 2 }\n",
		"local x = { [k] = v }\n",
		"local x = `hello {name}!`\n",
		"local x = if a then 1 else 2\n",
		"local x = if a then 1 elseif b then 2 else 3\n",
		"local x = 'a string'\n",
		"local x = \"it's fine\"\n",
	}
	for _, src := range cases {
		src := src
		t.Run(src, func(t *testing.T) {
			assertRoundTrips(t, src)
		})
	}
}

func TestRoundTripTypes(t *testing.T) {
	cases := []string{
		"type T = number\n",
		"type T = number | string\n",
		"type T = number?\n",
		"type T = { number }\n",
		"type T = { x: number, y: string }\n",
		"type T<A> = A?\n",
		"type T = (number, string) -> boolean\n",
		"local function f(x: number): number\n    return x\nend\n",
		"local x: number? = nil\n",
		"local x = y :: number\n",
	}
	for _, src := range cases {
		src := src
		t.Run(src, func(t *testing.T) {
			assertRoundTrips(t, src)
		})
	}
}

// A two-member union with a bare nil member always contracts to `T?`,
// even when the source spelled it out as `T | nil` -- this is a
// one-way normalization, not a round trip.
func TestUnionWithNilContractsToOptionalSugar(t *testing.T) {
	result := printer.TranspileWithTypes("type T<A> = A | nil\n")
	require.Empty(t, result.Errors)
	require.Equal(t, "type T<A> = A?\n", result.Output)
}

func TestRoundTripExplicitTypeInstantiation(t *testing.T) {
	assertRoundTrips(t, "local x = f::<number, string>(1, 2)\n")
}

func TestTranspileStripsTypesWhenNotRequested(t *testing.T) {
	result := printer.Transpile("local x: number = 1\n")
	require.Empty(t, result.Errors)
	require.NotContains(t, result.Output, "number")
}

func TestTranspileSourceReportsParseErrors(t *testing.T) {
	result := printer.TranspileSource("local x = ", printer.Options{})
	require.NotEmpty(t, result.Errors)
	require.Empty(t, result.Output)
}
