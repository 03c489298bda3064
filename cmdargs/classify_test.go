package cmdargs

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var defaultKeyValueSeparators = []string{":", "="}

func testClassify(arg string, keyValueSeparators []string, expected Token) func(t *testing.T) {
	return func(t *testing.T) {
		t.Helper()
		t.Parallel()
		actual := Classify(arg, keyValueSeparators)
		require.Equal(t, expected.Kind, actual.Kind)
		require.Equal(t, expected.Arg, actual.Arg)
		require.Equal(t, expected.Key, actual.Key)
		require.Equal(t, expected.Value, actual.Value)
		require.Equal(t, expected.Integer, actual.Integer)
		require.True(t, expected.Decimal.Equal(actual.Decimal),
			"expected decimal %s, got %s", expected.Decimal, actual.Decimal)
	}
}

func TestClassify(t *testing.T) {
	t.Parallel()

	t.Run("named_colon", testClassify(
		"solution:value1", []string{":", "|"},
		Token{Arg: "solution:value1", Kind: KindNamed, Key: "solution", Value: "value1"},
	))

	t.Run("named_pipe", testClassify(
		"s|value2", []string{":", "|"},
		Token{Arg: "s|value2", Kind: KindNamed, Key: "s", Value: "value2"},
	))

	t.Run("named_key_keeps_dashes", testClassify(
		"--key=value", defaultKeyValueSeparators,
		Token{Arg: "--key=value", Kind: KindNamed, Key: "--key", Value: "value"},
	))

	t.Run("config_order_beats_position", testClassify(
		"a=b:c", defaultKeyValueSeparators,
		Token{Arg: "a=b:c", Kind: KindNamed, Key: "a=b", Value: "c"},
	))

	t.Run("config_order_beats_position_reversed", testClassify(
		"a=b:c", []string{"=", ":"},
		Token{Arg: "a=b:c", Kind: KindNamed, Key: "a", Value: "b:c"},
	))

	t.Run("leading_separator_is_not_named", testClassify(
		"=1", []string{"="},
		Token{Arg: "=1", Kind: KindText},
	))

	t.Run("leading_separator_falls_to_next_separator", testClassify(
		":a=b", defaultKeyValueSeparators,
		Token{Arg: ":a=b", Kind: KindNamed, Key: ":a", Value: "b"},
	))

	t.Run("only_first_occurrence_counts", testClassify(
		"=a=b", []string{"="},
		Token{Arg: "=a=b", Kind: KindText},
	))

	t.Run("value_trimmed", testClassify(
		`solution c:\App1\App1.sln`, []string{" "},
		Token{Arg: `solution c:\App1\App1.sln`, Kind: KindNamed, Key: "solution", Value: `c:\App1\App1.sln`},
	))

	t.Run("empty_value", testClassify(
		"key=", defaultKeyValueSeparators,
		Token{Arg: "key=", Kind: KindNamed, Key: "key", Value: ""},
	))

	t.Run("multi_char_separator", testClassify(
		"key=>value", []string{"=>"},
		Token{Arg: "key=>value", Kind: KindNamed, Key: "key", Value: "value"},
	))

	t.Run("integer", testClassify(
		"123", defaultKeyValueSeparators,
		Token{Arg: "123", Kind: KindInteger, Integer: 123},
	))

	t.Run("negative_integer", testClassify(
		"-42", defaultKeyValueSeparators,
		Token{Arg: "-42", Kind: KindInteger, Integer: -42},
	))

	t.Run("integer_overflow_is_decimal", testClassify(
		"99999999999999999999", defaultKeyValueSeparators,
		Token{Arg: "99999999999999999999", Kind: KindDecimal, Decimal: decimal.RequireFromString("99999999999999999999")},
	))

	t.Run("decimal", testClassify(
		"45.67", defaultKeyValueSeparators,
		Token{Arg: "45.67", Kind: KindDecimal, Decimal: decimal.RequireFromString("45.67")},
	))

	t.Run("negative_decimal_without_int_part", testClassify(
		"-.5", defaultKeyValueSeparators,
		Token{Arg: "-.5", Kind: KindDecimal, Decimal: decimal.RequireFromString("-0.5")},
	))

	t.Run("exponent_is_text", testClassify(
		"1e5", defaultKeyValueSeparators,
		Token{Arg: "1e5", Kind: KindText},
	))

	t.Run("two_points_is_text", testClassify(
		"1.2.3", defaultKeyValueSeparators,
		Token{Arg: "1.2.3", Kind: KindText},
	))

	t.Run("text", testClassify(
		"hello", defaultKeyValueSeparators,
		Token{Arg: "hello", Kind: KindText},
	))

	t.Run("no_key_value_separators", testClassify(
		"a:b", nil,
		Token{Arg: "a:b", Kind: KindText},
	))
}

func TestParseDecimal(t *testing.T) {
	t.Parallel()

	for _, s := range []string{"0.5", "+1.25", "1.", ".5", "-0.0", "10"} {
		_, ok := ParseDecimal(s)
		require.True(t, ok, s)
	}
	for _, s := range []string{"", ".", "-", "+.", "1,5", "NaN", "Inf", "0x10", "1_000", " 1"} {
		_, ok := ParseDecimal(s)
		require.False(t, ok, s)
	}
}

func TestKind_String(t *testing.T) {
	t.Parallel()

	require.Equal(t, "named", KindNamed.String())
	require.Equal(t, "integer", KindInteger.String())
	require.Equal(t, "decimal", KindDecimal.String())
	require.Equal(t, "text", KindText.String())
	require.Equal(t, "unknown", Kind(42).String())
}
