package library_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/vbaemu/internal/library"
	"github.com/vk/vbaemu/internal/testutil"
	"github.com/vk/vbaemu/internal/value"
)

func TestLen(t *testing.T) {
	h := testutil.NewHarness(t)

	testCases := []struct {
		name     string
		arg      value.Value
		expected value.Value
	}{
		{name: "empty string", arg: value.Text(""), expected: value.Int(0)},
		{name: "ascii", arg: value.Text("Hello"), expected: value.Int(5)},
		{name: "characters not bytes", arg: value.Text("日本語"), expected: value.Int(3)},
		{name: "control characters", arg: value.Text("\r\n"), expected: value.Int(2)},
		{name: "array elements", arg: value.Array(value.Int(1), value.Null, value.Text("x")), expected: value.Int(3)},
		{name: "null propagates", arg: value.Null, expected: value.Null},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := h.Call("len", tc.arg)
			require.NoError(t, err)
			assert.True(t, tc.expected.Equal(got), "expected %s, got %s", tc.expected, got)
		})
	}
}

func TestLen_ContractViolations(t *testing.T) {
	h := testutil.NewHarness(t)

	_, err := h.Call("Len")
	assert.ErrorIs(t, err, library.ErrInvalidArgument)

	_, err = h.Call("Len", value.Text("a"), value.Text("b"))
	assert.ErrorIs(t, err, library.ErrInvalidArgument)

	_, err = h.Call("Len", value.Int(42))
	var argErr *library.InvalidArgumentError
	require.True(t, errors.As(err, &argErr))
	assert.Equal(t, library.CodeTypeMismatch, argErr.Code)
}

func TestLeftRight(t *testing.T) {
	h := testutil.NewHarness(t)

	testCases := []struct {
		fn       string
		s        value.Value
		n        int64
		expected value.Value
	}{
		{fn: "Left", s: value.Text("Hello"), n: 2, expected: value.Text("He")},
		{fn: "Left", s: value.Text("Hello"), n: 0, expected: value.Text("")},
		{fn: "Left", s: value.Text("Hello"), n: 99, expected: value.Text("Hello")},
		{fn: "Left", s: value.Null, n: 2, expected: value.Null},
		{fn: "Right", s: value.Text("Hello"), n: 3, expected: value.Text("llo")},
		{fn: "Right", s: value.Text("Hello"), n: 0, expected: value.Text("")},
		{fn: "Right", s: value.Text("héllo"), n: 4, expected: value.Text("éllo")},
		{fn: "Right", s: value.Int(2024), n: 2, expected: value.Text("24")},
	}

	for _, tc := range testCases {
		t.Run(tc.fn+" "+tc.s.String(), func(t *testing.T) {
			got, err := h.Call(tc.fn, tc.s, value.Int(tc.n))
			require.NoError(t, err)
			assert.True(t, tc.expected.Equal(got), "expected %s, got %s", tc.expected, got)
		})
	}

	_, err := h.Call("Left", value.Text("Hello"), value.Int(-1))
	assert.ErrorIs(t, err, library.ErrInvalidArgument)
	_, err = h.Call("Right", value.Text("Hello"), value.Text("1"))
	assert.ErrorIs(t, err, library.ErrInvalidArgument)
}

func TestCaseConversion(t *testing.T) {
	h := testutil.NewHarness(t)

	got, err := h.Call("UCase", value.Text("WScript.Shell"))
	require.NoError(t, err)
	assert.True(t, value.Text("WSCRIPT.SHELL").Equal(got))

	got, err = h.Call("lcase", value.Text("PowerShell -EncodedCommand"))
	require.NoError(t, err)
	assert.True(t, value.Text("powershell -encodedcommand").Equal(got))

	got, err = h.Call("LCase", value.Null)
	require.NoError(t, err)
	assert.True(t, got.IsNull())
}

func TestStrReverse(t *testing.T) {
	h := testutil.NewHarness(t)

	got, err := h.Call("StrReverse", value.Text("exe.clac"))
	require.NoError(t, err)
	assert.True(t, value.Text("calc.exe").Equal(got))

	got, err = h.Call("StrReverse", value.Text(""))
	require.NoError(t, err)
	assert.True(t, value.Text("").Equal(got))

	_, err = h.Call("StrReverse", value.Null)
	var argErr *library.InvalidArgumentError
	require.True(t, errors.As(err, &argErr))
	assert.Equal(t, library.CodeInvalidUseOfNull, argErr.Code)
}

func TestChrAsc(t *testing.T) {
	h := testutil.NewHarness(t)

	got, err := h.Call("Chr", value.Int(65))
	require.NoError(t, err)
	assert.True(t, value.Text("A").Equal(got))

	got, err = h.Call("Chr", value.Int(128))
	require.NoError(t, err)
	assert.True(t, value.Text("€").Equal(got))

	got, err = h.Call("Asc", value.Text("€uro"))
	require.NoError(t, err)
	assert.True(t, value.Int(128).Equal(got))

	got, err = h.Call("Asc", value.Text("calc"))
	require.NoError(t, err)
	assert.True(t, value.Int(99).Equal(got))

	got, err = h.Call("Asc", value.Text("日"))
	require.NoError(t, err)
	assert.True(t, value.Int('?').Equal(got))

	for _, args := range [][]value.Value{
		{value.Int(256)},
		{value.Int(-1)},
		{value.Null},
		{value.Text("A")},
	} {
		_, err := h.Call("Chr", args...)
		assert.ErrorIs(t, err, library.ErrInvalidArgument, "Chr(%v)", args)
	}

	_, err = h.Call("Asc", value.Text(""))
	assert.ErrorIs(t, err, library.ErrInvalidArgument)
	_, err = h.Call("Asc", value.Null)
	assert.ErrorIs(t, err, library.ErrInvalidArgument)
}

func TestChrAsc_RoundTrip(t *testing.T) {
	h := testutil.NewHarness(t)
	for code := int64(0); code < 256; code++ {
		// Bytes left undefined by Windows-1252 decode to C1 controls that
		// encode back to themselves, so every code survives the round trip.
		ch, err := h.Call("Chr", value.Int(code))
		require.NoError(t, err)
		back, err := h.Call("Asc", ch)
		require.NoError(t, err)
		assert.True(t, value.Int(code).Equal(back), "code %d", code)
	}
}
