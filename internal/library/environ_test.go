package library_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/vbaemu/internal/library"
	"github.com/vk/vbaemu/internal/testutil"
	"github.com/vk/vbaemu/internal/value"
)

func TestEnviron_ByName(t *testing.T) {
	h := testutil.NewHarness(t)

	testCases := []struct {
		name     string
		arg      value.Value
		expected value.Value
	}{
		{name: "upper case", arg: value.Text("COMSPEC"), expected: value.Text(`C:\Windows\system32\cmd.exe`)},
		{name: "mixed case", arg: value.Text("Temp"), expected: value.Text(`C:\Users\user\AppData\Local\Temp`)},
		{name: "not set", arg: value.Text("NO_SUCH_VARIABLE"), expected: value.Text("")},
		{name: "empty name", arg: value.Text(""), expected: value.Text("")},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := h.Call("Environ", tc.arg)
			require.NoError(t, err)
			assert.True(t, tc.expected.Equal(got), "expected %s, got %s", tc.expected, got)
		})
	}
}

func TestEnviron_ByNumber(t *testing.T) {
	h := testutil.NewHarness(t)
	h.Env.Environment = map[string]string{"B": "2", "A": "1"}

	got, err := h.Call("Environ", value.Int(1))
	require.NoError(t, err)
	assert.True(t, value.Text("A=1").Equal(got))

	got, err = h.Call("Environ", value.Int(2))
	require.NoError(t, err)
	assert.True(t, value.Text("B=2").Equal(got))

	got, err = h.Call("Environ", value.Int(3))
	require.NoError(t, err)
	assert.True(t, value.Text("").Equal(got))

	_, err = h.Call("Environ", value.Int(0))
	require.ErrorIs(t, err, library.ErrInvalidArgument)
}

func TestEnviron_ContractViolations(t *testing.T) {
	h := testutil.NewHarness(t)

	_, err := h.Call("Environ")
	require.ErrorIs(t, err, library.ErrInvalidArgument)

	_, err = h.Call("Environ", value.Null)
	require.ErrorIs(t, err, library.ErrInvalidArgument)

	_, err = h.Call("Environ", value.Array(value.Text("x")))
	require.ErrorIs(t, err, library.ErrInvalidArgument)
}

func TestEnviron_NoEnvironment(t *testing.T) {
	h := testutil.NewHarness(t)
	h.Env.Environment = nil

	got, err := h.Call("Environ", value.Text("COMSPEC"))
	require.NoError(t, err)
	assert.True(t, value.Text("").Equal(got))
}

func TestDefaultEnvironment_ReturnsFreshMap(t *testing.T) {
	a := library.DefaultEnvironment()
	a["COMSPEC"] = "changed"
	assert.Equal(t, `C:\Windows\system32\cmd.exe`, library.DefaultEnvironment()["COMSPEC"])
}
