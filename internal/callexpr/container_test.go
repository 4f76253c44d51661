package callexpr_test

import (
	"sync"
	"testing"

	"github.com/hashicorp/hcl/v2"
	"github.com/stretchr/testify/require"
	"github.com/vk/vbaemu/internal/callexpr"
)

// parseExpr is a test helper to quickly get an hcl.Expression from a string.
func parseExpr(t *testing.T, src string) hcl.Expression {
	t.Helper()
	expr, diags := callexpr.Parse(src, "test.bas", 1)
	require.False(t, diags.HasErrors(), "Expression parsing failed: %s", diags.Error())
	return expr
}

func TestContainer_AddAndExtract(t *testing.T) {
	c := callexpr.NewContainer()
	c.Add(
		parseExpr(t, `UCase("hello")`),
		parseExpr(t, `vbCrLf`),
		parseExpr(t, `Mid(vbTab, 1)`),
		parseExpr(t, `vbCrLf`),
		parseExpr(t, `Shell("cmd /c ${Chr(34)}")`),
	)

	require.Equal(t, []string{"Chr", "Mid", "Shell", "UCase"}, c.CalledFunctions())
	require.Equal(t, []string{"vbCrLf", "vbTab"}, c.References())
	require.Equal(t, 5, c.Len())
}

func TestContainer_AddAfterExtract(t *testing.T) {
	c := callexpr.NewContainer()
	c.Add(parseExpr(t, `vbLf`))
	require.Equal(t, []string{"vbLf"}, c.References())

	c.Add(parseExpr(t, `vbCr`), parseExpr(t, `Len("x")`))
	require.Equal(t, []string{"Len"}, c.CalledFunctions())
	require.Equal(t, []string{"vbCr", "vbLf"}, c.References())
}

func TestContainer_ConcurrentAccess(t *testing.T) {
	c := callexpr.NewContainer()
	c.Add(
		parseExpr(t, `vbA`),
		parseExpr(t, `vbB`),
		parseExpr(t, `Len("x")`),
	)

	var wg sync.WaitGroup
	numGoroutines := 100
	wg.Add(numGoroutines)

	for i := 0; i < numGoroutines; i++ {
		go func(i int) {
			defer wg.Done()
			if i%2 == 0 {
				require.Len(t, c.References(), 2)
			} else {
				require.Len(t, c.CalledFunctions(), 1)
			}
		}(i)
	}

	wg.Wait()
}

func TestContainer_EdgeCases(t *testing.T) {
	t.Run("Empty Container", func(t *testing.T) {
		c := callexpr.NewContainer()
		require.Empty(t, c.References())
		require.Empty(t, c.CalledFunctions())
	})

	t.Run("Adding Nil Expressions", func(t *testing.T) {
		c := callexpr.NewContainer()
		c.Add(nil, parseExpr(t, `vbTab`), nil)
		require.Equal(t, []string{"vbTab"}, c.References())
	})
}
