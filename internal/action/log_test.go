package action

import (
	"fmt"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/vbaemu/internal/value"
)

func TestLog_PreservesInsertionOrder(t *testing.T) {
	l := NewLog()
	l.ReportAction(CategoryDisplayMessage, value.Text("hi"), "MsgBox")
	l.ReportAction(CategoryExecuteCommand, value.Text("calc.exe"), "Shell")

	expected := []Record{
		{Category: CategoryDisplayMessage, Value: value.Text("hi"), Source: "MsgBox"},
		{Category: CategoryExecuteCommand, Value: value.Text("calc.exe"), Source: "Shell"},
	}
	if diff := cmp.Diff(expected, l.Records()); diff != "" {
		t.Errorf("records mismatch (-want +got):\n%s", diff)
	}
}

func TestLog_RecordsIsSnapshot(t *testing.T) {
	l := NewLog()
	l.ReportAction("Custom", value.Int(1), "test")

	snap := l.Records()
	snap[0].Category = "tampered"
	l.ReportAction("Custom", value.Int(2), "test")

	require.Len(t, snap, 1)
	assert.Equal(t, "Custom", l.Records()[0].Category)
	assert.Equal(t, 2, l.Len())
}

// TestLog_ConcurrentAppends verifies that concurrent reporters never lose
// records and that each goroutine's own records keep their relative order.
func TestLog_ConcurrentAppends(t *testing.T) {
	l := NewLog()
	numGoroutines := 50
	perGoroutine := 20
	var wg sync.WaitGroup
	wg.Add(numGoroutines)

	for g := 0; g < numGoroutines; g++ {
		go func(g int) {
			defer wg.Done()
			for i := 0; i < perGoroutine; i++ {
				l.ReportAction(CategoryExecuteCommand, value.Int(int64(i)), fmt.Sprintf("worker-%d", g))
			}
		}(g)
	}
	wg.Wait()

	records := l.Records()
	require.Len(t, records, numGoroutines*perGoroutine)

	next := make(map[string]int64)
	for _, r := range records {
		i, ok := r.Value.Integer()
		require.True(t, ok)
		assert.Equal(t, next[r.Source], i, "out-of-order record for %s", r.Source)
		next[r.Source] = i + 1
	}
}
