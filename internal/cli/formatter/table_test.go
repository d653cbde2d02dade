package formatter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderTable_AlignsColumns(t *testing.T) {
	out := RenderTable(
		[]string{"TASK", "TIME"},
		[][]string{
			{"Check for Data Breaches", "5-10 min"},
			{"Secure Your Browser", "10-15 min"},
		},
	)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 4)

	// The second column starts at the same offset in every data row.
	assert.Equal(t,
		strings.Index(lines[2], "5-10 min"),
		strings.Index(lines[3], "10-15 min"))
}

func TestRenderTable_ShortRowsLeaveBlanks(t *testing.T) {
	out := RenderTable(
		[]string{"A", "B", "C"},
		[][]string{{"one"}},
	)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[2], "one")
}

func TestRenderTable_NoHeadersNoOutput(t *testing.T) {
	assert.Empty(t, RenderTable(nil, [][]string{{"x"}}))
}

func TestRenderBox_IncludesTitleAndContent(t *testing.T) {
	out := RenderBox("Security Status", "hello")

	assert.Contains(t, out, "SECURITY STATUS")
	assert.Contains(t, out, "hello")
}
