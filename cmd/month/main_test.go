package month

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alpacahq/bizday/calendar"
)

func TestRender(t *testing.T) {
	t.Parallel()
	out := render(calendar.Default.Month(2015, time.September))
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")

	assert.Equal(t, "September 2015", lines[0])
	// September 2015 starts on a Tuesday
	assert.True(t, strings.HasPrefix(lines[2], strings.Repeat(" ", 10)+"  1 "))
	assert.Contains(t, out, " 21*")
	assert.Contains(t, out, " 22*")
	assert.Contains(t, out, " 23*")
	assert.Contains(t, out, "[ 5]")
	assert.Len(t, lines, 7)
}

func TestExecuteMonth(t *testing.T) {
	var buf bytes.Buffer
	Cmd.SetOut(&buf)
	require.Nil(t, executeMonth(Cmd, []string{"2024", "2"}))
	assert.Contains(t, buf.String(), "February 2024")
	assert.Contains(t, buf.String(), " 29 ")

	assert.NotNil(t, executeMonth(Cmd, []string{"2024", "13"}))
	assert.NotNil(t, executeMonth(Cmd, []string{"year", "1"}))
}
