package debug

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLog_Disabled(t *testing.T) {
	SetOutput(nil)
	t.Cleanup(func() { SetOutput(nil) })

	assert.False(t, Enabled())
	Log("dropped %d", 1)
}

func TestLog_WritesTimestampedLine(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	t.Cleanup(func() { SetOutput(nil) })

	require.True(t, Enabled())
	Logf("rendered %s", "parent")

	line := buf.String()
	assert.Regexp(t, `^\[\d{2}:\d{2}:\d{2}\.\d{3}\] rendered parent\n$`, line)
}

func TestInit_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "debug.log")
	require.NoError(t, Init(path))
	t.Cleanup(func() { SetOutput(nil) })

	Log("hello")
	require.NoError(t, Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "] hello\n")
	assert.False(t, Enabled())
}

func TestInit_EmptyPathDisables(t *testing.T) {
	require.NoError(t, Init(""))
	assert.False(t, Enabled())
}
