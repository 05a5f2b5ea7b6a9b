package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append(args, "--log-level", "error"))
	require.NoError(t, rootCmd.Execute())
	return out.String()
}

func TestEases_ListsCatalog(t *testing.T) {
	out := execute(t, "eases")
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Contains(t, lines, "Linear")
	assert.Contains(t, lines, "OutBounce")
}

func TestEases_SamplesCurve(t *testing.T) {
	out := execute(t, "eases", "Linear", "--samples", "3")
	assert.Contains(t, out, " 0.50   0.5000")
	assert.Contains(t, out, " 1.00   1.0000")
}

func TestReplay_PrintsFinalValues(t *testing.T) {
	script := `steps:
  - action: advance
    dt: 0.5
    times: 2
  - action: pause
    tween: a
  - action: advance
    dt: 1
`
	path := filepath.Join(t.TempDir(), "script.yaml")
	require.NoError(t, os.WriteFile(path, []byte(script), 0o600))

	out := execute(t, "replay", path)
	assert.Contains(t, out, "a:   50.000 idle")
	assert.Contains(t, out, "b:  100.000 finished")
	assert.Contains(t, out, "c:  100.000 running")
}

func TestRun_PrintsStats(t *testing.T) {
	out := execute(t, "run", "--tweens", "10", "--ticks", "70", "--dt", "0.02", "--duration", "1")
	assert.Contains(t, out, "completed: 10")
	assert.Contains(t, out, "active:    0")
	assert.Contains(t, out, `tween_tweens_completed_total{type="float64"} 10`)
}
