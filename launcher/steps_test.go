package launcher

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunStepsStopsAtFirstFailure(t *testing.T) {
	var ran []string
	boom := errors.New("boom")

	steps := []Step{
		SimpleStep("first", func() error { ran = append(ran, "first"); return nil }),
		SimpleStep("second", func() error { ran = append(ran, "second"); return boom }),
		SimpleStep("third", func() error { ran = append(ran, "third"); return nil }),
	}

	var out bytes.Buffer
	err := RunSteps(&out, nil, steps)

	require.ErrorIs(t, err, boom)
	assert.ErrorContains(t, err, "second")
	assert.Equal(t, []string{"first", "second"}, ran)
	assert.Contains(t, out.String(), "[2/3] second")
	assert.Contains(t, out.String(), "failed: boom")
}

func TestRunStepsReportsSkips(t *testing.T) {
	steps := []Step{
		{Name: "noop", Action: func() StepResult { return Skipped("already done") }},
	}

	var out bytes.Buffer
	require.NoError(t, RunSteps(&out, nil, steps))
	assert.Contains(t, out.String(), "skipped: already done")
}

func TestRunStepsNilWriterAndLogger(t *testing.T) {
	steps := []Step{
		SimpleStep("quiet", func() error { return nil }),
	}
	assert.NoError(t, RunSteps(nil, nil, steps))
}

func TestStepEnsureDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")

	res := StepEnsureDir(dir).Action()
	require.NoError(t, res.Err)
	assert.False(t, res.Skip)
	assert.DirExists(t, dir)

	res = StepEnsureDir(dir).Action()
	require.NoError(t, res.Err)
	assert.True(t, res.Skip, "second run skips the existing directory")
}

func TestStepWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "requirements.txt")
	content := []byte("psutil>=5.9\n")

	res := StepWriteFile(path, content).Action()
	require.NoError(t, res.Err)
	assert.False(t, res.Skip)

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, content, got)

	res = StepWriteFile(path, content).Action()
	require.NoError(t, res.Err)
	assert.True(t, res.Skip, "identical content is left untouched")

	res = StepWriteFile(path, []byte("matplotlib>=3.7\n")).Action()
	require.NoError(t, res.Err)
	assert.False(t, res.Skip, "changed content is rewritten")
}
