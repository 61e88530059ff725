package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// resetFlags restores every package-level flag variable to its declared
// default so sequential Execute calls don't inherit earlier test state.
func resetFlags() {
	verbose = false
	baseShutter, baseAperture, baseISO = "", "", ""
	toShutter, toAperture, toISO = "", "", ""
	solveFor = ""
	stepName = "third"
	evComp = 0
}

// execute runs the root command with args and returns captured stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags()

	buf := &bytes.Buffer{}
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()

	return buf.String(), err
}

func TestSolveCommand(t *testing.T) {
	out, err := execute(t, "solve",
		"--shutter", "1/125", "--aperture", "f/5.6", "--iso", "100",
		"--to-aperture", "f/2.8", "--to-iso", "100",
		"--for", "shutter", "--step", "full")
	require.NoError(t, err)
	require.Equal(t, "1/500\n", out)
}

func TestSolveCommand_Compensation(t *testing.T) {
	out, err := execute(t, "solve",
		"--shutter", "1/125", "--aperture", "f/5.6", "--iso", "100",
		"--to-aperture", "f/5.6", "--to-iso", "100",
		"--for", "shutter", "--step", "full", "--ev", "1.0")
	require.NoError(t, err)
	require.Equal(t, "1/60\n", out)

	// a following run without --ev must not inherit the 1.0 above
	out, err = execute(t, "solve",
		"--shutter", "1/125", "--aperture", "f/5.6", "--iso", "100",
		"--to-aperture", "f/5.6", "--to-iso", "100",
		"--for", "shutter", "--step", "full")
	require.NoError(t, err)
	require.Equal(t, "1/125\n", out)
}

func TestSolveCommand_FailureExitsNonZero(t *testing.T) {
	_, err := execute(t, "solve",
		"--shutter", "1/125", "--aperture", "f/5.6", "--iso", "100",
		"--to-shutter", "1/8000", "--to-iso", "50",
		"--for", "aperture", "--step", "full")
	require.Error(t, err)
	require.Contains(t, err.Error(), "overexposed")
}

func TestSolveCommand_UnknownStep(t *testing.T) {
	_, err := execute(t, "solve",
		"--shutter", "1/125", "--aperture", "f/5.6", "--iso", "100",
		"--to-aperture", "f/2.8", "--to-iso", "100",
		"--for", "shutter", "--step", "quarter")
	require.Error(t, err)
	require.Contains(t, err.Error(), "--step")
}

func TestLadderCommand(t *testing.T) {
	out, err := execute(t, "ladder", "iso", "--step", "full")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 10)
	require.Equal(t, "50", lines[0])
	require.Equal(t, "25600", lines[9])
}

func TestEVCommand(t *testing.T) {
	out, err := execute(t, "ev",
		"--shutter", "2", "--aperture", "f/2", "--iso", "100")
	require.NoError(t, err)
	require.Equal(t, "-1.00 EV\n", out)
}
