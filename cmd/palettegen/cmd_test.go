package main

import (
	"bytes"
	"testing"
	"time"
)

func fixedNow() time.Time {
	return time.Date(2024, time.March, 5, 12, 0, 0, 0, time.UTC)
}

// execute runs the root command with a fixed clock and returns stdout and stderr.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	return executeAt(t, fixedNow(), args...)
}

// executeAt is execute with the clock pinned to at.
func executeAt(t *testing.T, at time.Time, args ...string) (string, string, error) {
	t.Helper()

	originalNow := now
	t.Cleanup(func() { now = originalNow })
	now = func() time.Time { return at }

	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}
