package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trakhound/entitystore/internal/server"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "trakhound "+server.Version+"\n", out)
}

func TestInspect(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plant.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
objects:
  object:
    - [main, /plant, directory, "", 1, s1, 1]
    - [main, /plant/line1, boolean, "", 1, s1, 2]
    - [main, /plant/line2, boolean, "", 1, s1, 3]
`), 0o600))

	out, err := run(t, "inspect", path, "--path", "/plant/*", "--arrays")
	require.NoError(t, err)

	assert.Contains(t, out, "decoded 3, added 3, skipped 0, targets 0")
	assert.Contains(t, out, "objects/object")
	assert.Contains(t, out, "2 objects match /plant/*")
	assert.Contains(t, out, "main:/plant/line2")
	assert.Contains(t, out, "objects:\n")
}

func TestInspectErrors(t *testing.T) {
	_, err := run(t, "inspect")
	assert.Error(t, err)

	_, err = run(t, "inspect", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestServeRejectsBadConfig(t *testing.T) {
	_, err := run(t, "serve", "--log-level", "loud")
	assert.ErrorContains(t, err, "log.level")
}
