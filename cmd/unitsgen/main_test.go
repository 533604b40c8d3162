package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeusync/measures/internal/manifest"
	"github.com/zeusync/measures/pkg/relation"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--log-format", "json"}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func writeManifest(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, "relations.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

const validManifest = `package: units
relations:
  - "Newton * Metre == Joule"
  - "Hertz == 1 / Second"
`

func TestExplainCommand(t *testing.T) {
	out, err := run(t, "explain", "Newton", "*", "Metre", "==", "Joule")
	require.NoError(t, err)
	assert.Equal(t, strings.Join([]string{
		"normalised: Newton * Metre == Joule",
		"MulNewtonByMetre: Newton * Metre -> Joule",
		"MulMetreByNewton: Metre * Newton -> Joule",
		"DivJouleByNewton: Joule / Newton -> Metre",
		"DivJouleByMetre: Joule / Metre -> Newton",
	}, "\n")+"\n", out)

	_, err = run(t, "explain", "Metre:2 / Second:2 == Foo")
	assert.ErrorIs(t, err, relation.ErrVectorDivisor)

	_, err = run(t, "explain")
	assert.Error(t, err)
}

func TestCheckCommand(t *testing.T) {
	path := writeManifest(t, t.TempDir(), validManifest)

	out, err := run(t, "check", path)
	require.NoError(t, err)
	assert.Equal(t, path+": 2 relations, 8 operators\n", out)

	bad := writeManifest(t, t.TempDir(), "package: units\nrelations:\n  - \"Metre X Second == Foo\"\n")
	_, err = run(t, "check", path, bad)
	assert.ErrorIs(t, err, manifest.ErrInvalidManifest)
	assert.ErrorIs(t, err, relation.ErrCrossDimension)
}

func TestGenerateCommand(t *testing.T) {
	dirA, dirB := t.TempDir(), t.TempDir()
	pathA := writeManifest(t, dirA, validManifest)
	pathB := writeManifest(t, dirB, "package: other\noutput: ops.go\nrelations:\n  - \"Newton:3 X Metre:3 == NewtonMetre:3\"\n")

	out, err := run(t, "-v", "generate", pathA, pathB)
	require.NoError(t, err)
	wantA := filepath.Join(dirA, manifest.DefaultOutput)
	wantB := filepath.Join(dirB, "ops.go")
	assert.Equal(t, wantA+"\n"+wantB+"\n", out)

	src, err := os.ReadFile(wantA)
	require.NoError(t, err)
	assert.Contains(t, string(src), "func InvSecond[N num.Float]")

	src, err = os.ReadFile(wantB)
	require.NoError(t, err)
	assert.Contains(t, string(src), "package other")
	assert.Contains(t, string(src), "func CrossNewton3dByMetre3d[N num.Float]")
}

func TestGenerateCommandOutputDir(t *testing.T) {
	path := writeManifest(t, t.TempDir(), validManifest)
	outDir := t.TempDir()

	out, err := run(t, "generate", "-o", outDir, path)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(outDir, manifest.DefaultOutput)+"\n", out)
	assert.FileExists(t, filepath.Join(outDir, manifest.DefaultOutput))
}

func TestGenerateCommandFailure(t *testing.T) {
	_, err := run(t, "generate", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = run(t, "--log-format", "xml", "generate")
	assert.Error(t, err)
}
