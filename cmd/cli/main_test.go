package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/mendgrid/internal/cli"
	"github.com/vk/mendgrid/internal/repair"
)

const corruptedPosts = `export const posts = [
  {
    id: 1,
    title: "Hello",
  },
  color: 'blue'
  {
    id: 2,
    title: "World",
  },
  color: "blue"
];
`

const cleanPosts = `export const posts = [
  {
    id: 1,
    title: "Hello",
  },
  {
    id: 2,
    title: "World",
  },
];
`

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// The "-h" (help) flag should cause cli.Parse to return `shouldExit=true`.
	args := []string{"-h"}
	out := &bytes.Buffer{}

	// --- Act ---
	err := run(context.Background(), out, &bytes.Buffer{}, args)

	// --- Assert ---
	require.NoError(t, err, "run() should return a nil error when shouldExit is true")
	require.Contains(t, out.String(), "Usage:", "Expected help text to be printed to the output buffer")
}

func TestRun_ParseError(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	args := []string{"run", "--this-is-not-a-valid-flag"}
	out := &bytes.Buffer{}

	// --- Act ---
	err := run(context.Background(), out, &bytes.Buffer{}, args)

	// --- Assert ---
	require.Error(t, err, "run() should return an error when argument parsing fails")
	var exitErr *cli.ExitError
	require.ErrorAs(t, err, &exitErr)
	require.Equal(t, 2, exitErr.Code)
	require.Contains(t, err.Error(), "unknown flag: --this-is-not-a-valid-flag")
}

func TestRun_InvalidPlan(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	invalidHCL := `
		step "restore" "A" {
			arguments {
		// Missing closing brace here
	`
	tempDir := t.TempDir()
	filePath := filepath.Join(tempDir, "main.hcl")
	require.NoError(t, os.WriteFile(filePath, []byte(invalidHCL), 0o600), "failed to set up test file")

	// --- Act ---
	err := run(context.Background(), &bytes.Buffer{}, &bytes.Buffer{}, []string{"run", filePath})

	// --- Assert ---
	require.Error(t, err)
	var exitErr *cli.ExitError
	require.False(t, errors.As(err, &exitErr), "plan errors are operation failures, not usage errors")
	require.Contains(t, err.Error(), "failed to parse")
}

func TestRun_RestoreThenStrip(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	dir := t.TempDir()
	backup := filepath.Join(dir, "posts-old.ts")
	target := filepath.Join(dir, "posts.ts")
	require.NoError(t, os.WriteFile(backup, []byte(corruptedPosts), 0o644))
	require.NoError(t, os.WriteFile(target, []byte("export const posts = [\n  {\n    id: 1,\n"), 0o644))
	out := &bytes.Buffer{}

	// --- Act ---
	restoreErr := run(context.Background(), out, &bytes.Buffer{}, []string{"restore", backup, target})
	stripErr := run(context.Background(), out, &bytes.Buffer{}, []string{"strip", target})

	// --- Assert ---
	require.NoError(t, restoreErr)
	require.NoError(t, stripErr)

	restored, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(corruptedPosts, string(restored)), "restore must copy the backup verbatim")

	fixed, err := os.ReadFile(target + repair.FixedSuffix)
	require.NoError(t, err)
	if diff := cmp.Diff(cleanPosts, string(fixed)); diff != "" {
		t.Errorf("stripped output mismatch (-want +got):\n%s", diff)
	}

	assert.Contains(t, out.String(), "removed 2 line(s)")
	assert.Contains(t, out.String(), "files have been fixed!")
}

func TestRun_YAMLPlanWithCustomTargets(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	dir := t.TempDir()
	src := filepath.Join(dir, "theme.ts")
	dst := filepath.Join(dir, "theme.clean.ts")
	require.NoError(t, os.WriteFile(src, []byte("a\ncolor: 'red'\ncolor: 'blue'\nb\n"), 0o644))
	plan := filepath.Join(dir, "plan.yml")
	require.NoError(t, os.WriteFile(plan, []byte(`
steps:
  - type: strip_lines
    name: theme
    arguments:
      source: `+src+`
      destination: `+dst+`
      targets: ["color: 'red'"]
`), 0o644))

	// --- Act ---
	err := run(context.Background(), &bytes.Buffer{}, &bytes.Buffer{}, []string{"run", plan})

	// --- Assert ---
	require.NoError(t, err)
	got, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "a\ncolor: 'blue'\nb\n", string(got), "custom targets replace the defaults")
}

func TestRun_MissingSource(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	dir := t.TempDir()
	logs := &bytes.Buffer{}
	args := []string{"--log-format", "json", "restore", filepath.Join(dir, "gone.ts"), filepath.Join(dir, "posts.ts")}

	// --- Act ---
	err := run(context.Background(), &bytes.Buffer{}, logs, args)

	// --- Assert ---
	require.Error(t, err)
	require.ErrorIs(t, err, repair.ErrNotFound)
	assert.Contains(t, logs.String(), `"msg":"Step failed."`)
	_, statErr := os.Stat(filepath.Join(dir, "posts.ts"))
	assert.ErrorIs(t, statErr, os.ErrNotExist)
}

func TestRun_StripRefusesToOverwriteSource(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	src := filepath.Join(dir, "posts.ts")
	require.NoError(t, os.WriteFile(src, []byte(corruptedPosts), 0o644))

	err := run(context.Background(), &bytes.Buffer{}, &bytes.Buffer{}, []string{"strip", src, src})

	require.ErrorIs(t, err, repair.ErrInvalidArgument)
	got, readErr := os.ReadFile(src)
	require.NoError(t, readErr)
	assert.Equal(t, corruptedPosts, string(got))
}
