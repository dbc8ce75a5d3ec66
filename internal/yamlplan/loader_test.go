package yamlplan

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
)

func writePlan(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "plan.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParseFile(t *testing.T) {
	// --- Arrange ---
	path := writePlan(t, `
steps:
  - type: restore
    name: posts
    arguments:
      source: src/data/posts-old.ts
      destination: src/data/posts.ts
  - type: strip_lines
    name: posts
    arguments:
      source: src/data/posts.ts
      targets:
        - "color: 'blue'"
    depends_on: [restore.posts]
`)

	// --- Act ---
	steps, err := ParseFile(context.Background(), path)

	// --- Assert ---
	require.NoError(t, err)
	require.Len(t, steps, 2)

	assert.Equal(t, "restore.posts", steps[0].Address())
	assert.Equal(t, cty.StringVal("src/data/posts-old.ts"), steps[0].Arguments["source"])
	assert.Equal(t, path, steps[0].SourceFile)

	assert.Equal(t, []string{"restore.posts"}, steps[1].DependsOn)
	targets := steps[1].Arguments["targets"]
	require.True(t, targets.Type().IsTupleType())
	assert.Equal(t, cty.StringVal("color: 'blue'"), targets.Index(cty.NumberIntVal(0)))
}

func TestParseFile_Empty(t *testing.T) {
	steps, err := ParseFile(context.Background(), writePlan(t, ""))
	require.NoError(t, err)
	assert.Empty(t, steps)
}

func TestParseFile_Errors(t *testing.T) {
	testCases := []struct {
		name      string
		content   string
		errSubstr string
	}{
		{
			name:      "malformed yaml",
			content:   "steps: [\n",
			errSubstr: "failed to decode YAML file",
		},
		{
			name:      "unknown key",
			content:   "steps:\n  - type: restore\n    name: a\n    argumnts: {}\n",
			errSubstr: "failed to decode YAML file",
		},
		{
			name:      "missing name",
			content:   "steps:\n  - type: restore\n",
			errSubstr: "both type and name are required",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseFile(context.Background(), writePlan(t, tc.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.errSubstr)
		})
	}
}

func TestParseFile_Missing(t *testing.T) {
	_, err := ParseFile(context.Background(), filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
