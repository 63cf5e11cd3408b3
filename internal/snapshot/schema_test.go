package snapshot

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_JSON(t *testing.T) {
	path := writeFile(t, "export.json", `{
		"schema_version": 1,
		"exported_at": "2025-03-01T12:00:00Z",
		"projects": [{"id": "p1", "name": "Portal Redesign", "status": "execution"}],
		"wbs": {"p1": [{"id": "w1", "name": "Design", "status": "in_progress"}]}
	}`)

	snap, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 1, snap.SchemaVersion)
	assert.Equal(t, "2025-03-01T12:00:00Z", snap.ExportedAt)
	require.Len(t, snap.Projects, 1)
	assert.Equal(t, "Portal Redesign", snap.Projects[0].Name)
	require.Len(t, snap.WBS["p1"], 1)
	assert.Equal(t, "Design", snap.WBS["p1"][0].Name)
}

func TestLoad_YAML(t *testing.T) {
	path := writeFile(t, "export.yaml", `
schema_version: 1
exported_at: "2025-03-01T12:00:00Z"
projects:
  - id: p1
    name: Portal Redesign
    status: execution
risks:
  p1:
    - id: r1
      title: Scope creep
      probability: high
      impact: medium
`)

	snap, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 1, snap.SchemaVersion)
	require.Len(t, snap.Projects, 1)
	assert.Equal(t, "Portal Redesign", snap.Projects[0].Name)
	require.Len(t, snap.Risks["p1"], 1)
	assert.Equal(t, "Scope creep", snap.Risks["p1"][0].Title)
}

func TestLoad_YmlExtension(t *testing.T) {
	path := writeFile(t, "export.yml", "schema_version: 1\n")

	snap, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 1, snap.SchemaVersion)
}

func TestLoad_UnsupportedExtension(t *testing.T) {
	path := writeFile(t, "export.txt", "whatever")

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported snapshot format")
}

func TestLoad_MalformedJSON(t *testing.T) {
	path := writeFile(t, "export.json", `{"schema_version": `)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing snapshot file")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)
	assert.True(t, os.IsNotExist(err))
}
