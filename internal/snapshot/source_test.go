package snapshot

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vijaykmarupuudi/planhub/internal/api"
)

func marshalSnapshot(t *testing.T, snap *Snapshot) []byte {
	t.Helper()
	data, err := json.Marshal(snap)
	require.NoError(t, err)
	return data
}

func newTestSource(t *testing.T, snap *Snapshot) *Source {
	t.Helper()
	path := filepath.Join(t.TempDir(), "export.json")
	require.NoError(t, os.WriteFile(path, marshalSnapshot(t, snap), 0o644))
	return New(path)
}

func TestSource_ServesProjects(t *testing.T) {
	snap := validSnapshot()
	snap.Projects = append(snap.Projects, api.ProjectRecord{ID: "p2", Name: "ERP Integration", Status: "planning"})
	src := newTestSource(t, snap)

	projects, err := src.Projects(context.Background())
	require.NoError(t, err)
	require.Len(t, projects, 2)
	assert.Equal(t, "Portal Redesign", projects[0].Name)
	assert.Equal(t, "ERP Integration", projects[1].Name)
}

func TestSource_ProjectByID(t *testing.T) {
	src := newTestSource(t, validSnapshot())

	project, err := src.Project(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, "Portal Redesign", project.Name)
	require.NotNil(t, project.StartDate)
	assert.Equal(t, "2025-01-15", project.StartDate.Format("2006-01-02"))
}

func TestSource_UnknownProjectIsNotFound(t *testing.T) {
	src := newTestSource(t, validSnapshot())
	ctx := context.Background()

	_, err := src.Project(ctx, "nope")
	assert.ErrorIs(t, err, api.ErrNotFound)

	_, err = src.Breakdown(ctx, "nope")
	assert.ErrorIs(t, err, api.ErrNotFound)

	_, err = src.Risks(ctx, "nope")
	assert.ErrorIs(t, err, api.ErrNotFound)
}

func TestSource_BreakdownDerivesScheduleItems(t *testing.T) {
	snap := validSnapshot()
	snap.WBS["p1"] = []api.WBSTaskRecord{
		{ID: "w1", ProjectID: "p1", Name: "Design", Status: "in_progress", WBSCode: "1", StartDate: ptrStr("2025-02-01"), EndDate: ptrStr("2025-02-20")},
		{ID: "w2", ProjectID: "p1", Name: "Build", Status: "not_started", WBSCode: "2", ParentID: ptrStr("w1")},
	}
	src := newTestSource(t, snap)

	b, err := src.Breakdown(context.Background(), "p1")
	require.NoError(t, err)
	require.Len(t, b.Nodes, 2)
	require.Len(t, b.Tasks, 2)
	assert.Equal(t, "Design", b.Tasks[0].Name)
	require.NotNil(t, b.Tasks[0].StartDate)
	assert.Empty(t, b.CriticalPath)
}

func TestSource_ExplicitTasksOverrideDerived(t *testing.T) {
	snap := validSnapshot()
	snap.Tasks = map[string][]api.WBSTaskRecord{
		"p1": {{ID: "t1", ProjectID: "p1", Name: "Sprint review", Status: "not_started"}},
	}
	src := newTestSource(t, snap)

	b, err := src.Breakdown(context.Background(), "p1")
	require.NoError(t, err)
	require.Len(t, b.Tasks, 1)
	assert.Equal(t, "Sprint review", b.Tasks[0].Name)
	require.Len(t, b.Nodes, 1)
	assert.Equal(t, "Design", b.Nodes[0].Name)
}

func TestSource_EmptyCollectionsForKnownProject(t *testing.T) {
	snap := validSnapshot()
	snap.Projects = append(snap.Projects, api.ProjectRecord{ID: "p2", Name: "Bare", Status: "initiation"})
	src := newTestSource(t, snap)
	ctx := context.Background()

	milestones, err := src.Milestones(ctx, "p2")
	require.NoError(t, err)
	assert.Empty(t, milestones)

	b, err := src.Breakdown(ctx, "p2")
	require.NoError(t, err)
	assert.Empty(t, b.Nodes)

	items, err := src.BudgetItems(ctx, "p2")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestSource_StatsDerivedFromProjects(t *testing.T) {
	snap := validSnapshot()
	snap.Projects = []api.ProjectRecord{
		{ID: "p1", Name: "A", Status: "execution"},
		{ID: "p2", Name: "B", Status: "completed"},
		{ID: "p3", Name: "C", Status: "planning"},
	}
	src := newTestSource(t, snap)

	stats, err := src.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, stats.TotalProjects)
	assert.Equal(t, 2, stats.ActiveProjects)
	assert.Equal(t, 1, stats.CompletedProjects)
	assert.InDelta(t, 33.3, stats.CompletionRate, 0.001)
}

func TestSource_ReloadsWhenFileChanges(t *testing.T) {
	path := filepath.Join(t.TempDir(), "export.json")
	require.NoError(t, os.WriteFile(path, marshalSnapshot(t, validSnapshot()), 0o644))
	src := New(path)
	ctx := context.Background()

	projects, err := src.Projects(ctx)
	require.NoError(t, err)
	require.Len(t, projects, 1)

	grown := validSnapshot()
	grown.Projects = append(grown.Projects, api.ProjectRecord{ID: "p2", Name: "ERP Integration", Status: "planning"})
	require.NoError(t, os.WriteFile(path, marshalSnapshot(t, grown), 0o644))

	projects, err = src.Projects(ctx)
	require.NoError(t, err)
	assert.Len(t, projects, 2)
}

func TestSource_ValidationFailureListsEveryProblem(t *testing.T) {
	snap := validSnapshot()
	snap.SchemaVersion = 0
	snap.Projects[0].Name = ""
	src := newTestSource(t, snap)

	err := src.Health(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "snapshot validation failed (2 errors):")
	assert.Contains(t, err.Error(), "\n  - invalid schema_version 0")
	assert.Contains(t, err.Error(), "\n  - projects[0].name is required")
}

func TestSource_MissingFile(t *testing.T) {
	src := New(filepath.Join(t.TempDir(), "absent.json"))

	err := src.Health(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading snapshot")
}

func TestSource_CanceledContext(t *testing.T) {
	src := newTestSource(t, validSnapshot())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := src.Projects(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSource_HealthOnValidFile(t *testing.T) {
	src := newTestSource(t, validSnapshot())
	assert.NoError(t, src.Health(context.Background()))
}
