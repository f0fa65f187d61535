package processors

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/callmegreg/azdo-codeql-enable/internal/report"
	"github.com/callmegreg/azdo-codeql-enable/internal/types"
)

// scriptedProcessor returns a canned result per project and records the
// dispatch order
type scriptedProcessor struct {
	outcomes map[string]types.ProcessingResult
	order    []string
}

func (s *scriptedProcessor) ProcessProject(bucket types.ProjectBucket) types.ProcessingResult {
	s.order = append(s.order, bucket.Project)
	return s.outcomes[bucket.Project]
}

func entriesByProject(entries []report.Entry, project string) []report.Entry {
	var matched []report.Entry
	for _, entry := range entries {
		if entry.Project == project {
			matched = append(matched, entry)
		}
	}
	return matched
}

func TestSequentialProcessorProcess(t *testing.T) {
	buckets := []types.ProjectBucket{
		{Project: "Alpha", Repositories: []types.Repository{
			{ID: "a1", Name: "api"},
			{ID: "a2", Name: "web"},
		}},
		{Project: "Beta", Repositories: []types.Repository{
			{ID: "b1", Name: "ledger"},
		}},
		{Project: "Gamma", Repositories: []types.Repository{
			{ID: "g1", Name: "tools"},
		}},
	}

	dispatchErr := errors.New("Azure DevOps API returned HTTP 403: access denied")
	scripted := &scriptedProcessor{outcomes: map[string]types.ProcessingResult{
		"Alpha": {Project: "Alpha", RepoCount: 2, Success: true},
		"Beta":  {Project: "Beta", RepoCount: 1, Error: dispatchErr},
		"Gamma": {Project: "Gamma", RepoCount: 1, Skipped: true},
	}}

	frozen := time.Date(2024, 1, 31, 15, 45, 2, 0, time.UTC)
	sp := NewSequentialProcessor(buckets, scripted, "Enablement", "Enabled")
	sp.now = func() time.Time { return frozen }

	entries, successCount, skippedCount, errorCount := sp.Process()

	t.Run("Counts reflect the outcomes", func(t *testing.T) {
		assert.Equal(t, 1, successCount)
		assert.Equal(t, 1, skippedCount)
		assert.Equal(t, 1, errorCount)
	})

	t.Run("A failed project does not stop the run", func(t *testing.T) {
		assert.Equal(t, []string{"Alpha", "Beta", "Gamma"}, scripted.order)
	})

	t.Run("One row per repository", func(t *testing.T) {
		assert.Len(t, entries, 4)
	})

	t.Run("Successful project rows are finalized", func(t *testing.T) {
		rows := entriesByProject(entries, "Alpha")
		require.Len(t, rows, 2)
		for _, row := range rows {
			assert.Equal(t, "Enabled", row.Action)
			assert.Equal(t, report.ResultSuccess, row.Result)
			assert.Equal(t, frozen, row.Timestamp)
		}
	})

	t.Run("Failed project rows keep the pending action with the error", func(t *testing.T) {
		rows := entriesByProject(entries, "Beta")
		require.Len(t, rows, 1)
		assert.Equal(t, "Enablement", rows[0].Action)
		assert.Equal(t, "Failed: "+dispatchErr.Error(), rows[0].Result)
	})

	t.Run("Skipped project rows stay pending", func(t *testing.T) {
		rows := entriesByProject(entries, "Gamma")
		require.Len(t, rows, 1)
		assert.Equal(t, "Enablement", rows[0].Action)
		assert.Equal(t, report.ResultPending, rows[0].Result)
	})

	t.Run("Rows carry the repository identity", func(t *testing.T) {
		rows := entriesByProject(entries, "Alpha")
		require.Len(t, rows, 2)
		assert.Equal(t, "api", rows[0].Repository)
		assert.Equal(t, "a1", rows[0].RepoID)
		assert.Equal(t, "web", rows[1].Repository)
		assert.Equal(t, "a2", rows[1].RepoID)
	})
}

func TestSequentialProcessorEmpty(t *testing.T) {
	sp := NewSequentialProcessor(nil, &scriptedProcessor{}, "Enablement", "Enabled")
	entries, successCount, skippedCount, errorCount := sp.Process()

	assert.Empty(t, entries)
	assert.Equal(t, 0, successCount)
	assert.Equal(t, 0, skippedCount)
	assert.Equal(t, 0, errorCount)
}
