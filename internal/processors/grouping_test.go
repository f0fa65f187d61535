package processors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/callmegreg/azdo-codeql-enable/internal/types"
)

func projectRef(name string) *types.TeamProjectReference {
	return &types.TeamProjectReference{ID: name + "-id", Name: name}
}

func TestGroupByProject(t *testing.T) {
	t.Run("Embedded project wins, fallback covers the rest", func(t *testing.T) {
		repos := []types.Repository{
			{ID: "1", Name: "checkout", Project: projectRef("Payments")},
			{ID: "2", Name: "site", Project: projectRef("Web")},
			{ID: "3", Name: "orphan"},
			{ID: "4", Name: "ledger", Project: projectRef("Payments")},
		}

		buckets, skipped := GroupByProject(repos, "Fallback")
		require.Empty(t, skipped)
		require.Len(t, buckets, 3)

		// Buckets come back sorted by project name
		assert.Equal(t, "Fallback", buckets[0].Project)
		assert.Equal(t, "Payments", buckets[1].Project)
		assert.Equal(t, "Web", buckets[2].Project)

		require.Len(t, buckets[0].Repositories, 1)
		assert.Equal(t, "orphan", buckets[0].Repositories[0].Name)

		// Repositories keep their listing order inside a bucket
		require.Len(t, buckets[1].Repositories, 2)
		assert.Equal(t, "checkout", buckets[1].Repositories[0].Name)
		assert.Equal(t, "ledger", buckets[1].Repositories[1].Name)
	})

	t.Run("Empty embedded name falls back too", func(t *testing.T) {
		repos := []types.Repository{
			{ID: "1", Name: "blank", Project: &types.TeamProjectReference{Name: ""}},
		}

		buckets, skipped := GroupByProject(repos, "Fallback")
		require.Empty(t, skipped)
		require.Len(t, buckets, 1)
		assert.Equal(t, "Fallback", buckets[0].Project)
	})

	t.Run("No project and no fallback skips the repository", func(t *testing.T) {
		repos := []types.Repository{
			{ID: "1", Name: "checkout", Project: projectRef("Payments")},
			{ID: "2", Name: "orphan"},
		}

		buckets, skipped := GroupByProject(repos, "")
		require.Len(t, buckets, 1)
		assert.Equal(t, "Payments", buckets[0].Project)

		require.Len(t, skipped, 1)
		assert.Equal(t, "orphan", skipped[0].Name)
	})

	t.Run("Every repository lands in exactly one bucket", func(t *testing.T) {
		repos := []types.Repository{
			{ID: "1", Name: "a", Project: projectRef("P1")},
			{ID: "2", Name: "b", Project: projectRef("P2")},
			{ID: "3", Name: "c"},
			{ID: "4", Name: "d", Project: projectRef("P1")},
			{ID: "5", Name: "e"},
		}

		buckets, skipped := GroupByProject(repos, "")

		seen := make(map[string]int)
		for _, bucket := range buckets {
			for _, repo := range bucket.Repositories {
				seen[repo.ID]++
			}
		}
		for _, repo := range skipped {
			seen[repo.ID]++
		}

		require.Len(t, seen, len(repos))
		for id, count := range seen {
			assert.Equal(t, 1, count, "repository %s placed %d times", id, count)
		}
	})

	t.Run("Empty input yields no buckets", func(t *testing.T) {
		buckets, skipped := GroupByProject(nil, "Fallback")
		assert.Empty(t, buckets)
		assert.Empty(t, skipped)
	})
}
