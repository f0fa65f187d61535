package processors

import (
	"sort"

	"github.com/pterm/pterm"

	"github.com/callmegreg/azdo-codeql-enable/internal/types"
)

// GroupByProject partitions repositories into per-project buckets. A
// repository's embedded project name wins; fallbackProject covers
// repositories the listing returned without one. Repositories with neither
// are skipped, since no enablement call could target them, and returned
// separately.
func GroupByProject(repos []types.Repository, fallbackProject string) ([]types.ProjectBucket, []types.Repository) {
	grouped := make(map[string][]types.Repository)
	var skipped []types.Repository

	for _, repo := range repos {
		project := repo.ProjectName()
		if project == "" {
			project = fallbackProject
		}
		if project == "" {
			pterm.Warning.Printf("Skipping repository '%s': no owning project and no project flag to fall back on\n", repo.Name)
			skipped = append(skipped, repo)
			continue
		}
		grouped[project] = append(grouped[project], repo)
	}

	// Sort bucket order so runs are deterministic
	names := make([]string, 0, len(grouped))
	for name := range grouped {
		names = append(names, name)
	}
	sort.Strings(names)

	buckets := make([]types.ProjectBucket, 0, len(names))
	for _, name := range names {
		buckets = append(buckets, types.ProjectBucket{
			Project:      name,
			Repositories: grouped[name],
		})
	}

	return buckets, skipped
}
