package types

// EnablementRequest is one repository's entry in the bulk enablement payload
type EnablementRequest struct {
	RepositoryID        string `json:"repositoryId"`
	AdvSecEnabled       bool   `json:"advSecEnabled"`
	CodeScanningEnabled bool   `json:"codeScanningEnabled"`
	CodeQLEnabled       bool   `json:"codeQLEnabled"`
}

// EnablementStatus reports the feature flags currently set on a repository
type EnablementStatus struct {
	AdvSecEnabled       bool `json:"advSecEnabled"`
	CodeScanningEnabled bool `json:"codeScanningEnabled"`
	CodeQLEnabled       bool `json:"codeQLEnabled"`
}

// ProcessingResult represents the outcome of dispatching one project bucket
type ProcessingResult struct {
	Project   string
	RepoCount int
	Success   bool
	Skipped   bool
	Error     error
}

// RepositoryJob pairs a repository with its resolved project
type RepositoryJob struct {
	Project    string
	Repository Repository
}

// RepositoryResult holds the fetched enablement state for one repository
type RepositoryResult struct {
	Job    RepositoryJob
	Status EnablementStatus
	Error  error
}
