package types

// TeamProjectReference identifies the project that owns a repository
type TeamProjectReference struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Repository represents an Azure DevOps git repository. The listing endpoint
// does not always include an owning project, so the reference is optional.
type Repository struct {
	ID      string                `json:"id"`
	Name    string                `json:"name"`
	Project *TeamProjectReference `json:"project,omitempty"`
}

// ProjectName returns the embedded project name, or "" when the listing
// carried none
func (r Repository) ProjectName() string {
	if r.Project == nil {
		return ""
	}
	return r.Project.Name
}

// ProjectBucket groups the repositories that share an owning project.
// Repository order is the order the listing returned them in.
type ProjectBucket struct {
	Project      string
	Repositories []Repository
}
