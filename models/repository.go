package models

type RepoState string

const (
	RepoStateOK     RepoState = "ok"
	RepoStateLocked RepoState = "locked"
)

type Repository struct {
	ID       string // resource identifier used for tagging
	Name     string
	CloneURL string
}

type Commit struct {
	ID             string
	ParentIDs      []string
	CommitterName  string
	CommitterEmail string
}

// Difference is a path-level change between two commits. AfterBlobID is
// empty for deletions.
type Difference struct {
	Path        string
	AfterBlobID string
	ChangeType  string
}

type GitCredentials struct {
	User     string `json:"user"`
	Password string `json:"password"`
}
