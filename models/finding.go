package models

type DetectionRule struct {
	Label   string `json:"label" yaml:"label" validate:"required"`
	Pattern string `json:"pattern" yaml:"pattern" validate:"required"`
}

type ChangedFile struct {
	Path    string
	Content []byte
}

// Finding is one detected credential in one file of one commit. It never
// carries the matched text.
type Finding struct {
	File           string `json:"file"`
	RuleLabel      string `json:"ruleLabel"`
	Line           int    `json:"line,omitempty"`
	RepositoryID   string `json:"repositoryId"` // taggable resource id, e.g. the repository ARN
	RepositoryName string `json:"repositoryName"`
	CommitID       string `json:"commitId"`
	ParentCommitID string `json:"parentCommitId"`
	Branch         string `json:"branch"`
	CommitterEmail string `json:"committerEmail"`
}
