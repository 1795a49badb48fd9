package models

import "encoding/json"

const SecurityEventSourcePrefix = "securitycheck."

type ReferenceEvent string

const (
	ReferenceCreated ReferenceEvent = "referenceCreated"
	ReferenceUpdated ReferenceEvent = "referenceUpdated"
	ReferenceDeleted ReferenceEvent = "referenceDeleted"
)

// CommitEvent is the inbound change notification for one reference update.
type CommitEvent struct {
	RepositoryID   string         `json:"repositoryId"`
	RepositoryName string         `json:"repositoryName" validate:"required"`
	CommitID       string         `json:"commitId"`
	ParentCommitID string         `json:"oldCommitId"`
	Branch         string         `json:"referenceName" validate:"required"`
	ActorIdentity  string         `json:"callerUserArn"`
	Event          ReferenceEvent `json:"event"`
}

type SecurityEvent struct {
	Source     string          `json:"source"`
	DetailType string          `json:"detail-type"`
	Detail     json.RawMessage `json:"detail"`
}
