package types

import (
	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
)

// BugID represents a bug report identifier assigned by the document store
type BugID string

// String returns the string representation
func (id BugID) String() string {
	return string(id)
}

// Validate checks if the bug ID is usable as a document key
func (id BugID) Validate() error {
	if id == "" {
		return goerr.New("bug ID is empty")
	}
	return nil
}

// NewBugID creates a new random BugID. Firestore assigns its own IDs, so this is
// only used by stores that have no ID generator.
func NewBugID() BugID {
	return BugID(uuid.New().String())
}
