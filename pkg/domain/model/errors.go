package model

import "github.com/m-mizutani/goerr/v2"

// Sentinel errors for domain operations
var (
	ErrBugNotFound = goerr.New("bug not found")
)

// Error tags for categorization at the API boundary
var (
	ErrTagValidation = goerr.NewTag("validation")
)
