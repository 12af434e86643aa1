// Package common provides shared utilities and types used across the application.
package common

import "errors"

// Common application errors.
var (
	// Artifact errors. A broken static artifact is fatal at startup: the
	// cascade confidences assume the tables and model are complete.
	ErrInvalidArtifact  = errors.New("invalid model artifact")
	ErrArtifactMismatch = errors.New("artifact dimensions do not match vectorizer config")
)
