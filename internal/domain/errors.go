package domain

import (
	"github.com/pkg/errors"
)

// Failures surfaced to the caller with fixed messages.
var (
	//nolint:stylecheck,revive // The message is part of the caller-facing contract.
	ErrSourceFileNotFound = errors.New("Source file not found!")
	//nolint:stylecheck,revive // The message is part of the caller-facing contract.
	ErrNoNodeFound = errors.New("No node found!")
)
