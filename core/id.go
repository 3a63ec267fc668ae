package core

import "github.com/google/uuid"

// NewID returns a random identifier used to correlate log entries of one
// scheduled run or one autonomous session.
func NewID() string { return uuid.NewString() }
