package profile

import "errors"

// ErrNotFound is returned by a Repo when a learner has no current
// profile yet.
var ErrNotFound = errors.New("profile not found")

// ErrVersionConflict is returned by a Repo when the stored current
// version no longer matches the expected prior version. It drives the
// Merger's optimistic retry loop.
var ErrVersionConflict = errors.New("profile version conflict")
