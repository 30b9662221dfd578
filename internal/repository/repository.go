package repository

import "errors"

// ErrNotFound is returned by catalog lookups that match nothing.
var ErrNotFound = errors.New("not found")
