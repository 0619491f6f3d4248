package repository

import "errors"

// ErrNotFound is wrapped by repositories when a requested row does not exist.
var ErrNotFound = errors.New("not found")
