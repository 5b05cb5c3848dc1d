// Package repository implements MySQL persistence for customers,
// products and orders. This file defines sentinel errors shared by the
// repositories so that handlers can map failures to HTTP statuses.
// Ownership-scoped queries deliberately report a mismatch as
// ErrNotFound: a caller probing someone else's resource learns nothing
// beyond "no such resource for you".
package repository

import (
	"errors"
	"strings"
)

// ErrNotFound is returned when a row does not exist, or exists but is
// not owned by the caller of an owner-scoped operation. Handlers
// translate it into HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrEmailExists is returned when an insert or update would violate the
// unique email constraint on customers. Handlers translate it into
// HTTP 409.
var ErrEmailExists = errors.New("email already exists")

// isDuplicateKey reports whether err is a MySQL duplicate-entry error
// (error number 1062).
func isDuplicateKey(err error) bool {
	return err != nil && strings.Contains(err.Error(), "1062")
}
