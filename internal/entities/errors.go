package entities

import "errors"

// ErrNotFound is returned by every storage backend when a document with the
// requested id does not exist.
var ErrNotFound = errors.New("document not found")

// Fields holds the column/field names and values of a partial update.
// Keys are identical for the SQL columns and the Mongo document fields.
type Fields map[string]any

// put records value under key only when the caller supplied it.
func put[T any](f Fields, key string, value *T) {
	if value != nil {
		f[key] = *value
	}
}
