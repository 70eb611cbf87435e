package store

import "errors"

var (
	ErrNotFound = errors.New("store: prompt not found")
)
