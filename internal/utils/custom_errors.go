package utils

import "errors"

var (
	ErrUserNotFound     = errors.New("user not found")
	ErrInvalidSortField = errors.New("invalid sortBy")
	ErrInternal         = errors.New("internal error")
)
