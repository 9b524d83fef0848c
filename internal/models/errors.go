package models

import "errors"

// Domain errors raised by the repository layer. Handlers map them to HTTP
// statuses at the request boundary.
var (
	ErrPostNotFound     = errors.New("post not found")
	ErrCommentsDisabled = errors.New("comments are disabled for this post")
	ErrSelfFollow       = errors.New("users cannot follow themselves")
)
