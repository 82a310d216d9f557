package raterequest

import "errors"

var (
	ErrNotFound       = errors.New("rate request not found")
	ErrEmptyReply     = errors.New("admin reply must not be blank")
	ErrInvalidContact = errors.New("name, email and mobile are required")
)
