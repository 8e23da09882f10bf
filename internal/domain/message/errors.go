package message

import "errors"

var (
	ErrMessageNotFound = errors.New("message not found")
	ErrInvalidSource   = errors.New("invalid message source")
	ErrEmptyMessage    = errors.New("message body must not be empty")
)
