package binder

import "errors"

var (
	ErrBodyTooLarge         = errors.New("binder.body_too_large")
	ErrUnsupportedMediaType = errors.New("binder.unsupported_media_type")
	ErrMissingContentType   = errors.New("binder.missing_content_type")
	ErrInvalidForm          = errors.New("binder.invalid_form")
)
