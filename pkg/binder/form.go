package binder

import (
	"errors"
	"fmt"
	"mime"
	"net/http"
)

const (
	// DefaultMaxBytes caps request bodies at 1MB.
	DefaultMaxBytes int64 = 1 << 20

	// maxMemory bounds in-memory multipart parts; bodies are capped anyway.
	maxMemory = 32 << 10
)

// Form returns a binder for application/x-www-form-urlencoded and
// multipart/form-data bodies. The body is read through http.MaxBytesReader;
// a body larger than maxBytes fails with ErrBodyTooLarge before any field is
// bound. A non-positive maxBytes selects DefaultMaxBytes.
//
// Fields are bound by their `form:"name"` tag; `form:"-"` skips a field and
// untagged fields use their lowercased name:
//
//	type loginForm struct {
//		Username string `form:"username"`
//		Password string `form:"password"`
//	}
//
//	bind := binder.Form(cfg.MaxBodyBytes)
//	var f loginForm
//	if err := bind(r, &f); errors.Is(err, binder.ErrBodyTooLarge) {
//		http.Error(w, "Request Entity Too Large", http.StatusRequestEntityTooLarge)
//		return
//	}
func Form(maxBytes int64) func(r *http.Request, v any) error {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}
	return func(r *http.Request, v any) error {
		contentType := r.Header.Get("Content-Type")
		if contentType == "" {
			return ErrMissingContentType
		}
		mediaType, params, err := mime.ParseMediaType(contentType)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrUnsupportedMediaType, err)
		}

		if r.ContentLength > maxBytes {
			return ErrBodyTooLarge
		}
		r.Body = http.MaxBytesReader(nil, r.Body, maxBytes)

		var values map[string][]string
		switch mediaType {
		case "application/x-www-form-urlencoded":
			if err := r.ParseForm(); err != nil {
				return classify(err)
			}
			values = r.PostForm

		case "multipart/form-data":
			if params["boundary"] == "" {
				return fmt.Errorf("%w: missing boundary", ErrInvalidForm)
			}
			if err := r.ParseMultipartForm(maxMemory); err != nil {
				return classify(err)
			}
			values = r.MultipartForm.Value

		default:
			return fmt.Errorf("%w: %s", ErrUnsupportedMediaType, mediaType)
		}

		return bindToStruct(v, "form", values, ErrInvalidForm)
	}
}

func classify(err error) error {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return errors.Join(ErrBodyTooLarge, err)
	}
	return fmt.Errorf("%w: %v", ErrInvalidForm, err)
}
