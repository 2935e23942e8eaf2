// Package binder decodes HTML form submissions into tagged Go structs.
//
// Form is the only entry point. It caps the request body with
// http.MaxBytesReader before parsing, so an oversized submission is rejected
// with ErrBodyTooLarge and never reaches field binding. Both
// application/x-www-form-urlencoded and multipart/form-data bodies are
// accepted; any other media type yields ErrUnsupportedMediaType.
//
// Supported field kinds are strings, signed and unsigned integers, floats,
// booleans (including "on"/"off" checkbox values), pointers to those, and
// slices for repeated keys. Missing keys leave the field untouched.
//
//	bind := binder.Form(binder.DefaultMaxBytes)
//
//	var in struct {
//		Username string `form:"username"`
//		Password string `form:"password"`
//		Remember bool   `form:"remember"`
//	}
//	if err := bind(r, &in); err != nil {
//		switch {
//		case errors.Is(err, binder.ErrBodyTooLarge):
//			// 413
//		default:
//			// 400
//		}
//	}
package binder
