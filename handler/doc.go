// Package handler provides type-safe HTTP request handling.
//
// A HandlerFunc receives a Context and a request value filled by the
// configured binders, and returns a Response that renders itself:
//
//	type LoginRequest struct {
//		Username string `form:"username"`
//		Password string `form:"password"`
//	}
//
//	func login(ctx handler.Context, req LoginRequest) handler.Response {
//		if _, err := accounts.Authenticate(ctx, req.Username, req.Password); err != nil {
//			return handler.Templ(views.Message("Invalid username or password."))
//		}
//		return handler.Redirect("/")
//	}
//
//	r.Post("/login", handler.Wrap(login,
//		handler.WithBinders[LoginRequest](binder.Form(binder.DefaultMaxBytes)),
//		handler.WithErrorHandler[LoginRequest](errorHandler),
//	))
//
// Failures from binders and from Response.Render go to the ErrorHandler.
// NewErrorHandler classifies them (HTTPError values in the chain, binder
// sentinels) and renders an error page with the matching status code.
package handler
