package handler

import (
	"net/http"

	"github.com/a-h/templ"
)

type templResponse struct {
	component templ.Component
	status    int
}

func (t templResponse) Render(w http.ResponseWriter, r *http.Request) error {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if t.status != 0 && t.status != http.StatusOK {
		w.WriteHeader(t.status)
	}
	return t.component.Render(r.Context(), w)
}

// Templ renders a templ component as an HTML page with status 200.
//
//	return handler.Templ(views.LoginPage())
func Templ(component templ.Component) Response {
	return templResponse{component: component}
}

// TemplWithStatus renders a templ component with the given status code.
func TemplWithStatus(status int, component templ.Component) Response {
	return templResponse{component: component, status: status}
}
