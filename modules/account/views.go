package account

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/authkit/handler"
)

// Views renders the pages of the module. Any field left nil falls back to
// the built-in markup.
type Views struct {
	Home            func(HomePageParams) templ.Component
	Login           func() templ.Component
	Register        func() templ.Component
	Message         func(msg string) templ.Component
	RegisterSuccess func() templ.Component
	Error           func(handler.ErrorPageParams) templ.Component
}

// HomePageParams contains data for rendering the home page.
type HomePageParams struct {
	Username string
	LoggedIn bool
}

func (v Views) withDefaults() Views {
	if v.Home == nil {
		v.Home = HomePage
	}
	if v.Login == nil {
		v.Login = LoginPage
	}
	if v.Register == nil {
		v.Register = RegisterPage
	}
	if v.Message == nil {
		v.Message = MessagePage
	}
	if v.RegisterSuccess == nil {
		v.RegisterSuccess = RegisterSuccessPage
	}
	if v.Error == nil {
		v.Error = ErrorPage
	}
	return v
}

// write emits trusted markup fragments and escaped values in order.
type write struct {
	w   io.Writer
	err error
}

func (p *write) raw(s string) {
	if p.err == nil {
		_, p.err = io.WriteString(p.w, s)
	}
}

func (p *write) text(s string) {
	p.raw(templ.EscapeString(s))
}

func layout(title string, body func(p *write)) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		p := &write{w: w}
		p.raw(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8"><title>`)
		p.text(title)
		p.raw(`</title></head><body>`)
		body(p)
		p.raw(`</body></html>`)
		return p.err
	})
}

func credentialsForm(p *write, action, submit string) {
	p.raw(`<form method="post" action="`)
	p.text(action)
	p.raw(`"><label>Username <input type="text" name="username" required></label>`)
	p.raw(`<label>Password <input type="password" name="password" required></label>`)
	p.raw(`<button type="submit">`)
	p.text(submit)
	p.raw(`</button></form>`)
}

// HomePage greets the signed-in user, or "Guest" with login and register links.
func HomePage(params HomePageParams) templ.Component {
	name := params.Username
	if !params.LoggedIn || name == "" {
		name = "Guest"
	}
	return layout("Home", func(p *write) {
		p.raw(`<nav>`)
		if params.LoggedIn {
			p.raw(`<a href="/logout" class="right">Logout</a>`)
		} else {
			p.raw(`<a href="/register" class="right">Register</a><a href="/login" class="right">Login</a>`)
		}
		p.raw(`</nav><h1>Hello, `)
		p.text(name)
		p.raw(`!</h1>`)
	})
}

// LoginPage renders the login form.
func LoginPage() templ.Component {
	return layout("Login", func(p *write) {
		p.raw(`<h1>Login</h1>`)
		credentialsForm(p, "/login", "Login")
		p.raw(`<p><a href="/register">Register</a></p>`)
	})
}

// RegisterPage renders the registration form.
func RegisterPage() templ.Component {
	return layout("Register", func(p *write) {
		p.raw(`<h1>Register</h1>`)
		credentialsForm(p, "/register", "Register")
		p.raw(`<p><a href="/login">Login</a></p>`)
	})
}

// MessagePage shows a single escaped message.
func MessagePage(msg string) templ.Component {
	return layout(msg, func(p *write) {
		p.raw(`<p>`)
		p.text(msg)
		p.raw(`</p><p><a href="/">Home</a></p>`)
	})
}

// RegisterSuccessPage confirms a new account.
func RegisterSuccessPage() templ.Component {
	return layout(MsgRegistered, func(p *write) {
		p.raw(`<h1>`)
		p.text(MsgRegistered)
		p.raw(`</h1><p><a href="/login">Login</a></p>`)
	})
}

// ErrorPage renders a status code with its message.
func ErrorPage(params handler.ErrorPageParams) templ.Component {
	return layout(params.Error, func(p *write) {
		p.raw(`<h1>`)
		p.text(strconv.Itoa(params.StatusCode))
		p.raw(` Error: `)
		p.text(params.Error)
		p.raw(`</h1>`)
		if params.RequestID != "" {
			p.raw(`<p>Request ID: `)
			p.text(params.RequestID)
			p.raw(`</p>`)
		}
	})
}
