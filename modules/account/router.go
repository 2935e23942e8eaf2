package account

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/dmitrymomot/authkit/handler"
	accountsvc "github.com/dmitrymomot/authkit/pkg/account"
	"github.com/dmitrymomot/authkit/pkg/binder"
	"github.com/dmitrymomot/authkit/pkg/httpserver"
	"github.com/dmitrymomot/authkit/pkg/logger"
	"github.com/dmitrymomot/authkit/pkg/session"
	"github.com/dmitrymomot/authkit/pkg/validator"
)

// Messages rendered with status 200 for rejected form input.
const (
	MsgInvalidCredentials = "Invalid username or password."
	MsgUsernameTaken      = "Username is already taken."
	MsgRegistered         = "Registration Completed Successfully!"
)

// Accounts registers and authenticates users.
type Accounts interface {
	Register(ctx context.Context, username, password string) (*accountsvc.User, error)
	Authenticate(ctx context.Context, username, password string) (*accountsvc.User, error)
}

// Sessions is the cookie-session surface the module needs.
type Sessions interface {
	IssueCookie(w http.ResponseWriter, r *http.Request, userID uuid.UUID) error
	DestroyCookie(w http.ResponseWriter, r *http.Request) error
	Middleware(next http.Handler) http.Handler
}

// RouterOptions configures the account module router.
type RouterOptions struct {
	Accounts Accounts
	Sessions Sessions

	// MaxBodyBytes caps form submissions; zero selects binder.DefaultMaxBytes.
	MaxBodyBytes int64

	// ReadinessChecks back GET /readyz. Without checks only /healthz is mounted.
	ReadinessChecks []httpserver.Check

	// Throttle wraps the credential submissions (POST /login, POST /register),
	// typically a ratelimiter.Middleware keyed by client IP.
	Throttle func(http.Handler) http.Handler

	Views  Views
	Logger *slog.Logger
}

// Credentials is the login and registration form.
type Credentials struct {
	Username string `form:"username"`
	Password string `form:"password"`
}

type module struct {
	accounts Accounts
	sessions Sessions
	views    Views
	logger   *slog.Logger
}

// Router creates the account module router:
//
//	GET  /          greeting with the session's username or "Guest"
//	GET  /login     login form; signed-in users are redirected to /
//	POST /login     authenticate and start a session
//	GET  /register  registration form
//	POST /register  create an account
//	GET  /logout    destroy the session and redirect to /
//	GET  /healthz   liveness
//
// It panics when Accounts or Sessions is nil.
//
//	r := chi.NewRouter()
//	r.Use(requestid.Middleware)
//	r.Mount("/", account.Router(account.RouterOptions{
//		Accounts: accounts,
//		Sessions: sessions,
//	}))
func Router(opts RouterOptions) chi.Router {
	if opts.Accounts == nil {
		panic("account: accounts service is required")
	}
	if opts.Sessions == nil {
		panic("account: session manager is required")
	}
	log := opts.Logger
	if log == nil {
		log = logger.Discard()
	}

	m := &module{
		accounts: opts.Accounts,
		sessions: opts.Sessions,
		views:    opts.Views.withDefaults(),
		logger:   log.With(logger.Component("account_module")),
	}

	errorHandler := handler.NewErrorHandler(log, handler.ErrorHandlerConfig{ErrorPage: m.views.Error})
	form := handler.WithBinders[Credentials](binder.Form(opts.MaxBodyBytes))
	onError := handler.WithErrorHandler[Credentials](errorHandler)
	noForm := handler.WithErrorHandler[struct{}](errorHandler)

	r := chi.NewRouter()

	r.Get("/healthz", httpserver.HealthCheckHandler(log, 0))
	if len(opts.ReadinessChecks) > 0 {
		r.Get("/readyz", httpserver.HealthCheckHandler(log, 0, opts.ReadinessChecks...))
	}

	r.Group(func(r chi.Router) {
		r.Use(m.sessions.Middleware)

		r.Get("/", handler.Wrap(m.home, noForm))
		r.Get("/login", handler.Wrap(m.loginPage, noForm))
		r.Get("/register", handler.Wrap(m.registerPage, noForm))
		r.Get("/logout", handler.Wrap(m.logout, noForm))

		submit := r
		if opts.Throttle != nil {
			submit = r.With(opts.Throttle)
		}
		submit.Post("/login", handler.Wrap(m.login, form, onError))
		submit.Post("/register", handler.Wrap(m.register, form, onError))
	})

	return r
}

func (m *module) home(ctx handler.Context, _ struct{}) handler.Response {
	name, ok := session.UsernameFromContext(ctx)
	return handler.Templ(m.views.Home(HomePageParams{Username: name, LoggedIn: ok}))
}

func (m *module) loginPage(ctx handler.Context, _ struct{}) handler.Response {
	if _, ok := session.UsernameFromContext(ctx); ok {
		return handler.Redirect("/")
	}
	return handler.Templ(m.views.Login())
}

func (m *module) registerPage(handler.Context, struct{}) handler.Response {
	return handler.Templ(m.views.Register())
}

func (m *module) login(ctx handler.Context, req Credentials) handler.Response {
	user, err := m.accounts.Authenticate(ctx, req.Username, req.Password)
	if err != nil {
		if resp, ok := m.rejected(err); ok {
			return resp
		}
		if errors.Is(err, accountsvc.ErrInvalidCredentials) {
			return handler.Templ(m.views.Message(MsgInvalidCredentials))
		}
		return m.failure(err)
	}

	if err := m.sessions.IssueCookie(ctx.ResponseWriter(), ctx.Request(), user.ID); err != nil {
		return m.failure(err)
	}

	m.logger.InfoContext(ctx, "user logged in", logger.UserID(user.ID), logger.Username(user.Username))
	return handler.Redirect("/")
}

func (m *module) register(ctx handler.Context, req Credentials) handler.Response {
	if _, err := m.accounts.Register(ctx, req.Username, req.Password); err != nil {
		if resp, ok := m.rejected(err); ok {
			return resp
		}
		if errors.Is(err, accountsvc.ErrUsernameTaken) {
			return handler.Templ(m.views.Message(MsgUsernameTaken))
		}
		return m.failure(err)
	}
	return handler.Templ(m.views.RegisterSuccess())
}

func (m *module) logout(ctx handler.Context, _ struct{}) handler.Response {
	if err := m.sessions.DestroyCookie(ctx.ResponseWriter(), ctx.Request()); err != nil {
		return m.failure(err)
	}
	return handler.Redirect("/")
}

// rejected renders the first policy violation of a validation failure.
func (m *module) rejected(err error) (handler.Response, bool) {
	verrs := validator.ExtractValidationErrors(err)
	if verrs == nil {
		return nil, false
	}
	return handler.Templ(m.views.Message(verrs.First())), true
}

// failure hands err to the error handler, tagged 503 when a store is down.
func (m *module) failure(err error) handler.Response {
	return handler.ResponseFunc(func(http.ResponseWriter, *http.Request) error {
		if errors.Is(err, accountsvc.ErrStoreUnavailable) || errors.Is(err, session.ErrStoreUnavailable) {
			return errors.Join(handler.ErrServiceUnavailable, err)
		}
		return err
	})
}
