// Package admin drives the admin session: login and logout, the dashboard
// guard, the concurrent dashboard load and the content edits behind it.
package admin

import (
	"context"
	"errors"
	"log"
	"sync"

	"github.com/zaqqye/navodaya_web/internal/apiclient"
	"github.com/zaqqye/navodaya_web/internal/models"
	"github.com/zaqqye/navodaya_web/internal/session"
	"github.com/zaqqye/navodaya_web/internal/toast"
)

type State int

const (
	LoggedOut State = iota
	Authenticating
	LoggedIn
)

func (s State) String() string {
	switch s {
	case LoggedOut:
		return "logged out"
	case Authenticating:
		return "authenticating"
	case LoggedIn:
		return "logged in"
	default:
		return "unknown"
	}
}

var (
	ErrLoginRequired = errors.New("admin: login required")
	ErrLoginFailed   = errors.New("admin: login failed")
	ErrDashboardLoad = errors.New("admin: failed to load dashboard data")
)

// API is the part of the REST client the admin flow uses.
type API interface {
	AdminLogin(ctx context.Context, req apiclient.LoginRequest) (*apiclient.Response[apiclient.LoginResponse], error)
	GetCompanyInfo(ctx context.Context) (*apiclient.Response[models.CompanyInfo], error)
	GetServices(ctx context.Context) (*apiclient.Response[[]models.Service], error)
	GetProjects(ctx context.Context) (*apiclient.Response[[]models.Project], error)
	GetContactMessages(ctx context.Context) (*apiclient.Response[[]models.ContactMessage], error)
	UpdateCompanyInfo(ctx context.Context, upd apiclient.CompanyUpdate) (*apiclient.Response[models.CompanyInfo], error)
	CreateService(ctx context.Context, in apiclient.ServiceInput) (*apiclient.Response[models.Service], error)
	UpdateService(ctx context.Context, id string, upd apiclient.ServiceUpdate) (*apiclient.Response[models.Service], error)
	DeleteService(ctx context.Context, id string) (*apiclient.Response[apiclient.MessageResponse], error)
	CreateProject(ctx context.Context, in apiclient.ProjectInput) (*apiclient.Response[models.Project], error)
	UpdateProject(ctx context.Context, id string, upd apiclient.ProjectUpdate) (*apiclient.Response[models.Project], error)
	DeleteProject(ctx context.Context, id string) (*apiclient.Response[apiclient.MessageResponse], error)
	DeleteContactMessage(ctx context.Context, id string) (*apiclient.Response[apiclient.MessageResponse], error)
}

type Flow struct {
	api     API
	session session.Store
	logger  *log.Logger

	mu    sync.Mutex
	state State
}

// NewFlow derives the initial state from the session store: a stored token
// means LoggedIn. The token is not validated here; an expired one surfaces
// as an auth error on the first privileged call.
func NewFlow(api API, store session.Store, logger *log.Logger) *Flow {
	if logger == nil {
		logger = log.Default()
	}
	f := &Flow{api: api, session: store, logger: logger, state: LoggedOut}
	if _, ok := store.Token(); ok {
		f.state = LoggedIn
	}
	return f
}

func (f *Flow) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

func (f *Flow) setState(s State) {
	f.mu.Lock()
	f.state = s
	f.mu.Unlock()
}

// Login exchanges credentials for a token and stores it. Nothing is stored
// when the backend rejects the pair or the call fails.
func (f *Flow) Login(ctx context.Context, username, password string) (toast.Toast, error) {
	f.setState(Authenticating)

	resp, err := f.api.AdminLogin(ctx, apiclient.LoginRequest{Username: username, Password: password})
	if err == nil && resp.Data.AccessToken == "" {
		err = errors.New("empty access token")
	}
	if err == nil {
		err = f.session.SetToken(resp.Data.AccessToken)
	}
	if err != nil {
		f.logger.Printf("Login error: %v", err)
		f.setState(LoggedOut)
		return toast.Error("Login Failed", "Incorrect username or password"), errors.Join(ErrLoginFailed, err)
	}

	f.setState(LoggedIn)
	return toast.Info("Login Successful", "Welcome to admin dashboard"), nil
}

// Logout always ends in LoggedOut, even if the store could not be cleared.
func (f *Flow) Logout() (toast.Toast, error) {
	err := f.session.Clear()
	f.setState(LoggedOut)
	if err != nil {
		f.logger.Printf("Logout: clearing session: %v", err)
	}
	return toast.Info("Logged Out", "You have been logged out successfully"), err
}

// Guard checks for a stored token. It is called once when the dashboard is
// entered and before each privileged call.
func (f *Flow) Guard() error {
	if _, ok := f.session.Token(); !ok {
		f.setState(LoggedOut)
		return ErrLoginRequired
	}
	return nil
}
