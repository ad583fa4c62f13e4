package admin

import (
	"context"
	"errors"
	"io"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zaqqye/navodaya_web/internal/apiclient"
	"github.com/zaqqye/navodaya_web/internal/apitest"
	"github.com/zaqqye/navodaya_web/internal/models"
	"github.com/zaqqye/navodaya_web/internal/session"
	"github.com/zaqqye/navodaya_web/internal/toast"
)

var quiet = log.New(io.Discard, "", 0)

// faultyAPI forwards to a live client except where an error is injected.
type faultyAPI struct {
	*apiclient.Client
	messagesErr error
	projectsErr error
}

func (f *faultyAPI) GetContactMessages(ctx context.Context) (*apiclient.Response[[]models.ContactMessage], error) {
	if f.messagesErr != nil {
		return nil, f.messagesErr
	}
	return f.Client.GetContactMessages(ctx)
}

func (f *faultyAPI) GetProjects(ctx context.Context) (*apiclient.Response[[]models.Project], error) {
	if f.projectsErr != nil {
		return nil, f.projectsErr
	}
	return f.Client.GetProjects(ctx)
}

func newFlow(t *testing.T) (*Flow, *faultyAPI, session.Store, *apitest.Server) {
	t.Helper()
	srv := apitest.NewServer(t)
	store := session.NewMemoryStore()
	api := &faultyAPI{Client: apiclient.New(srv.URL, store)}
	return NewFlow(api, store, quiet), api, store, srv
}

func loggedIn(t *testing.T) (*Flow, *faultyAPI, session.Store, *apitest.Server) {
	t.Helper()
	f, api, store, srv := newFlow(t)
	_, err := f.Login(context.Background(), apitest.Username, apitest.Password)
	require.NoError(t, err)
	return f, api, store, srv
}

func TestNewFlow_StateFromStore(t *testing.T) {
	store := session.NewMemoryStore()
	assert.Equal(t, LoggedOut, NewFlow(nil, store, quiet).State())

	require.NoError(t, store.SetToken("abc"))
	assert.Equal(t, LoggedIn, NewFlow(nil, store, quiet).State())
}

func TestLogin_Success(t *testing.T) {
	f, _, store, _ := newFlow(t)

	msg, err := f.Login(context.Background(), apitest.Username, apitest.Password)
	require.NoError(t, err)
	assert.Equal(t, LoggedIn, f.State())
	assert.Equal(t, "Login Successful", msg.Title)

	tok, ok := store.Token()
	assert.True(t, ok)
	assert.NotEmpty(t, tok)
}

func TestLogin_RejectedStoresNothing(t *testing.T) {
	f, _, store, _ := newFlow(t)

	for _, creds := range [][2]string{
		{apitest.Username, "wrong"},
		{"nobody", apitest.Password},
		{"", ""},
	} {
		msg, err := f.Login(context.Background(), creds[0], creds[1])
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrLoginFailed)
		assert.Equal(t, LoggedOut, f.State())
		assert.Equal(t, "Login Failed", msg.Title)
		assert.Equal(t, toast.Destructive, msg.Variant)

		_, ok := store.Token()
		assert.False(t, ok)
	}
}

func TestLogin_NetworkFailure(t *testing.T) {
	f, _, store, srv := newFlow(t)
	srv.Close()

	_, err := f.Login(context.Background(), apitest.Username, apitest.Password)
	require.Error(t, err)
	assert.True(t, apiclient.IsNetwork(err))
	assert.Equal(t, LoggedOut, f.State())
	_, ok := store.Token()
	assert.False(t, ok)
}

func TestLogout(t *testing.T) {
	f, _, store, _ := loggedIn(t)

	msg, err := f.Logout()
	require.NoError(t, err)
	assert.Equal(t, "Logged Out", msg.Title)
	assert.Equal(t, LoggedOut, f.State())
	_, ok := store.Token()
	assert.False(t, ok)

	assert.ErrorIs(t, f.Guard(), ErrLoginRequired)
}

func TestLoadDashboard(t *testing.T) {
	f, api, _, _ := loggedIn(t)
	_, err := api.SubmitContactForm(context.Background(), apiclient.ContactRequest{Name: "Jane", Email: "j@x.io", Message: "Hi"})
	require.NoError(t, err)

	d, msg, err := f.LoadDashboard(context.Background())
	require.NoError(t, err)
	assert.Empty(t, msg.Title)
	assert.Equal(t, "PT Navodaya Multi Solusi", d.Company.Name)
	assert.Equal(t, 3, d.ServiceCount)
	assert.Equal(t, 6, d.ProjectCount)
	assert.Equal(t, 1, d.MessageCount)
	assert.Equal(t, 1, d.UnreadCount)
}

func TestLoadDashboard_RequiresLogin(t *testing.T) {
	f, _, _, _ := newFlow(t)

	d, _, err := f.LoadDashboard(context.Background())
	assert.Nil(t, d)
	assert.ErrorIs(t, err, ErrLoginRequired)
}

func TestLoadDashboard_MessagesFailureIsTolerated(t *testing.T) {
	f, api, _, _ := loggedIn(t)
	api.messagesErr = &apiclient.Error{Kind: apiclient.KindAuth, StatusCode: 401}

	d, _, err := f.LoadDashboard(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, d.Messages)
	assert.Empty(t, d.Messages)
	assert.Equal(t, 3, d.ServiceCount)
}

func TestLoadDashboard_OtherFailureFailsWhole(t *testing.T) {
	f, api, _, _ := loggedIn(t)
	api.projectsErr = &apiclient.Error{Kind: apiclient.KindServer, StatusCode: 500}

	d, msg, err := f.LoadDashboard(context.Background())
	assert.Nil(t, d)
	assert.ErrorIs(t, err, ErrDashboardLoad)
	assert.False(t, apiclient.IsNetwork(err))
	assert.Equal(t, "Failed to load dashboard data", msg.Description)
	assert.True(t, msg.IsError())
}

func TestContentHelpers(t *testing.T) {
	f, _, _, srv := loggedIn(t)
	ctx := context.Background()

	svc, err := f.CreateService(ctx, apiclient.ServiceInput{
		Category:    "Cloud",
		Icon:        models.IconBriefcase,
		Description: "Hosting",
		Features:    []string{"a", "b"},
	})
	require.NoError(t, err)

	cat := "Cloud Services"
	svc, err = f.UpdateService(ctx, svc.ID, apiclient.ServiceUpdate{Category: &cat})
	require.NoError(t, err)
	assert.Equal(t, "Cloud Services", svc.Category)
	require.NoError(t, f.DeleteService(ctx, svc.ID))

	p, err := f.CreateProject(ctx, apiclient.ProjectInput{
		Title: "Ops", Category: "Consulting", Description: "d", Year: "2023", Image: "i",
	})
	require.NoError(t, err)
	title := "Ops Review"
	p, err = f.UpdateProject(ctx, p.ID, apiclient.ProjectUpdate{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, "Ops Review", p.Title)
	require.NoError(t, f.DeleteProject(ctx, p.ID))

	tagline := "New tagline"
	company, err := f.SaveCompany(ctx, apiclient.CompanyUpdate{Tagline: &tagline})
	require.NoError(t, err)
	assert.Equal(t, "New tagline", company.Tagline)

	msgs, err := srv.Store.ListMessages(ctx)
	require.NoError(t, err)
	assert.Empty(t, msgs)
	err = f.DeleteMessage(ctx, "missing")
	assert.True(t, apiclient.IsNotFound(err))
}

func TestContentHelpers_GuardedAndAuthErrorsSurface(t *testing.T) {
	f, _, store, _ := loggedIn(t)
	ctx := context.Background()

	require.NoError(t, store.SetToken("stale"))
	err := f.DeleteService(ctx, "1")
	assert.True(t, apiclient.IsAuth(err))
	tok, ok := store.Token()
	assert.True(t, ok, "token is not cleared behind the caller's back")
	assert.Equal(t, "stale", tok)

	require.NoError(t, store.Clear())
	err = f.DeleteProject(ctx, "1")
	assert.True(t, errors.Is(err, ErrLoginRequired))
}
