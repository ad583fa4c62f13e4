package apiclient

import (
	"context"
	"net/http"

	"github.com/zaqqye/navodaya_web/internal/models"
)

// Public

func (c *Client) GetCompanyInfo(ctx context.Context) (*Response[models.CompanyInfo], error) {
	return call[models.CompanyInfo](ctx, c, http.MethodGet, "/company", nil)
}

func (c *Client) GetServices(ctx context.Context) (*Response[[]models.Service], error) {
	return call[[]models.Service](ctx, c, http.MethodGet, "/services", nil)
}

func (c *Client) GetService(ctx context.Context, id string) (*Response[models.Service], error) {
	path, err := idPath("/services", id)
	if err != nil {
		return nil, err
	}
	return call[models.Service](ctx, c, http.MethodGet, path, nil)
}

func (c *Client) GetProjects(ctx context.Context) (*Response[[]models.Project], error) {
	return call[[]models.Project](ctx, c, http.MethodGet, "/projects", nil)
}

func (c *Client) GetProject(ctx context.Context, id string) (*Response[models.Project], error) {
	path, err := idPath("/projects", id)
	if err != nil {
		return nil, err
	}
	return call[models.Project](ctx, c, http.MethodGet, path, nil)
}

func (c *Client) SubmitContactForm(ctx context.Context, req ContactRequest) (*Response[models.ContactMessage], error) {
	return call[models.ContactMessage](ctx, c, http.MethodPost, "/contact", req)
}

// AdminLogin exchanges credentials for a token. It does not touch the
// session store; storing the token is the caller's decision.
func (c *Client) AdminLogin(ctx context.Context, req LoginRequest) (*Response[LoginResponse], error) {
	return call[LoginResponse](ctx, c, http.MethodPost, "/admin/login", req)
}

// Admin

func (c *Client) UpdateCompanyInfo(ctx context.Context, upd CompanyUpdate) (*Response[models.CompanyInfo], error) {
	return call[models.CompanyInfo](ctx, c, http.MethodPut, "/admin/company", upd)
}

func (c *Client) CreateService(ctx context.Context, in ServiceInput) (*Response[models.Service], error) {
	return call[models.Service](ctx, c, http.MethodPost, "/admin/services", in)
}

func (c *Client) UpdateService(ctx context.Context, id string, upd ServiceUpdate) (*Response[models.Service], error) {
	path, err := idPath("/admin/services", id)
	if err != nil {
		return nil, err
	}
	return call[models.Service](ctx, c, http.MethodPut, path, upd)
}

func (c *Client) DeleteService(ctx context.Context, id string) (*Response[MessageResponse], error) {
	path, err := idPath("/admin/services", id)
	if err != nil {
		return nil, err
	}
	return call[MessageResponse](ctx, c, http.MethodDelete, path, nil)
}

func (c *Client) CreateProject(ctx context.Context, in ProjectInput) (*Response[models.Project], error) {
	return call[models.Project](ctx, c, http.MethodPost, "/admin/projects", in)
}

func (c *Client) UpdateProject(ctx context.Context, id string, upd ProjectUpdate) (*Response[models.Project], error) {
	path, err := idPath("/admin/projects", id)
	if err != nil {
		return nil, err
	}
	return call[models.Project](ctx, c, http.MethodPut, path, upd)
}

func (c *Client) DeleteProject(ctx context.Context, id string) (*Response[MessageResponse], error) {
	path, err := idPath("/admin/projects", id)
	if err != nil {
		return nil, err
	}
	return call[MessageResponse](ctx, c, http.MethodDelete, path, nil)
}

func (c *Client) GetContactMessages(ctx context.Context) (*Response[[]models.ContactMessage], error) {
	return call[[]models.ContactMessage](ctx, c, http.MethodGet, "/admin/messages", nil)
}

func (c *Client) DeleteContactMessage(ctx context.Context, id string) (*Response[MessageResponse], error) {
	path, err := idPath("/admin/messages", id)
	if err != nil {
		return nil, err
	}
	return call[MessageResponse](ctx, c, http.MethodDelete, path, nil)
}
