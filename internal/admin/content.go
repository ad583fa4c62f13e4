package admin

import (
	"context"

	"github.com/zaqqye/navodaya_web/internal/apiclient"
	"github.com/zaqqye/navodaya_web/internal/models"
)

// guarded runs a privileged call after the token check. A token the backend
// rejects is left in the store; the caller sees the auth error and decides.
func guarded[T any](f *Flow, call func() (*apiclient.Response[T], error)) (T, error) {
	var zero T
	if err := f.Guard(); err != nil {
		return zero, err
	}
	resp, err := call()
	if err != nil {
		return zero, err
	}
	return resp.Data, nil
}

func (f *Flow) SaveCompany(ctx context.Context, upd apiclient.CompanyUpdate) (models.CompanyInfo, error) {
	return guarded(f, func() (*apiclient.Response[models.CompanyInfo], error) {
		return f.api.UpdateCompanyInfo(ctx, upd)
	})
}

func (f *Flow) CreateService(ctx context.Context, in apiclient.ServiceInput) (models.Service, error) {
	return guarded(f, func() (*apiclient.Response[models.Service], error) {
		return f.api.CreateService(ctx, in)
	})
}

func (f *Flow) UpdateService(ctx context.Context, id string, upd apiclient.ServiceUpdate) (models.Service, error) {
	return guarded(f, func() (*apiclient.Response[models.Service], error) {
		return f.api.UpdateService(ctx, id, upd)
	})
}

func (f *Flow) DeleteService(ctx context.Context, id string) error {
	_, err := guarded(f, func() (*apiclient.Response[apiclient.MessageResponse], error) {
		return f.api.DeleteService(ctx, id)
	})
	return err
}

func (f *Flow) CreateProject(ctx context.Context, in apiclient.ProjectInput) (models.Project, error) {
	return guarded(f, func() (*apiclient.Response[models.Project], error) {
		return f.api.CreateProject(ctx, in)
	})
}

func (f *Flow) UpdateProject(ctx context.Context, id string, upd apiclient.ProjectUpdate) (models.Project, error) {
	return guarded(f, func() (*apiclient.Response[models.Project], error) {
		return f.api.UpdateProject(ctx, id, upd)
	})
}

func (f *Flow) DeleteProject(ctx context.Context, id string) error {
	_, err := guarded(f, func() (*apiclient.Response[apiclient.MessageResponse], error) {
		return f.api.DeleteProject(ctx, id)
	})
	return err
}

func (f *Flow) DeleteMessage(ctx context.Context, id string) error {
	_, err := guarded(f, func() (*apiclient.Response[apiclient.MessageResponse], error) {
		return f.api.DeleteContactMessage(ctx, id)
	})
	return err
}
