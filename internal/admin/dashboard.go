package admin

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"

	"github.com/zaqqye/navodaya_web/internal/models"
	"github.com/zaqqye/navodaya_web/internal/toast"
)

type Dashboard struct {
	Company  models.CompanyInfo
	Services []models.Service
	Projects []models.Project
	Messages []models.ContactMessage

	ServiceCount int
	ProjectCount int
	MessageCount int
	UnreadCount  int
}

// LoadDashboard runs the four fetches concurrently and waits for all of
// them. A failed messages fetch is replaced by an empty list. Any other
// failure discards the whole load.
func (f *Flow) LoadDashboard(ctx context.Context) (*Dashboard, toast.Toast, error) {
	if err := f.Guard(); err != nil {
		return nil, toast.Toast{}, err
	}

	var d Dashboard
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		resp, err := f.api.GetCompanyInfo(gctx)
		if err != nil {
			return err
		}
		d.Company = resp.Data
		return nil
	})
	g.Go(func() error {
		resp, err := f.api.GetServices(gctx)
		if err != nil {
			return err
		}
		d.Services = resp.Data
		return nil
	})
	g.Go(func() error {
		resp, err := f.api.GetProjects(gctx)
		if err != nil {
			return err
		}
		d.Projects = resp.Data
		return nil
	})
	// Runs on the parent ctx; a failed sibling does not cancel it.
	g.Go(func() error {
		resp, err := f.api.GetContactMessages(ctx)
		if err != nil {
			f.logger.Printf("Messages unavailable, showing none: %v", err)
			d.Messages = []models.ContactMessage{}
			return nil
		}
		d.Messages = resp.Data
		return nil
	})

	if err := g.Wait(); err != nil {
		f.logger.Printf("Error fetching data: %v", err)
		return nil, toast.Error("Error", "Failed to load dashboard data"), errors.Join(ErrDashboardLoad, err)
	}

	if d.Messages == nil {
		d.Messages = []models.ContactMessage{}
	}
	d.ServiceCount = len(d.Services)
	d.ProjectCount = len(d.Projects)
	d.MessageCount = len(d.Messages)
	for _, m := range d.Messages {
		if !m.IsRead {
			d.UnreadCount++
		}
	}
	return &d, toast.Toast{}, nil
}
