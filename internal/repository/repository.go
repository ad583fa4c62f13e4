// Package repository persists the site content, contact messages and admin
// accounts behind a single Store interface.
package repository

import (
	"context"
	"errors"

	"github.com/zaqqye/navodaya_web/internal/models"
)

var ErrNotFound = errors.New("record not found")

type Store interface {
	GetCompany(ctx context.Context) (*models.CompanyInfo, error)
	// SaveCompany inserts the singleton row when absent and overwrites it otherwise.
	SaveCompany(ctx context.Context, c *models.CompanyInfo) error

	ListServices(ctx context.Context) ([]models.Service, error)
	GetService(ctx context.Context, id string) (*models.Service, error)
	CreateService(ctx context.Context, s *models.Service) error
	SaveService(ctx context.Context, s *models.Service) error
	DeleteService(ctx context.Context, id string) error
	CountServices(ctx context.Context) (int64, error)

	ListProjects(ctx context.Context) ([]models.Project, error)
	GetProject(ctx context.Context, id string) (*models.Project, error)
	CreateProject(ctx context.Context, p *models.Project) error
	SaveProject(ctx context.Context, p *models.Project) error
	DeleteProject(ctx context.Context, id string) error
	CountProjects(ctx context.Context) (int64, error)

	CreateMessage(ctx context.Context, m *models.ContactMessage) error
	// ListMessages returns messages newest first.
	ListMessages(ctx context.Context) ([]models.ContactMessage, error)
	DeleteMessage(ctx context.Context, id string) error

	FindAdmin(ctx context.Context, username string) (*models.AdminUser, error)
	CreateAdmin(ctx context.Context, a *models.AdminUser) error
}
