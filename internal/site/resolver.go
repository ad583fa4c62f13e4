// Package site resolves the data behind the public pages: landing lists,
// service and project detail views, and the contact form.
package site

import (
	"context"
	"errors"
	"log"

	"github.com/zaqqye/navodaya_web/internal/apiclient"
	"github.com/zaqqye/navodaya_web/internal/catalog"
	"github.com/zaqqye/navodaya_web/internal/models"
)

var ErrNotFound = errors.New("site: record not found")

type Source string

const (
	SourceLive   Source = "live"
	SourceStatic Source = "static"
)

// DetailAPI is the slice of the REST client the detail views need.
type DetailAPI interface {
	GetService(ctx context.Context, id string) (*apiclient.Response[models.Service], error)
	GetProject(ctx context.Context, id string) (*apiclient.Response[models.Project], error)
}

type ServiceDetail struct {
	Service models.Service
	Source  Source
}

type ProjectDetail struct {
	Project models.Project
	Source  Source
}

// Resolver fetches detail records live and substitutes the bundled record
// of the same id when the live fetch fails for any reason. The fallback is
// tried once per call and is never cached.
type Resolver struct {
	API    DetailAPI
	Logger *log.Logger
}

func NewResolver(api DetailAPI, logger *log.Logger) *Resolver {
	if logger == nil {
		logger = log.Default()
	}
	return &Resolver{API: api, Logger: logger}
}

func (r *Resolver) logf(format string, args ...any) {
	if r.Logger != nil {
		r.Logger.Printf(format, args...)
	}
}

func (r *Resolver) ServiceDetail(ctx context.Context, id string) (*ServiceDetail, error) {
	resp, err := r.API.GetService(ctx, id)
	if err == nil {
		return &ServiceDetail{Service: resp.Data, Source: SourceLive}, nil
	}
	r.logf("Error fetching service %s: %v", id, err)

	svc, ok := catalog.FindService(id)
	if !ok {
		return nil, ErrNotFound
	}
	return &ServiceDetail{Service: svc, Source: SourceStatic}, nil
}

func (r *Resolver) ProjectDetail(ctx context.Context, id string) (*ProjectDetail, error) {
	resp, err := r.API.GetProject(ctx, id)
	if err == nil {
		return &ProjectDetail{Project: resp.Data, Source: SourceLive}, nil
	}
	r.logf("Error fetching project %s: %v", id, err)

	p, ok := catalog.FindProject(id)
	if !ok {
		return nil, ErrNotFound
	}
	return &ProjectDetail{Project: p, Source: SourceStatic}, nil
}

// Services, Projects and Company back the landing page. They read only the
// bundled catalog; admin edits show up in detail views, not here.
func (r *Resolver) Services() []models.Service { return catalog.Services() }

func (r *Resolver) Projects() []models.Project { return catalog.Projects() }

func (r *Resolver) Company() models.CompanyInfo { return catalog.Company() }
