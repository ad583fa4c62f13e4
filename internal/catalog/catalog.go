// Package catalog holds the company content bundled with the binary. The API
// server seeds its store from it and the public site falls back to it when a
// live lookup fails.
package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/lib/pq"

	"github.com/zaqqye/navodaya_web/internal/models"
)

//go:embed data.json
var raw []byte

type bundle struct {
	Company  models.CompanyInfo `json:"company"`
	Services []models.Service   `json:"services"`
	Projects []models.Project   `json:"projects"`
}

var data = mustLoad(raw)

func mustLoad(b []byte) bundle {
	var out bundle
	if err := json.Unmarshal(b, &out); err != nil {
		panic(fmt.Sprintf("catalog: decoding bundled data: %v", err))
	}
	return out
}

func Company() models.CompanyInfo {
	return data.Company
}

func Services() []models.Service {
	out := make([]models.Service, 0, len(data.Services))
	for _, s := range data.Services {
		out = append(out, copyService(s))
	}
	return out
}

func Projects() []models.Project {
	out := make([]models.Project, 0, len(data.Projects))
	for _, p := range data.Projects {
		out = append(out, copyProject(p))
	}
	return out
}

// FindService returns the bundled service whose id equals id.
func FindService(id string) (models.Service, bool) {
	for _, s := range data.Services {
		if s.ID == id {
			return copyService(s), true
		}
	}
	return models.Service{}, false
}

// FindProject returns the bundled project whose id equals id.
func FindProject(id string) (models.Project, bool) {
	for _, p := range data.Projects {
		if p.ID == id {
			return copyProject(p), true
		}
	}
	return models.Project{}, false
}

func copyService(s models.Service) models.Service {
	s.Features = append(pq.StringArray{}, s.Features...)
	if s.DetailedContent != nil {
		v := *s.DetailedContent
		s.DetailedContent = &v
	}
	return s
}

func copyProject(p models.Project) models.Project {
	if p.Technologies != nil {
		p.Technologies = append(pq.StringArray{}, p.Technologies...)
	}
	if p.DetailedContent != nil {
		v := *p.DetailedContent
		p.DetailedContent = &v
	}
	return p
}
