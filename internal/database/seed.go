package database

import (
	"context"
	"errors"
	"log"

	"github.com/zaqqye/navodaya_web/internal/catalog"
	"github.com/zaqqye/navodaya_web/internal/config"
	"github.com/zaqqye/navodaya_web/internal/models"
	"github.com/zaqqye/navodaya_web/internal/repository"
	"github.com/zaqqye/navodaya_web/internal/utils"
)

func SeedAdmin(ctx context.Context, store repository.Store, cfg *config.Config) error {
	username := cfg.AdminUsername
	if username == "" {
		username = "admin"
	}
	_, err := store.FindAdmin(ctx, username)
	if err == nil {
		return nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return err
	}

	password := cfg.AdminPassword
	if password == "" {
		password = "admin"
	}
	hashed, err := utils.HashPassword(password)
	if err != nil {
		return err
	}
	if err := store.CreateAdmin(ctx, &models.AdminUser{Username: username, Password: hashed}); err != nil {
		return err
	}
	log.Println("Seeded initial admin:", username)
	return nil
}

// SeedContent fills the company, services and projects from the bundled
// catalog. Each collection is only seeded while it is empty.
func SeedContent(ctx context.Context, store repository.Store) error {
	if _, err := store.GetCompany(ctx); errors.Is(err, repository.ErrNotFound) {
		company := catalog.Company()
		if err := store.SaveCompany(ctx, &company); err != nil {
			return err
		}
		log.Println("Company info seeded")
	} else if err != nil {
		return err
	}

	n, err := store.CountServices(ctx)
	if err != nil {
		return err
	}
	if n == 0 {
		for _, s := range catalog.Services() {
			s := s
			if err := store.CreateService(ctx, &s); err != nil {
				return err
			}
		}
		log.Println("Services seeded")
	}

	n, err = store.CountProjects(ctx)
	if err != nil {
		return err
	}
	if n == 0 {
		for _, p := range catalog.Projects() {
			p := p
			if err := store.CreateProject(ctx, &p); err != nil {
				return err
			}
		}
		log.Println("Projects seeded")
	}
	return nil
}
