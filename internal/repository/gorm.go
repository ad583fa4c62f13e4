package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/zaqqye/navodaya_web/internal/models"
)

var _ Store = (*GormStore)(nil)

type GormStore struct {
	DB *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{DB: db}
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

func (s *GormStore) GetCompany(ctx context.Context) (*models.CompanyInfo, error) {
	var c models.CompanyInfo
	if err := s.DB.WithContext(ctx).Order("id").First(&c).Error; err != nil {
		return nil, notFound(err)
	}
	return &c, nil
}

func (s *GormStore) SaveCompany(ctx context.Context, c *models.CompanyInfo) error {
	if c.ID == 0 {
		return s.DB.WithContext(ctx).Create(c).Error
	}
	return s.DB.WithContext(ctx).Save(c).Error
}

func (s *GormStore) ListServices(ctx context.Context) ([]models.Service, error) {
	var out []models.Service
	if err := s.DB.WithContext(ctx).Order("created_at, id").Find(&out).Error; err != nil {
		return nil, fmt.Errorf("listing services: %w", err)
	}
	return out, nil
}

func (s *GormStore) GetService(ctx context.Context, id string) (*models.Service, error) {
	var svc models.Service
	if err := s.DB.WithContext(ctx).Where("id = ?", id).First(&svc).Error; err != nil {
		return nil, notFound(err)
	}
	return &svc, nil
}

func (s *GormStore) CreateService(ctx context.Context, svc *models.Service) error {
	return s.DB.WithContext(ctx).Create(svc).Error
}

func (s *GormStore) SaveService(ctx context.Context, svc *models.Service) error {
	return s.DB.WithContext(ctx).Save(svc).Error
}

func (s *GormStore) DeleteService(ctx context.Context, id string) error {
	res := s.DB.WithContext(ctx).Where("id = ?", id).Delete(&models.Service{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *GormStore) CountServices(ctx context.Context) (int64, error) {
	var n int64
	err := s.DB.WithContext(ctx).Model(&models.Service{}).Count(&n).Error
	return n, err
}

func (s *GormStore) ListProjects(ctx context.Context) ([]models.Project, error) {
	var out []models.Project
	if err := s.DB.WithContext(ctx).Order("created_at, id").Find(&out).Error; err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}
	return out, nil
}

func (s *GormStore) GetProject(ctx context.Context, id string) (*models.Project, error) {
	var p models.Project
	if err := s.DB.WithContext(ctx).Where("id = ?", id).First(&p).Error; err != nil {
		return nil, notFound(err)
	}
	return &p, nil
}

func (s *GormStore) CreateProject(ctx context.Context, p *models.Project) error {
	return s.DB.WithContext(ctx).Create(p).Error
}

func (s *GormStore) SaveProject(ctx context.Context, p *models.Project) error {
	return s.DB.WithContext(ctx).Save(p).Error
}

func (s *GormStore) DeleteProject(ctx context.Context, id string) error {
	res := s.DB.WithContext(ctx).Where("id = ?", id).Delete(&models.Project{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *GormStore) CountProjects(ctx context.Context) (int64, error) {
	var n int64
	err := s.DB.WithContext(ctx).Model(&models.Project{}).Count(&n).Error
	return n, err
}

func (s *GormStore) CreateMessage(ctx context.Context, m *models.ContactMessage) error {
	return s.DB.WithContext(ctx).Create(m).Error
}

func (s *GormStore) ListMessages(ctx context.Context) ([]models.ContactMessage, error) {
	var out []models.ContactMessage
	if err := s.DB.WithContext(ctx).Order("created_at DESC").Find(&out).Error; err != nil {
		return nil, fmt.Errorf("listing messages: %w", err)
	}
	return out, nil
}

func (s *GormStore) DeleteMessage(ctx context.Context, id string) error {
	res := s.DB.WithContext(ctx).Where("id = ?", id).Delete(&models.ContactMessage{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *GormStore) FindAdmin(ctx context.Context, username string) (*models.AdminUser, error) {
	var a models.AdminUser
	if err := s.DB.WithContext(ctx).Where("username = ?", username).First(&a).Error; err != nil {
		return nil, notFound(err)
	}
	return &a, nil
}

func (s *GormStore) CreateAdmin(ctx context.Context, a *models.AdminUser) error {
	return s.DB.WithContext(ctx).Create(a).Error
}
