package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/zaqqye/navodaya_web/internal/models"
)

var _ Store = (*MemoryStore)(nil)

// MemoryStore keeps everything in process memory. It backs DB_DRIVER=memory
// and the handler tests. Records are copied on the way in and out.
type MemoryStore struct {
	mu       sync.RWMutex
	company  *models.CompanyInfo
	services []models.Service
	projects []models.Project
	messages []models.ContactMessage
	admins   map[string]models.AdminUser
	nextID   uint
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{admins: map[string]models.AdminUser{}}
}

func (m *MemoryStore) GetCompany(ctx context.Context) (*models.CompanyInfo, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.company == nil {
		return nil, ErrNotFound
	}
	c := *m.company
	return &c, nil
}

func (m *MemoryStore) SaveCompany(ctx context.Context, c *models.CompanyInfo) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := time.Now().UTC()
	if c.ID == 0 {
		m.nextID++
		c.ID = m.nextID
		c.CreatedAt = now
	}
	c.UpdatedAt = now
	cp := *c
	m.company = &cp
	return nil
}

func (m *MemoryStore) ListServices(ctx context.Context) ([]models.Service, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]models.Service, 0, len(m.services))
	for _, s := range m.services {
		out = append(out, cloneService(s))
	}
	return out, nil
}

func (m *MemoryStore) GetService(ctx context.Context, id string) (*models.Service, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, s := range m.services {
		if s.ID == id {
			c := cloneService(s)
			return &c, nil
		}
	}
	return nil, ErrNotFound
}

func (m *MemoryStore) CreateService(ctx context.Context, s *models.Service) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	if s.Features == nil {
		s.Features = pq.StringArray{}
	}
	s.CreatedAt = time.Now().UTC()
	s.UpdatedAt = s.CreatedAt
	m.services = append(m.services, cloneService(*s))
	return nil
}

func (m *MemoryStore) SaveService(ctx context.Context, s *models.Service) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.services {
		if m.services[i].ID == s.ID {
			s.UpdatedAt = time.Now().UTC()
			m.services[i] = cloneService(*s)
			return nil
		}
	}
	return ErrNotFound
}

func (m *MemoryStore) DeleteService(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.services {
		if m.services[i].ID == id {
			m.services = append(m.services[:i], m.services[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (m *MemoryStore) CountServices(ctx context.Context) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return int64(len(m.services)), nil
}

func (m *MemoryStore) ListProjects(ctx context.Context) ([]models.Project, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]models.Project, 0, len(m.projects))
	for _, p := range m.projects {
		out = append(out, cloneProject(p))
	}
	return out, nil
}

func (m *MemoryStore) GetProject(ctx context.Context, id string) (*models.Project, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, p := range m.projects {
		if p.ID == id {
			c := cloneProject(p)
			return &c, nil
		}
	}
	return nil, ErrNotFound
}

func (m *MemoryStore) CreateProject(ctx context.Context, p *models.Project) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	p.CreatedAt = time.Now().UTC()
	p.UpdatedAt = p.CreatedAt
	m.projects = append(m.projects, cloneProject(*p))
	return nil
}

func (m *MemoryStore) SaveProject(ctx context.Context, p *models.Project) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.projects {
		if m.projects[i].ID == p.ID {
			p.UpdatedAt = time.Now().UTC()
			m.projects[i] = cloneProject(*p)
			return nil
		}
	}
	return ErrNotFound
}

func (m *MemoryStore) DeleteProject(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.projects {
		if m.projects[i].ID == id {
			m.projects = append(m.projects[:i], m.projects[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (m *MemoryStore) CountProjects(ctx context.Context) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return int64(len(m.projects)), nil
}

func (m *MemoryStore) CreateMessage(ctx context.Context, msg *models.ContactMessage) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if msg.ID == "" {
		msg.ID = uuid.NewString()
	}
	if msg.CreatedAt.IsZero() {
		msg.CreatedAt = time.Now().UTC()
	}
	m.messages = append(m.messages, *msg)
	return nil
}

func (m *MemoryStore) ListMessages(ctx context.Context) ([]models.ContactMessage, error) {
	m.mu.RLock()
	out := make([]models.ContactMessage, 0, len(m.messages))
	for i := len(m.messages) - 1; i >= 0; i-- {
		out = append(out, m.messages[i])
	}
	m.mu.RUnlock()

	// newest first; on equal timestamps the later insert stays ahead
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (m *MemoryStore) DeleteMessage(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.messages {
		if m.messages[i].ID == id {
			m.messages = append(m.messages[:i], m.messages[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (m *MemoryStore) FindAdmin(ctx context.Context, username string) (*models.AdminUser, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	a, ok := m.admins[username]
	if !ok {
		return nil, ErrNotFound
	}
	return &a, nil
}

func (m *MemoryStore) CreateAdmin(ctx context.Context, a *models.AdminUser) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	a.ID = m.nextID
	a.CreatedAt = time.Now().UTC()
	a.UpdatedAt = a.CreatedAt
	m.admins[a.Username] = *a
	return nil
}

func cloneService(s models.Service) models.Service {
	if s.Features != nil {
		s.Features = append(pq.StringArray{}, s.Features...)
	}
	if s.DetailedContent != nil {
		v := *s.DetailedContent
		s.DetailedContent = &v
	}
	return s
}

func cloneProject(p models.Project) models.Project {
	if p.Technologies != nil {
		p.Technologies = append(pq.StringArray{}, p.Technologies...)
	}
	if p.DetailedContent != nil {
		v := *p.DetailedContent
		p.DetailedContent = &v
	}
	return p
}
