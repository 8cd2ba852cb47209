package service

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/crucial707/codepad/internal/common"
	"github.com/crucial707/codepad/internal/models"
	"github.com/google/uuid"
)

type memUserStore struct {
	mu    sync.Mutex
	users []models.User
	err   error
}

func (s *memUserStore) Create(_ context.Context, username, email, hash string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	u := models.User{ID: uuid.NewString(), Username: username, Email: email, PasswordHash: hash, CreatedAt: time.Now()}
	s.users = append(s.users, u)
	return &u, nil
}

func (s *memUserStore) GetByEmail(_ context.Context, email string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	for _, u := range s.users {
		if u.Email == email {
			u := u
			return &u, nil
		}
	}
	return nil, common.ErrNotFound
}

type memProjectStore struct {
	mu       sync.Mutex
	projects map[string]models.Project
	clock    time.Time
	err      error
}

func newMemProjectStore() *memProjectStore {
	return &memProjectStore{
		projects: make(map[string]models.Project),
		clock:    time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

// tick advances the fake clock so creation times are strictly increasing.
func (s *memProjectStore) tick() time.Time {
	s.clock = s.clock.Add(time.Second)
	return s.clock
}

func (s *memProjectStore) Create(_ context.Context, ownerID, name string, code models.ProjectCode) (*models.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	now := s.tick()
	p := models.Project{ID: uuid.NewString(), Name: name, OwnerID: ownerID, ProjectCode: code, CreatedAt: now, UpdatedAt: now}
	s.projects[p.ID] = p
	return &p, nil
}

func (s *memProjectStore) GetByID(_ context.Context, id string) (*models.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.projects[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	return &p, nil
}

func (s *memProjectStore) ListByOwner(_ context.Context, ownerID string) ([]models.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	out := []models.Project{}
	for _, p := range s.projects {
		if p.OwnerID == ownerID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (s *memProjectStore) UpdateCode(_ context.Context, id string, code models.ProjectCode) (*models.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.projects[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	p.ProjectCode = code
	p.UpdatedAt = s.tick()
	s.projects[id] = p
	return &p, nil
}

func (s *memProjectStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.projects[id]; !ok {
		return common.ErrNotFound
	}
	delete(s.projects, id)
	return nil
}
