package usecase

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"notesd/internal/domain"
)

type memOrgRepo struct {
	mu   sync.Mutex
	orgs map[string]domain.Organization
}

func newMemOrgRepo() *memOrgRepo {
	return &memOrgRepo{orgs: make(map[string]domain.Organization)}
}

func (m *memOrgRepo) Create(_ context.Context, org domain.Organization) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.orgs {
		if existing.Name == org.Name {
			return domain.ErrConflict
		}
	}
	m.orgs[org.ID] = org
	return nil
}

func (m *memOrgRepo) GetByID(_ context.Context, orgID string) (*domain.Organization, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	org, ok := m.orgs[orgID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &org, nil
}

func (m *memOrgRepo) GetByName(_ context.Context, name string) (*domain.Organization, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, org := range m.orgs {
		if org.Name == name {
			o := org
			return &o, nil
		}
	}
	return nil, domain.ErrNotFound
}

type memUserRepo struct {
	mu    sync.Mutex
	users map[string]domain.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[string]domain.User)}
}

func (m *memUserRepo) Create(_ context.Context, user domain.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.users {
		if existing.OrganizationID == user.OrganizationID && existing.Email == user.Email {
			return domain.ErrConflict
		}
	}
	m.users[user.ID] = user
	return nil
}

func (m *memUserRepo) LookupUser(_ context.Context, userID string) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	user, ok := m.users[userID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &user, nil
}

func (m *memUserRepo) GetByEmailAndOrg(_ context.Context, email, orgID string) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, user := range m.users {
		if user.OrganizationID == orgID && user.Email == email {
			u := user
			return &u, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *memUserRepo) ListByOrganization(_ context.Context, orgID string) ([]domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var users []domain.User
	for _, user := range m.users {
		if user.OrganizationID == orgID {
			users = append(users, user)
		}
	}
	sort.Slice(users, func(i, j int) bool { return users[i].CreatedAt.Before(users[j].CreatedAt) })
	return users, nil
}

func (m *memUserRepo) Update(_ context.Context, user domain.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	existing, ok := m.users[user.ID]
	if !ok {
		return domain.ErrNotFound
	}
	now := time.Now().UTC()
	existing.Name = user.Name
	existing.Role = user.Role
	existing.UpdatedAt = &now
	m.users[user.ID] = existing
	return nil
}

type memNoteRepo struct {
	mu    sync.Mutex
	notes map[string]domain.Note
	err   error
}

func newMemNoteRepo() *memNoteRepo {
	return &memNoteRepo{notes: make(map[string]domain.Note)}
}

func (m *memNoteRepo) Create(_ context.Context, note domain.Note) error {
	if m.err != nil {
		return m.err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.notes[note.ID] = note
	return nil
}

func (m *memNoteRepo) GetByID(_ context.Context, noteID string) (*domain.Note, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	note, ok := m.notes[noteID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &note, nil
}

func (m *memNoteRepo) ListByOrganization(_ context.Context, orgID string, skip, limit int) ([]domain.Note, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	var notes []domain.Note
	for _, note := range m.notes {
		if note.OrganizationID == orgID {
			notes = append(notes, note)
		}
	}
	sort.Slice(notes, func(i, j int) bool { return notes[i].CreatedAt.After(notes[j].CreatedAt) })
	if skip >= len(notes) {
		return nil, nil
	}
	notes = notes[skip:]
	if len(notes) > limit {
		notes = notes[:limit]
	}
	return notes, nil
}

func (m *memNoteRepo) Update(_ context.Context, note domain.Note) error {
	if m.err != nil {
		return m.err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	existing, ok := m.notes[note.ID]
	if !ok {
		return domain.ErrNotFound
	}
	now := time.Now().UTC()
	existing.Title = note.Title
	existing.Content = note.Content
	existing.UpdatedAt = &now
	m.notes[note.ID] = existing
	return nil
}

func (m *memNoteRepo) Delete(_ context.Context, noteID string) error {
	if m.err != nil {
		return m.err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.notes[noteID]; !ok {
		return domain.ErrNotFound
	}
	delete(m.notes, noteID)
	return nil
}

var errBoom = errors.New("boom")
