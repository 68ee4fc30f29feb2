package service

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"

	"campushub/internal/domain"
	"campushub/internal/normalize"
	"campushub/internal/storage"
)

// memStorage implements every storage interface in memory, with the same
// uniqueness semantics the sqlite schema enforces. The mutex matters: the
// concurrency tests hit it from several goroutines.
type memStorage struct {
	mu    sync.Mutex
	users map[uuid.UUID]domain.User
	roles map[uuid.UUID]domain.RoleAssignment
	// dates preserve insertion order so listings are deterministic
	userOrder  []uuid.UUID
	eventOrder []uuid.UUID
	events     map[uuid.UUID]domain.Event
	regs       map[uuid.UUID]domain.Registration
	regOrder   []uuid.UUID
	roleOrder  []uuid.UUID
}

var _ storage.UserStorage = (*memStorage)(nil)
var _ storage.RoleStorage = (*memStorage)(nil)
var _ storage.EventStorage = (*memStorage)(nil)
var _ storage.RegistrationStorage = (*memStorage)(nil)

func newMemStorage() *memStorage {
	return &memStorage{
		users:  make(map[uuid.UUID]domain.User),
		roles:  make(map[uuid.UUID]domain.RoleAssignment),
		events: make(map[uuid.UUID]domain.Event),
		regs:   make(map[uuid.UUID]domain.Registration),
	}
}

func (m *memStorage) GetUser(_ context.Context, id uuid.UUID) (domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	user, ok := m.users[id]
	if !ok {
		return domain.User{}, storage.ErrNotFound
	}
	return user, nil
}

func (m *memStorage) GetUserByEmail(_ context.Context, email string) (domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, user := range m.users {
		if strings.EqualFold(user.Email, email) {
			return user, nil
		}
	}
	return domain.User{}, storage.ErrNotFound
}

func (m *memStorage) ListUsers(_ context.Context) ([]domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]domain.User, 0, len(m.userOrder))
	for _, id := range m.userOrder {
		out = append(out, m.users[id])
	}
	return out, nil
}

func (m *memStorage) CreateUser(_ context.Context, user domain.User) (domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.users {
		if existing.Email == user.Email || existing.EntryNumber == user.EntryNumber {
			return domain.User{}, storage.ErrDuplicate
		}
	}
	m.users[user.ID] = user
	m.userOrder = append(m.userOrder, user.ID)
	return user, nil
}

func (m *memStorage) UpdateUser(_ context.Context, user domain.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.users[user.ID]; !ok {
		return storage.ErrNotFound
	}
	m.users[user.ID] = user
	return nil
}

func (m *memStorage) ListRolesByUser(_ context.Context, userID uuid.UUID) ([]domain.RoleAssignment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.RoleAssignment
	for _, id := range m.roleOrder {
		if a, ok := m.roles[id]; ok && a.UserID == userID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *memStorage) ListRolesByOrg(_ context.Context, orgName string) ([]domain.RoleAssignment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.RoleAssignment
	for _, id := range m.roleOrder {
		if a, ok := m.roles[id]; ok && normalize.Equal(a.Org.Name, orgName) {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *memStorage) FindRole(_ context.Context, userID uuid.UUID, orgName string) (domain.RoleAssignment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, a := range m.roles {
		if a.UserID == userID && normalize.Equal(a.Org.Name, orgName) {
			return a, nil
		}
	}
	return domain.RoleAssignment{}, storage.ErrNotFound
}

func (m *memStorage) CreateRole(_ context.Context, a domain.RoleAssignment) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.roles {
		if existing.UserID == a.UserID &&
			normalize.Equal(existing.Org.Name, a.Org.Name) &&
			existing.Role == a.Role {
			return storage.ErrDuplicate
		}
	}
	m.roles[a.ID] = a
	m.roleOrder = append(m.roleOrder, a.ID)
	return nil
}

func (m *memStorage) DeleteRole(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.roles[id]; !ok {
		return storage.ErrNotFound
	}
	delete(m.roles, id)
	return nil
}

func (m *memStorage) ListEvents(_ context.Context, filter storage.EventFilter) ([]domain.Event, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.Event
	for _, id := range m.eventOrder {
		ev := m.events[id]
		if ev.Private && !filter.IncludePrivate {
			continue
		}
		if filter.OrgType != "" && ev.Org.Type != filter.OrgType {
			continue
		}
		if filter.OrgName != "" && !normalize.Equal(ev.Org.Name, filter.OrgName) {
			continue
		}
		out = append(out, ev)
	}
	return out, nil
}

func (m *memStorage) GetEvent(_ context.Context, id uuid.UUID) (domain.Event, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	ev, ok := m.events[id]
	if !ok {
		return domain.Event{}, storage.ErrNotFound
	}
	return ev, nil
}

func (m *memStorage) CreateEvent(_ context.Context, ev domain.Event) (domain.Event, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events[ev.ID] = ev
	m.eventOrder = append(m.eventOrder, ev.ID)
	return ev, nil
}

func (m *memStorage) CountEventsByOrg(_ context.Context, orgName string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	count := 0
	for _, ev := range m.events {
		if normalize.Equal(ev.Org.Name, orgName) {
			count++
		}
	}
	return count, nil
}

func (m *memStorage) CreateRegistration(_ context.Context, reg domain.Registration) (domain.Registration, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.regs {
		if existing.UserID == reg.UserID && existing.EventID == reg.EventID {
			return domain.Registration{}, storage.ErrDuplicate
		}
	}
	m.regs[reg.ID] = reg
	m.regOrder = append(m.regOrder, reg.ID)
	return reg, nil
}

func (m *memStorage) ListRegistrationsByUser(_ context.Context, userID uuid.UUID) ([]domain.Registration, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.Registration
	for _, id := range m.regOrder {
		if reg, ok := m.regs[id]; ok && reg.UserID == userID {
			out = append(out, reg)
		}
	}
	return out, nil
}

func (m *memStorage) ListRegistrationsByEvent(_ context.Context, eventID uuid.UUID) ([]domain.Registration, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.Registration
	for _, id := range m.regOrder {
		if reg, ok := m.regs[id]; ok && reg.EventID == eventID {
			out = append(out, reg)
		}
	}
	return out, nil
}

func (m *memStorage) SetRating(_ context.Context, userID, eventID uuid.UUID, rating int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, reg := range m.regs {
		if reg.UserID == userID && reg.EventID == eventID {
			reg.Rating = &rating
			m.regs[id] = reg
			return nil
		}
	}
	return storage.ErrNotFound
}

func (m *memStorage) CountRegistrationsByOrg(_ context.Context, orgName string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	count := 0
	for _, reg := range m.regs {
		if ev, ok := m.events[reg.EventID]; ok && normalize.Equal(ev.Org.Name, orgName) {
			count++
		}
	}
	return count, nil
}
