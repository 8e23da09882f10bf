package user

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	dom "example.com/provisions-store/internal/domain/user"
)

type mockUserRepository struct {
	users  map[int64]*dom.User
	nextID int64
}

func newMockUserRepository() *mockUserRepository {
	return &mockUserRepository{users: make(map[int64]*dom.User), nextID: 1}
}

func (m *mockUserRepository) Create(ctx context.Context, u *dom.User) (*dom.User, error) {
	for _, existed := range m.users {
		if existed.Email == u.Email {
			return nil, dom.ErrEmailAlreadyUsed
		}
	}
	u.ID = m.nextID
	m.nextID++
	m.users[u.ID] = u
	return u, nil
}

func (m *mockUserRepository) GetByID(ctx context.Context, id int64) (*dom.User, error) {
	if u, ok := m.users[id]; ok {
		cloned := *u
		return &cloned, nil
	}
	return nil, dom.ErrUserNotFound
}

func (m *mockUserRepository) GetByEmail(ctx context.Context, email string) (*dom.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			cloned := *u
			return &cloned, nil
		}
	}
	return nil, dom.ErrUserNotFound
}

func (m *mockUserRepository) List(ctx context.Context, filter dom.ListFilter) ([]*dom.User, error) {
	var out []*dom.User
	for _, u := range m.users {
		if filter.Role != nil && u.Role != *filter.Role {
			continue
		}
		cloned := *u
		out = append(out, &cloned)
	}
	return out, nil
}

func (m *mockUserRepository) Update(ctx context.Context, u *dom.User) (*dom.User, error) {
	if _, ok := m.users[u.ID]; !ok {
		return nil, dom.ErrUserNotFound
	}
	m.users[u.ID] = u
	return u, nil
}

func (m *mockUserRepository) Delete(ctx context.Context, id int64) error {
	if _, ok := m.users[id]; !ok {
		return dom.ErrUserNotFound
	}
	delete(m.users, id)
	return nil
}

type fakeHasher struct{}

func (fakeHasher) Hash(password string) (string, error) {
	return fmt.Sprintf("hashed(%s)", password), nil
}

func TestCreate_HashesPasswordAndLowercasesEmail(t *testing.T) {
	repo := newMockUserRepository()
	svc := NewService(repo, fakeHasher{})

	u, err := svc.Create(context.Background(), CreateInput{
		Name:     "Owner",
		Email:    "Owner@Example.COM",
		Password: "secret123",
		Role:     dom.RoleAdmin,
	})
	require.NoError(t, err)
	require.Equal(t, "owner@example.com", u.Email)
	require.Equal(t, "hashed(secret123)", u.PasswordHash)
	require.Equal(t, dom.RoleAdmin, u.Role)
}

func TestCreate_InvalidRole_Fails(t *testing.T) {
	svc := NewService(newMockUserRepository(), fakeHasher{})

	_, err := svc.Create(context.Background(), CreateInput{
		Name:     "Someone",
		Email:    "someone@example.com",
		Password: "secret123",
		Role:     dom.Role("superuser"),
	})
	require.ErrorIs(t, err, dom.ErrInvalidRole)
}

func TestCreate_DuplicateEmail_Fails(t *testing.T) {
	repo := newMockUserRepository()
	svc := NewService(repo, fakeHasher{})

	_, err := svc.Create(context.Background(), CreateInput{
		Name: "A", Email: "dup@example.com", Password: "secret123", Role: dom.RoleStaff,
	})
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), CreateInput{
		Name: "B", Email: "dup@example.com", Password: "secret456", Role: dom.RoleStaff,
	})
	require.ErrorIs(t, err, dom.ErrEmailAlreadyUsed)
}

func TestUpdate_PartialFields_KeepRest(t *testing.T) {
	repo := newMockUserRepository()
	svc := NewService(repo, fakeHasher{})

	created, err := svc.Create(context.Background(), CreateInput{
		Name: "Clerk", Email: "clerk@example.com", Password: "secret123", Role: dom.RoleStaff,
	})
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), UpdateInput{
		ID:   created.ID,
		Role: dom.RoleManager,
	})
	require.NoError(t, err)
	require.Equal(t, "Clerk", updated.Name)
	require.Equal(t, dom.RoleManager, updated.Role)
	require.Equal(t, "hashed(secret123)", updated.PasswordHash)
}

func TestList_FilterByRole(t *testing.T) {
	repo := newMockUserRepository()
	svc := NewService(repo, fakeHasher{})

	for i, role := range []dom.Role{dom.RoleAdmin, dom.RoleStaff, dom.RoleStaff} {
		_, err := svc.Create(context.Background(), CreateInput{
			Name:     fmt.Sprintf("User %d", i),
			Email:    fmt.Sprintf("user%d@example.com", i),
			Password: "secret123",
			Role:     role,
		})
		require.NoError(t, err)
	}

	staff := dom.RoleStaff
	users, err := svc.List(context.Background(), dom.ListFilter{Role: &staff})
	require.NoError(t, err)
	require.Len(t, users, 2)
}
