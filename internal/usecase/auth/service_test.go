package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	domuser "example.com/provisions-store/internal/domain/user"
)

type mockUserRepository struct {
	byEmail map[string]*domuser.User
}

func (m *mockUserRepository) Create(ctx context.Context, u *domuser.User) (*domuser.User, error) {
	return u, nil
}

func (m *mockUserRepository) GetByID(ctx context.Context, id int64) (*domuser.User, error) {
	return nil, domuser.ErrUserNotFound
}

func (m *mockUserRepository) GetByEmail(ctx context.Context, email string) (*domuser.User, error) {
	if u, ok := m.byEmail[email]; ok {
		return u, nil
	}
	return nil, domuser.ErrUserNotFound
}

func (m *mockUserRepository) List(ctx context.Context, filter domuser.ListFilter) ([]*domuser.User, error) {
	return nil, nil
}

func (m *mockUserRepository) Update(ctx context.Context, u *domuser.User) (*domuser.User, error) {
	return u, nil
}

func (m *mockUserRepository) Delete(ctx context.Context, id int64) error {
	return nil
}

type mockComparer struct {
	err error
}

func (m *mockComparer) Compare(hash, password string) error {
	return m.err
}

type mockTokens struct{}

func (m *mockTokens) GenerateToken(u *domuser.User) (string, error) {
	return "token-" + u.Email, nil
}

func (m *mockTokens) ParseToken(token string) (*Claims, error) {
	return nil, errors.New("not implemented")
}

func TestLogin_Success(t *testing.T) {
	repo := &mockUserRepository{byEmail: map[string]*domuser.User{
		"owner@store.in": {ID: 1, Email: "owner@store.in", Role: domuser.RoleAdmin},
	}}
	svc := NewService(repo, &mockComparer{}, &mockTokens{})

	res, err := svc.Login(context.Background(), LoginInput{
		Email:    "  Owner@Store.IN ",
		Password: "secret",
	})
	require.NoError(t, err)
	require.Equal(t, "token-owner@store.in", res.Token)
	require.Equal(t, domuser.RoleAdmin, res.User.Role)
}

func TestLogin_EmptyInput(t *testing.T) {
	svc := NewService(&mockUserRepository{}, &mockComparer{}, &mockTokens{})

	_, err := svc.Login(context.Background(), LoginInput{Email: "", Password: ""})
	require.ErrorIs(t, err, domuser.ErrInvalidCredential)
}

func TestLogin_WrongPassword(t *testing.T) {
	repo := &mockUserRepository{byEmail: map[string]*domuser.User{
		"owner@store.in": {ID: 1, Email: "owner@store.in"},
	}}
	svc := NewService(repo, &mockComparer{err: errors.New("mismatch")}, &mockTokens{})

	_, err := svc.Login(context.Background(), LoginInput{
		Email:    "owner@store.in",
		Password: "wrong",
	})
	require.ErrorIs(t, err, domuser.ErrUnauthorized)
}

func TestLogin_UnknownEmail(t *testing.T) {
	svc := NewService(&mockUserRepository{}, &mockComparer{}, &mockTokens{})

	_, err := svc.Login(context.Background(), LoginInput{
		Email:    "nobody@store.in",
		Password: "secret",
	})
	require.ErrorIs(t, err, domuser.ErrUnauthorized)
}
