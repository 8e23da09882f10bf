package user

import (
	"context"
	"strings"

	dom "example.com/provisions-store/internal/domain/user"
)

type PasswordHasher interface {
	Hash(password string) (string, error)
}

type Service struct {
	repo   dom.Repository
	hasher PasswordHasher
}

func NewService(repo dom.Repository, hasher PasswordHasher) *Service {
	return &Service{repo: repo, hasher: hasher}
}

func (s *Service) List(ctx context.Context, filter dom.ListFilter) ([]*dom.User, error) {
	return s.repo.List(ctx, filter)
}

func (s *Service) GetByID(ctx context.Context, id int64) (*dom.User, error) {
	return s.repo.GetByID(ctx, id)
}

type CreateInput struct {
	Name     string
	Email    string
	Password string
	Role     dom.Role
}

func (s *Service) Create(ctx context.Context, in CreateInput) (*dom.User, error) {
	if !in.Role.IsValid() {
		return nil, dom.ErrInvalidRole
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}

	return s.repo.Create(ctx, &dom.User{
		Name:         in.Name,
		Email:        strings.TrimSpace(strings.ToLower(in.Email)),
		PasswordHash: hash,
		Role:         in.Role,
	})
}

type UpdateInput struct {
	ID       int64
	Name     string
	Password string
	Role     dom.Role
}

func (s *Service) Update(ctx context.Context, in UpdateInput) (*dom.User, error) {
	existed, err := s.repo.GetByID(ctx, in.ID)
	if err != nil {
		return nil, err
	}

	if in.Name != "" {
		existed.Name = in.Name
	}
	if in.Role != "" {
		if !in.Role.IsValid() {
			return nil, dom.ErrInvalidRole
		}
		existed.Role = in.Role
	}
	if in.Password != "" {
		hash, err := s.hasher.Hash(in.Password)
		if err != nil {
			return nil, err
		}
		existed.PasswordHash = hash
	}

	return s.repo.Update(ctx, existed)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
