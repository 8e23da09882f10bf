package message

import (
	"context"
	"strings"

	dom "example.com/provisions-store/internal/domain/message"
)

type Service struct {
	repo dom.Repository
}

func NewService(repo dom.Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]*dom.Message, error) {
	return s.repo.List(ctx)
}

func (s *Service) UnreadCount(ctx context.Context) (int64, error) {
	return s.repo.UnreadCount(ctx)
}

func (s *Service) Create(ctx context.Context, m *dom.Message) (*dom.Message, error) {
	if strings.TrimSpace(m.Body) == "" {
		return nil, dom.ErrEmptyMessage
	}
	if !m.Source.IsValid() {
		return nil, dom.ErrInvalidSource
	}
	m.Read = false
	return s.repo.Create(ctx, m)
}

func (s *Service) MarkRead(ctx context.Context, id string) error {
	return s.repo.MarkRead(ctx, id)
}

func (s *Service) MarkAllRead(ctx context.Context) error {
	return s.repo.MarkAllRead(ctx)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
