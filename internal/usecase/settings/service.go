package settings

import (
	"context"
	"time"

	dom "example.com/provisions-store/internal/domain/settings"
)

type Service struct {
	repo dom.Repository
	now  func() time.Time
}

func NewService(repo dom.Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

func (s *Service) Get(ctx context.Context) (*dom.Settings, error) {
	return s.repo.Load(ctx)
}

func (s *Service) UpdateStore(ctx context.Context, store dom.StoreInfo) (*dom.Settings, error) {
	return s.update(ctx, func(current *dom.Settings) {
		current.Store = store
	})
}

func (s *Service) UpdateDelivery(ctx context.Context, delivery dom.Delivery) (*dom.Settings, error) {
	return s.update(ctx, func(current *dom.Settings) {
		current.Delivery = delivery
	})
}

func (s *Service) UpdateNotifications(ctx context.Context, n dom.Notifications) (*dom.Settings, error) {
	return s.update(ctx, func(current *dom.Settings) {
		current.Notifications = n
	})
}

func (s *Service) update(ctx context.Context, apply func(*dom.Settings)) (*dom.Settings, error) {
	current, err := s.repo.Load(ctx)
	if err != nil {
		return nil, err
	}
	apply(current)
	current.UpdatedAt = s.now()
	if err := s.repo.Save(ctx, current); err != nil {
		return nil, err
	}
	return current, nil
}
