package coupon

import (
	"context"
	"errors"
	"time"

	dom "example.com/provisions-store/internal/domain/coupon"
)

type Service struct {
	repo dom.Repository
	now  func() time.Time
}

func NewService(repo dom.Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

func (s *Service) List(ctx context.Context) ([]*dom.Coupon, error) {
	return s.repo.List(ctx)
}

func (s *Service) GetByID(ctx context.Context, id string) (*dom.Coupon, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, c *dom.Coupon) (*dom.Coupon, error) {
	c.Code = dom.NormalizeCode(c.Code)
	if !c.DiscountType.IsValid() {
		return nil, dom.ErrInvalidDiscountType
	}
	if c.DiscountValue.IsNegative() {
		return nil, dom.ErrInvalidDiscountValue
	}
	if c.UsageLimit < 1 {
		return nil, dom.ErrInvalidUsageLimit
	}
	c.UsageCount = 0
	return s.repo.Create(ctx, c)
}

func (s *Service) Update(ctx context.Context, c *dom.Coupon) (*dom.Coupon, error) {
	existed, err := s.repo.GetByID(ctx, c.ID)
	if err != nil {
		return nil, err
	}

	if c.Code != "" {
		existed.Code = dom.NormalizeCode(c.Code)
	}
	if c.DiscountType != "" {
		if !c.DiscountType.IsValid() {
			return nil, dom.ErrInvalidDiscountType
		}
		existed.DiscountType = c.DiscountType
	}
	if !c.DiscountValue.IsZero() {
		if c.DiscountValue.IsNegative() {
			return nil, dom.ErrInvalidDiscountValue
		}
		existed.DiscountValue = c.DiscountValue
	}
	if c.SuccessMessage != "" {
		existed.SuccessMessage = c.SuccessMessage
	}
	if c.UsageLimit > 0 {
		existed.UsageLimit = c.UsageLimit
	}
	if !c.ExpiryDate.IsZero() {
		existed.ExpiryDate = c.ExpiryDate
	}
	existed.IsActive = c.IsActive

	return s.repo.Update(ctx, existed)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

type ValidationResult struct {
	Valid   bool
	Coupon  *dom.Coupon
	Message string
}

// Validate runs the same pipeline the cart uses, but without applying
// anything; the back office uses it to preview a code.
func (s *Service) Validate(ctx context.Context, code string) (*ValidationResult, error) {
	c, err := s.repo.GetByCode(ctx, dom.NormalizeCode(code))
	if errors.Is(err, dom.ErrCouponNotFound) {
		return &ValidationResult{Message: "Invalid coupon code"}, nil
	}
	if err != nil {
		return nil, err
	}

	if !c.IsActive {
		return &ValidationResult{Message: "This coupon is no longer active"}, nil
	}
	if c.Expired(s.now()) {
		return &ValidationResult{Message: "This coupon has expired"}, nil
	}
	if c.Exhausted() {
		return &ValidationResult{Message: "This coupon has reached its usage limit"}, nil
	}

	return &ValidationResult{Valid: true, Coupon: c}, nil
}
