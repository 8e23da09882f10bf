package cart

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	domcart "example.com/provisions-store/internal/domain/cart"
	domcoupon "example.com/provisions-store/internal/domain/coupon"
	domproduct "example.com/provisions-store/internal/domain/product"
	"example.com/provisions-store/internal/notify"
)

type Store interface {
	domcart.Store
}

type ProductRepository interface {
	GetByID(ctx context.Context, id int64) (*domproduct.Product, error)
}

type CouponRepository interface {
	GetByCode(ctx context.Context, code string) (*domcoupon.Coupon, error)
	IncrementUsage(ctx context.Context, id string) error
	DecrementUsage(ctx context.Context, id string) error
}

// Service owns cart state: line mutations, the applied coupon, and the
// notifications each outcome produces.
type Service struct {
	store       Store
	productRepo ProductRepository
	couponRepo  CouponRepository
	notifier    notify.Notifier
	log         zerolog.Logger
	now         func() time.Time
}

func NewService(
	store Store,
	productRepo ProductRepository,
	couponRepo CouponRepository,
	notifier notify.Notifier,
	log zerolog.Logger,
) *Service {
	return &Service{
		store:       store,
		productRepo: productRepo,
		couponRepo:  couponRepo,
		notifier:    notifier,
		log:         log,
		now:         time.Now,
	}
}

func (s *Service) Get(ctx context.Context, token string) (*domcart.Cart, error) {
	return s.store.Load(ctx, token)
}

// AddToCart merges the quantity into an existing line for the product or
// appends a new one, then persists the cart.
func (s *Service) AddToCart(ctx context.Context, token string, productID, quantity int64) error {
	if quantity < 1 {
		quantity = 1
	}

	p, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return err
	}

	c, err := s.store.Load(ctx, token)
	if err != nil {
		return err
	}

	merged := c.Add(p, quantity)
	if err := s.store.Save(ctx, token, c); err != nil {
		return err
	}

	if merged {
		s.notifier.Notify(notify.Notification{
			Title:    "Item updated",
			Body:     p.Name + " quantity updated in your cart",
			Severity: notify.SeverityInfo,
			Duration: 3 * time.Second,
		})
	} else {
		s.notifier.Notify(notify.Notification{
			Title:    "Item added",
			Body:     p.Name + " added to your cart",
			Severity: notify.SeverityInfo,
			Duration: 3 * time.Second,
		})
	}
	return nil
}

// RemoveFromCart is a silent no-op when the product is not in the cart.
func (s *Service) RemoveFromCart(ctx context.Context, token string, productID int64) error {
	c, err := s.store.Load(ctx, token)
	if err != nil {
		return err
	}

	line, removed := c.Remove(productID)
	if err := s.store.Save(ctx, token, c); err != nil {
		return err
	}

	if removed {
		s.notifier.Notify(notify.Notification{
			Title:    "Item removed",
			Body:     line.Name + " removed from your cart",
			Severity: notify.SeverityInfo,
			Duration: 2 * time.Second,
		})
	}
	return nil
}

// UpdateQuantity sets an absolute quantity. Anything below 1 means removal.
func (s *Service) UpdateQuantity(ctx context.Context, token string, productID, quantity int64) error {
	if quantity < 1 {
		return s.RemoveFromCart(ctx, token, productID)
	}

	c, err := s.store.Load(ctx, token)
	if err != nil {
		return err
	}
	if !c.SetQuantity(productID, quantity) {
		return nil
	}
	return s.store.Save(ctx, token, c)
}

// ClearCart empties the cart and drops the applied coupon without releasing
// its usage slot.
func (s *Service) ClearCart(ctx context.Context, token string) error {
	c, err := s.store.Load(ctx, token)
	if err != nil {
		return err
	}

	c.Clear()
	if err := s.store.Save(ctx, token, c); err != nil {
		return err
	}

	s.notifier.Notify(notify.Notification{
		Title:    "Cart cleared",
		Body:     "All items removed from your cart",
		Severity: notify.SeverityInfo,
		Duration: 2 * time.Second,
	})
	return nil
}

// ApplyCoupon validates the code (existence and active flag, expiry, usage
// headroom, in that order) and on success applies it to the cart and bumps
// the shared usage counter. Every rejection is announced with its own
// notification; nothing here surfaces as an error to the caller.
func (s *Service) ApplyCoupon(ctx context.Context, token, code string) bool {
	c, err := s.store.Load(ctx, token)
	if err != nil {
		return s.couponError(err)
	}

	cp, err := s.couponRepo.GetByCode(ctx, domcoupon.NormalizeCode(code))
	if errors.Is(err, domcoupon.ErrCouponNotFound) || (err == nil && !cp.IsActive) {
		s.notifier.Notify(notify.Notification{
			Title:    "Invalid coupon",
			Body:     "The coupon code you entered is invalid or inactive.",
			Severity: notify.SeverityError,
			Duration: 3 * time.Second,
		})
		return false
	}
	if err != nil {
		return s.couponError(err)
	}

	if cp.Expired(s.now()) {
		s.notifier.Notify(notify.Notification{
			Title:    "Expired coupon",
			Body:     "The coupon code you entered has expired.",
			Severity: notify.SeverityError,
			Duration: 3 * time.Second,
		})
		return false
	}

	if cp.Exhausted() {
		s.notifier.Notify(notify.Notification{
			Title:    "Coupon limit reached",
			Body:     "This coupon has reached its usage limit.",
			Severity: notify.SeverityError,
			Duration: 3 * time.Second,
		})
		return false
	}

	// TODO: decide whether applying over an already-applied coupon should
	// release the previous coupon's usage slot first. Today the previous
	// increment is kept, matching the storefront.
	c.AppliedCoupon = cp
	if err := s.store.Save(ctx, token, c); err != nil {
		return s.couponError(err)
	}
	if err := s.couponRepo.IncrementUsage(ctx, cp.ID); err != nil {
		return s.couponError(err)
	}

	s.notifier.Notify(notify.Notification{
		Title:    "Coupon applied",
		Body:     cp.SuccessMessage,
		Severity: notify.SeverityInfo,
		Duration: 3 * time.Second,
	})
	return true
}

// RemoveCoupon releases the applied coupon's usage slot best-effort: a failed
// decrement is logged, but the local applied coupon is cleared regardless.
func (s *Service) RemoveCoupon(ctx context.Context, token string) error {
	c, err := s.store.Load(ctx, token)
	if err != nil {
		return err
	}
	if c.AppliedCoupon == nil {
		return nil
	}

	if err := s.couponRepo.DecrementUsage(ctx, c.AppliedCoupon.ID); err != nil {
		s.log.Error().Err(err).Str("coupon_id", c.AppliedCoupon.ID).
			Msg("failed to release coupon usage")
	}

	c.AppliedCoupon = nil
	if err := s.store.Save(ctx, token, c); err != nil {
		return err
	}

	s.notifier.Notify(notify.Notification{
		Title:    "Coupon removed",
		Body:     "The coupon has been removed from your cart.",
		Severity: notify.SeverityInfo,
		Duration: 2 * time.Second,
	})
	return nil
}

func (s *Service) couponError(err error) bool {
	s.log.Error().Err(err).Msg("coupon application failed")
	s.notifier.Notify(notify.Notification{
		Title:    "Error",
		Body:     "There was an error applying your coupon.",
		Severity: notify.SeverityError,
		Duration: 3 * time.Second,
	})
	return false
}
