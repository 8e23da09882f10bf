package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	domorder "example.com/provisions-store/internal/domain/order"
	"example.com/provisions-store/internal/notify"
	cartuc "example.com/provisions-store/internal/usecase/cart"
	checkoutuc "example.com/provisions-store/internal/usecase/checkout"
)

type memOrderRepo struct {
	created []*domorder.Order
}

func (m *memOrderRepo) Create(ctx context.Context, o *domorder.Order) (*domorder.Order, error) {
	m.created = append(m.created, o)
	return o, nil
}

func setupCheckoutAPI() (*API, *memOrderRepo) {
	store := newMemCartStore()
	products := newMemProductRepo()
	coupons := newMemCouponRepo()
	orders := &memOrderRepo{}
	log := zerolog.Nop()

	api := NewAPI(Dependencies{
		CartService:     cartuc.NewService(store, products, coupons, notify.NewLogNotifier(log), log),
		CheckoutService: checkoutuc.NewService(store, orders, stubCustomerRepo{}, "919951690420"),
		AllowedOrigins:  []string{"*"},
	})
	return api, orders
}

func TestCheckout_EmptyCart_Returns422(t *testing.T) {
	api, _ := setupCheckoutAPI()
	router := api.Router()

	body := map[string]any{"name": "Ravi", "phone": "9876543210", "address": "12 Lake Road"}
	req := newCartRequest(http.MethodPost, "/api/v1/checkout", "tok-1", body)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code, rec.Body.String())
}

func TestCheckout_FilledCart_CreatesOrderAndLink(t *testing.T) {
	api, orders := setupCheckoutAPI()
	router := api.Router()

	add := newCartRequest(http.MethodPost, "/api/v1/cart/items", "tok-1", map[string]any{"product_id": 1, "quantity": 2})
	router.ServeHTTP(httptest.NewRecorder(), add)

	body := map[string]any{"name": "Ravi", "phone": "9876543210", "address": "12 Lake Road"}
	req := newCartRequest(http.MethodPost, "/api/v1/checkout", "tok-1", body)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var response map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))

	link := response["whatsapp_link"].(string)
	require.True(t, strings.HasPrefix(link, "https://wa.me/919951690420?"))

	parsed, err := url.Parse(link)
	require.NoError(t, err)
	text := parsed.Query().Get("text")
	require.Contains(t, text, "1. Basmati Rice (5kg) x 2 = ₹240.00")
	require.Contains(t, text, "Total Amount: ₹240.00")
	require.Contains(t, text, "Delivery Address: 12 Lake Road")

	require.Len(t, orders.created, 1)
	require.Equal(t, domorder.StatusPending, orders.created[0].Status)

	// the cart is emptied by a successful checkout
	get := newCartRequest(http.MethodGet, "/api/v1/cart", "tok-1", nil)
	getRec := httptest.NewRecorder()
	router.ServeHTTP(getRec, get)
	var cartResp map[string]any
	require.NoError(t, json.Unmarshal(getRec.Body.Bytes(), &cartResp))
	require.Empty(t, cartResp["lines"])
}
