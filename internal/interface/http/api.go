package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-playground/validator/v10"

	domcart "example.com/provisions-store/internal/domain/cart"
	domcoupon "example.com/provisions-store/internal/domain/coupon"
	domcustomer "example.com/provisions-store/internal/domain/customer"
	dommessage "example.com/provisions-store/internal/domain/message"
	domorder "example.com/provisions-store/internal/domain/order"
	domproduct "example.com/provisions-store/internal/domain/product"
	domuser "example.com/provisions-store/internal/domain/user"
	authuc "example.com/provisions-store/internal/usecase/auth"
	cartuc "example.com/provisions-store/internal/usecase/cart"
	checkoutuc "example.com/provisions-store/internal/usecase/checkout"
	couponuc "example.com/provisions-store/internal/usecase/coupon"
	customeruc "example.com/provisions-store/internal/usecase/customer"
	messageuc "example.com/provisions-store/internal/usecase/message"
	orderuc "example.com/provisions-store/internal/usecase/order"
	productuc "example.com/provisions-store/internal/usecase/product"
	settingsuc "example.com/provisions-store/internal/usecase/settings"
	useruc "example.com/provisions-store/internal/usecase/user"
)

type API struct {
	authSvc     *authuc.Service
	userSvc     *useruc.Service
	productSvc  *productuc.Service
	cartSvc     *cartuc.Service
	checkoutSvc *checkoutuc.Service
	couponSvc   *couponuc.Service
	orderSvc    *orderuc.Service
	customerSvc *customeruc.Service
	messageSvc  *messageuc.Service
	settingsSvc *settingsuc.Service
	validator   *validator.Validate
	tokenSvc    authuc.TokenService

	allowedOrigins []string
}

type Dependencies struct {
	AuthService     *authuc.Service
	UserService     *useruc.Service
	ProductService  *productuc.Service
	CartService     *cartuc.Service
	CheckoutService *checkoutuc.Service
	CouponService   *couponuc.Service
	OrderService    *orderuc.Service
	CustomerService *customeruc.Service
	MessageService  *messageuc.Service
	SettingsService *settingsuc.Service
	TokenService    authuc.TokenService
	AllowedOrigins  []string
}

func NewAPI(deps Dependencies) *API {
	return &API{
		authSvc:        deps.AuthService,
		userSvc:        deps.UserService,
		productSvc:     deps.ProductService,
		cartSvc:        deps.CartService,
		checkoutSvc:    deps.CheckoutService,
		couponSvc:      deps.CouponService,
		orderSvc:       deps.OrderService,
		customerSvc:    deps.CustomerService,
		messageSvc:     deps.MessageService,
		settingsSvc:    deps.SettingsService,
		tokenSvc:       deps.TokenService,
		validator:      validator.New(),
		allowedOrigins: deps.AllowedOrigins,
	}
}

func (a *API) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   a.allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))
	r.Use(chimw.AllowContentType("application/json", "text/plain"))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/login", a.handleLogin)

		r.Get("/products", a.handleListProducts)
		r.Get("/products/{id}", a.handleGetProduct)
		r.Get("/categories", a.handleListCategories)

		r.Route("/cart", func(cr chi.Router) {
			cr.Get("/", a.handleGetCart)
			cr.Delete("/", a.handleClearCart)
			cr.Post("/items", a.handleAddCartItem)
			cr.Put("/items/{productID}", a.handleUpdateCartItem)
			cr.Delete("/items/{productID}", a.handleRemoveCartItem)
			cr.Post("/coupon", a.handleApplyCoupon)
			cr.Delete("/coupon", a.handleRemoveCoupon)
		})

		r.Post("/checkout", a.handleCheckout)
		r.Post("/messages", a.handleCreateMessage)

		r.Group(func(ar chi.Router) {
			ar.Use(a.authMiddleware)

			ar.Route("/admin", func(admin chi.Router) {
				admin.Route("/products", func(rr chi.Router) {
					rr.Use(a.requireRoles(domuser.RoleAdmin, domuser.RoleManager))
					rr.Get("/", a.handleListProductsAdmin)
					rr.Post("/", a.handleCreateProduct)
					rr.Put("/{id}", a.handleUpdateProduct)
					rr.Delete("/{id}", a.handleDeleteProduct)
				})

				admin.Route("/coupons", func(rr chi.Router) {
					rr.Use(a.requireRoles(domuser.RoleAdmin, domuser.RoleManager))
					rr.Get("/", a.handleListCoupons)
					rr.Post("/", a.handleCreateCoupon)
					rr.Post("/validate", a.handleValidateCoupon)
					rr.Get("/{id}", a.handleGetCoupon)
					rr.Put("/{id}", a.handleUpdateCoupon)
					rr.Delete("/{id}", a.handleDeleteCoupon)
				})

				admin.Route("/orders", func(rr chi.Router) {
					rr.Get("/", a.handleListOrders)
					rr.Get("/stats", a.handleOrderStatistics)
					rr.Get("/{id}", a.handleGetOrder)
					rr.Patch("/{id}", a.handleUpdateOrderStatus)
				})

				admin.Route("/customers", func(rr chi.Router) {
					rr.Get("/", a.handleListCustomers)
					rr.Get("/{id}", a.handleGetCustomer)
				})

				admin.Route("/messages", func(rr chi.Router) {
					rr.Get("/", a.handleListMessages)
					rr.Get("/unread-count", a.handleUnreadCount)
					rr.Patch("/{id}/read", a.handleMarkMessageRead)
					rr.Post("/read-all", a.handleMarkAllMessagesRead)
					rr.Delete("/{id}", a.handleDeleteMessage)
				})

				admin.Route("/settings", func(rr chi.Router) {
					rr.Use(a.requireRoles(domuser.RoleAdmin, domuser.RoleManager))
					rr.Get("/", a.handleGetSettings)
					rr.Put("/store", a.handleUpdateStoreSettings)
					rr.Put("/delivery", a.handleUpdateDeliverySettings)
					rr.Put("/notifications", a.handleUpdateNotificationSettings)
				})

				admin.Route("/users", func(rr chi.Router) {
					rr.Use(a.requireRoles(domuser.RoleAdmin))
					rr.Get("/", a.handleListUsers)
					rr.Post("/", a.handleCreateUser)
					rr.Get("/{id}", a.handleGetUser)
					rr.Put("/{id}", a.handleUpdateUser)
					rr.Delete("/{id}", a.handleDeleteUser)
				})
			})
		})
	})

	return r
}

func (a *API) decodeAndValidate(r *http.Request, dst any) error {
	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return err
	}
	return a.validator.Struct(dst)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

type errorResponse struct {
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"`
}

func respondError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

func parseIDParam(r *http.Request, key string) (int64, error) {
	idStr := chi.URLParam(r, key)
	return strconv.ParseInt(idStr, 10, 64)
}

func mapUser(u *domuser.User) map[string]any {
	return map[string]any{
		"id":    u.ID,
		"name":  u.Name,
		"email": u.Email,
		"role":  u.Role,
	}
}

func mapProduct(p *domproduct.Product) map[string]any {
	return map[string]any{
		"id":          p.ID,
		"name":        p.Name,
		"price":       p.Price,
		"image":       p.Image,
		"category":    p.Category,
		"description": p.Description,
		"unit":        p.Unit,
		"stock":       p.Stock,
	}
}

func mapCart(c *domcart.Cart) map[string]any {
	lines := make([]map[string]any, 0, len(c.Lines))
	for _, line := range c.Lines {
		lines = append(lines, map[string]any{
			"product_id": line.ProductID,
			"name":       line.Name,
			"unit":       line.Unit,
			"price":      line.Price,
			"quantity":   line.Quantity,
			"total":      line.Total(),
		})
	}

	payload := map[string]any{
		"lines":        lines,
		"total_items":  c.TotalItems(),
		"subtotal":     c.Subtotal(),
		"discount":     c.DiscountAmount(),
		"total_amount": c.TotalAmount(),
	}
	if c.AppliedCoupon != nil {
		payload["applied_coupon"] = c.AppliedCoupon
	}
	return payload
}

func mapOrder(o *domorder.Order) map[string]any {
	items := make([]map[string]any, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, map[string]any{
			"product_id": item.ProductID,
			"name":       item.Name,
			"unit":       item.Unit,
			"price":      item.Price,
			"quantity":   item.Quantity,
		})
	}

	return map[string]any{
		"id":             o.ID,
		"customer_name":  o.CustomerName,
		"customer_phone": o.CustomerPhone,
		"total_amount":   o.TotalAmount,
		"status":         o.Status,
		"created_at":     o.CreatedAt,
		"updated_at":     o.UpdatedAt,
		"items":          items,
	}
}

func mapCustomer(c *domcustomer.Customer) map[string]any {
	return map[string]any{
		"id":              c.ID,
		"name":            c.Name,
		"email":           c.Email,
		"phone":           c.Phone,
		"total_orders":    c.TotalOrders,
		"total_spent":     c.TotalSpent,
		"last_order_date": c.LastOrderDate,
	}
}

func mapMessage(m *dommessage.Message) map[string]any {
	return map[string]any{
		"id":             m.ID,
		"customer_name":  m.CustomerName,
		"customer_phone": m.CustomerPhone,
		"body":           m.Body,
		"source":         m.Source,
		"read":           m.Read,
		"created_at":     m.CreatedAt,
	}
}

func handleDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domuser.ErrInvalidCredential),
		errors.Is(err, domuser.ErrInvalidRole),
		errors.Is(err, domcoupon.ErrInvalidDiscountType),
		errors.Is(err, domcoupon.ErrInvalidDiscountValue),
		errors.Is(err, domcoupon.ErrInvalidUsageLimit),
		errors.Is(err, domproduct.ErrInvalidPrice),
		errors.Is(err, dommessage.ErrInvalidSource),
		errors.Is(err, dommessage.ErrEmptyMessage),
		errors.Is(err, domorder.ErrInvalidStatus),
		errors.Is(err, domorder.ErrEmptyOrderItems):
		respondError(w, http.StatusUnprocessableEntity, err)
	case errors.Is(err, domuser.ErrEmailAlreadyUsed),
		errors.Is(err, domcoupon.ErrCodeAlreadyUsed):
		respondError(w, http.StatusConflict, err)
	case errors.Is(err, domuser.ErrUserNotFound),
		errors.Is(err, domproduct.ErrProductNotFound),
		errors.Is(err, domcoupon.ErrCouponNotFound),
		errors.Is(err, domorder.ErrOrderNotFound),
		errors.Is(err, domcustomer.ErrCustomerNotFound),
		errors.Is(err, dommessage.ErrMessageNotFound):
		respondError(w, http.StatusNotFound, err)
	case errors.Is(err, domuser.ErrUnauthorized):
		respondError(w, http.StatusUnauthorized, err)
	case errors.Is(err, domcoupon.ErrCouponInactive),
		errors.Is(err, domcoupon.ErrCouponExpired),
		errors.Is(err, domcoupon.ErrCouponExhausted):
		respondError(w, http.StatusUnprocessableEntity, err)
	default:
		respondError(w, http.StatusInternalServerError, err)
	}
}
