package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/rs/zerolog"

	"example.com/provisions-store/internal/config"
	"example.com/provisions-store/internal/infra/persistence/postgres"
	"example.com/provisions-store/internal/infra/security"
	httpapi "example.com/provisions-store/internal/interface/http"
	"example.com/provisions-store/internal/notify"
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

func main() {
	log := zerolog.New(os.Stdout).With().Timestamp().Logger()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.DatabaseDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("open database")
	}
	defer db.Close()

	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		log.Fatal().Err(err).Msg("ping database")
	}

	productRepo := postgres.NewProductRepository(db)
	couponRepo := postgres.NewCouponRepository(db)
	orderRepo := postgres.NewOrderRepository(db)
	customerRepo := postgres.NewCustomerRepository(db)
	messageRepo := postgres.NewMessageRepository(db)
	userRepo := postgres.NewUserRepository(db)
	settingsRepo := postgres.NewSettingsRepository(db, log)
	cartStore := postgres.NewCartStore(db, log)

	passwords := security.NewBcryptService(cfg.BcryptCost)
	tokens := security.NewJWTService(cfg.JWTSecret, cfg.JWTTTL)
	notifier := notify.NewLogNotifier(log)

	api := httpapi.NewAPI(httpapi.Dependencies{
		AuthService:     authuc.NewService(userRepo, passwords, tokens),
		UserService:     useruc.NewService(userRepo, passwords),
		ProductService:  productuc.NewService(productRepo, cfg.ProductCacheTTL, log),
		CartService:     cartuc.NewService(cartStore, productRepo, couponRepo, notifier, log),
		CheckoutService: checkoutuc.NewService(cartStore, orderRepo, customerRepo, cfg.WhatsAppPhone),
		CouponService:   couponuc.NewService(couponRepo),
		OrderService:    orderuc.NewService(orderRepo),
		CustomerService: customeruc.NewService(customerRepo),
		MessageService:  messageuc.NewService(messageRepo),
		SettingsService: settingsuc.NewService(settingsRepo),
		TokenService:    tokens,
		AllowedOrigins:  cfg.AllowedOrigins,
	})

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           api.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("addr", cfg.Addr).Msg("listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("serve")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown")
	}
	log.Info().Msg("stopped")
}
