package settings

import (
	"time"

	"github.com/shopspring/decimal"
)

type StoreInfo struct {
	Name      string `json:"name"`
	Address   string `json:"address"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	Timings   string `json:"timings"`
	GSTNumber string `json:"gst_number"`
}

type Delivery struct {
	MinimumOrderAmount decimal.Decimal `json:"minimum_order_amount"`
	DeliveryCharge     decimal.Decimal `json:"delivery_charge"`
	FreeDeliveryAmount decimal.Decimal `json:"free_delivery_amount"`
	RadiusKM           int64           `json:"radius_km"`
	Enabled            bool            `json:"enabled"`
}

type Notifications struct {
	OrderAlerts           bool `json:"order_alerts"`
	LowStockAlerts        bool `json:"low_stock_alerts"`
	CustomerMessageAlerts bool `json:"customer_message_alerts"`
	MarketingAlerts       bool `json:"marketing_alerts"`
}

type Settings struct {
	Store         StoreInfo     `json:"store"`
	Delivery      Delivery      `json:"delivery"`
	Notifications Notifications `json:"notifications"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

// Defaults mirror the values the store opened with.
func Defaults() *Settings {
	return &Settings{
		Store: StoreInfo{
			Name:    "Vijaya Sai Provisions",
			Address: "123 Main Street, Hyderabad, Telangana",
			Phone:   "+91 9951690420",
			Email:   "contact@vijayasaiprovisions.com",
			Timings: "9:00 AM - 9:00 PM",
		},
		Delivery: Delivery{
			MinimumOrderAmount: decimal.NewFromInt(999),
			DeliveryCharge:     decimal.NewFromInt(50),
			FreeDeliveryAmount: decimal.NewFromInt(999),
			RadiusKM:           10,
			Enabled:            true,
		},
		Notifications: Notifications{
			OrderAlerts:           true,
			LowStockAlerts:        true,
			CustomerMessageAlerts: true,
		},
	}
}
