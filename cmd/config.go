package cmd

import "time"

// Config carries everything main reads from the environment.
type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	RoutingBaseURL string
	RoutingAPIKey  string
	ShopAddress    string

	// MaxDeliveryDistance is the delivery radius in meters. Submissions to
	// addresses farther than this are rejected.
	MaxDeliveryDistance int

	// PaymentWindow is how long an order may stay unpaid before the
	// payment timeout scan cancels it.
	PaymentWindow time.Duration

	// DeliveryWindow is how long an order may stay in delivery before the
	// delivery timeout scan completes it.
	DeliveryWindow time.Duration
}
