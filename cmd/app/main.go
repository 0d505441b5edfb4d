package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/likecate/sky-take-out/cmd"
	internalhttp "github.com/likecate/sky-take-out/internal/adapters/in/http"
	"github.com/likecate/sky-take-out/internal/adapters/in/ws"
	"github.com/likecate/sky-take-out/internal/adapters/out/postgres/customerrepo"
	"github.com/likecate/sky-take-out/internal/adapters/out/postgres/orderrepo"
	"github.com/likecate/sky-take-out/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	db := openDatabase(configs)

	hub := ws.NewHub(logger)
	go hub.Run()

	app := cmd.NewCompositionRoot(configs, db, hub, logger)

	jobManager := jobs.NewJobManager(
		app.CreateProcessPaymentTimeoutsCommandHandler(),
		app.CreateProcessDeliveryTimeoutsCommandHandler(),
		logger,
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, hub, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Warnf("No .env file loaded: %v", err)
	}

	return cmd.Config{
		HTTPPort:            envVariable("HTTP_PORT"),
		DBHost:              envVariable("DB_HOST"),
		DBPort:              envVariable("DB_PORT"),
		DBUser:              envVariable("DB_USER"),
		DBPassword:          envVariable("DB_PASSWORD"),
		DBName:              envVariable("DB_NAME"),
		DBSslMode:           envVariable("DB_SSLMODE"),
		RoutingBaseURL:      envVariable("ROUTING_BASE_URL"),
		RoutingAPIKey:       envVariable("ROUTING_API_KEY"),
		ShopAddress:         envVariable("SHOP_ADDRESS"),
		MaxDeliveryDistance: envIntVariable("MAX_DELIVERY_DISTANCE_METERS", 5000),
		PaymentWindow:       envDurationVariable("PAYMENT_WINDOW", 15*time.Minute),
		DeliveryWindow:      envDurationVariable("DELIVERY_WINDOW", time.Hour),
	}
}

func envVariable(key string) string {
	return os.Getenv(key)
}

func envIntVariable(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		log.Fatalf("Invalid %s: %v", key, err)
	}
	return value
}

func envDurationVariable(key string, fallback time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}

	value, err := time.ParseDuration(raw)
	if err != nil {
		log.Fatalf("Invalid %s: %v", key, err)
	}
	return value
}

func openDatabase(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost,
		configs.DBPort,
		configs.DBUser,
		configs.DBPassword,
		configs.DBName,
		configs.DBSslMode,
	)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect database: %v", err)
	}

	err = db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.DetailDTO{},
		&customerrepo.AddressDTO{},
		&customerrepo.CartLineDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	return db
}

func startWebServer(app *cmd.CompositionRoot, hub *ws.Hub, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := internalhttp.NewServer(
		app.CreateSubmitOrderCommandHandler(),
		app.CreatePayOrderCommandHandler(),
		app.CreateAcceptOrderCommandHandler(),
		app.CreateRejectOrderCommandHandler(),
		app.CreateUserCancelOrderCommandHandler(),
		app.CreateAdminCancelOrderCommandHandler(),
		app.CreateDispatchOrderCommandHandler(),
		app.CreateCompleteOrderCommandHandler(),
		app.CreateRemindOrderCommandHandler(),
		app.CreateRepeatOrderCommandHandler(),
		app.CreateGetOrderQueryHandler(),
		app.CreateGetOrderStatisticsQueryHandler(),
		hub,
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
