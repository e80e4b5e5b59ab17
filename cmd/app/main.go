package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"freight/cmd"
	"freight/internal/adapters/out/postgres/dispatchrepo"
	"freight/internal/adapters/out/postgres/invoicerepo"
	"freight/internal/adapters/out/postgres/loadrepo"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})

	config := getConfig(logger)

	gormDB := mustConnectDB(config, logger)
	redisClient := connectRedis(config, logger)

	root := cmd.NewCompositionRoot(config, gormDB, redisClient, logger)
	startWebServer(root, config.HTTPPort, logger)
}

func getConfig(logger *logrus.Logger) cmd.Config {
	if err := godotenv.Load(".env"); err != nil {
		logger.Info("no .env file, reading configuration from the environment")
	}

	return cmd.Config{
		HTTPPort:        envOrDefault("HTTP_PORT", "8080"),
		DBHost:          envOrDefault("DB_HOST", "localhost"),
		DBPort:          envOrDefault("DB_PORT", "5432"),
		DBUser:          envOrDefault("DB_USER", "postgres"),
		DBPassword:      os.Getenv("DB_PASSWORD"),
		DBName:          envOrDefault("DB_NAME", "freight"),
		DBSslMode:       envOrDefault("DB_SSLMODE", "disable"),
		RedisAddr:       os.Getenv("REDIS_ADDR"),
		RedisPassword:   os.Getenv("REDIS_PASSWORD"),
		SummaryCacheTTL: os.Getenv("SUMMARY_CACHE_TTL"),
	}
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func mustConnectDB(config cmd.Config, logger *logrus.Logger) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		config.DBHost, config.DBPort, config.DBUser, config.DBPassword,
		config.DBName, config.DBSslMode)

	gormDB, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
	if err != nil {
		logger.WithError(err).Fatal("failed to connect to postgres")
	}

	err = gormDB.AutoMigrate(
		&loadrepo.LoadDTO{},
		&loadrepo.StopDTO{},
		&loadrepo.ItemDTO{},
		&loadrepo.AccessorialDTO{},
		&loadrepo.RateDTO{},
		&loadrepo.DocumentDTO{},
		&dispatchrepo.DispatchDTO{},
		&dispatchrepo.TrackingEventDTO{},
		&invoicerepo.InvoiceDTO{},
	)
	if err != nil {
		logger.WithError(err).Fatal("failed to migrate database schema")
	}

	return gormDB
}

func connectRedis(config cmd.Config, logger *logrus.Logger) *redis.Client {
	if config.RedisAddr == "" {
		logger.Info("REDIS_ADDR not set, dashboard summary cache disabled")
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     config.RedisAddr,
		Password: config.RedisPassword,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		logger.WithError(err).Warn("redis unreachable, dashboard summary cache disabled")
		return nil
	}

	return client
}

func startWebServer(root cmd.CompositionRoot, port string, logger *logrus.Logger) {
	e := echo.New()
	e.HideBanner = true
	e.Logger.SetLevel(log.INFO)
	e.Use(middleware.Recover())

	root.CreateServer().RegisterRoutes(e)

	logger.WithField("port", port).Info("starting HTTP server")
	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
