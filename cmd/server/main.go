// Command server runs the storefront HTTP API: registration, login, and the
// token-gated user and product operations.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/commercekit/storefront/auth"
	"github.com/commercekit/storefront/auth/jwt"
	"github.com/commercekit/storefront/auth/password"
	"github.com/commercekit/storefront/config"
	"github.com/commercekit/storefront/database"
	"github.com/commercekit/storefront/internal/api"
	"github.com/commercekit/storefront/internal/catalog"
	"github.com/commercekit/storefront/internal/identity"
	"github.com/commercekit/storefront/logger"
	"github.com/commercekit/storefront/observability"
	"github.com/commercekit/storefront/server"
	"github.com/commercekit/storefront/version"
)

const serviceName = "server"

type appConfig struct {
	Logging   logger.Config        `mapstructure:"logging"`
	Server    server.Config        `mapstructure:"server"`
	Database  database.Config      `mapstructure:"database"`
	Auth      auth.Config          `mapstructure:"auth"`
	Telemetry observability.Config `mapstructure:"telemetry"`
}

func (c *appConfig) applyDefaults() {
	c.Logging.ApplyDefaults()
	c.Server.ApplyDefaults()
	c.Database.ApplyDefaults()
	c.Auth.ApplyDefaults()
	c.Telemetry.ApplyDefaults()
}

func (c *appConfig) validate() error {
	if err := c.Logging.Validate(); err != nil {
		return err
	}
	if err := c.Server.Validate(); err != nil {
		return err
	}
	if err := c.Database.Validate(); err != nil {
		return err
	}
	// A missing JWT secret must stop the process here, not surface as
	// request-time failures.
	return c.Auth.Validate()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "server: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var cfg appConfig
	if err := config.Load(serviceName, &cfg); err != nil {
		return err
	}
	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return err
	}

	log := logger.New(&cfg.Logging, "storefront")
	logger.SetGlobalLogger(log)
	log.Info("Starting storefront", map[string]interface{}{
		"version": version.Version,
		"auth":    cfg.Auth.Describe(),
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	telemetry, err := observability.Init(ctx, cfg.Telemetry, "storefront", version.Version)
	if err != nil {
		return fmt.Errorf("init telemetry: %w", err)
	}
	defer func() { _ = telemetry.Shutdown(context.Background()) }()

	var metrics *observability.Metrics
	if cfg.Telemetry.Enabled {
		metrics, err = observability.NewMetrics()
		if err != nil {
			return fmt.Errorf("init metrics: %w", err)
		}
	}

	db, err := database.New(ctx, cfg.Database, log)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	if cfg.Database.AutoMigrate {
		if err := db.AutoMigrate(&identity.User{}, &catalog.Product{}); err != nil {
			return err
		}
	}

	tokens, err := jwt.NewService(&cfg.Auth.JWT, func() *identity.AccessClaims {
		return &identity.AccessClaims{}
	})
	if err != nil {
		return err
	}

	hasher := password.NewHasher(cfg.Auth.Password)
	identitySvc := identity.NewService(identity.NewRepository(db), hasher, auth.NewGenerator(tokens.GeneratorFunc()), metrics, log)
	catalogSvc := catalog.NewService(catalog.NewRepository(db), log)

	srv := server.New(cfg.Server, log)
	srv.ApplyMiddleware(metrics)
	srv.RegisterDefaultEndpoints("storefront", db.PingContext)

	router := api.NewRouter(identitySvc, catalogSvc, auth.NewValidator(tokens.ValidatorFunc()), log)
	router.Register(srv.GinEngine())

	if err := srv.Start(ctx); err != nil {
		return err
	}

	<-ctx.Done()
	log.Info("Shutdown signal received")
	return srv.Stop(context.Background())
}
