package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/limbo/forgetmenot/internal/api"
	"github.com/limbo/forgetmenot/internal/metrics"
	"github.com/limbo/forgetmenot/internal/repository"
	"github.com/limbo/forgetmenot/internal/service"
	"github.com/limbo/forgetmenot/internal/session"
	"github.com/limbo/forgetmenot/pkg/cleanup"
	"github.com/limbo/forgetmenot/pkg/config"
	jwtservice "github.com/limbo/forgetmenot/pkg/jwt_service"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var migrateOnStart bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the web server",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().BoolVar(&migrateOnStart, "migrate", false, "Apply pending migrations before serving")
}

func runServe(cmd *cobra.Command, args []string) error {
	defer cleanup.CleanUp()
	cfg := config.New()
	secret, err := jwtSecret(cfg)
	if err != nil {
		return err
	}
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := connectDB(ctx, cfg)
	if err != nil {
		return err
	}
	if migrateOnStart {
		if err = migrate(ctx, pool); err != nil {
			return err
		}
	}
	revocations, err := revocationList(ctx, cfg)
	if err != nil {
		return err
	}

	usersRepo := repository.NewUsersRepo(pool)
	placesRepo := repository.NewPlacesRepo(pool)
	itemsRepo := repository.NewItemsRepo(pool)
	serv, err := api.New(&api.ServicesList{
		UserService:     service.NewUserService(usersRepo, nil),
		PlacesService:   service.NewPlacesService(placesRepo, itemsRepo),
		TrackingService: service.NewTrackingService(placesRepo, itemsRepo),
		JWTService:      jwtservice.New(secret, cfg.GetDuration("SESSION_TTL", jwtservice.DefaultTokenTTL)),
		Revocations:     revocations,
		Metrics:         metrics.New(),
		HealthCheck:     pool.Ping,
	}, api.Config{
		LoginURL:             cfg.GetString("LOGIN_URL"),
		RedirectWhenLoggedIn: cfg.GetString("REDIRECT_URL_WHEN_LOGGED_IN"),
		SecureCookies:        cfg.GetBool("SECURE_COOKIES", false),
	})
	if err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return serv.Run(gctx, cfg.GetStringOr("API_ADDRESS", ":8080"))
	})
	return g.Wait()
}

// jwtSecret refuses to serve with an empty signing key.
func jwtSecret(cfg *config.Config) (string, error) {
	secret := cfg.GetString("JWT_SECRET")
	if secret == "" {
		return "", errors.New("JWT_SECRET is not set")
	}
	return secret, nil
}

// revocationList prefers redis so logouts are shared between instances.
func revocationList(ctx context.Context, cfg *config.Config) (session.RevocationList, error) {
	client, err := session.NewRedisClient(ctx, cfg.GetString("REDIS_URL"))
	if err != nil {
		return nil, err
	}
	if client == nil {
		slog.Warn("REDIS_URL is not set, revoked sessions are kept in memory")
		return session.NewMemoryList(), nil
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing redis client",
		F:    client.Close,
	})
	return session.NewRedisList(client), nil
}
