// @title Task-tracker API
// @description API for task-tracker app: daily work log with completion stats
// @BasePath /api
// @schemes http
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	gfshutdown "github.com/gelmium/graceful-shutdown"
	"github.com/limbo/tasktracker/internal/api"
	"github.com/limbo/tasktracker/internal/repository"
	"github.com/limbo/tasktracker/internal/service"
	"github.com/limbo/tasktracker/pkg/cleanup"
	"github.com/limbo/tasktracker/pkg/config"
	jwtservice "github.com/limbo/tasktracker/pkg/jwt_service"
	"github.com/redis/go-redis/v9"
)

const shutdownTimeout = 15 * time.Second

func init() {
	service.InitValidator()
}

func main() {
	cfg := config.New()
	dbCfg := repository.PGCfg{
		Address:  cfg.GetString("POSTGRES_DB_ADDRESS"),
		Username: cfg.GetString("POSTGRES_USER"),
		Password: cfg.GetString("POSTGRES_PASSWORD"),
		DB:       cfg.GetString("POSTGRES_DB"),
	}
	secret := cfg.GetString("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET is not set")
	}

	var usersRepo repository.UsersRepositoryI = repository.NewUsersRepo(&dbCfg)
	if addr := cfg.GetString("REDIS_ADDRESS"); addr != "" {
		usersRepo = withCache(usersRepo, addr, cfg.GetDuration("CACHE_TTL", 5*time.Minute))
	}

	serv := api.New(&api.ServicesList{
		UserService:  service.NewUserService(usersRepo),
		TasksService: service.NewTasksService(usersRepo),
		JwtService:   jwtservice.New(secret),
		CookieSecure: cfg.GetBool("COOKIE_SECURE", false),
		TokenTTL:     jwtservice.TTL(),
	})

	address := cfg.GetString("API_ADDRESS")
	go func() {
		slog.Info("server started", slog.String("address", address))
		if err := serv.Run(address); err != nil {
			log.Println("Server error: " + err.Error())
			os.Exit(1)
		}
	}()

	wait := gfshutdown.GracefulShutdown(
		context.Background(),
		shutdownTimeout,
		map[string]gfshutdown.Operation{
			"server": func(ctx context.Context) error {
				if err := serv.Shutdown(ctx); err != nil {
					slog.Error("server shutdown error", slog.String("error", err.Error()))
				}
				return cleanup.CleanUp(ctx)
			},
		},
	)
	os.Exit(<-wait)
}

// withCache puts redis in front of the repository. Unreachable redis leaves the repository as is.
func withCache(repo repository.UsersRepositoryI, addr string, ttl time.Duration) repository.UsersRepositoryI {
	client := redis.NewClient(&redis.Options{Addr: addr})
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		slog.Warn("redis unavailable, cache disabled", slog.String("address", addr), slog.String("error", err.Error()))
		client.Close()
		return repo
	}
	cleanup.Register(&cleanup.Job{
		Name: "Closing redis client",
		F:    client.Close,
	})
	return repository.NewCachedUsersRepo(repo, client, ttl)
}
