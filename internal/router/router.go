package router

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	_ "contact-manager/docs"
	"contact-manager/internal/adapters/auth/static"
	mem "contact-manager/internal/adapters/storage/memory"
	"contact-manager/internal/adapters/storage/seed"
	"contact-manager/internal/adapters/storage/sqldb"
	"contact-manager/internal/config"
	"contact-manager/internal/domain/countries"
	"contact-manager/internal/domain/persons"
	"contact-manager/internal/middleware"
	"contact-manager/internal/platform/logger"
	"contact-manager/internal/ports/auth"
	"contact-manager/internal/web"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	Config *config.Config // nil => config.Default()
	Logger logger.Logger  // nil => NewNop

	// Opcional: si viene, usa SQL (Postgres o SQLite). Si no, in-memory sembrado.
	DB *sqldb.DB

	// nil => verifier estático contra Config.Auth.CookieValue
	TokenVerifier auth.TokenVerifier

	Now func() time.Time
}

func NewRouter(opts Options) (http.Handler, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	log := opts.Logger
	if log == nil {
		log = logger.NewNop()
	}
	verifier := opts.TokenVerifier
	if verifier == nil {
		verifier = static.NewVerifier(cfg.Auth.CookieValue)
	}

	view, err := web.NewRenderer()
	if err != nil {
		return nil, err
	}

	var (
		countryRepo countries.Repository
		personRepo  persons.Repository
	)
	if opts.DB != nil {
		countryRepo = sqldb.NewCountriesRepo(opts.DB)
		personRepo = sqldb.NewPersonsRepo(opts.DB)
	} else {
		countryRepo = mem.NewCountryRepo()
		personRepo = mem.NewPersonRepo(countryRepo)

		// sin DB, sembrar es la única forma de tener países para elegir
		if cfg.Seed.OnStart {
			if err := applySeed(context.Background(), cfg.Seed.Dir, countryRepo, personRepo, log); err != nil {
				return nil, err
			}
		}
	}

	// Services por módulo
	countriesSvc := countries.NewService(countryRepo)
	personsSvc := persons.NewService(personRepo)

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.ExceptionHandling(log))
	r.Use(middleware.ResponseHeader("My-Key-Global", "My-Value-Global", log))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	// Rutas por módulo
	persons.RegisterRoutes(r, personsSvc, countriesSvc, view, log, persons.RouteMiddleware{
		Group: mws(middleware.ResponseHeader("My-Key-Controller", "My-Value-Controller", log)),
		Index: mws(
			middleware.ResponseHeader("X-Custom-Key", "Custom-Value", log),
			middleware.LastModified(opts.Now),
		),
		CreateGet: mws(middleware.ResponseHeader("My-Key", "My-Value", log)),
		EditGet:   mws(middleware.IssueToken(cfg.Auth.CookieName, cfg.Auth.CookieValue)),
		EditPost:  mws(middleware.TokenAuthorization(verifier, cfg.Auth.CookieName, log)),
	})
	countries.RegisterRoutes(r, countriesSvc, view, log)

	return r, nil
}

func applySeed(ctx context.Context, dir string, cs countries.Repository, ps persons.Repository, log logger.Logger) error {
	data, err := seed.Load(dir)
	if err != nil {
		return fmt.Errorf("load seed data: %w", err)
	}
	applied, err := seed.Apply(ctx, cs, ps, data)
	if err != nil {
		return err
	}
	if applied {
		log.Info("seed data applied", map[string]any{"countries": len(data.Countries), "persons": len(data.Persons)})
	}
	return nil
}

// Seed aplica los datos iniciales sobre una DB ya migrada (no-op si ya hay países).
func Seed(ctx context.Context, db *sqldb.DB, dir string, log logger.Logger) error {
	if db == nil {
		return errors.New("seed: db is required")
	}
	if log == nil {
		log = logger.NewNop()
	}
	return applySeed(ctx, dir, sqldb.NewCountriesRepo(db), sqldb.NewPersonsRepo(db), log)
}

func mws(m ...func(http.Handler) http.Handler) []func(http.Handler) http.Handler {
	return m
}
