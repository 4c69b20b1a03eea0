package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/Husnainn01/mizhuo-sub000/internal/auth"
	"github.com/Husnainn01/mizhuo-sub000/internal/config"
	"github.com/Husnainn01/mizhuo-sub000/internal/http/handlers"
	"github.com/Husnainn01/mizhuo-sub000/internal/middleware"
	"github.com/Husnainn01/mizhuo-sub000/internal/storage"
)

// adminRules is the static tier policy for the back office. Rules are
// checked in order, first match wins; paths under /admin matching no
// rule require only an authenticated session.
var adminRules = []middleware.Rule{
	{Pattern: "/admin/users", MinLevel: auth.LevelAdmin},
	{Pattern: "/admin/settings", MinLevel: auth.LevelAdmin},
	{Pattern: "/admin/attributes", MinLevel: auth.LevelAdmin},
	{Pattern: "/admin/cars/:id/edit", MinLevel: auth.LevelEditor},
	{Pattern: "/admin/cars/new", MinLevel: auth.LevelEditor},
	{Pattern: "/admin/inquiries/:id/reply", MinLevel: auth.LevelEditor},
}

// Server wraps an http.Server with configured routes.
type Server struct {
	inner *http.Server
}

// New wires up the auth subsystem, middleware, and routes, and returns
// a ready server.
func New(cfg config.Config, store storage.UserStore) (*Server, error) {
	tokens, err := auth.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL)
	if err != nil {
		return nil, fmt.Errorf("configure token manager: %w", err)
	}
	cookies := auth.NewCookieManager(cfg.CookieSecure, tokens.TTL())
	credentials := auth.NewCredentialVerifier(store)

	rules, err := middleware.CompileRules(adminRules)
	if err != nil {
		return nil, fmt.Errorf("compile route rules: %w", err)
	}

	var ping func(ctx context.Context) error
	if p, ok := store.(interface{ Ping(ctx context.Context) error }); ok {
		ping = p.Ping
	}

	mux := http.NewServeMux()
	handlers.NewHealthHandler(time.Now(), ping).Register(mux)
	handlers.NewAuthHandler(credentials, tokens, cookies).Register(mux)
	handlers.NewSessionHandler(tokens, auth.NewUnverifiedDecoder()).Register(mux)
	handlers.NewAdminHandler().Register(mux)
	handlers.NewUserAdminHandler(store).Register(mux)

	guarded := middleware.Guard(middleware.GuardConfig{
		Prefix:      "/admin",
		LoginPath:   "/admin/login",
		LandingPath: "/admin/dashboard",
		Rules:       rules,
	}, tokens, cookies, mux)

	handler := middleware.RequestID(middleware.CORS(cfg.CORSOrigins, middleware.Logging(guarded)))

	httpServer := &http.Server{
		Addr:              cfg.HTTPAddress(),
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	return &Server{inner: httpServer}, nil
}

// Start begins serving HTTP traffic.
func (s *Server) Start() error {
	return s.inner.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.inner.Shutdown(ctx)
}
