package api

import (
	"context"
	"crypto/subtle"
	"errors"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sandevgo/footix/internal/config"
	"github.com/sandevgo/footix/internal/core"
	"github.com/sandevgo/footix/pkg/log"
)

// Handler produces the reply to one utterance.
type Handler interface {
	Handle(ctx context.Context, u core.Utterance) core.Reply
}

// Server is the HTTP gateway: POST /v1/messages answers an utterance,
// GET /health and GET /metrics serve operators.
type Server struct {
	e       *echo.Echo
	cfg     *config.HTTPConfig
	handler Handler
	started time.Time
}

type requestValidator struct {
	v *validator.Validate
}

func (r *requestValidator) Validate(i interface{}) error {
	return r.v.Struct(i)
}

// maxBodySize caps request bodies.
const maxBodySize = "64K"

func NewServer(ctx context.Context, cfg *config.HTTPConfig, handler Handler) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = &requestValidator{v: validator.New()}
	e.Server.ReadTimeout = cfg.ReadTimeout
	e.Server.WriteTimeout = cfg.WriteTimeout

	s := &Server{
		e:       e,
		cfg:     cfg,
		handler: handler,
		started: time.Now(),
	}

	logger := log.FromCtx(ctx)
	e.Use(middleware.Recover())
	e.Use(middleware.BodyLimit(maxBodySize))
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:  true,
		LogURI:     true,
		LogStatus:  true,
		LogLatency: true,
		LogError:   true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			ev := logger.Debug()
			if v.Error != nil {
				ev = logger.Warn().Err(v.Error)
			}
			ev.Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Msg("http request")
			return nil
		},
	}))
	// handlers log through the process logger
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			c.SetRequest(req.WithContext(logger.WithContext(req.Context())))
			return next(c)
		}
	})

	e.GET("/health", s.handleHealth)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	v1 := e.Group("/v1")
	if cfg.AuthToken != "" {
		v1.Use(middleware.KeyAuth(func(key string, c echo.Context) (bool, error) {
			return subtle.ConstantTimeCompare([]byte(key), []byte(cfg.AuthToken)) == 1, nil
		}))
	}
	v1.POST("/messages", s.handleMessage)

	return s
}

// Echo exposes the router, mainly for tests.
func (s *Server) Echo() *echo.Echo {
	return s.e
}

func (s *Server) Start(ctx context.Context) error {
	log.FromCtx(ctx).Info().Str("addr", s.cfg.Addr).Msg("starting http gateway")
	if err := s.e.Start(s.cfg.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	// ctx is already done when services are shut down
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()
	return s.e.Shutdown(shutdownCtx)
}
