package echoapi

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"

	"github.com/karniella/revisions/core"
	"github.com/karniella/revisions/core/content"
	"github.com/karniella/revisions/core/session"
)

type (
	ServerDeps struct {
		Conf       *core.Config
		Logger     core.Logger
		ContentSvc *content.Service
		SessionSvc *session.Service
		Validate   *validator.Validate
		Translator ut.Translator
	}

	Server struct {
		deps     ServerDeps
		app      *echo.Echo
		errs     chan error
		shutdown chan os.Signal
	}
)

func NewServer(deps ServerDeps) *Server {
	s := &Server{
		deps:     deps,
		app:      echo.New(),
		errs:     make(chan error, 1),
		shutdown: make(chan os.Signal, 1),
	}
	signal.Notify(s.shutdown, syscall.SIGINT, syscall.SIGTERM)
	s.setup()
	return s
}

func (s *Server) setup() {
	conf := s.deps.Conf

	s.app.Pre(middleware.RemoveTrailingSlash())
	if !conf.TestMode {
		s.app.Use(middleware.Logger())
	}
	// do not recover in DEV|TEST mode
	if !(conf.Debug || conf.TestMode) {
		s.app.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{LogLevel: log.ERROR}))
	}

	s.app.HTTPErrorHandler = newAppHTTPErrorHandler(s.deps.Logger, s.deps.Translator, s.signalShutdown)
	s.app.Debug = conf.Debug
	s.app.HideBanner = true

	if conf.StaticDir != "" {
		s.app.Static("/", conf.StaticDir)
	} else {
		s.app.GET("/", home)
	}

	api := s.app.Group("/api", sessionMiddleware(s.deps.SessionSvc))
	guard := requireAuth()

	registerAuthAPI(api, s.deps.SessionSvc, s.deps.Validate)
	registerSubjectAPI(api, s.deps.ContentSvc, guard)
	registerLessonAPI(api, s.deps.ContentSvc, guard)
	registerQuizAPI(api, s.deps.ContentSvc, guard)
}

func (s *Server) Start() {
	s.deps.Logger.Info(fmt.Sprintf("API server listening on %s", s.deps.Conf.Server.Addr))
	if err := s.app.Start(s.deps.Conf.Server.Addr); err != nil && err != http.ErrServerClosed {
		s.errs <- err
	}
}

// Errors surfaces fatal server errors to the main goroutine.
func (s *Server) Errors() <-chan error {
	return s.errs
}

// ShutdownSignal carries OS signals and internally-requested shutdowns.
func (s *Server) ShutdownSignal() <-chan os.Signal {
	return s.shutdown
}

func (s *Server) signalShutdown() {
	s.shutdown <- syscall.SIGTERM
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.app.Shutdown(ctx)
}

func (s *Server) Close() error {
	return s.app.Close()
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) { // for tests
	s.app.ServeHTTP(w, r)
}

func home(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Welcome to Karniella Revisions!")
}
