package echoapi

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"

	"github.com/datapulse/backend/core"
	"github.com/datapulse/backend/core/activity"
	"github.com/datapulse/backend/core/analytics"
	"github.com/datapulse/backend/core/chatbot"
	"github.com/datapulse/backend/core/course"
	"github.com/datapulse/backend/core/user"
)

type (
	Options struct {
		Addr           string
		DisableReqLogs bool

		Logger       core.Logger
		UserSvc      *user.Service
		CourseSvc    *course.Service
		ActivitySvc  *activity.Service
		ChatbotSvc   *chatbot.Service
		AnalyticsSvc *analytics.Service
	}

	Server interface {
		http.Handler
		Start()
		Stop(context.Context) error
	}

	server struct {
		opts *Options
		app  *echo.Echo
	}
)

var _ Server = (*server)(nil)

func NewServer(opts *Options) Server {
	s := &server{
		opts: opts,
		app:  echo.New(),
	}
	s.setup()
	return s
}

func (s *server) setup() {
	debug := core.Conf.Debug

	s.app.Pre(middleware.RemoveTrailingSlash())
	if !s.opts.DisableReqLogs {
		s.app.Use(middleware.Logger())
	}
	// do not recover in DEV|TEST mode
	if !(debug || core.Conf.TestMode) {
		s.app.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{LogLevel: log.ERROR}))
	}

	s.app.HTTPErrorHandler = newAppHTTPErrorHandler(s.opts.Logger)
	s.app.Debug = debug

	s.app.GET("/", home)

	v1 := s.app.Group("/v1")
	jwt := middleware.JWTWithConfig(appJWTConfig)

	registerAuthAPI(v1, jwt, s.opts.UserSvc, s.opts.ActivitySvc, s.opts.Logger)
	registerUserAPI(v1, jwt, s.opts.UserSvc, s.opts.CourseSvc, s.opts.ActivitySvc)
	registerCourseAPI(v1, jwt, s.opts.CourseSvc, s.opts.ActivitySvc)
	registerActivityAPI(v1, jwt, s.opts.ActivitySvc)
	registerChatbotAPI(v1, jwt, s.opts.ChatbotSvc)
	registerAnalyticsAPI(v1, jwt, s.opts.AnalyticsSvc)
	registerDashboardAPI(v1, jwt, s.opts.CourseSvc, s.opts.ActivitySvc)
}

func (s *server) Start() {
	s.app.Logger.Fatal(s.app.Start(s.opts.Addr))
}

func (s *server) Stop(ctx context.Context) error {
	return s.app.Shutdown(ctx)
}

func (s *server) ServeHTTP(w http.ResponseWriter, r *http.Request) { // for tests
	s.app.ServeHTTP(w, r)
}

func home(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Welcome to DataPulse API!")
}
