package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"arealookup/internal/controllers"
	"arealookup/internal/service"
	"arealookup/internal/view"
	"arealookup/pkg/code"
	"arealookup/pkg/logger"
	"arealookup/pkg/middlewares"
	metrics "arealookup/pkg/prometheus"
	"arealookup/pkg/resp"
)

type option struct {
	serviceName  string
	logger       *zap.Logger
	registry     *prometheus.Registry
	allowOrigins []string
	limit        float64
	burst        int
}

type Option func(*option)

func WithServiceName(name string) Option {
	return func(o *option) {
		o.serviceName = name
	}
}

func WithLogger(l *zap.Logger) Option {
	return func(o *option) {
		o.logger = l
	}
}

// WithRegistry serves registry on /metrics
func WithRegistry(registry *prometheus.Registry) Option {
	return func(o *option) {
		o.registry = registry
	}
}

func WithAllowOrigins(origins ...string) Option {
	return func(o *option) {
		o.allowOrigins = origins
	}
}

// WithRateLimit requests per second of the whole service, 0 disables it
func WithRateLimit(limit float64, burst int) Option {
	return func(o *option) {
		o.limit = limit
		o.burst = burst
	}
}

// New gin router
func New(srv service.Service, opts ...Option) (*gin.Engine, error) {
	o := &option{
		serviceName: "arealookup",
		logger:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(o)
	}
	if o.registry == nil {
		o.registry = metrics.NewRegistry(o.serviceName, nil)
	}
	// init
	router := gin.New()
	tmpl, err := view.Load()
	if err != nil {
		return nil, errors.WithStack(err)
	}
	router.SetHTMLTemplate(tmpl)

	// add middleware
	router.Use(
		middlewares.SetLogger(o.logger),
		middlewares.Log,
		// Metric wraps Recovery, a panic is counted as 500
		middlewares.Metric,
		middlewares.Recovery,
		middlewares.CrossDomain(o.allowOrigins...),
		middlewares.Tracing(o.serviceName),
	)
	router.NoRoute(func(c *gin.Context) {
		resp.Error(c, code.ErrNotFound.WithResult(c.Request.URL.Path))
	})
	router.NoMethod(func(c *gin.Context) {
		resp.Error(c, code.ErrNotAllowMethod.WithResult(c.Request.Method))
	})
	router.HandleMethodNotAllowed = true

	router.GET("/health", controllers.Health)
	router.GET("/metrics", gin.WrapH(metrics.Handler(o.registry)))

	limited := router.Group("", middlewares.RateLimit(o.limit, o.burst))
	registerArea(limited, srv)

	v1RouterGroup(limited, srv)
	return router, nil
}

func v1RouterGroup(router *gin.RouterGroup, srv service.Service) {
	v1Router := router.Group("/v1")
	logger.RegisterLog(v1Router)
	registerAreaAPI(v1Router, srv)
}

// match registers h for both GET and POST, the area endpoints accept either
func match(router gin.IRoutes, path string, h gin.HandlerFunc) {
	for _, method := range []string{http.MethodGet, http.MethodPost} {
		router.Handle(method, path, h)
	}
}
