package main

import (
	"context"
	"flag"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
	"go.opentelemetry.io/otel"
	_ "go.uber.org/automaxprocs"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"arealookup/config"
	"arealookup/internal/code"
	"arealookup/internal/router"
	"arealookup/internal/service"
	"arealookup/internal/store/mysql"
	"arealookup/pkg/logger"
	"arealookup/pkg/prometheus"
	"arealookup/pkg/routine"
	"arealookup/pkg/tracex"
	"arealookup/pkg/validator"
)

var configFile = flag.String("f", "./config/arealookup.yaml", "the config file")

func main() {
	flag.Parse()
	// 初始化配置
	if err := config.LoadConfig(*configFile); err != nil {
		log.Fatal(err)
	}
	if err := code.Loading(); err != nil {
		log.Fatal(err)
	}
	if mode := strings.ToLower(viper.GetString("mode")); mode != "" {
		gin.SetMode(mode)
	}
	if err := validator.Install(); err != nil {
		log.Fatal(err)
	}
	if err := run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
}

func run() error {
	serviceName := viper.GetString("service.name")
	l := logger.New(
		logger.WithServerName(serviceName),
		logger.WithLevel(viper.GetString("log.level")),
		logger.WithWriter(logger.SetWriter(viper.GetBool("log.console"), viper.GetString("log.path"))))
	defer l.Sync()
	ctx := logger.With(context.Background(), l)

	tp := tracex.NewProvider(viper.GetFloat64("trace.sample_ratio"), tracex.NewLogExporter(l))
	otel.SetTracerProvider(tp)

	// 初始化数据库
	dataStore, err := mysql.NewMysqlClient(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err := dataStore.DB.Close(); err != nil {
			l.Error("close mysql pool failed", zap.Error(err))
		}
	}()

	sqlDB, err := dataStore.DB.SQLDB()
	if err != nil {
		return errors.WithStack(err)
	}
	handler, err := router.New(service.NewService(dataStore),
		router.WithServiceName(serviceName),
		router.WithLogger(l),
		router.WithRegistry(prometheus.NewRegistry(serviceName, sqlDB)),
		router.WithAllowOrigins(viper.GetStringSlice("http.allow_origins")...),
		router.WithRateLimit(viper.GetFloat64("limit.rate"), viper.GetInt("limit.burst")),
	)
	if err != nil {
		return err
	}
	srv := &http.Server{
		Addr:    viper.GetString("http.addr"),
		Handler: handler,
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	g := routine.NewGroup(ctx)
	// 服务启动流程
	g.Go(func(ctx context.Context) error {
		return startAction(ctx, srv)
	})
	// 服务关闭流程
	g.Go(func(ctx context.Context) error {
		return shutdownAction(ctx, srv, tp.Shutdown)
	})

	if err = g.Wait(); err != nil && !errors.Is(err, context.Canceled) &&
		!errors.Is(err, http.ErrServerClosed) {
		l.Error("server run with error", zap.Error(err))
		return err
	}
	return nil
}

func startAction(ctx context.Context, srv *http.Server) error {
	logger.From(ctx).Sugar().Infof("%s run on %s, listen on %s",
		viper.GetString("service.name"), gin.Mode(), srv.Addr)
	return srv.ListenAndServe()
}

const DefaultStopTime = 15 * time.Second

func shutdownAction(ctx context.Context, srv *http.Server, flush func(context.Context) error) error {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	var err error
	select {
	case <-ctx.Done():
		err = ctx.Err()
	case <-quit:
	}
	newCtx, cancel := context.WithTimeout(context.Background(), DefaultStopTime)
	defer cancel()
	logger.From(ctx).Info("shutting down server...")
	return multierr.Combine(err, srv.Shutdown(newCtx), flush(newCtx))
}
