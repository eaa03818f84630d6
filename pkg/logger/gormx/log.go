package gormx

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
	glogger "gorm.io/gorm/logger"
	"gorm.io/gorm/utils"

	"arealookup/pkg/logger"
)

// NewLog routes gorm logs into the zap logger bound to the statement context
func NewLog(cfg glogger.Config) glogger.Interface {
	return &gormLog{Config: cfg}
}

type gormLog struct {
	glogger.Config
}

func (g *gormLog) LogMode(level glogger.LogLevel) glogger.Interface {
	l := *g
	l.LogLevel = level
	return &l
}

func (g *gormLog) Info(ctx context.Context, msg string, data ...interface{}) {
	if g.LogLevel >= glogger.Info {
		g.from(ctx).Sugar().Infof(msg, data...)
	}
}

func (g *gormLog) Warn(ctx context.Context, msg string, data ...interface{}) {
	if g.LogLevel >= glogger.Warn {
		g.from(ctx).Sugar().Warnf(msg, data...)
	}
}

func (g *gormLog) Error(ctx context.Context, msg string, data ...interface{}) {
	if g.LogLevel >= glogger.Error {
		g.from(ctx).Sugar().Errorf(msg, data...)
	}
}

func (g *gormLog) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if g.LogLevel <= glogger.Silent {
		return
	}
	elapsed := time.Since(begin)
	switch {
	case err != nil && g.LogLevel >= glogger.Error &&
		(!errors.Is(err, gorm.ErrRecordNotFound) || !g.IgnoreRecordNotFoundError):
		sql, rows := fc()
		g.from(ctx).Error("sql failed", fields(elapsed, sql, rows, zap.Error(err))...)
	case elapsed > g.SlowThreshold && g.SlowThreshold != 0 && g.LogLevel >= glogger.Warn:
		sql, rows := fc()
		g.from(ctx).Warn(fmt.Sprintf("slow sql >= %v", g.SlowThreshold), fields(elapsed, sql, rows)...)
	case g.LogLevel == glogger.Info:
		sql, rows := fc()
		g.from(ctx).Debug("sql", fields(elapsed, sql, rows)...)
	}
}

func (g *gormLog) from(ctx context.Context) *zap.Logger {
	return logger.From(ctx).WithOptions(zap.WithCaller(false))
}

func fields(elapsed time.Duration, sql string, rows int64, extra ...zap.Field) []zap.Field {
	fs := []zap.Field{
		zap.String("source", utils.FileWithLineNum()),
		zap.Duration("elapsed", elapsed),
		zap.String("sql", sql),
	}
	if rows == -1 {
		fs = append(fs, zap.String("rows", "-"))
	} else {
		fs = append(fs, zap.Int64("rows", rows))
	}
	return append(fs, extra...)
}
