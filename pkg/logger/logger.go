package logger

import (
	"os"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"arealookup/pkg/timex"
)

func New(opts ...Option) *zap.Logger {
	o := &option{
		level:   zapcore.InfoLevel.String(),
		encoder: zapcore.NewConsoleEncoder,
		writer:  os.Stdout,
	}
	for _, opt := range opts {
		opt(o)
	}
	fields := o.fields
	if o.serverName != "" {
		fields = append(fields, zap.String("service_name", o.serverName))
	}
	core := zapcore.NewCore(
		o.encoder(newEncoderConfig()),
		zapcore.AddSync(o.writer),
		NewChangeLevel(o.level),
	).With(fields)
	// 大于error增加堆栈信息
	return zap.New(core).WithOptions(zap.AddCaller(), zap.AddCallerSkip(o.skip),
		zap.AddStacktrace(zapcore.DPanicLevel), zap.WithClock(systemClock{}))
}

func newEncoderConfig() zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		MessageKey:     "Message",
		LevelKey:       "Level",
		TimeKey:        "Time",
		NameKey:        "Logger",
		CallerKey:      "Caller",
		StacktraceKey:  "Stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.CapitalLevelEncoder,
		EncodeTime:     zapcore.TimeEncoderOfLayout(timex.TimeFormatLayout),
		EncodeDuration: zapcore.SecondsDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
		EncodeName:     zapcore.FullNameEncoder,
	}
}

func newLevel(level string) zapcore.Level {
	l, err := zapcore.ParseLevel(level)
	if err != nil {
		l = zap.InfoLevel
	}
	return l
}

// systemClock implements default Clock that uses system time.
type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now().In(timex.CST)
}

func (systemClock) NewTicker(duration time.Duration) *time.Ticker {
	return time.NewTicker(duration)
}

func NewChangeLevel(level string) *changeLevel {
	return &changeLevel{
		level: newLevel(level),
	}
}

// changeLevel enables every level while debug is switched on through the log api
type changeLevel struct {
	level zapcore.Level
}

func (ch *changeLevel) Enabled(lvl zapcore.Level) bool {
	if atomic.LoadUint32(&debug) == 1 {
		return true
	}
	return lvl >= ch.level
}
