package logger

import (
	"io"
	"path/filepath"
	"sync"

	"github.com/mattn/go-colorable"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	loggerWriter     io.WriteCloser
	loggerWriterOnce sync.Once
)

// SetWriter return a io.Writer, console and/or a rotated file at path
func SetWriter(console bool, path string) io.Writer {
	var writerList []io.Writer
	if console {
		writerList = append(writerList, colorable.NewColorableStdout())
	}
	if path == "" {
		if len(writerList) == 0 {
			return io.Discard
		}
		return io.MultiWriter(writerList...)
	}
	loggerWriterOnce.Do(func() {
		loggerWriter = &lumberjack.Logger{
			Filename:   filepath.Clean(path),
			MaxBackups: 30,  // files
			MaxSize:    500, // megabytes
			MaxAge:     30,  // days
			Compress:   true,
		}
	})
	writerList = append(writerList, loggerWriter)
	return io.MultiWriter(writerList...)
}
