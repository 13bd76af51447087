package logger

import (
	"io"
	"os"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options ...
type Options struct {
	Level  zapcore.Level
	Out    io.Writer // defaults to os.Stderr
	File   string    // optional rotated log file
	MaxMB  int
	MaxAge int // days
}

// TimeEncoder ...
func TimeEncoder(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(t.Format("2006-01-02 15:04:05.000"))
}

// New returns a console-encoded zap logger writing to opts.Out and, when
// opts.File is set, to a size-rotated file as well.
func New(opts Options) *zap.Logger {
	out := opts.Out
	if out == nil {
		out = os.Stderr
	}

	syncers := []zapcore.WriteSyncer{zapcore.AddSync(out)}
	if opts.File != "" {
		syncers = append(syncers, zapcore.AddSync(&lumberjack.Logger{
			Filename:  opts.File,
			MaxSize:   opts.MaxMB,
			MaxAge:    opts.MaxAge,
			LocalTime: true,
		}))
	}

	encoder := zap.NewProductionEncoderConfig()
	encoder.EncodeTime = TimeEncoder

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoder),
		zap.CombineWriteSyncers(syncers...),
		zap.NewAtomicLevelAt(opts.Level),
	)
	return zap.New(core, zap.AddCaller())
}
