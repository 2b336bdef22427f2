package logger

import (
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	usecasecontract "github.com/mikiasgoitom/Commune/internal/usecase/contract"
)

const projectName = "Commune"

// ZapLogger adapts a zap SugaredLogger to the IAppLogger interface.
type ZapLogger struct {
	sugar *zap.SugaredLogger
}

var _ usecasecontract.IAppLogger = (*ZapLogger)(nil)

// NewZapLogger builds a JSON logger writing to stdout at the given level
// ("debug", "info", "warn", "error"). Unknown levels fall back to info.
func NewZapLogger(level string) *ZapLogger {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeCaller = func(caller zapcore.EntryCaller, enc zapcore.PrimitiveArrayEncoder) {
		if index := strings.Index(caller.File, projectName); index != -1 {
			enc.AppendString(caller.File[index:] + ":" + strconv.Itoa(caller.Line))
			return
		}
		enc.AppendString(caller.TrimmedPath())
	}
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.AddSync(os.Stdout),
		lvl,
	)
	l := zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1), zap.AddStacktrace(zap.ErrorLevel))
	return &ZapLogger{sugar: l.Sugar()}
}

// NewFromZap wraps an existing zap logger, e.g. zap.NewNop() in tests.
func NewFromZap(l *zap.Logger) *ZapLogger {
	return &ZapLogger{sugar: l.Sugar()}
}

// Zap exposes the underlying structured logger.
func (l *ZapLogger) Zap() *zap.Logger {
	return l.sugar.Desugar()
}

func (l *ZapLogger) Debugf(format string, args ...interface{}) { l.sugar.Debugf(format, args...) }

func (l *ZapLogger) Infof(format string, args ...interface{}) { l.sugar.Infof(format, args...) }

func (l *ZapLogger) Warnf(format string, args ...interface{}) { l.sugar.Warnf(format, args...) }

// Warningf is an alias of Warnf.
func (l *ZapLogger) Warningf(format string, args ...interface{}) { l.sugar.Warnf(format, args...) }

func (l *ZapLogger) Errorf(format string, args ...interface{}) { l.sugar.Errorf(format, args...) }

// Fatalf logs and exits the process.
func (l *ZapLogger) Fatalf(format string, args ...interface{}) { l.sugar.Fatalf(format, args...) }

// Sync flushes buffered entries.
func (l *ZapLogger) Sync() error {
	return l.sugar.Sync()
}
