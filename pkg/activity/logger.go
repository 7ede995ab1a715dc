package activity

import (
	"context"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Entry is one user activity event.
type Entry struct {
	Timestamp time.Time
	Level     string
	EventType string
	Message   string
	ActorID   int64
	IP        string
	UserAgent string
	RequestID string
}

// PersistFunc stores an entry, typically in the log table.
type PersistFunc func(ctx context.Context, entry Entry) error

// Logger writes activity events to zap and, when a persist function is set,
// to the database. Persistence runs asynchronously and its failures are only
// logged.
type Logger struct {
	zapLogger      *zap.Logger
	serviceName    string
	persistFunc    PersistFunc
	persistTimeout time.Duration
}

// New builds a production zap logger writing JSON to stdout.
func New(serviceName string) *Logger {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.MessageKey = "message"
	config.OutputPaths = []string{"stdout"}
	config.ErrorOutputPaths = []string{"stderr"}

	zl, err := config.Build(zap.AddStacktrace(zapcore.ErrorLevel))
	if err != nil {
		zl, _ = zap.NewProduction()
	}
	return NewWithZap(zl, serviceName)
}

// NewWithZap wraps an existing zap logger.
func NewWithZap(zl *zap.Logger, serviceName string) *Logger {
	return &Logger{
		zapLogger:      zl,
		serviceName:    serviceName,
		persistTimeout: 5 * time.Second,
	}
}

// NewNop returns a logger that discards everything.
func NewNop() *Logger {
	return NewWithZap(zap.NewNop(), "")
}

func (l *Logger) SetPersistFunc(f PersistFunc) {
	l.persistFunc = f
}

// Record logs an event for actorID. Zero actorID means no user is attached.
// Request metadata is read from ctx when present.
func (l *Logger) Record(ctx context.Context, level string, actorID int64, eventType, message string) {
	meta := MetaFromContext(ctx)
	l.Log(Entry{
		Level:     level,
		EventType: eventType,
		Message:   message,
		ActorID:   actorID,
		IP:        meta.IP,
		UserAgent: meta.UserAgent,
		RequestID: meta.RequestID,
	})
}

func (l *Logger) Log(entry Entry) {
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now().UTC()
	}

	fields := []zap.Field{
		zap.String("service", l.serviceName),
		zap.String("event", entry.EventType),
		zap.String("activity_level", entry.Level),
	}
	if entry.ActorID != 0 {
		fields = append(fields, zap.Int64("actor_id", entry.ActorID))
	}
	if entry.IP != "" {
		fields = append(fields, zap.String("ip", entry.IP))
	}
	if entry.UserAgent != "" {
		fields = append(fields, zap.String("user_agent", entry.UserAgent))
	}
	if entry.RequestID != "" {
		fields = append(fields, zap.String("request_id", entry.RequestID))
	}

	l.zapLogger.Log(zapLevel(entry.Level), entry.Message, fields...)

	if l.persistFunc != nil {
		go func(e Entry) {
			// request context may already be cancelled
			ctx, cancel := context.WithTimeout(context.Background(), l.persistTimeout)
			defer cancel()

			if err := l.persistFunc(ctx, e); err != nil {
				l.zapLogger.Error("Failed to persist activity entry",
					zap.String("event", e.EventType),
					zap.Error(err),
				)
			}
		}(entry)
	}
}

func (l *Logger) Sync() error {
	return l.zapLogger.Sync()
}

func zapLevel(level string) zapcore.Level {
	switch level {
	case "ERROR":
		return zapcore.ErrorLevel
	case "DEBUG":
		return zapcore.DebugLevel
	default:
		return zapcore.InfoLevel
	}
}
