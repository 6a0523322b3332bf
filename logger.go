package envseek

// Logger represents basic logging behavior.
// *slog.Logger satisfies it.
type Logger interface {
	Info(msg string, args ...any)
	Error(msg string, args ...any)
}

// NoopLogger represents logger which produce no output
type NoopLogger struct{}

func (NoopLogger) Info(msg string, args ...any) {}

func (NoopLogger) Error(msg string, args ...any) {}
