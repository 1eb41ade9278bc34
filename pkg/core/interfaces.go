package core

// Logger receives progress output from long-running renders.
// The standard library's *log.Logger satisfies it.
type Logger interface {
	Printf(format string, args ...interface{})
}
