package core

// Logger is the output sink used by the renderer and CLI for progress messages
type Logger interface {
	Printf(format string, args ...interface{})
}
