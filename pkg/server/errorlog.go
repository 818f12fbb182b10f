package server

import (
	"bytes"
	stdlog "log"

	"github.com/envoyproxy/go-control-plane/pkg/log"
)

// errorLogWriter routes net/http's internal errors (TLS handshake failures,
// broken connections) to the debug level of the service logger.
type errorLogWriter struct {
	logger log.Logger
}

func (w errorLogWriter) Write(p []byte) (int, error) {
	w.logger.Debugf("%s", bytes.TrimRight(p, "\n"))
	return len(p), nil
}

func newErrorLog(logger log.Logger) *stdlog.Logger {
	return stdlog.New(errorLogWriter{logger: logger}, "", 0)
}
