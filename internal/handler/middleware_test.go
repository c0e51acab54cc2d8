package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"drone-site-server/internal/domain"
)

type recordingLogger struct {
	MockHandlerLogger
	infos []string
}

func (l *recordingLogger) Info(msg string, fields ...interface{}) {
	l.infos = append(l.infos, msg)
}

var _ domain.Logger = (*recordingLogger)(nil)

func TestLoggingMiddleware_PassesThroughAndLogs(t *testing.T) {
	logger := &recordingLogger{}
	mw := LoggingMiddleware(logger)

	handler := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusAccepted)
		w.Write([]byte("ok"))
	}))

	req := httptest.NewRequest("GET", "/api/v1/posts", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusAccepted {
		t.Fatalf("middleware altered status: %d", rr.Code)
	}
	if rr.Body.String() != "ok" {
		t.Fatalf("middleware altered body: %s", rr.Body.String())
	}
	if len(logger.infos) != 1 || logger.infos[0] != "request" {
		t.Fatalf("expected one request log entry, got %v", logger.infos)
	}
}
