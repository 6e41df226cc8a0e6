package log_test

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bool64/ctxd"
	"github.com/stretchr/testify/assert"
	"github.com/swaggest/todomvc/internal/infra/log"
	"github.com/swaggest/usecase"
)

func TestLogger(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	l := log.New(log.Config{Level: "info", Format: "json"}, buf)

	ctx := ctxd.AddFields(context.Background(), "request", "r1")

	l.Debug(ctx, "hidden")
	l.Info(ctx, "shown", "id", 1)

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"msg":"shown"`)
	assert.Contains(t, buf.String(), `"request":"r1"`)
	assert.Contains(t, buf.String(), `"id":1`)

	buf.Reset()
	l = log.New(log.Config{Level: "error"}, buf)
	l.Warn(ctx, "skipped")
	l.Important(ctx, "kept")

	assert.NotContains(t, buf.String(), "skipped")
	assert.Contains(t, buf.String(), "msg=kept")
}

func TestUseCaseMiddleware(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	l := log.New(log.Config{Level: "debug"}, buf)

	u := usecase.NewIOI(nil, nil, func(_ context.Context, _, _ interface{}) error {
		return errors.New("failed")
	})
	u.SetName("failing")

	err := usecase.Wrap(u, log.UseCaseMiddleware(l)).Interact(context.Background(), nil, nil)
	assert.EqualError(t, err, "failed")
	assert.Contains(t, buf.String(), "usecase=failing")
	assert.Contains(t, buf.String(), "error=failed")
}

func TestHTTPMiddleware(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	l := log.New(log.Config{Level: "debug"}, buf)

	h := log.HTTPMiddleware(l)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	rw := httptest.NewRecorder()
	h.ServeHTTP(rw, httptest.NewRequest(http.MethodGet, "/active", nil))

	assert.Equal(t, http.StatusTeapot, rw.Code)
	assert.Contains(t, buf.String(), "status=418")
	assert.Contains(t, buf.String(), "url=/active")
}
