package server

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/resumeworks/resumesrv/internal/resumesrv/config"
	"github.com/resumeworks/resumesrv/internal/resumesrv/db"
	"github.com/resumeworks/resumesrv/internal/resumesrv/db/migrations"
)

var setupOnce sync.Once

func setupTestDb(t *testing.T) {
	t.Helper()
	setupOnce.Do(func() {
		ctx := log.Logger.WithContext(context.Background())
		require.NoError(t, migrations.Run(ctx, config.Config().DB.Dsn()))
		require.NoError(t, db.Init(ctx))
	})
}

func executeTestRequest(t *testing.T, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	setupTestDb(t)

	s, err := CreateNewServer()
	require.NoError(t, err, "create new server")
	s.MountHandlers()

	rr := httptest.NewRecorder()
	s.Router.ServeHTTP(rr, req)
	return rr
}

func checkHeader(t *testing.T, h http.Header) {
	t.Helper()
	assert.Equal(t, "application/json", h.Get("Content-Type"))
	assert.NotEmpty(t, h.Get("X-Request-ID"), "no request id")
}

func setRequestBodyAndHeader(t *testing.T, req *http.Request, data any) {
	t.Helper()
	var jsonData []byte
	if s, ok := data.(string); ok {
		require.True(t, json.Valid([]byte(s)), "body is not valid json")
		jsonData = []byte(s)
	} else {
		var err error
		jsonData, err = json.Marshal(data)
		require.NoError(t, err, "marshal request body")
	}
	req.Body = io.NopCloser(bytes.NewReader(jsonData))
	req.ContentLength = int64(len(jsonData))
	req.Header.Set("Content-Type", "application/json")
}

// testEnvelope mirrors the wire envelope: exactly one of result/error set.
type testEnvelope struct {
	Result json.RawMessage `json:"result"`
	Error  *testErrorBody  `json:"error"`
}

type testErrorBody struct {
	Message string         `json:"message"`
	Type    string         `json:"type"`
	Ctx     map[string]any `json:"ctx"`
}

func decodeEnvelope(t *testing.T, rr *httptest.ResponseRecorder) testEnvelope {
	t.Helper()
	var env testEnvelope
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &env), "decode envelope: %s", rr.Body.String())
	return env
}

func decodeResult(t *testing.T, rr *httptest.ResponseRecorder, out any) {
	t.Helper()
	env := decodeEnvelope(t, rr)
	require.Nil(t, env.Error, "unexpected error: %+v", env.Error)
	require.NotNil(t, env.Result)
	require.NoError(t, json.Unmarshal(env.Result, out))
}
