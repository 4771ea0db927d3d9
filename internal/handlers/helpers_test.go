package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"creditnext/internal/errors"
	"creditnext/internal/handlers"
	"creditnext/internal/middleware"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// newTestEcho mirrors the production error handling and validation setup
func newTestEcho() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = middleware.HTTPErrorHandler(zap.NewNop())
	e.Use(middleware.RequestID())
	return e
}

func doJSON(e *echo.Echo, method, path string, body interface{}) *httptest.ResponseRecorder {
	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		raw, _ := json.Marshal(b)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if reader != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errors.ErrorResponse {
	t.Helper()
	var resp errors.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Error.TraceID)
	return resp
}

func ledgerBody(txs ...map[string]interface{}) map[string]interface{} {
	return map[string]interface{}{"transactions": txs}
}

func tx(description, amount, kind string) map[string]interface{} {
	return map[string]interface{}{
		"date":        "2025-01-01",
		"description": description,
		"amount":      amount,
		"type":        kind,
	}
}
