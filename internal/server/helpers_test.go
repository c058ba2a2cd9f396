package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"
)

type testHolding struct {
	Ticker      string  `json:"ticker"`
	MarketValue float64 `json:"market_value"`
	Sector      string  `json:"sector,omitempty"`
}

func TestWriteErrorWithCode(t *testing.T) {
	rr := httptest.NewRecorder()
	WriteErrorWithCode(rr, http.StatusBadRequest, "bad snapshot", "invalid_snapshot")

	if rr.Code != http.StatusBadRequest {
		t.Errorf("Expected 400, got %d", rr.Code)
	}
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var body ErrorResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
	assert.Equal(t, ErrorResponse{Error: "bad snapshot", Code: "invalid_snapshot"}, body)
}

func TestWriteError_OmitsEmptyCode(t *testing.T) {
	rr := httptest.NewRecorder()
	WriteError(rr, http.StatusNotFound, "Not found")
	assert.JSONEq(t, `{"error":"Not found"}`, rr.Body.String())
}

func TestDecodeBody_JSON(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"ticker":"AAPL","market_value":12000}`))
	req.Header.Set("Content-Type", "application/json")

	var h testHolding
	require.NoError(t, DecodeBody(httptest.NewRecorder(), req, &h, 1024))
	assert.Equal(t, testHolding{Ticker: "AAPL", MarketValue: 12000}, h)
}

func TestDecodeBody_Msgpack(t *testing.T) {
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	enc.SetCustomStructTag("json")
	require.NoError(t, enc.Encode(testHolding{Ticker: "BHP", MarketValue: 500, Sector: "Materials"}))

	req := httptest.NewRequest(http.MethodPost, "/", &buf)
	req.Header.Set("Content-Type", "application/msgpack")

	var h testHolding
	require.NoError(t, DecodeBody(httptest.NewRecorder(), req, &h, 1024))
	assert.Equal(t, "BHP", h.Ticker)
	assert.Equal(t, 500.0, h.MarketValue)
	assert.Equal(t, "Materials", h.Sector)
}

func TestDecodeBody_Errors(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		limit   int64
		wantErr string
	}{
		{"malformed", `{"ticker":`, 1024, "invalid JSON"},
		{"too large", `{"ticker":"` + strings.Repeat("A", 64) + `"}`, 16, "invalid JSON"},
		{"empty", ``, 1024, "request body is required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req *http.Request
			if tt.body == "" {
				req = httptest.NewRequest(http.MethodPost, "/", http.NoBody)
			} else {
				req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			}
			var h testHolding
			err := DecodeBody(httptest.NewRecorder(), req, &h, tt.limit)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestNegotiateFormat(t *testing.T) {
	tests := []struct {
		name   string
		query  string
		accept string
		want   responseFormat
	}{
		{"default", "", "", formatJSON},
		{"wildcard", "", "*/*", formatJSON},
		{"markdown accept", "", "text/markdown", formatMarkdown},
		{"msgpack accept", "", "application/msgpack", formatMsgpack},
		{"x-msgpack accept", "", "application/x-msgpack", formatMsgpack},
		{"first known wins", "", "text/html, text/markdown;q=0.9, application/json", formatMarkdown},
		{"query markdown", "format=markdown", "application/json", formatMarkdown},
		{"query md", "format=md", "", formatMarkdown},
		{"query msgpack", "format=msgpack", "", formatMsgpack},
		{"query json beats accept", "format=json", "text/markdown", formatJSON},
		{"unknown query falls to accept", "format=xml", "text/markdown", formatMarkdown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target := "/api/compliance/evaluate"
			if tt.query != "" {
				target += "?" + tt.query
			}
			req := httptest.NewRequest(http.MethodPost, target, nil)
			if tt.accept != "" {
				req.Header.Set("Accept", tt.accept)
			}
			assert.Equal(t, tt.want, negotiateFormat(req))
		})
	}
}
