package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"mime"
	"net/http"
	"strings"

	"github.com/vmihailenco/msgpack/v5"
)

// Media types the API reads and writes.
const (
	contentTypeJSON     = "application/json"
	contentTypeMsgpack  = "application/msgpack"
	contentTypeMarkdown = "text/markdown; charset=utf-8"
)

const defaultMaxBodyBytes = 1 << 20

// ErrorResponse is the standard error format for REST API responses.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// WriteJSON writes a JSON response with the given status code.
func WriteJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

// WriteMsgpack writes a msgpack response using the json field names.
func WriteMsgpack(w http.ResponseWriter, statusCode int, data interface{}) error {
	body, err := marshalMsgpack(data)
	if err != nil {
		return err
	}
	w.Header().Set("Content-Type", contentTypeMsgpack)
	w.WriteHeader(statusCode)
	_, err = w.Write(body)
	return err
}

// WriteMarkdown writes a markdown document.
func WriteMarkdown(w http.ResponseWriter, statusCode int, doc string) {
	w.Header().Set("Content-Type", contentTypeMarkdown)
	w.WriteHeader(statusCode)
	w.Write([]byte(doc))
}

// WriteError writes a JSON error response.
func WriteError(w http.ResponseWriter, statusCode int, message string) {
	WriteJSON(w, statusCode, ErrorResponse{Error: message})
}

// WriteErrorWithCode writes a JSON error response with an error code.
func WriteErrorWithCode(w http.ResponseWriter, statusCode int, message, code string) {
	WriteJSON(w, statusCode, ErrorResponse{Error: message, Code: code})
}

// DecodeBody reads the request body into v, as msgpack when the request says
// so and JSON otherwise. The body is capped at maxBytes.
func DecodeBody(w http.ResponseWriter, r *http.Request, v interface{}, maxBytes int64) error {
	if r.Body == nil || r.Body == http.NoBody {
		return errors.New("request body is required")
	}
	if maxBytes <= 0 {
		maxBytes = defaultMaxBodyBytes
	}
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes)

	if isMsgpack(r.Header.Get("Content-Type")) {
		dec := msgpack.NewDecoder(r.Body)
		dec.SetCustomStructTag("json")
		if err := dec.Decode(v); err != nil {
			return fmt.Errorf("invalid msgpack: %w", err)
		}
		return nil
	}

	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	return nil
}

func marshalMsgpack(v interface{}) ([]byte, error) {
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	enc.SetCustomStructTag("json")
	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("failed to encode msgpack: %w", err)
	}
	return buf.Bytes(), nil
}

func isMsgpack(contentType string) bool {
	mt, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return mt == "application/msgpack" || mt == "application/x-msgpack"
}

// responseFormat is the negotiated representation of a report.
type responseFormat int

const (
	formatJSON responseFormat = iota
	formatMarkdown
	formatMsgpack
)

// negotiateFormat picks the response format. An explicit ?format= wins over
// the Accept header; anything unrecognised is JSON.
func negotiateFormat(r *http.Request) responseFormat {
	switch strings.ToLower(r.URL.Query().Get("format")) {
	case "markdown", "md":
		return formatMarkdown
	case "msgpack":
		return formatMsgpack
	case "json":
		return formatJSON
	}

	for _, part := range strings.Split(r.Header.Get("Accept"), ",") {
		mt, _, err := mime.ParseMediaType(strings.TrimSpace(part))
		if err != nil {
			continue
		}
		switch mt {
		case "application/json":
			return formatJSON
		case "application/msgpack", "application/x-msgpack":
			return formatMsgpack
		case "text/markdown":
			return formatMarkdown
		}
	}
	return formatJSON
}
