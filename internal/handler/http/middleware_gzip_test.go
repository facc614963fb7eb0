// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gzipBytes(t *testing.T, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write(data)
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func gunzip(t *testing.T, data []byte) string {
	t.Helper()
	zr, err := gzip.NewReader(bytes.NewReader(data))
	require.NoError(t, err)
	out, err := io.ReadAll(zr)
	require.NoError(t, err)
	return string(out)
}

// echo answers with the request body, prefixed.
var echo = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	_, _ = w.Write(append([]byte("got: "), body...))
})

func TestGZip(t *testing.T) {
	tests := []struct {
		name             string
		acceptEncoding   string
		contentEncoding  string
		body             []byte
		wantStatus       int
		wantGzipped      bool
		wantResponseBody string
	}{
		{
			name:             "compress response when client accepts gzip",
			acceptEncoding:   "gzip",
			body:             []byte("soup"),
			wantStatus:       http.StatusOK,
			wantGzipped:      true,
			wantResponseBody: "got: soup",
		},
		{
			name:             "accept-encoding with several values",
			acceptEncoding:   "deflate, gzip;q=1.0, br",
			body:             []byte("soup"),
			wantStatus:       http.StatusOK,
			wantGzipped:      true,
			wantResponseBody: "got: soup",
		},
		{
			name:             "plain response when client does not accept gzip",
			body:             []byte("soup"),
			wantStatus:       http.StatusOK,
			wantResponseBody: "got: soup",
		},
		{
			name:             "gzipped request body is inflated",
			contentEncoding:  "gzip",
			body:             gzipBytes(t, []byte("soup")),
			wantStatus:       http.StatusOK,
			wantResponseBody: "got: soup",
		},
		{
			name:             "both directions",
			acceptEncoding:   "gzip",
			contentEncoding:  "gzip",
			body:             gzipBytes(t, []byte(strings.Repeat("tea ", 500))),
			wantStatus:       http.StatusOK,
			wantGzipped:      true,
			wantResponseBody: "got: " + strings.Repeat("tea ", 500),
		},
		{
			name:            "invalid gzip request body",
			contentEncoding: "gzip",
			body:            []byte("not gzipped"),
			wantStatus:      http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(tt.body))
			if tt.acceptEncoding != "" {
				req.Header.Set("Accept-Encoding", tt.acceptEncoding)
			}
			if tt.contentEncoding != "" {
				req.Header.Set("Content-Encoding", tt.contentEncoding)
			}

			rr := httptest.NewRecorder()
			withGZip(echo).ServeHTTP(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantStatus != http.StatusOK {
				return
			}

			if tt.wantGzipped {
				assert.Equal(t, "gzip", rr.Header().Get("Content-Encoding"))
				assert.Equal(t, tt.wantResponseBody, gunzip(t, rr.Body.Bytes()))
			} else {
				assert.Empty(t, rr.Header().Get("Content-Encoding"))
				assert.Equal(t, tt.wantResponseBody, rr.Body.String())
			}
		})
	}
}

func TestGZip_WriteWithoutWriteHeader(t *testing.T) {
	handler := withGZip(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("implicit ok"))
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "gzip", rr.Header().Get("Content-Encoding"))
	assert.Equal(t, "implicit ok", gunzip(t, rr.Body.Bytes()))
}

func TestGZip_NoContentStaysEmpty(t *testing.T) {
	handler := withGZip(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	req := httptest.NewRequest(http.MethodDelete, "/logout", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Empty(t, rr.Header().Get("Content-Encoding"))
	assert.Zero(t, rr.Body.Len())
}
