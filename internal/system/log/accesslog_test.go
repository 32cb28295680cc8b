/*
 * Copyright (c) 2025, WSO2 LLC. (https://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

package log

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

// bufferedLogger builds a Logger writing to the returned buffer, bypassing
// the package singleton.
func bufferedLogger() (*Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	handler := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	return &Logger{internal: slog.New(handler)}, &buf
}

func TestAccessLogHandlerEmitsCLFLine(t *testing.T) {
	logger, buf := bufferedLogger()

	wrapped := AccessLogHandler(logger, http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte("no such session"))
		}))

	req := httptest.NewRequest(http.MethodPost, "/wizard/execute", nil)
	req.RemoteAddr = "10.0.0.7:52114"
	rr := httptest.NewRecorder()

	wrapped.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)

	line := buf.String()
	assert.Contains(t, line, "10.0.0.7")
	assert.Contains(t, line, "POST /wizard/execute")
	assert.Contains(t, line, "404")
}

func TestAccessLogHandlerDefaultsToOK(t *testing.T) {
	logger, buf := bufferedLogger()

	// A handler that writes the body without an explicit WriteHeader.
	wrapped := AccessLogHandler(logger, http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("ok"))
		}))

	req := httptest.NewRequest(http.MethodGet, "/health/liveness", nil)
	rr := httptest.NewRecorder()

	wrapped.ServeHTTP(rr, req)

	assert.Contains(t, buf.String(), `" 200 2`)
}

func TestResponseRecorderTracksStatusAndBytes(t *testing.T) {
	rr := httptest.NewRecorder()
	rec := &responseRecorder{ResponseWriter: rr, status: http.StatusOK}

	rec.WriteHeader(http.StatusBadRequest)

	n, err := rec.Write([]byte("missing"))
	assert.NoError(t, err)
	assert.Equal(t, 7, n)

	_, err = rec.Write([]byte(" field"))
	assert.NoError(t, err)

	assert.Equal(t, http.StatusBadRequest, rec.status)
	assert.Equal(t, 13, rec.bytes)
	assert.Equal(t, "missing field", rr.Body.String())
}
