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

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/onramp-io/onramp/internal/system/config"
)

func initRuntime(t *testing.T, origins []string) {
	t.Helper()
	config.ResetOnrampRuntime()
	assert.NoError(t, config.InitializeOnrampRuntime("/tmp", &config.Config{
		CORS: config.CORSConfig{AllowedOrigins: origins},
	}))
	t.Cleanup(config.ResetOnrampRuntime)
}

func invokeWrapped(t *testing.T, origin string) *httptest.ResponseRecorder {
	t.Helper()

	pattern, handler := WithCORS("GET /resource", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}, CORSOptions{
		AllowedMethods:   "GET",
		AllowedHeaders:   "Content-Type",
		AllowCredentials: true,
	})
	assert.Equal(t, "GET /resource", pattern)

	r := httptest.NewRequest(http.MethodGet, "/resource", nil)
	if origin != "" {
		r.Header.Set("Origin", origin)
	}
	w := httptest.NewRecorder()
	handler(w, r)
	return w
}

func TestWithCORSAllowedOrigin(t *testing.T) {
	initRuntime(t, []string{"http://localhost:3000"})

	w := invokeWrapped(t, "http://localhost:3000")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "GET", w.Header().Get("Access-Control-Allow-Methods"))
	assert.Equal(t, "Content-Type", w.Header().Get("Access-Control-Allow-Headers"))
	assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
}

func TestWithCORSDisallowedOrigin(t *testing.T) {
	initRuntime(t, []string{"http://localhost:3000"})

	w := invokeWrapped(t, "https://evil.example.org")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestWithCORSNoOriginHeader(t *testing.T) {
	initRuntime(t, []string{"http://localhost:3000"})

	w := invokeWrapped(t, "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}
