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

package services

import (
	"net/http"

	"github.com/onramp-io/onramp/internal/intake"
	"github.com/onramp-io/onramp/internal/system/middleware"
)

// DocumentIntakeService defines the service for handling document upload requests.
type DocumentIntakeService struct {
	documentIntakeHandler *intake.DocumentIntakeHandler
}

// NewDocumentIntakeService creates a new instance of DocumentIntakeService.
func NewDocumentIntakeService(mux *http.ServeMux) ServiceInterface {
	instance := &DocumentIntakeService{
		documentIntakeHandler: intake.NewDocumentIntakeHandler(),
	}
	instance.RegisterRoutes(mux)

	return instance
}

// RegisterRoutes registers the routes for the DocumentIntakeService.
func (s *DocumentIntakeService) RegisterRoutes(mux *http.ServeMux) {
	opts := middleware.CORSOptions{
		AllowedMethods:   "GET, POST, DELETE",
		AllowedHeaders:   "Content-Type, Authorization",
		AllowCredentials: true,
	}

	mux.HandleFunc(middleware.WithCORS("POST /wizard/{sessionId}/documents/required",
		s.documentIntakeHandler.HandleSubmitRequired, opts))
	mux.HandleFunc(middleware.WithCORS("DELETE /wizard/{sessionId}/documents/required",
		s.documentIntakeHandler.HandleRemoveRequired, opts))
	mux.HandleFunc(middleware.WithCORS("POST /wizard/{sessionId}/documents/optional",
		s.documentIntakeHandler.HandleSubmitOptional, opts))
	mux.HandleFunc(middleware.WithCORS("DELETE /wizard/{sessionId}/documents/optional/{fileId}",
		s.documentIntakeHandler.HandleRemoveOptional, opts))
	mux.HandleFunc(middleware.WithCORS("GET /wizard/{sessionId}/documents",
		s.documentIntakeHandler.HandleGetState, opts))
	mux.HandleFunc(middleware.WithCORS("DELETE /wizard/{sessionId}/notifications",
		s.documentIntakeHandler.HandleDismissNotification, opts))
	mux.HandleFunc(middleware.WithCORS("OPTIONS /wizard/{sessionId}/documents",
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}, opts))
}
