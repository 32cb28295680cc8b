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

package intake

import (
	"encoding/json"
	"mime/multipart"
	"net/http"

	"github.com/onramp-io/onramp/internal/notification"
	"github.com/onramp-io/onramp/internal/system/error/apierror"
	"github.com/onramp-io/onramp/internal/system/log"
)

// maxMultipartMemory is the in-memory buffer limit for parsing multipart forms.
const maxMultipartMemory = 32 << 20

// DocumentIntakeHandler handles document intake API requests.
type DocumentIntakeHandler struct{}

// NewDocumentIntakeHandler creates a new instance of DocumentIntakeHandler.
func NewDocumentIntakeHandler() *DocumentIntakeHandler {
	return &DocumentIntakeHandler{}
}

// documentStateResponse is the response body for document intake operations.
type documentStateResponse struct {
	StateSnapshot
	Notification *notification.Notification `json:"notification,omitempty"`
}

// HandleSubmitRequired handles a file submission to the required single-file slot.
// Multiple files in one request are treated as a batch rejection reported by the
// upload surface, not as individual validation failures.
func (h *DocumentIntakeHandler) HandleSubmitRequired(w http.ResponseWriter, r *http.Request) {
	sessionID := r.PathValue("sessionId")
	if sessionID == "" {
		writeAPIError(w, http.StatusBadRequest, APIErrorMissingSessionID)
		return
	}

	files, ok := h.formFiles(w, r, "file")
	if !ok {
		return
	}

	svc := GetIntakeService()
	if len(files) > 1 {
		svc.ReportSurfaceRejection(sessionID, SlotRequired, ReasonBatchRejected)
		h.writeState(w, sessionID)
		return
	}

	svc.SubmitRequiredFile(sessionID, candidateFromHeader(files[0]))
	h.writeState(w, sessionID)
}

// HandleSubmitOptional handles file submissions to the optional multi-file slot.
func (h *DocumentIntakeHandler) HandleSubmitOptional(w http.ResponseWriter, r *http.Request) {
	sessionID := r.PathValue("sessionId")
	if sessionID == "" {
		writeAPIError(w, http.StatusBadRequest, APIErrorMissingSessionID)
		return
	}

	files, ok := h.formFiles(w, r, "files")
	if !ok {
		return
	}

	candidates := make([]FileCandidate, 0, len(files))
	for _, header := range files {
		candidates = append(candidates, candidateFromHeader(header))
	}

	GetIntakeService().SubmitOptionalFiles(sessionID, candidates)
	h.writeState(w, sessionID)
}

// HandleRemoveRequired handles removal of the required slot's entry.
func (h *DocumentIntakeHandler) HandleRemoveRequired(w http.ResponseWriter, r *http.Request) {
	sessionID := r.PathValue("sessionId")
	if sessionID == "" {
		writeAPIError(w, http.StatusBadRequest, APIErrorMissingSessionID)
		return
	}

	GetIntakeService().RemoveRequiredFile(sessionID)
	h.writeState(w, sessionID)
}

// HandleRemoveOptional handles removal of an optional entry by identifier.
func (h *DocumentIntakeHandler) HandleRemoveOptional(w http.ResponseWriter, r *http.Request) {
	sessionID := r.PathValue("sessionId")
	if sessionID == "" {
		writeAPIError(w, http.StatusBadRequest, APIErrorMissingSessionID)
		return
	}

	GetIntakeService().RemoveOptionalFile(sessionID, r.PathValue("fileId"))
	h.writeState(w, sessionID)
}

// HandleGetState returns the current slot state for the session.
func (h *DocumentIntakeHandler) HandleGetState(w http.ResponseWriter, r *http.Request) {
	sessionID := r.PathValue("sessionId")
	if sessionID == "" {
		writeAPIError(w, http.StatusBadRequest, APIErrorMissingSessionID)
		return
	}

	h.writeState(w, sessionID)
}

// HandleDismissNotification dismisses the visible notification, cancelling its
// pending auto-clear.
func (h *DocumentIntakeHandler) HandleDismissNotification(w http.ResponseWriter, r *http.Request) {
	GetIntakeService().Notifier().Dismiss()
	w.WriteHeader(http.StatusNoContent)
}

// formFiles parses the multipart form and returns the file headers for the
// given field, writing an API error response when the request is malformed.
func (h *DocumentIntakeHandler) formFiles(w http.ResponseWriter, r *http.Request,
	field string) ([]*multipart.FileHeader, bool) {
	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		writeAPIError(w, http.StatusBadRequest, APIErrorInvalidMultipartForm)
		return nil, false
	}

	files := r.MultipartForm.File[field]
	if len(files) == 0 {
		writeAPIError(w, http.StatusBadRequest, APIErrorNoFileProvided)
		return nil, false
	}

	return files, true
}

// writeState writes the current slot state and visible notification as JSON.
func (h *DocumentIntakeHandler) writeState(w http.ResponseWriter, sessionID string) {
	svc := GetIntakeService()
	resp := documentStateResponse{
		StateSnapshot: svc.GetState(sessionID),
		Notification:  svc.Notifier().Current(),
	}
	writeJSON(w, http.StatusOK, resp)
}

// candidateFromHeader builds a file candidate from the multipart file header.
// Only metadata is consumed; the file content itself is not read here.
func candidateFromHeader(header *multipart.FileHeader) FileCandidate {
	return FileCandidate{
		Name:      header.Filename,
		MediaType: header.Header.Get("Content-Type"),
		Size:      header.Size,
	}
}

// writeJSON writes the given value as a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, value any) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "DocumentIntakeHandler"))

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(value); err != nil {
		logger.Error("Error encoding response", log.Error(err))
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

// writeAPIError writes an API error response with the given status code.
func writeAPIError(w http.ResponseWriter, status int, errResp apierror.ErrorResponse) {
	writeJSON(w, status, errResp)
}
