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

// Package handler provides HTTP handlers for managing wizard related API requests.
package handler

import (
	"encoding/json"
	"net/http"

	"github.com/onramp-io/onramp/internal/system/error/apierror"
	"github.com/onramp-io/onramp/internal/system/error/serviceerror"
	"github.com/onramp-io/onramp/internal/system/log"
	"github.com/onramp-io/onramp/internal/wizard"
	"github.com/onramp-io/onramp/internal/wizard/constants"
	"github.com/onramp-io/onramp/internal/wizard/model"
)

// WizardExecutionHandler handles wizard execution requests.
type WizardExecutionHandler struct {
	wizardService wizard.WizardServiceInterface
}

// NewWizardExecutionHandler creates a new instance of WizardExecutionHandler.
func NewWizardExecutionHandler() *WizardExecutionHandler {
	return &WizardExecutionHandler{
		wizardService: wizard.GetWizardService(),
	}
}

// HandleWizardExecutionRequest handles the wizard execution request.
func (h *WizardExecutionHandler) HandleWizardExecutionRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "WizardExecutionHandler"))

	var wizardR model.WizardRequest
	if err := json.NewDecoder(r.Body).Decode(&wizardR); err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)

		if err := json.NewEncoder(w).Encode(constants.APIErrorWizardRequestJSONDecodeError); err != nil {
			logger.Error("Error encoding error response", log.Error(err))
			http.Error(w, "Failed to encode error response", http.StatusInternalServerError)
		}
		return
	}

	wizardResp, svcErr := h.wizardService.Execute(wizardR.SessionID, wizardR.Event, wizardR.Inputs)
	if svcErr != nil {
		errResp := apierror.ErrorResponse{
			Code:        svcErr.Code,
			Message:     svcErr.Error,
			Description: svcErr.ErrorDescription,
		}

		w.Header().Set("Content-Type", "application/json")
		if svcErr.Type == serviceerror.ClientErrorType {
			if svcErr.Code == constants.ErrorSessionNotFound.Code {
				w.WriteHeader(http.StatusNotFound)
			} else {
				w.WriteHeader(http.StatusBadRequest)
			}
		} else {
			w.WriteHeader(http.StatusInternalServerError)
		}

		if err := json.NewEncoder(w).Encode(errResp); err != nil {
			logger.Error("Error encoding error response", log.Error(err))
			http.Error(w, "Failed to encode error response", http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	if err := json.NewEncoder(w).Encode(wizardResp); err != nil {
		logger.Error("Error encoding response", log.Error(err))
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}

	logger.Debug("Wizard execution request handled successfully",
		log.String(log.LoggerKeySessionID, wizardResp.SessionID),
		log.String(log.LoggerKeyStepID, wizardResp.CurrentStep))
}
