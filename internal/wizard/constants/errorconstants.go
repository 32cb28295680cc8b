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

package constants

import (
	"github.com/onramp-io/onramp/internal/system/error/apierror"
	"github.com/onramp-io/onramp/internal/system/error/serviceerror"
)

// Client error structs

// APIErrorWizardRequestJSONDecodeError is returned when the request payload cannot be decoded.
var APIErrorWizardRequestJSONDecodeError = apierror.ErrorResponse{
	Code:        "WOS-60001",
	Message:     "Invalid request payload",
	Description: "Failed to decode request payload",
}

// ErrorSessionNotFound is returned when the referenced wizard session does not exist.
var ErrorSessionNotFound = serviceerror.ServiceError{
	Code:             "WOS-60002",
	Type:             serviceerror.ClientErrorType,
	Error:            "Invalid request",
	ErrorDescription: "Wizard session not found for the provided session ID",
}

// ErrorUnsupportedEvent is returned when the raised event has no transition
// from the session's current step.
var ErrorUnsupportedEvent = serviceerror.ServiceError{
	Code:             "WOS-60003",
	Type:             serviceerror.ClientErrorType,
	Error:            "Unsupported event",
	ErrorDescription: "The event cannot be raised from the current step",
}

// ErrorInvalidStepData is returned when the active step's component rejects the
// data carried by the event.
var ErrorInvalidStepData = serviceerror.ServiceError{
	Code:             "WOS-60004",
	Type:             serviceerror.ClientErrorType,
	Error:            "Invalid step data",
	ErrorDescription: "The data carried by the event failed the step's validation",
}

// Server error structs

// ErrorStoringSessionContext is returned when the session context cannot be persisted.
var ErrorStoringSessionContext = serviceerror.ServiceError{
	Code:             "WOS-65001",
	Type:             serviceerror.ServerErrorType,
	Error:            "Something went wrong",
	ErrorDescription: "Failed to persist the wizard session context",
}

// ErrorRetrievingSessionContext is returned when the session context cannot be loaded.
var ErrorRetrievingSessionContext = serviceerror.ServiceError{
	Code:             "WOS-65002",
	Type:             serviceerror.ServerErrorType,
	Error:            "Something went wrong",
	ErrorDescription: "Failed to load the wizard session context",
}
