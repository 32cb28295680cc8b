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
	"github.com/onramp-io/onramp/internal/system/error/apierror"
	"github.com/onramp-io/onramp/internal/system/error/serviceerror"
)

// Client error structs

// APIErrorMissingSessionID is returned when the session ID path segment is empty.
var APIErrorMissingSessionID = apierror.ErrorResponse{
	Code:        "DIS-60001",
	Message:     "Invalid request",
	Description: "A session ID is required",
}

// APIErrorInvalidMultipartForm is returned when the multipart form cannot be parsed.
var APIErrorInvalidMultipartForm = apierror.ErrorResponse{
	Code:        "DIS-60002",
	Message:     "Invalid request payload",
	Description: "Failed to parse the multipart form data",
}

// APIErrorNoFileProvided is returned when a submit request carries no file part.
var APIErrorNoFileProvided = apierror.ErrorResponse{
	Code:        "DIS-60003",
	Message:     "Invalid request",
	Description: "No file was provided in the request",
}

// ErrorRequiredDocumentMissing is the business-rule error returned when finalize
// is requested while the required slot is empty.
var ErrorRequiredDocumentMissing = serviceerror.ServiceError{
	Code:             "DIS-60004",
	Type:             serviceerror.ClientErrorType,
	Error:            "Required document missing",
	ErrorDescription: "A pitch document is required before the upload step can be completed",
}
