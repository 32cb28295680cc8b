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

// MaxFileSizeBytes is the size ceiling for a single uploaded file.
const MaxFileSizeBytes int64 = 10 * 1024 * 1024

// acceptedMediaTypes maps the accepted declared media types to their canonical extensions.
var acceptedMediaTypes = map[string]string{
	"application/pdf": ".pdf",
	"image/jpeg":      ".jpg",
	"image/png":       ".png",
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": ".docx",
}

// acceptedTypesSummary is the human readable list of accepted formats used in rejection messages.
const acceptedTypesSummary = "PDF, JPEG, PNG, DOCX"

// SlotID identifies an upload slot.
type SlotID string

const (
	// SlotRequired is the required single-file slot.
	SlotRequired SlotID = "REQUIRED"
	// SlotOptional is the optional multi-file slot.
	SlotOptional SlotID = "OPTIONAL"
)

// RejectionReason classifies why a candidate file was not accepted.
type RejectionReason string

const (
	// ReasonWrongType indicates the declared media type is not in the accepted set.
	ReasonWrongType RejectionReason = "WRONG_TYPE"
	// ReasonTooLarge indicates the file exceeds the size ceiling.
	ReasonTooLarge RejectionReason = "TOO_LARGE"
	// ReasonBatchRejected indicates the upload surface itself rejected the candidates,
	// e.g. multiple files dropped on the single-file slot.
	ReasonBatchRejected RejectionReason = "BATCH_REJECTED"
)

const loggerComponentName = "DocumentIntakeService"
