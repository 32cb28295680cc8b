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

// FileCandidate represents a raw file-like input received from the upload surface.
// Only metadata is consumed here; reading file content is out of scope.
type FileCandidate struct {
	Name       string
	MediaType  string
	Size       int64
	ContentRef string
}

// UploadedFile represents a file that has passed validation and been accepted into a slot.
type UploadedFile struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	MediaType  string `json:"mediaType"`
	Size       int64  `json:"size"`
	ContentRef string `json:"-"`
}

// RejectedFile describes a candidate that failed validation.
type RejectedFile struct {
	Name   string          `json:"name"`
	Reason RejectionReason `json:"reason"`
	Detail string          `json:"detail"`
}

// SubmitResult reports the outcome of a submit operation on a slot.
// Rejections are reported here and through the slot's error state, never as Go errors.
type SubmitResult struct {
	Accepted []UploadedFile `json:"accepted"`
	Rejected []RejectedFile `json:"rejected"`
}

// FileView is the display representation of an accepted file.
type FileView struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	MediaType   string `json:"mediaType"`
	Size        int64  `json:"size"`
	DisplaySize string `json:"displaySize"`
}

// StateSnapshot is a point-in-time view of both upload slots for a session.
type StateSnapshot struct {
	RequiredFile  *FileView  `json:"requiredFile,omitempty"`
	OptionalFiles []FileView `json:"optionalFiles"`
	RequiredError string     `json:"requiredError,omitempty"`
	OptionalError string     `json:"optionalError,omitempty"`
}

// DocumentBundle is the validated payload produced by a successful finalize.
type DocumentBundle struct {
	RequiredFile  UploadedFile   `json:"requiredFile"`
	OptionalFiles []UploadedFile `json:"optionalFiles"`
}

// intakeState holds the upload state for one wizard session.
type intakeState struct {
	required      *UploadedFile
	optional      []UploadedFile
	requiredError string
	optionalError string
}

// fileView builds the display representation of an uploaded file.
func fileView(f UploadedFile) FileView {
	return FileView{
		ID:          f.ID,
		Name:        f.Name,
		MediaType:   f.MediaType,
		Size:        f.Size,
		DisplaySize: FormatFileSize(f.Size),
	}
}
