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

import "fmt"

// validateCandidate checks a candidate file against the accepted media type
// set and the size ceiling. It returns nil when the candidate is acceptable,
// or a RejectedFile describing the failure.
func validateCandidate(candidate FileCandidate) *RejectedFile {
	if _, ok := acceptedMediaTypes[candidate.MediaType]; !ok {
		return &RejectedFile{
			Name:   candidate.Name,
			Reason: ReasonWrongType,
			Detail: fmt.Sprintf("file type %q is not supported (accepted: %s)",
				candidate.MediaType, acceptedTypesSummary),
		}
	}

	if candidate.Size > MaxFileSizeBytes {
		return &RejectedFile{
			Name:   candidate.Name,
			Reason: ReasonTooLarge,
			Detail: fmt.Sprintf("file size %s exceeds the %s limit",
				FormatFileSize(candidate.Size), FormatFileSize(MaxFileSizeBytes)),
		}
	}

	return nil
}
