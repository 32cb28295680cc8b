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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateCandidateAcceptedTypes(t *testing.T) {
	acceptedCases := []FileCandidate{
		{Name: "deck.pdf", MediaType: "application/pdf", Size: 1024},
		{Name: "photo.jpg", MediaType: "image/jpeg", Size: 2048},
		{Name: "chart.png", MediaType: "image/png", Size: 4096},
		{Name: "plan.docx",
			MediaType: "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
			Size:      8192},
	}

	for _, candidate := range acceptedCases {
		t.Run(candidate.Name, func(t *testing.T) {
			assert.Nil(t, validateCandidate(candidate))
		})
	}
}

func TestValidateCandidateWrongType(t *testing.T) {
	rejected := validateCandidate(FileCandidate{
		Name:      "deck.bmp",
		MediaType: "image/bmp",
		Size:      1024,
	})

	assert.NotNil(t, rejected)
	assert.Equal(t, "deck.bmp", rejected.Name)
	assert.Equal(t, ReasonWrongType, rejected.Reason)
	assert.Contains(t, rejected.Detail, `file type "image/bmp" is not supported`)
	assert.Contains(t, rejected.Detail, "PDF, JPEG, PNG, DOCX")
}

func TestValidateCandidateTooLarge(t *testing.T) {
	rejected := validateCandidate(FileCandidate{
		Name:      "huge.pdf",
		MediaType: "application/pdf",
		Size:      MaxFileSizeBytes + 1,
	})

	assert.NotNil(t, rejected)
	assert.Equal(t, ReasonTooLarge, rejected.Reason)
	assert.Contains(t, rejected.Detail, "exceeds the 10 MB limit")
}

func TestValidateCandidateAtSizeCeiling(t *testing.T) {
	// The ceiling itself is inclusive.
	candidate := FileCandidate{
		Name:      "exact.pdf",
		MediaType: "application/pdf",
		Size:      MaxFileSizeBytes,
	}

	assert.Nil(t, validateCandidate(candidate))
}

func TestValidateCandidateChecksTypeBeforeSize(t *testing.T) {
	// A file failing both checks reports the type failure.
	rejected := validateCandidate(FileCandidate{
		Name:      "huge.bmp",
		MediaType: "image/bmp",
		Size:      MaxFileSizeBytes + 1,
	})

	assert.NotNil(t, rejected)
	assert.Equal(t, ReasonWrongType, rejected.Reason)
}
