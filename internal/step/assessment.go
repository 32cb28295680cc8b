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

package step

import (
	"encoding/json"

	"github.com/onramp-io/onramp/internal/system/error/serviceerror"
	"github.com/onramp-io/onramp/internal/wizard/constants"
	"github.com/onramp-io/onramp/internal/wizard/model"
)

// assessmentIntroComponent presents the optional assessment. Both exits,
// starting and skipping, carry no data.
type assessmentIntroComponent struct{}

func (c *assessmentIntroComponent) StepID() constants.StepID {
	return constants.StepAssessmentIntro
}

func (c *assessmentIntroComponent) Validate(_ *model.StepContext) (json.RawMessage, *serviceerror.ServiceError) {
	return nil, nil
}

// assessmentComponent validates assessment submissions. Completing requires
// at least one answer; skipping discards any partial answers.
type assessmentComponent struct{}

func (c *assessmentComponent) StepID() constants.StepID {
	return constants.StepAssessment
}

func (c *assessmentComponent) Validate(ctx *model.StepContext) (json.RawMessage, *serviceerror.ServiceError) {
	if ctx.Event != constants.EventComplete {
		return nil, nil
	}
	if len(ctx.Inputs) == 0 {
		return nil, serviceerror.CustomServiceError(constants.ErrorInvalidStepData,
			"at least one answer is required to complete the assessment")
	}
	data, err := json.Marshal(ctx.Inputs)
	if err != nil {
		return nil, serviceerror.CustomServiceError(constants.ErrorInvalidStepData, err.Error())
	}
	return data, nil
}

// completeComponent is the terminal step. Its only exit leads to the
// dashboard and ends the session.
type completeComponent struct{}

func (c *completeComponent) StepID() constants.StepID {
	return constants.StepComplete
}

func (c *completeComponent) Validate(_ *model.StepContext) (json.RawMessage, *serviceerror.ServiceError) {
	return nil, nil
}
