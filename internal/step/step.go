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

// Package step provides the step components that validate step input and
// produce the profile fragment carried with a wizard event.
package step

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/onramp-io/onramp/internal/system/error/serviceerror"
	"github.com/onramp-io/onramp/internal/wizard/constants"
	"github.com/onramp-io/onramp/internal/wizard/model"
)

// Component validates the input carried with an event raised from its step
// and returns the profile fragment to record under the step's key. A nil
// fragment means the event carries no data.
type Component interface {
	StepID() constants.StepID
	Validate(ctx *model.StepContext) (json.RawMessage, *serviceerror.ServiceError)
}

var registry = map[constants.StepID]Component{
	constants.StepLogin:           &loginComponent{},
	constants.StepSignup:          &signupComponent{},
	constants.StepForgotPassword:  &forgotPasswordComponent{},
	constants.StepRoleSelection:   &roleSelectionComponent{},
	constants.StepWelcomeBack:     &welcomeBackComponent{},
	constants.StepBasicInfo:       &basicInfoComponent{},
	constants.StepStartupProfile:  &startupProfileComponent{},
	constants.StepDocumentUpload:  &documentUploadComponent{},
	constants.StepAddTeam:         &addTeamComponent{},
	constants.StepAssessmentIntro: &assessmentIntroComponent{},
	constants.StepAssessment:      &assessmentComponent{},
	constants.StepComplete:        &completeComponent{},
}

// ComponentFor returns the component registered for the given step.
func ComponentFor(stepID constants.StepID) (Component, bool) {
	component, ok := registry[stepID]
	return component, ok
}

// requireInputs verifies that every named field is present and non-blank in
// the step context inputs.
func requireInputs(ctx *model.StepContext, names ...string) *serviceerror.ServiceError {
	for _, name := range names {
		if strings.TrimSpace(ctx.Inputs[name]) == "" {
			return serviceerror.CustomServiceError(constants.ErrorInvalidStepData,
				fmt.Sprintf("missing required field: %s", name))
		}
	}
	return nil
}

// marshalInputs serializes the given fields of the step context inputs as the
// profile fragment for the step.
func marshalInputs(ctx *model.StepContext, names ...string) (json.RawMessage, *serviceerror.ServiceError) {
	fragment := make(map[string]string, len(names))
	for _, name := range names {
		if value, ok := ctx.Inputs[name]; ok {
			fragment[name] = value
		}
	}
	data, err := json.Marshal(fragment)
	if err != nil {
		return nil, serviceerror.CustomServiceError(constants.ErrorInvalidStepData, err.Error())
	}
	return data, nil
}
