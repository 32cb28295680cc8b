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

// basicInfoComponent collects the user's personal details. Moving backwards
// carries no data so earlier entries stay untouched.
type basicInfoComponent struct{}

func (c *basicInfoComponent) StepID() constants.StepID {
	return constants.StepBasicInfo
}

func (c *basicInfoComponent) Validate(ctx *model.StepContext) (json.RawMessage, *serviceerror.ServiceError) {
	if ctx.Event != constants.EventNext {
		return nil, nil
	}
	if svcErr := requireInputs(ctx, "firstName", "lastName", "email"); svcErr != nil {
		return nil, svcErr
	}
	if svcErr := validateEmail(ctx.Inputs["email"]); svcErr != nil {
		return nil, svcErr
	}
	return marshalInputs(ctx, "firstName", "lastName", "email", "phone")
}

// startupProfileComponent collects the company profile.
type startupProfileComponent struct{}

func (c *startupProfileComponent) StepID() constants.StepID {
	return constants.StepStartupProfile
}

func (c *startupProfileComponent) Validate(ctx *model.StepContext) (json.RawMessage, *serviceerror.ServiceError) {
	if ctx.Event != constants.EventNext {
		return nil, nil
	}
	if svcErr := requireInputs(ctx, "companyName", "stage"); svcErr != nil {
		return nil, svcErr
	}
	return marshalInputs(ctx, "companyName", "stage", "industry", "website")
}

// addTeamComponent collects team member entries. The step is skippable, so
// advancing with no members is a valid outcome.
type addTeamComponent struct{}

func (c *addTeamComponent) StepID() constants.StepID {
	return constants.StepAddTeam
}

func (c *addTeamComponent) Validate(ctx *model.StepContext) (json.RawMessage, *serviceerror.ServiceError) {
	if ctx.Event != constants.EventNext {
		return nil, nil
	}
	if members, ok := ctx.Inputs["members"]; ok && members != "" {
		if !json.Valid([]byte(members)) {
			return nil, serviceerror.CustomServiceError(constants.ErrorInvalidStepData,
				"members is not a valid JSON document")
		}
		fragment := map[string]json.RawMessage{"members": json.RawMessage(members)}
		data, err := json.Marshal(fragment)
		if err != nil {
			return nil, serviceerror.CustomServiceError(constants.ErrorInvalidStepData, err.Error())
		}
		return data, nil
	}
	return nil, nil
}
