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
	"fmt"

	"github.com/onramp-io/onramp/internal/system/error/serviceerror"
	"github.com/onramp-io/onramp/internal/wizard/constants"
	"github.com/onramp-io/onramp/internal/wizard/model"
)

var allowedRoles = map[string]bool{
	"founder":  true,
	"operator": true,
	"investor": true,
}

// roleSelectionComponent validates the role selection step.
type roleSelectionComponent struct{}

func (c *roleSelectionComponent) StepID() constants.StepID {
	return constants.StepRoleSelection
}

func (c *roleSelectionComponent) Validate(ctx *model.StepContext) (json.RawMessage, *serviceerror.ServiceError) {
	if ctx.Event != constants.EventRoleConfirmed {
		return nil, nil
	}
	if svcErr := requireInputs(ctx, "role"); svcErr != nil {
		return nil, svcErr
	}
	role := ctx.Inputs["role"]
	if !allowedRoles[role] {
		return nil, serviceerror.CustomServiceError(constants.ErrorInvalidStepData,
			fmt.Sprintf("role %q is not recognized", role))
	}
	return marshalInputs(ctx, "role")
}
