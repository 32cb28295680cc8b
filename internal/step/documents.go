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

	"github.com/onramp-io/onramp/internal/intake"
	"github.com/onramp-io/onramp/internal/system/error/serviceerror"
	"github.com/onramp-io/onramp/internal/wizard/constants"
	"github.com/onramp-io/onramp/internal/wizard/model"
)

// documentUploadComponent gates the document upload step on the intake
// subsystem. Advancing finalizes the session's slots, which enforces the
// required document presence rule. Moving backwards bypasses finalization
// and keeps the uploaded files in place.
type documentUploadComponent struct {
	intakeService intake.IntakeServiceInterface
}

func (c *documentUploadComponent) StepID() constants.StepID {
	return constants.StepDocumentUpload
}

func (c *documentUploadComponent) Validate(ctx *model.StepContext) (json.RawMessage, *serviceerror.ServiceError) {
	if ctx.Event != constants.EventNext {
		return nil, nil
	}

	bundle, svcErr := c.service().Finalize(ctx.SessionID)
	if svcErr != nil {
		return nil, svcErr
	}

	data, err := json.Marshal(bundle)
	if err != nil {
		return nil, serviceerror.CustomServiceError(constants.ErrorInvalidStepData, err.Error())
	}
	return data, nil
}

func (c *documentUploadComponent) service() intake.IntakeServiceInterface {
	if c.intakeService != nil {
		return c.intakeService
	}
	return intake.GetIntakeService()
}
