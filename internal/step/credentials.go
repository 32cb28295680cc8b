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
	"strings"

	"github.com/onramp-io/onramp/internal/system/error/serviceerror"
	"github.com/onramp-io/onramp/internal/wizard/constants"
	"github.com/onramp-io/onramp/internal/wizard/model"
)

// loginComponent validates the credential entry step.
type loginComponent struct{}

func (c *loginComponent) StepID() constants.StepID {
	return constants.StepLogin
}

// Validate checks credentials when the user asserts them. Navigation events
// towards signup or password recovery carry no data.
func (c *loginComponent) Validate(ctx *model.StepContext) (json.RawMessage, *serviceerror.ServiceError) {
	if ctx.Event != constants.EventCredentialsVerified {
		return nil, nil
	}
	if svcErr := requireInputs(ctx, "email", "password"); svcErr != nil {
		return nil, svcErr
	}
	if svcErr := validateEmail(ctx.Inputs["email"]); svcErr != nil {
		return nil, svcErr
	}
	// The password never enters the profile.
	return marshalInputs(ctx, "email")
}

// signupComponent validates the account creation step.
type signupComponent struct{}

func (c *signupComponent) StepID() constants.StepID {
	return constants.StepSignup
}

func (c *signupComponent) Validate(ctx *model.StepContext) (json.RawMessage, *serviceerror.ServiceError) {
	if ctx.Event != constants.EventAccountCreated {
		return nil, nil
	}
	if svcErr := requireInputs(ctx, "email", "password", "confirmPassword"); svcErr != nil {
		return nil, svcErr
	}
	if svcErr := validateEmail(ctx.Inputs["email"]); svcErr != nil {
		return nil, svcErr
	}
	if ctx.Inputs["password"] != ctx.Inputs["confirmPassword"] {
		return nil, serviceerror.CustomServiceError(constants.ErrorInvalidStepData,
			"password and confirmPassword do not match")
	}
	return marshalInputs(ctx, "email")
}

// forgotPasswordComponent handles the password recovery step. Its only exit
// returns to login and carries no data.
type forgotPasswordComponent struct{}

func (c *forgotPasswordComponent) StepID() constants.StepID {
	return constants.StepForgotPassword
}

func (c *forgotPasswordComponent) Validate(_ *model.StepContext) (json.RawMessage, *serviceerror.ServiceError) {
	return nil, nil
}

// welcomeBackComponent handles the returning user greeting step.
type welcomeBackComponent struct{}

func (c *welcomeBackComponent) StepID() constants.StepID {
	return constants.StepWelcomeBack
}

func (c *welcomeBackComponent) Validate(_ *model.StepContext) (json.RawMessage, *serviceerror.ServiceError) {
	return nil, nil
}

// validateEmail performs a shape check on the email address.
func validateEmail(email string) *serviceerror.ServiceError {
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return serviceerror.CustomServiceError(constants.ErrorInvalidStepData,
			"email address is not valid")
	}
	return nil
}
