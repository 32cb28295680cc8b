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
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/onramp-io/onramp/internal/intake"
	"github.com/onramp-io/onramp/internal/notification"
	"github.com/onramp-io/onramp/internal/system/error/serviceerror"
	"github.com/onramp-io/onramp/internal/wizard/constants"
	"github.com/onramp-io/onramp/internal/wizard/model"
)

func stepCtx(event constants.EventType, inputs map[string]string) *model.StepContext {
	return &model.StepContext{
		SessionID: "session-1",
		Event:     event,
		Inputs:    inputs,
	}
}

func TestComponentRegistryCoversAllSteps(t *testing.T) {
	for _, stepID := range constants.AllSteps {
		component, ok := ComponentFor(stepID)
		assert.True(t, ok, "no component for step %s", stepID)
		assert.Equal(t, stepID, component.StepID())
	}
}

func TestLoginComponentValidCredentials(t *testing.T) {
	component := &loginComponent{}

	payload, svcErr := component.Validate(stepCtx(constants.EventCredentialsVerified, map[string]string{
		"email":    "ada@example.com",
		"password": "secret",
	}))

	assert.Nil(t, svcErr)
	assert.JSONEq(t, `{"email":"ada@example.com"}`, string(payload))
}

func TestLoginComponentMissingPassword(t *testing.T) {
	component := &loginComponent{}

	_, svcErr := component.Validate(stepCtx(constants.EventCredentialsVerified, map[string]string{
		"email": "ada@example.com",
	}))

	assert.NotNil(t, svcErr)
	assert.Equal(t, constants.ErrorInvalidStepData.Code, svcErr.Code)
	assert.Contains(t, svcErr.ErrorDescription, "password")
}

func TestLoginComponentNavigationCarriesNoData(t *testing.T) {
	component := &loginComponent{}

	payload, svcErr := component.Validate(stepCtx(constants.EventSignUpChosen, nil))

	assert.Nil(t, svcErr)
	assert.Nil(t, payload)
}

func TestSignupComponentPasswordMismatch(t *testing.T) {
	component := &signupComponent{}

	_, svcErr := component.Validate(stepCtx(constants.EventAccountCreated, map[string]string{
		"email":           "ada@example.com",
		"password":        "secret",
		"confirmPassword": "different",
	}))

	assert.NotNil(t, svcErr)
	assert.Contains(t, svcErr.ErrorDescription, "do not match")
}

func TestSignupComponentInvalidEmail(t *testing.T) {
	component := &signupComponent{}

	_, svcErr := component.Validate(stepCtx(constants.EventAccountCreated, map[string]string{
		"email":           "not-an-email",
		"password":        "secret",
		"confirmPassword": "secret",
	}))

	assert.NotNil(t, svcErr)
	assert.Contains(t, svcErr.ErrorDescription, "email")
}

func TestSignupComponentExcludesPasswordFromPayload(t *testing.T) {
	component := &signupComponent{}

	payload, svcErr := component.Validate(stepCtx(constants.EventAccountCreated, map[string]string{
		"email":           "ada@example.com",
		"password":        "secret",
		"confirmPassword": "secret",
	}))

	assert.Nil(t, svcErr)
	assert.NotContains(t, string(payload), "secret")
}

func TestRoleSelectionComponent(t *testing.T) {
	component := &roleSelectionComponent{}

	for _, role := range []string{"founder", "operator", "investor"} {
		payload, svcErr := component.Validate(stepCtx(constants.EventRoleConfirmed,
			map[string]string{"role": role}))
		assert.Nil(t, svcErr)
		assert.Contains(t, string(payload), role)
	}

	_, svcErr := component.Validate(stepCtx(constants.EventRoleConfirmed,
		map[string]string{"role": "astronaut"}))
	assert.NotNil(t, svcErr)
	assert.Contains(t, svcErr.ErrorDescription, "astronaut")
}

func TestBasicInfoComponent(t *testing.T) {
	component := &basicInfoComponent{}

	payload, svcErr := component.Validate(stepCtx(constants.EventNext, map[string]string{
		"firstName": "Ada",
		"lastName":  "Lovelace",
		"email":     "ada@example.com",
	}))

	assert.Nil(t, svcErr)

	var fragment map[string]string
	assert.NoError(t, json.Unmarshal(payload, &fragment))
	assert.Equal(t, "Ada", fragment["firstName"])
	assert.Equal(t, "Lovelace", fragment["lastName"])

	_, svcErr = component.Validate(stepCtx(constants.EventNext, map[string]string{
		"firstName": "Ada",
	}))
	assert.NotNil(t, svcErr)
}

func TestBasicInfoComponentBackSkipsValidation(t *testing.T) {
	component := &basicInfoComponent{}

	payload, svcErr := component.Validate(stepCtx(constants.EventBack, nil))

	assert.Nil(t, svcErr)
	assert.Nil(t, payload)
}

func TestStartupProfileComponent(t *testing.T) {
	component := &startupProfileComponent{}

	payload, svcErr := component.Validate(stepCtx(constants.EventNext, map[string]string{
		"companyName": "Onramp",
		"stage":       "seed",
	}))

	assert.Nil(t, svcErr)
	assert.Contains(t, string(payload), "Onramp")

	_, svcErr = component.Validate(stepCtx(constants.EventNext, map[string]string{
		"companyName": "Onramp",
	}))
	assert.NotNil(t, svcErr)
}

func TestAddTeamComponentMembersOptional(t *testing.T) {
	component := &addTeamComponent{}

	payload, svcErr := component.Validate(stepCtx(constants.EventNext, nil))
	assert.Nil(t, svcErr)
	assert.Nil(t, payload)

	payload, svcErr = component.Validate(stepCtx(constants.EventNext, map[string]string{
		"members": `[{"name":"Grace","role":"CTO"}]`,
	}))
	assert.Nil(t, svcErr)
	assert.Contains(t, string(payload), "Grace")

	_, svcErr = component.Validate(stepCtx(constants.EventNext, map[string]string{
		"members": "not-json",
	}))
	assert.NotNil(t, svcErr)
}

func TestAssessmentComponentRequiresAnswers(t *testing.T) {
	component := &assessmentComponent{}

	_, svcErr := component.Validate(stepCtx(constants.EventComplete, nil))
	assert.NotNil(t, svcErr)
	assert.Contains(t, svcErr.ErrorDescription, "at least one answer")

	payload, svcErr := component.Validate(stepCtx(constants.EventComplete, map[string]string{
		"q1": "always",
	}))
	assert.Nil(t, svcErr)
	assert.Contains(t, string(payload), "always")

	// Skipping discards any partial answers.
	payload, svcErr = component.Validate(stepCtx(constants.EventSkip, map[string]string{
		"q1": "always",
	}))
	assert.Nil(t, svcErr)
	assert.Nil(t, payload)
}

// fakeIntakeService stubs the intake service for document upload step tests.
type fakeIntakeService struct {
	bundle *intake.DocumentBundle
	svcErr *serviceerror.ServiceError
}

func (f *fakeIntakeService) SubmitRequiredFile(string, intake.FileCandidate) intake.SubmitResult {
	return intake.SubmitResult{}
}

func (f *fakeIntakeService) SubmitOptionalFiles(string, []intake.FileCandidate) intake.SubmitResult {
	return intake.SubmitResult{}
}

func (f *fakeIntakeService) ReportSurfaceRejection(string, intake.SlotID, intake.RejectionReason) {}

func (f *fakeIntakeService) RemoveRequiredFile(string) {}

func (f *fakeIntakeService) RemoveOptionalFile(string, string) {}

func (f *fakeIntakeService) Finalize(string) (*intake.DocumentBundle, *serviceerror.ServiceError) {
	return f.bundle, f.svcErr
}

func (f *fakeIntakeService) GetState(string) intake.StateSnapshot {
	return intake.StateSnapshot{}
}

func (f *fakeIntakeService) DiscardSession(string) {}

func (f *fakeIntakeService) Notifier() *notification.Notifier {
	return nil
}

func TestDocumentUploadComponentFinalizes(t *testing.T) {
	component := &documentUploadComponent{
		intakeService: &fakeIntakeService{
			bundle: &intake.DocumentBundle{
				RequiredFile: intake.UploadedFile{ID: "file-1", Name: "deck.pdf"},
			},
		},
	}

	payload, svcErr := component.Validate(stepCtx(constants.EventNext, nil))

	assert.Nil(t, svcErr)
	assert.Contains(t, string(payload), "deck.pdf")
}

func TestDocumentUploadComponentPropagatesFailure(t *testing.T) {
	component := &documentUploadComponent{
		intakeService: &fakeIntakeService{
			svcErr: &intake.ErrorRequiredDocumentMissing,
		},
	}

	_, svcErr := component.Validate(stepCtx(constants.EventNext, nil))

	assert.NotNil(t, svcErr)
	assert.Equal(t, intake.ErrorRequiredDocumentMissing.Code, svcErr.Code)
}

func TestDocumentUploadComponentBackBypassesFinalize(t *testing.T) {
	// A back event must not touch the intake service at all.
	component := &documentUploadComponent{
		intakeService: &fakeIntakeService{
			svcErr: &intake.ErrorRequiredDocumentMissing,
		},
	}

	payload, svcErr := component.Validate(stepCtx(constants.EventBack, nil))

	assert.Nil(t, svcErr)
	assert.Nil(t, payload)
}
