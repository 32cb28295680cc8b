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

package engine

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/onramp-io/onramp/internal/system/config"
	"github.com/onramp-io/onramp/internal/wizard/constants"
	"github.com/onramp-io/onramp/internal/wizard/model"
)

type WizardEngineTestSuite struct {
	suite.Suite
	engine *WizardEngine
}

func TestWizardEngineSuite(t *testing.T) {
	suite.Run(t, new(WizardEngineTestSuite))
}

func (suite *WizardEngineTestSuite) SetupTest() {
	config.ResetOnrampRuntime()
	err := config.InitializeOnrampRuntime("/tmp", &config.Config{
		Wizard: config.WizardConfig{
			ReturningUserTarget: config.DefaultReturningUserTarget,
		},
	})
	assert.NoError(suite.T(), err)

	suite.engine = &WizardEngine{}
}

func (suite *WizardEngineTestSuite) TearDownTest() {
	config.ResetOnrampRuntime()
}

func (suite *WizardEngineTestSuite) applyEvent(ctx *model.SessionContext,
	event constants.EventType) constants.WizardStatus {
	status, svcErr := suite.engine.Apply(ctx, model.StepOutcome{Event: event})
	assert.Nil(suite.T(), svcErr)
	return status
}

func (suite *WizardEngineTestSuite) TestNewUserHappyPath() {
	t := suite.T()
	ctx := model.NewSessionContext("session-1")

	steps := []struct {
		event    constants.EventType
		expected constants.StepID
	}{
		{constants.EventSignUpChosen, constants.StepSignup},
		{constants.EventAccountCreated, constants.StepRoleSelection},
		{constants.EventRoleConfirmed, constants.StepBasicInfo},
		{constants.EventNext, constants.StepStartupProfile},
		{constants.EventNext, constants.StepDocumentUpload},
		{constants.EventNext, constants.StepAddTeam},
		{constants.EventNext, constants.StepAssessmentIntro},
		{constants.EventStartAssessment, constants.StepAssessment},
		{constants.EventComplete, constants.StepComplete},
	}

	for _, step := range steps {
		status := suite.applyEvent(ctx, step.event)
		assert.Equal(t, step.expected, ctx.CurrentStep)
		assert.Equal(t, constants.WizardStatusIncomplete, status)
	}

	status := suite.applyEvent(ctx, constants.EventGoToDashboard)
	assert.Equal(t, constants.WizardStatusComplete, status)
}

func (suite *WizardEngineTestSuite) TestSkipFromAssessmentIntro() {
	t := suite.T()
	ctx := model.NewSessionContext("session-1")
	ctx.CurrentStep = constants.StepAssessmentIntro

	suite.applyEvent(ctx, constants.EventSkip)
	assert.Equal(t, constants.StepComplete, ctx.CurrentStep)
}

func (suite *WizardEngineTestSuite) TestSkipFromAssessment() {
	t := suite.T()
	ctx := model.NewSessionContext("session-1")
	ctx.CurrentStep = constants.StepAssessment

	suite.applyEvent(ctx, constants.EventSkip)
	assert.Equal(t, constants.StepComplete, ctx.CurrentStep)
}

func (suite *WizardEngineTestSuite) TestForgotPasswordRoundTrip() {
	t := suite.T()
	ctx := model.NewSessionContext("session-1")

	suite.applyEvent(ctx, constants.EventForgotPasswordChosen)
	assert.Equal(t, constants.StepForgotPassword, ctx.CurrentStep)

	suite.applyEvent(ctx, constants.EventBackToLogin)
	assert.Equal(t, constants.StepLogin, ctx.CurrentStep)
}

func (suite *WizardEngineTestSuite) TestReturningUserDefaultsToBasicInfo() {
	t := suite.T()
	ctx := model.NewSessionContext("session-1")

	suite.applyEvent(ctx, constants.EventCredentialsVerified)
	assert.Equal(t, constants.StepWelcomeBack, ctx.CurrentStep)

	status := suite.applyEvent(ctx, constants.EventProceed)
	assert.Equal(t, constants.StepBasicInfo, ctx.CurrentStep)
	assert.Equal(t, constants.WizardStatusIncomplete, status)
}

func (suite *WizardEngineTestSuite) TestReturningUserDashboardTargetCompletes() {
	t := suite.T()

	config.ResetOnrampRuntime()
	err := config.InitializeOnrampRuntime("/tmp", &config.Config{
		Wizard: config.WizardConfig{
			ReturningUserTarget: constants.ReturningUserTargetDashboard,
		},
	})
	assert.NoError(t, err)

	ctx := model.NewSessionContext("session-1")
	ctx.CurrentStep = constants.StepWelcomeBack

	status := suite.applyEvent(ctx, constants.EventProceed)
	assert.Equal(t, constants.StepComplete, ctx.CurrentStep)
	assert.Equal(t, constants.WizardStatusComplete, status)
}

func (suite *WizardEngineTestSuite) TestUnsupportedEventIsRejected() {
	t := suite.T()
	ctx := model.NewSessionContext("session-1")

	status, svcErr := suite.engine.Apply(ctx, model.StepOutcome{Event: constants.EventNext})

	assert.NotNil(t, svcErr)
	assert.Equal(t, constants.ErrorUnsupportedEvent.Code, svcErr.Code)
	assert.Equal(t, constants.WizardStatusIncomplete, status)
	// A rejected event leaves the session where it was.
	assert.Equal(t, constants.StepLogin, ctx.CurrentStep)
}

func (suite *WizardEngineTestSuite) TestUnknownStepFallsBackToLogin() {
	t := suite.T()
	ctx := model.NewSessionContext("session-1")
	ctx.CurrentStep = constants.StepID("no-such-step")

	suite.applyEvent(ctx, constants.EventSignUpChosen)
	assert.Equal(t, constants.StepSignup, ctx.CurrentStep)
}

func (suite *WizardEngineTestSuite) TestPayloadIsRecordedUnderOriginatingStep() {
	t := suite.T()
	ctx := model.NewSessionContext("session-1")
	ctx.CurrentStep = constants.StepBasicInfo

	payload := json.RawMessage(`{"firstName":"Ada"}`)
	_, svcErr := suite.engine.Apply(ctx, model.StepOutcome{
		Event:   constants.EventNext,
		Payload: payload,
	})

	assert.Nil(t, svcErr)
	assert.Equal(t, constants.StepStartupProfile, ctx.CurrentStep)
	assert.JSONEq(t, string(payload), string(ctx.Profile[constants.StepBasicInfo]))
}

func (suite *WizardEngineTestSuite) TestResubmissionOverwritesPriorFragment() {
	t := suite.T()
	ctx := model.NewSessionContext("session-1")
	ctx.CurrentStep = constants.StepBasicInfo

	first := json.RawMessage(`{"firstName":"Ada"}`)
	_, svcErr := suite.engine.Apply(ctx, model.StepOutcome{Event: constants.EventNext, Payload: first})
	assert.Nil(t, svcErr)

	// Going back carries no data and leaves the recorded fragment intact.
	suite.applyEvent(ctx, constants.EventBack)
	assert.Equal(t, constants.StepBasicInfo, ctx.CurrentStep)
	assert.JSONEq(t, string(first), string(ctx.Profile[constants.StepBasicInfo]))

	second := json.RawMessage(`{"firstName":"Grace"}`)
	_, svcErr = suite.engine.Apply(ctx, model.StepOutcome{Event: constants.EventNext, Payload: second})
	assert.Nil(t, svcErr)

	// The re-submission replaces the fragment wholesale.
	assert.JSONEq(t, string(second), string(ctx.Profile[constants.StepBasicInfo]))
	assert.Len(t, ctx.Profile, 1)
}

func (suite *WizardEngineTestSuite) TestBackNavigationChain() {
	t := suite.T()
	ctx := model.NewSessionContext("session-1")
	ctx.CurrentStep = constants.StepAddTeam

	backChain := []constants.StepID{
		constants.StepDocumentUpload,
		constants.StepStartupProfile,
		constants.StepBasicInfo,
		constants.StepRoleSelection,
	}
	for _, expected := range backChain {
		suite.applyEvent(ctx, constants.EventBack)
		assert.Equal(t, expected, ctx.CurrentStep)
	}

	// Role selection has no back transition.
	_, svcErr := suite.engine.Apply(ctx, model.StepOutcome{Event: constants.EventBack})
	assert.NotNil(t, svcErr)
}

func (suite *WizardEngineTestSuite) TestNormalize() {
	t := suite.T()

	assert.Equal(t, constants.StepAssessment, Normalize(constants.StepAssessment))
	assert.Equal(t, constants.StepLogin, Normalize(constants.StepID("bogus")))
	assert.Equal(t, constants.StepLogin, Normalize(constants.StepID("")))
}
