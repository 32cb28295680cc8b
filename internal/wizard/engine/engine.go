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

// Package engine provides the wizard engine for orchestrating step transitions.
package engine

import (
	"encoding/json"
	"sync"

	"github.com/onramp-io/onramp/internal/system/config"
	"github.com/onramp-io/onramp/internal/system/error/serviceerror"
	"github.com/onramp-io/onramp/internal/system/log"
	"github.com/onramp-io/onramp/internal/wizard/constants"
	"github.com/onramp-io/onramp/internal/wizard/model"
)

var (
	instance *WizardEngine
	once     sync.Once
)

// transitionKey identifies one row of the transition table.
type transitionKey struct {
	step  constants.StepID
	event constants.EventType
}

// transitions is the deterministic transition table of the onboarding wizard.
// The welcome-back PROCEED target and the terminal dashboard exit are handled
// separately in Apply.
var transitions = map[transitionKey]constants.StepID{
	{constants.StepLogin, constants.EventSignUpChosen}:              constants.StepSignup,
	{constants.StepLogin, constants.EventForgotPasswordChosen}:      constants.StepForgotPassword,
	{constants.StepLogin, constants.EventCredentialsVerified}:       constants.StepWelcomeBack,
	{constants.StepSignup, constants.EventForgotPasswordChosen}:     constants.StepForgotPassword,
	{constants.StepSignup, constants.EventAccountCreated}:           constants.StepRoleSelection,
	{constants.StepForgotPassword, constants.EventBackToLogin}:      constants.StepLogin,
	{constants.StepRoleSelection, constants.EventRoleConfirmed}:     constants.StepBasicInfo,
	{constants.StepBasicInfo, constants.EventNext}:                  constants.StepStartupProfile,
	{constants.StepBasicInfo, constants.EventBack}:                  constants.StepRoleSelection,
	{constants.StepStartupProfile, constants.EventNext}:             constants.StepDocumentUpload,
	{constants.StepStartupProfile, constants.EventBack}:             constants.StepBasicInfo,
	{constants.StepDocumentUpload, constants.EventNext}:             constants.StepAddTeam,
	{constants.StepDocumentUpload, constants.EventBack}:             constants.StepStartupProfile,
	{constants.StepAddTeam, constants.EventNext}:                    constants.StepAssessmentIntro,
	{constants.StepAddTeam, constants.EventBack}:                    constants.StepDocumentUpload,
	{constants.StepAssessmentIntro, constants.EventStartAssessment}: constants.StepAssessment,
	{constants.StepAssessmentIntro, constants.EventSkip}:            constants.StepComplete,
	{constants.StepAssessment, constants.EventComplete}:             constants.StepComplete,
	{constants.StepAssessment, constants.EventSkip}:                 constants.StepComplete,
}

// WizardEngineInterface defines the interface for the wizard engine.
type WizardEngineInterface interface {
	Apply(ctx *model.SessionContext, outcome model.StepOutcome) (constants.WizardStatus, *serviceerror.ServiceError)
}

// WizardEngine is the engine implementation for orchestrating wizard step transitions.
type WizardEngine struct{}

// GetWizardEngine returns a singleton instance of WizardEngine.
func GetWizardEngine() WizardEngineInterface {
	once.Do(func() {
		instance = &WizardEngine{}
	})
	return instance
}

// Normalize returns the given step when it is a member of the step set, and
// falls back to the initial login step otherwise. An unrecognized stored step
// degrades gracefully instead of raising an error.
func Normalize(step constants.StepID) constants.StepID {
	if constants.IsValidStep(step) {
		return step
	}
	return constants.StepLogin
}

// Apply applies the outcome raised by the active step's component to the
// session context: it resolves the transition, writes any carried data into
// the profile under the originating step's key, and moves the session to the
// target step. "back" transitions never discard previously entered data.
func (e *WizardEngine) Apply(ctx *model.SessionContext,
	outcome model.StepOutcome) (constants.WizardStatus, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "WizardEngine"),
		log.String(log.LoggerKeySessionID, ctx.SessionID))

	currentStep := Normalize(ctx.CurrentStep)
	if currentStep != ctx.CurrentStep {
		logger.Warn("Unrecognized step in session context, falling back to login",
			log.String(log.LoggerKeyStepID, string(ctx.CurrentStep)))
		ctx.CurrentStep = currentStep
	}

	nextStep, status, ok := e.resolveTransition(currentStep, outcome.Event)
	if !ok {
		logger.Debug("Unsupported event for current step",
			log.String(log.LoggerKeyStepID, string(currentStep)),
			log.String(log.LoggerKeyEvent, string(outcome.Event)))
		return constants.WizardStatusIncomplete, &constants.ErrorUnsupportedEvent
	}

	// Outcomes carrying data write it under the originating step's key,
	// overwriting any prior value for that key.
	if outcome.Payload != nil {
		if ctx.Profile == nil {
			ctx.Profile = make(map[constants.StepID]json.RawMessage)
		}
		ctx.Profile[currentStep] = outcome.Payload
	}

	ctx.CurrentStep = nextStep

	logger.Debug("Transition applied", log.String(log.LoggerKeyEvent, string(outcome.Event)),
		log.String(log.LoggerKeyStepID, string(nextStep)))
	return status, nil
}

// resolveTransition resolves the target step and resulting status for the
// given step and event. The second return value is false when the event has
// no transition from the step.
func (e *WizardEngine) resolveTransition(step constants.StepID,
	event constants.EventType) (constants.StepID, constants.WizardStatus, bool) {
	// The returning-user target after welcome-back is a product decision,
	// resolved through configuration.
	if step == constants.StepWelcomeBack && event == constants.EventProceed {
		target := config.GetOnrampRuntime().Config.Wizard.ReturningUserTarget
		if target == constants.ReturningUserTargetDashboard {
			return constants.StepComplete, constants.WizardStatusComplete, true
		}
		return constants.StepBasicInfo, constants.WizardStatusIncomplete, true
	}

	// Leaving the complete step for the dashboard ends the session.
	if step == constants.StepComplete && event == constants.EventGoToDashboard {
		return constants.StepComplete, constants.WizardStatusComplete, true
	}

	nextStep, ok := transitions[transitionKey{step: step, event: event}]
	if !ok {
		return step, constants.WizardStatusIncomplete, false
	}
	return nextStep, constants.WizardStatusIncomplete, true
}
