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

// Package constants defines the constants used in the wizard orchestration service and engine.
package constants

// StepID identifies a step in the onboarding wizard. The set is closed;
// order matters for the default linear path.
type StepID string

const (
	// StepLogin is the initial credential entry step.
	StepLogin StepID = "login"
	// StepSignup is the account creation step.
	StepSignup StepID = "signup"
	// StepForgotPassword is the password recovery step.
	StepForgotPassword StepID = "forgot-password"
	// StepRoleSelection is the role selection step.
	StepRoleSelection StepID = "role-selection"
	// StepWelcomeBack greets a returning, already verified user.
	StepWelcomeBack StepID = "welcome-back"
	// StepBasicInfo collects the user's basic profile details.
	StepBasicInfo StepID = "basic-info"
	// StepStartupProfile collects details about the user's startup.
	StepStartupProfile StepID = "startup-profile"
	// StepDocumentUpload collects the user's documents through the intake service.
	StepDocumentUpload StepID = "document-upload"
	// StepAddTeam collects team member details.
	StepAddTeam StepID = "add-team"
	// StepAssessmentIntro introduces the optional assessment.
	StepAssessmentIntro StepID = "assessment-intro"
	// StepAssessment is the psychological assessment step.
	StepAssessment StepID = "assessment"
	// StepComplete is the final state of the onboarding sequence.
	StepComplete StepID = "complete"
)

// AllSteps lists every step identifier in default linear path order.
var AllSteps = []StepID{
	StepLogin,
	StepSignup,
	StepForgotPassword,
	StepRoleSelection,
	StepWelcomeBack,
	StepBasicInfo,
	StepStartupProfile,
	StepDocumentUpload,
	StepAddTeam,
	StepAssessmentIntro,
	StepAssessment,
	StepComplete,
}

// IsValidStep reports whether the given step is a member of the closed step set.
func IsValidStep(step StepID) bool {
	for _, s := range AllSteps {
		if s == step {
			return true
		}
	}
	return false
}

// EventType identifies a named event raised by the currently active step's component.
type EventType string

const (
	// EventSignUpChosen moves from login to signup.
	EventSignUpChosen EventType = "SIGN_UP_CHOSEN"
	// EventForgotPasswordChosen moves to the password recovery step.
	EventForgotPasswordChosen EventType = "FORGOT_PASSWORD_CHOSEN"
	// EventCredentialsVerified moves a verified returning user to welcome-back.
	EventCredentialsVerified EventType = "CREDENTIALS_VERIFIED"
	// EventAccountCreated moves a newly registered user to role selection.
	EventAccountCreated EventType = "ACCOUNT_CREATED"
	// EventBackToLogin returns from password recovery to login.
	EventBackToLogin EventType = "BACK_TO_LOGIN"
	// EventRoleConfirmed confirms the selected role.
	EventRoleConfirmed EventType = "ROLE_CONFIRMED"
	// EventProceed continues past the welcome-back screen.
	EventProceed EventType = "PROCEED"
	// EventNext completes the active data-collection step, carrying its data.
	EventNext EventType = "NEXT"
	// EventBack returns to the previous data-collection step.
	EventBack EventType = "BACK"
	// EventStartAssessment starts the assessment.
	EventStartAssessment EventType = "START_ASSESSMENT"
	// EventSkip skips the assessment.
	EventSkip EventType = "SKIP"
	// EventComplete completes the assessment, carrying the answers.
	EventComplete EventType = "COMPLETE"
	// EventGoToDashboard leaves the wizard for the dashboard.
	EventGoToDashboard EventType = "GO_TO_DASHBOARD"
)

// WizardStatus defines the status of a wizard session.
type WizardStatus string

const (
	// WizardStatusIncomplete indicates the onboarding sequence is still in progress.
	WizardStatusIncomplete WizardStatus = "INCOMPLETE"
	// WizardStatusComplete indicates the onboarding sequence has finished.
	WizardStatusComplete WizardStatus = "COMPLETE"
)

// ReturningUserTargetDashboard is the configuration value that sends returning
// users straight to the dashboard instead of continuing onboarding.
const ReturningUserTargetDashboard = "dashboard"
