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

// Package wizard provides the WizardService interface and its implementation,
// acting as the entry point for wizard execution.
package wizard

import (
	"sync"

	"github.com/onramp-io/onramp/internal/intake"
	"github.com/onramp-io/onramp/internal/step"
	"github.com/onramp-io/onramp/internal/system/error/serviceerror"
	"github.com/onramp-io/onramp/internal/system/log"
	sysutils "github.com/onramp-io/onramp/internal/system/utils"
	"github.com/onramp-io/onramp/internal/wizard/constants"
	"github.com/onramp-io/onramp/internal/wizard/engine"
	"github.com/onramp-io/onramp/internal/wizard/model"
	"github.com/onramp-io/onramp/internal/wizard/store"
)

const loggerComponentName = "WizardService"

var (
	instance *WizardService
	once     sync.Once
)

// WizardServiceInterface defines the interface for wizard session orchestration.
type WizardServiceInterface interface {
	Init() error
	Execute(sessionID, event string, inputs map[string]string) (
		*model.WizardResponse, *serviceerror.ServiceError)
}

// WizardService is the implementation of WizardServiceInterface.
type WizardService struct {
	wizardStore   store.WizardStoreInterface
	wizardEngine  engine.WizardEngineInterface
	intakeService intake.IntakeServiceInterface
}

// GetWizardService returns a singleton instance of WizardService.
func GetWizardService() WizardServiceInterface {
	once.Do(func() {
		instance = &WizardService{
			wizardStore:   store.NewWizardStore(),
			wizardEngine:  engine.GetWizardEngine(),
			intakeService: intake.GetIntakeService(),
		}
	})
	return instance
}

// newWizardService creates a wizard service with the given collaborators.
func newWizardService(wizardStore store.WizardStoreInterface,
	wizardEngine engine.WizardEngineInterface,
	intakeService intake.IntakeServiceInterface) *WizardService {
	return &WizardService{
		wizardStore:   wizardStore,
		wizardEngine:  wizardEngine,
		intakeService: intakeService,
	}
}

// Init prepares the wizard session persistence layer.
func (s *WizardService) Init() error {
	return s.wizardStore.Init()
}

// Execute drives one interaction with the wizard. An empty session identifier
// starts a new session at the login step. An empty event renders the active
// step without changing it. Any other event is validated by the active step's
// component and applied through the engine.
func (s *WizardService) Execute(sessionID, event string, inputs map[string]string) (
	*model.WizardResponse, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	sessionCtx, isNew, svcErr := s.loadOrCreateSession(sessionID, logger)
	if svcErr != nil {
		return nil, svcErr
	}

	sessionCtx.CurrentStep = engine.Normalize(sessionCtx.CurrentStep)

	if event == "" {
		if isNew {
			if err := s.wizardStore.CreateSession(sessionCtx); err != nil {
				logger.Error("Failed to store new wizard session", log.Error(err))
				return nil, &constants.ErrorStoringSessionContext
			}
		}
		return buildResponse(sessionCtx, constants.WizardStatusIncomplete), nil
	}

	component, ok := step.ComponentFor(sessionCtx.CurrentStep)
	if !ok {
		logger.Error("No component registered for step",
			log.String(log.LoggerKeyStepID, string(sessionCtx.CurrentStep)))
		return nil, &constants.ErrorUnsupportedEvent
	}

	stepCtx := &model.StepContext{
		SessionID: sessionCtx.SessionID,
		Event:     constants.EventType(event),
		Inputs:    inputs,
	}
	payload, svcErr := component.Validate(stepCtx)
	if svcErr != nil {
		return nil, svcErr
	}

	status, svcErr := s.wizardEngine.Apply(sessionCtx, model.StepOutcome{
		Event:   stepCtx.Event,
		Payload: payload,
	})
	if svcErr != nil {
		return nil, svcErr
	}

	if svcErr := s.persistSession(sessionCtx, status, isNew, logger); svcErr != nil {
		return nil, svcErr
	}

	return buildResponse(sessionCtx, status), nil
}

// loadOrCreateSession resolves the session context for the request. A blank
// identifier starts a fresh session at the login step.
func (s *WizardService) loadOrCreateSession(sessionID string, logger *log.Logger) (
	*model.SessionContext, bool, *serviceerror.ServiceError) {
	if sessionID == "" {
		newID := sysutils.GenerateUUID()
		logger.Debug("Starting new wizard session", log.String(log.LoggerKeySessionID, newID))
		return model.NewSessionContext(newID), true, nil
	}

	sessionCtx, err := s.wizardStore.GetSession(sessionID)
	if err != nil {
		logger.Error("Failed to retrieve wizard session", log.Error(err))
		return nil, false, &constants.ErrorRetrievingSessionContext
	}
	if sessionCtx == nil {
		return nil, false, &constants.ErrorSessionNotFound
	}
	return sessionCtx, false, nil
}

// persistSession writes the session context back to the store. A completed
// session is removed instead of updated, and its intake state is discarded
// along with it.
func (s *WizardService) persistSession(sessionCtx *model.SessionContext,
	status constants.WizardStatus, isNew bool, logger *log.Logger) *serviceerror.ServiceError {
	if status == constants.WizardStatusComplete {
		s.intakeService.DiscardSession(sessionCtx.SessionID)
		if isNew {
			return nil
		}
		if err := s.wizardStore.DeleteSession(sessionCtx.SessionID); err != nil {
			logger.Error("Failed to delete completed wizard session", log.Error(err))
			return &constants.ErrorStoringSessionContext
		}
		return nil
	}

	var err error
	if isNew {
		err = s.wizardStore.CreateSession(sessionCtx)
	} else {
		err = s.wizardStore.UpdateSession(sessionCtx)
	}
	if err != nil {
		logger.Error("Failed to store wizard session", log.Error(err))
		return &constants.ErrorStoringSessionContext
	}
	return nil
}

// buildResponse assembles the API response for the session's active step. The
// step's previously recorded profile fragment rides along as prefill so a
// re-entered step can restore its fields.
func buildResponse(sessionCtx *model.SessionContext,
	status constants.WizardStatus) *model.WizardResponse {
	return &model.WizardResponse{
		SessionID:   sessionCtx.SessionID,
		CurrentStep: string(sessionCtx.CurrentStep),
		Status:      string(status),
		Data: model.WizardData{
			Prefill: sessionCtx.Profile[sessionCtx.CurrentStep],
		},
	}
}
