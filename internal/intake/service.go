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

// Package intake provides the document intake service for the document-upload step.
//
// The service owns two upload slots per wizard session: a required single-file
// slot and an optional multi-file slot. Validation outcomes are observed
// through slot state and the notification channel, never through Go errors.
package intake

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/onramp-io/onramp/internal/notification"
	"github.com/onramp-io/onramp/internal/system/config"
	"github.com/onramp-io/onramp/internal/system/error/serviceerror"
	"github.com/onramp-io/onramp/internal/system/log"
	sysutils "github.com/onramp-io/onramp/internal/system/utils"
)

var (
	instance *intakeService
	once     sync.Once
)

// IntakeServiceInterface defines the interface for the document intake service.
type IntakeServiceInterface interface {
	// SubmitRequiredFile validates the candidate and, on success, replaces the
	// required slot's entry. Rejection leaves the prior entry untouched.
	SubmitRequiredFile(sessionID string, candidate FileCandidate) SubmitResult
	// SubmitOptionalFiles validates each candidate independently and appends
	// the accepted ones, in their original order, to the optional slot.
	SubmitOptionalFiles(sessionID string, candidates []FileCandidate) SubmitResult
	// ReportSurfaceRejection records a rejection pre-classified by the upload
	// surface, e.g. multiple files dropped on the single-file slot.
	ReportSurfaceRejection(sessionID string, slot SlotID, reason RejectionReason)
	// RemoveRequiredFile unconditionally clears the required slot.
	RemoveRequiredFile(sessionID string)
	// RemoveOptionalFile clears the optional entry with the given identifier.
	// Removing an unknown identifier is a no-op.
	RemoveOptionalFile(sessionID string, fileID string)
	// Finalize re-validates the presence invariant on the required slot and
	// returns the validated document bundle. This is the only operation with a
	// hard business-rule failure path.
	Finalize(sessionID string) (*DocumentBundle, *serviceerror.ServiceError)
	// GetState returns a point-in-time view of both slots for the session.
	GetState(sessionID string) StateSnapshot
	// DiscardSession drops all intake state held for the session. Discarding
	// an unknown session is a no-op.
	DiscardSession(sessionID string)
	// Notifier returns the notification channel owned by the service.
	Notifier() *notification.Notifier
}

// intakeService is the implementation of IntakeServiceInterface.
type intakeService struct {
	mu       sync.Mutex
	sessions map[string]*intakeState
	notifier *notification.Notifier
}

// GetIntakeService returns a singleton instance of the document intake service.
func GetIntakeService() IntakeServiceInterface {
	once.Do(func() {
		displayDuration := config.GetOnrampRuntime().Config.Notification.DisplayDuration
		instance = newIntakeService(notification.NewNotifier(time.Duration(displayDuration) * time.Second))
	})
	return instance
}

// newIntakeService creates an intake service with the given notification channel.
func newIntakeService(notifier *notification.Notifier) *intakeService {
	return &intakeService{
		sessions: make(map[string]*intakeState),
		notifier: notifier,
	}
}

// SubmitRequiredFile validates the candidate against the accepted-type set and
// size ceiling. On success the required slot's single entry is replaced and its
// error cleared; on failure a descriptive error is recorded and an error
// notification raised, leaving the prior entry untouched.
func (s *intakeService) SubmitRequiredFile(sessionID string, candidate FileCandidate) SubmitResult {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName),
		log.String(log.LoggerKeySessionID, sessionID))

	s.mu.Lock()
	defer s.mu.Unlock()
	state := s.stateLocked(sessionID)

	if rejected := validateCandidate(candidate); rejected != nil {
		state.requiredError = fmt.Sprintf("%s: %s", rejected.Name, rejected.Detail)
		s.notifier.Notify(state.requiredError, notification.CategoryError)
		logger.Debug("Required file rejected", log.String(log.LoggerKeyFileName, candidate.Name),
			log.String("reason", string(rejected.Reason)))
		return SubmitResult{Rejected: []RejectedFile{*rejected}}
	}

	accepted := s.acceptCandidate(candidate)
	state.required = &accepted
	state.requiredError = ""
	s.notifier.Notify(fmt.Sprintf("%s uploaded successfully", accepted.Name), notification.CategorySuccess)

	logger.Debug("Required file accepted", log.String(log.LoggerKeyFileID, accepted.ID),
		log.String(log.LoggerKeyFileName, accepted.Name))
	return SubmitResult{Accepted: []UploadedFile{accepted}}
}

// SubmitOptionalFiles validates each candidate independently. Accepted files
// are appended in their original order, never replacing prior entries. Failing
// candidates are excluded and reported through an aggregate error message
// naming each file and reason. A success notification summarizing the accepted
// count is raised when at least one file is accepted.
func (s *intakeService) SubmitOptionalFiles(sessionID string, candidates []FileCandidate) SubmitResult {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName),
		log.String(log.LoggerKeySessionID, sessionID))

	s.mu.Lock()
	defer s.mu.Unlock()
	state := s.stateLocked(sessionID)

	var result SubmitResult
	for _, candidate := range candidates {
		if rejected := validateCandidate(candidate); rejected != nil {
			result.Rejected = append(result.Rejected, *rejected)
			continue
		}
		accepted := s.acceptCandidate(candidate)
		state.optional = append(state.optional, accepted)
		result.Accepted = append(result.Accepted, accepted)
	}

	if len(result.Rejected) > 0 {
		parts := make([]string, 0, len(result.Rejected))
		for _, rejected := range result.Rejected {
			parts = append(parts, fmt.Sprintf("%s: %s", rejected.Name, rejected.Detail))
		}
		state.optionalError = strings.Join(parts, "; ")
	} else {
		state.optionalError = ""
	}

	if len(result.Accepted) > 0 {
		s.notifier.Notify(fmt.Sprintf("%d file(s) uploaded successfully", len(result.Accepted)),
			notification.CategorySuccess)
	} else if len(result.Rejected) > 0 {
		s.notifier.Notify(state.optionalError, notification.CategoryError)
	}

	logger.Debug("Optional files processed", log.Int("accepted", len(result.Accepted)),
		log.Int("rejected", len(result.Rejected)))
	return result
}

// ReportSurfaceRejection records a rejection reported by the upload surface
// itself, consumed as-is without re-validation.
func (s *intakeService) ReportSurfaceRejection(sessionID string, slot SlotID, reason RejectionReason) {
	s.mu.Lock()
	defer s.mu.Unlock()
	state := s.stateLocked(sessionID)

	message := surfaceRejectionMessage(reason)
	if slot == SlotRequired {
		state.requiredError = message
	} else {
		state.optionalError = message
	}
	s.notifier.Notify(message, notification.CategoryError)
}

// RemoveRequiredFile unconditionally clears the required slot's entry.
func (s *intakeService) RemoveRequiredFile(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	state := s.stateLocked(sessionID)
	state.required = nil
}

// RemoveOptionalFile clears the optional entry with the given identifier.
// Removing an unknown identifier leaves the state unchanged.
func (s *intakeService) RemoveOptionalFile(sessionID string, fileID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	state := s.stateLocked(sessionID)

	for i, file := range state.optional {
		if file.ID == fileID {
			state.optional = append(state.optional[:i], state.optional[i+1:]...)
			return
		}
	}
}

// Finalize re-validates the presence invariant on the required slot. If the
// slot is empty it records a "required" error, raises an error notification
// and returns a reject result; otherwise it returns the document bundle built
// from the current slot contents, performing no further mutation.
func (s *intakeService) Finalize(sessionID string) (*DocumentBundle, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName),
		log.String(log.LoggerKeySessionID, sessionID))

	s.mu.Lock()
	defer s.mu.Unlock()
	state := s.stateLocked(sessionID)

	if state.required == nil {
		state.requiredError = ErrorRequiredDocumentMissing.ErrorDescription
		s.notifier.Notify(state.requiredError, notification.CategoryError)
		logger.Debug("Finalize rejected: required slot is empty")
		return nil, &ErrorRequiredDocumentMissing
	}

	bundle := &DocumentBundle{
		RequiredFile:  *state.required,
		OptionalFiles: make([]UploadedFile, len(state.optional)),
	}
	copy(bundle.OptionalFiles, state.optional)

	logger.Debug("Document intake finalized", log.Int("optionalCount", len(bundle.OptionalFiles)))
	return bundle, nil
}

// GetState returns a point-in-time view of both slots for the session.
func (s *intakeService) GetState(sessionID string) StateSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	state := s.stateLocked(sessionID)

	snapshot := StateSnapshot{
		OptionalFiles: make([]FileView, 0, len(state.optional)),
		RequiredError: state.requiredError,
		OptionalError: state.optionalError,
	}
	if state.required != nil {
		view := fileView(*state.required)
		snapshot.RequiredFile = &view
	}
	for _, file := range state.optional {
		snapshot.OptionalFiles = append(snapshot.OptionalFiles, fileView(file))
	}

	return snapshot
}

// DiscardSession drops all intake state held for the session. The wizard
// service calls this when the session completes so upload metadata does not
// outlive its session.
func (s *intakeService) DiscardSession(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
}

// Notifier returns the notification channel owned by the service.
func (s *intakeService) Notifier() *notification.Notifier {
	return s.notifier
}

// stateLocked returns the intake state for the session, creating it on first use.
// Caller must hold the service lock.
func (s *intakeService) stateLocked(sessionID string) *intakeState {
	state, ok := s.sessions[sessionID]
	if !ok {
		state = &intakeState{}
		s.sessions[sessionID] = state
	}
	return state
}

// acceptCandidate assigns a freshly generated identifier to a validated candidate.
// The identifier exists purely so the entry can be addressed for removal and display.
func (s *intakeService) acceptCandidate(candidate FileCandidate) UploadedFile {
	return UploadedFile{
		ID:         sysutils.GenerateUUID(),
		Name:       candidate.Name,
		MediaType:  candidate.MediaType,
		Size:       candidate.Size,
		ContentRef: candidate.ContentRef,
	}
}

// surfaceRejectionMessage maps a surface-reported rejection reason to a user-facing message.
func surfaceRejectionMessage(reason RejectionReason) string {
	switch reason {
	case ReasonWrongType:
		return fmt.Sprintf("the dropped file type is not supported (accepted: %s)", acceptedTypesSummary)
	case ReasonTooLarge:
		return fmt.Sprintf("the dropped file exceeds the %s limit", FormatFileSize(MaxFileSizeBytes))
	case ReasonBatchRejected:
		return "multiple validation errors: only a single file can be dropped on this slot"
	default:
		return "the dropped file(s) could not be accepted"
	}
}
