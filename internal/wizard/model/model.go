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

// Package model defines the data structures for wizard session orchestration.
package model

import (
	"encoding/json"
	"time"

	"github.com/onramp-io/onramp/internal/wizard/constants"
)

// SessionContext holds the accumulated state of one wizard session: the
// current step and the per-step profile fragments collected so far.
type SessionContext struct {
	SessionID   string
	CurrentStep constants.StepID
	// Profile maps each completed step to the data it emitted. A later
	// completion of the same step replaces its prior value, never merges.
	Profile   map[constants.StepID]json.RawMessage
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewSessionContext creates a session context positioned at the initial login step.
func NewSessionContext(sessionID string) *SessionContext {
	return &SessionContext{
		SessionID:   sessionID,
		CurrentStep: constants.StepLogin,
		Profile:     make(map[constants.StepID]json.RawMessage),
	}
}

// Clone returns an independent copy of the session context. The profile map
// is copied so the clone can be mutated without affecting the original; the
// fragment values themselves are never mutated in place and are shared.
func (c *SessionContext) Clone() *SessionContext {
	clone := *c
	clone.Profile = make(map[constants.StepID]json.RawMessage, len(c.Profile))
	for step, fragment := range c.Profile {
		clone.Profile[step] = fragment
	}
	return &clone
}

// StepOutcome is the typed message a step component sends to the controller
// when the user finishes interacting with it: the raised event plus the
// step's validated data, if the event carries any.
type StepOutcome struct {
	Event   constants.EventType
	Payload json.RawMessage
}

// StepContext holds the data passed to a step component when validating an event.
type StepContext struct {
	SessionID string
	Event     constants.EventType
	Inputs    map[string]string
}

// WizardRequest represents the wizard execution API request body.
type WizardRequest struct {
	SessionID string            `json:"sessionId"`
	Event     string            `json:"event"`
	Inputs    map[string]string `json:"inputs"`
}

// WizardData holds the render data returned for the active step.
type WizardData struct {
	// Prefill carries the step's previously submitted profile fragment so a
	// re-entered step can pre-populate its fields.
	Prefill json.RawMessage `json:"prefill,omitempty"`
}

// WizardResponse represents the wizard execution API response body.
type WizardResponse struct {
	SessionID   string     `json:"sessionId"`
	CurrentStep string     `json:"currentStep"`
	Status      string     `json:"status"`
	Data        WizardData `json:"data,omitempty"`
}
