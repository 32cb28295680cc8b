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

// Package store provides the implementation for wizard session persistence operations.
package store

import (
	"encoding/json"
	"time"

	"github.com/onramp-io/onramp/internal/wizard/constants"
	"github.com/onramp-io/onramp/internal/wizard/model"
)

// WizardSessionDB represents a wizard session row in the database.
type WizardSessionDB struct {
	SessionID   string
	CurrentStep string
	Profile     *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ToSessionContext converts the database model to the wizard session context.
func (s *WizardSessionDB) ToSessionContext() (*model.SessionContext, error) {
	var profile map[constants.StepID]json.RawMessage
	if s.Profile != nil {
		if err := json.Unmarshal([]byte(*s.Profile), &profile); err != nil {
			return nil, err
		}
	}
	if profile == nil {
		profile = make(map[constants.StepID]json.RawMessage)
	}

	return &model.SessionContext{
		SessionID:   s.SessionID,
		CurrentStep: constants.StepID(s.CurrentStep),
		Profile:     profile,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}, nil
}

// FromSessionContext creates a database model from the wizard session context.
func FromSessionContext(ctx *model.SessionContext) (*WizardSessionDB, error) {
	profileJSON, err := json.Marshal(ctx.Profile)
	if err != nil {
		return nil, err
	}
	profile := string(profileJSON)

	return &WizardSessionDB{
		SessionID:   ctx.SessionID,
		CurrentStep: string(ctx.CurrentStep),
		Profile:     &profile,
		CreatedAt:   ctx.CreatedAt,
		UpdatedAt:   ctx.UpdatedAt,
	}, nil
}
