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
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/onramp-io/onramp/internal/system/cache"
	"github.com/onramp-io/onramp/internal/system/database/provider"
	"github.com/onramp-io/onramp/internal/system/log"
	"github.com/onramp-io/onramp/internal/wizard/model"
)

const loggerComponentName = "WizardStore"

// WizardStoreInterface defines the persistence operations for wizard sessions.
type WizardStoreInterface interface {
	Init() error
	CreateSession(ctx *model.SessionContext) error
	GetSession(sessionID string) (*model.SessionContext, error)
	UpdateSession(ctx *model.SessionContext) error
	DeleteSession(sessionID string) error
}

// WizardStore is the database backed implementation of WizardStoreInterface.
// A read-through cache in front of the database keeps repeated lookups of an
// active session cheap. Contexts are cloned at the cache boundary: callers
// always receive a private copy they may mutate, and the cache is refreshed
// only after the database write succeeds.
type WizardStore struct {
	dbProvider   provider.DBProviderInterface
	sessionCache *cache.Cache[*model.SessionContext]
	cacheOnce    sync.Once
}

// NewWizardStore creates a new wizard session store.
func NewWizardStore() WizardStoreInterface {
	return &WizardStore{
		dbProvider: provider.GetDBProvider(),
	}
}

func (s *WizardStore) getSessionCache() *cache.Cache[*model.SessionContext] {
	s.cacheOnce.Do(func() {
		s.sessionCache = cache.New[*model.SessionContext]("WizardSessionCache")
	})
	return s.sessionCache
}

// Init creates the wizard session table if it does not exist.
func (s *WizardStore) Init() error {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	dbClient, err := s.dbProvider.GetDBClient("runtime")
	if err != nil {
		logger.Error("Failed to get database client", log.Error(err))
		return fmt.Errorf("failed to get database client: %w", err)
	}

	if _, err := dbClient.Execute(QueryCreateWizardSessionTable); err != nil {
		logger.Error("Failed to create wizard session table", log.Error(err))
		return fmt.Errorf("failed to create wizard session table: %w", err)
	}
	return nil
}

// CreateSession stores a new wizard session in the database.
func (s *WizardStore) CreateSession(ctx *model.SessionContext) error {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	dbClient, err := s.dbProvider.GetDBClient("runtime")
	if err != nil {
		logger.Error("Failed to get database client", log.Error(err))
		return fmt.Errorf("failed to get database client: %w", err)
	}

	dbModel, err := FromSessionContext(ctx)
	if err != nil {
		logger.Error("Failed to convert session context to database model", log.Error(err))
		return fmt.Errorf("failed to convert session context to database model: %w", err)
	}

	logger.Debug("Storing wizard session to database",
		log.String(log.LoggerKeySessionID, dbModel.SessionID),
		log.String(log.LoggerKeyStepID, dbModel.CurrentStep))

	_, err = dbClient.Execute(QueryCreateWizardSession,
		dbModel.SessionID, dbModel.CurrentStep, dbModel.Profile)
	if err != nil {
		logger.Error("Failed to create wizard session", log.Error(err))
		return fmt.Errorf("failed to create wizard session: %w", err)
	}

	s.getSessionCache().Set(ctx.SessionID, ctx.Clone())
	return nil
}

// GetSession retrieves a wizard session from the database. It returns nil
// without an error when no session exists for the given identifier.
func (s *WizardStore) GetSession(sessionID string) (*model.SessionContext, error) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	if cached, ok := s.getSessionCache().Get(sessionID); ok {
		return cached.Clone(), nil
	}

	dbClient, err := s.dbProvider.GetDBClient("runtime")
	if err != nil {
		logger.Error("Failed to get database client", log.Error(err))
		return nil, fmt.Errorf("failed to get database client: %w", err)
	}

	results, err := dbClient.Query(QueryGetWizardSession, sessionID)
	if err != nil {
		logger.Error("Failed to execute query", log.Error(err))
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}

	if len(results) == 0 {
		logger.Debug("Wizard session not found", log.String(log.LoggerKeySessionID, sessionID))
		return nil, nil
	}
	if len(results) != 1 {
		logger.Error("Unexpected number of results", log.Int("resultCount", len(results)))
		return nil, fmt.Errorf("unexpected number of results: %d", len(results))
	}

	dbModel, err := buildSessionFromResultRow(results[0])
	if err != nil {
		return nil, err
	}

	sessionCtx, err := dbModel.ToSessionContext()
	if err != nil {
		logger.Error("Failed to convert database model to session context", log.Error(err))
		return nil, fmt.Errorf("failed to convert database model to session context: %w", err)
	}

	s.getSessionCache().Set(sessionID, sessionCtx.Clone())
	return sessionCtx, nil
}

// UpdateSession updates an existing wizard session in the database.
func (s *WizardStore) UpdateSession(ctx *model.SessionContext) error {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	dbClient, err := s.dbProvider.GetDBClient("runtime")
	if err != nil {
		logger.Error("Failed to get database client", log.Error(err))
		return fmt.Errorf("failed to get database client: %w", err)
	}

	dbModel, err := FromSessionContext(ctx)
	if err != nil {
		logger.Error("Failed to convert session context to database model", log.Error(err))
		return fmt.Errorf("failed to convert session context to database model: %w", err)
	}

	logger.Debug("Updating wizard session in database",
		log.String(log.LoggerKeySessionID, dbModel.SessionID),
		log.String(log.LoggerKeyStepID, dbModel.CurrentStep))

	_, err = dbClient.Execute(QueryUpdateWizardSession,
		dbModel.SessionID, dbModel.CurrentStep, dbModel.Profile)
	if err != nil {
		logger.Error("Failed to update wizard session", log.Error(err))
		return fmt.Errorf("failed to update wizard session: %w", err)
	}

	s.getSessionCache().Set(ctx.SessionID, ctx.Clone())
	return nil
}

// DeleteSession removes a wizard session from the database.
func (s *WizardStore) DeleteSession(sessionID string) error {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	dbClient, err := s.dbProvider.GetDBClient("runtime")
	if err != nil {
		logger.Error("Failed to get database client", log.Error(err))
		return fmt.Errorf("failed to get database client: %w", err)
	}

	logger.Debug("Deleting wizard session from database",
		log.String(log.LoggerKeySessionID, sessionID))

	if _, err := dbClient.Execute(QueryDeleteWizardSession, sessionID); err != nil {
		logger.Error("Failed to delete wizard session", log.Error(err))
		return fmt.Errorf("failed to delete wizard session: %w", err)
	}

	s.getSessionCache().Delete(sessionID)
	return nil
}

// buildSessionFromResultRow builds a WizardSessionDB from a database result row.
func buildSessionFromResultRow(row map[string]interface{}) (*WizardSessionDB, error) {
	sessionID, ok := row["session_id"].(string)
	if !ok {
		return nil, errors.New("failed to parse session_id as string")
	}

	currentStep, ok := row["current_step"].(string)
	if !ok {
		return nil, errors.New("failed to parse current_step as string")
	}

	profile := parseOptionalString(row["profile"])

	return &WizardSessionDB{
		SessionID:   sessionID,
		CurrentStep: currentStep,
		Profile:     profile,
		CreatedAt:   parseTimestamp(row["created_at"]),
		UpdatedAt:   parseTimestamp(row["updated_at"]),
	}, nil
}

// parseOptionalString safely parses an optional string field from the database row.
func parseOptionalString(value interface{}) *string {
	if value == nil {
		return nil
	}
	if str, ok := value.(string); ok {
		return &str
	}
	return nil
}

// parseTimestamp parses a timestamp column that may arrive as time.Time or as text.
func parseTimestamp(value interface{}) time.Time {
	switch v := value.(type) {
	case time.Time:
		return v
	case string:
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			return t
		}
		if t, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			return t
		}
	}
	return time.Time{}
}
