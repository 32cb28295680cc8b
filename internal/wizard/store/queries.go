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
	"github.com/onramp-io/onramp/internal/system/database/model"
)

var (
	// QueryCreateWizardSessionTable creates the wizard session table if it does not exist.
	QueryCreateWizardSessionTable = model.DBQuery{
		ID: "WZQ-SESSION-00",
		PostgresQuery: "CREATE TABLE IF NOT EXISTS WIZARD_SESSION (" +
			"SESSION_ID VARCHAR(36) PRIMARY KEY, " +
			"CURRENT_STEP VARCHAR(50) NOT NULL, " +
			"PROFILE TEXT, " +
			"CREATED_AT TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP, " +
			"UPDATED_AT TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP)",
		SQLiteQuery: "CREATE TABLE IF NOT EXISTS WIZARD_SESSION (" +
			"SESSION_ID TEXT PRIMARY KEY, " +
			"CURRENT_STEP TEXT NOT NULL, " +
			"PROFILE TEXT, " +
			"CREATED_AT TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP, " +
			"UPDATED_AT TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP)",
	}

	// QueryCreateWizardSession is the query to create a new wizard session.
	QueryCreateWizardSession = model.DBQuery{
		ID: "WZQ-SESSION-01",
		Query: "INSERT INTO WIZARD_SESSION (SESSION_ID, CURRENT_STEP, PROFILE) " +
			"VALUES ($1, $2, $3)",
	}

	// QueryGetWizardSession is the query to get a wizard session by its identifier.
	QueryGetWizardSession = model.DBQuery{
		ID: "WZQ-SESSION-02",
		Query: "SELECT SESSION_ID, CURRENT_STEP, PROFILE, CREATED_AT, UPDATED_AT " +
			"FROM WIZARD_SESSION WHERE SESSION_ID = $1",
	}

	// QueryUpdateWizardSession is the query to update a wizard session.
	QueryUpdateWizardSession = model.DBQuery{
		ID: "WZQ-SESSION-03",
		Query: "UPDATE WIZARD_SESSION SET CURRENT_STEP = $2, PROFILE = $3, " +
			"UPDATED_AT = CURRENT_TIMESTAMP WHERE SESSION_ID = $1",
	}

	// QueryDeleteWizardSession is the query to delete a wizard session.
	QueryDeleteWizardSession = model.DBQuery{
		ID:    "WZQ-SESSION-04",
		Query: "DELETE FROM WIZARD_SESSION WHERE SESSION_ID = $1",
	}
)
