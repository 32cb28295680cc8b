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

package client

import (
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"github.com/onramp-io/onramp/internal/system/database/model"
)

var testSelectQuery = model.DBQuery{
	ID:    "TST-00001",
	Query: "SELECT SESSION_ID, CURRENT_STEP FROM WIZARD_SESSION WHERE SESSION_ID = $1",
}

var testInsertQuery = model.DBQuery{
	ID:    "TST-00002",
	Query: "INSERT INTO WIZARD_SESSION (SESSION_ID, CURRENT_STEP) VALUES ($1, $2)",
}

func newTestClient(t *testing.T) (DBClientInterface, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	assert.NoError(t, err)
	return NewDBClient(model.NewDB(db), "postgres"), mock
}

func TestQueryMapsRowsWithLowercaseColumns(t *testing.T) {
	client, mock := newTestClient(t)

	rows := sqlmock.NewRows([]string{"SESSION_ID", "CURRENT_STEP"}).
		AddRow("session-1", "basic-info").
		AddRow("session-2", "login")
	mock.ExpectQuery(testSelectQuery.Query).WithArgs("session-1").WillReturnRows(rows)

	results, err := client.Query(testSelectQuery, "session-1")

	assert.NoError(t, err)
	assert.Len(t, results, 2)
	assert.Equal(t, "session-1", results[0]["session_id"])
	assert.Equal(t, "basic-info", results[0]["current_step"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQueryReturnsEmptyResultForNoRows(t *testing.T) {
	client, mock := newTestClient(t)

	mock.ExpectQuery(testSelectQuery.Query).WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"SESSION_ID", "CURRENT_STEP"}))

	results, err := client.Query(testSelectQuery, "missing")

	assert.NoError(t, err)
	assert.Empty(t, results)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQueryPropagatesError(t *testing.T) {
	client, mock := newTestClient(t)

	mock.ExpectQuery(testSelectQuery.Query).WithArgs("session-1").
		WillReturnError(errors.New("connection refused"))

	_, err := client.Query(testSelectQuery, "session-1")

	assert.Error(t, err)
}

func TestExecuteReturnsRowsAffected(t *testing.T) {
	client, mock := newTestClient(t)

	mock.ExpectExec(testInsertQuery.Query).WithArgs("session-1", "login").
		WillReturnResult(sqlmock.NewResult(0, 1))

	affected, err := client.Execute(testInsertQuery, "session-1", "login")

	assert.NoError(t, err)
	assert.Equal(t, int64(1), affected)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetQuerySelectsDriverVariant(t *testing.T) {
	query := model.DBQuery{
		ID:            "TST-00003",
		Query:         "DEFAULT",
		PostgresQuery: "PG",
		SQLiteQuery:   "LITE",
	}

	assert.Equal(t, "PG", query.GetQuery("postgres"))
	assert.Equal(t, "LITE", query.GetQuery("sqlite"))
	assert.Equal(t, "DEFAULT", query.GetQuery("mysql"))

	bare := model.DBQuery{ID: "TST-00004", Query: "DEFAULT"}
	assert.Equal(t, "DEFAULT", bare.GetQuery("sqlite"))
}
