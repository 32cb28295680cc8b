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

package notification

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNotifyMakesNotificationVisible(t *testing.T) {
	notifier := NewNotifier(time.Hour)

	notifier.Notify("deck.pdf uploaded successfully", CategorySuccess)

	current := notifier.Current()
	assert.NotNil(t, current)
	assert.Equal(t, "deck.pdf uploaded successfully", current.Message)
	assert.Equal(t, CategorySuccess, current.Category)
}

func TestNotificationAutoClearsAfterDisplayDuration(t *testing.T) {
	notifier := NewNotifier(50 * time.Millisecond)

	notifier.Notify("message", CategorySuccess)
	assert.NotNil(t, notifier.Current())

	assert.Eventually(t, func() bool {
		return notifier.Current() == nil
	}, time.Second, 10*time.Millisecond)
}

func TestNewNotificationSupersedesPendingClear(t *testing.T) {
	notifier := NewNotifier(100 * time.Millisecond)

	notifier.Notify("first", CategorySuccess)
	time.Sleep(60 * time.Millisecond)
	notifier.Notify("second", CategoryError)

	// The first notification's clear would have fired by now. It must not
	// blank out the second notification.
	time.Sleep(60 * time.Millisecond)
	current := notifier.Current()
	assert.NotNil(t, current)
	assert.Equal(t, "second", current.Message)
	assert.Equal(t, CategoryError, current.Category)

	// The second notification still clears on its own schedule.
	assert.Eventually(t, func() bool {
		return notifier.Current() == nil
	}, time.Second, 10*time.Millisecond)
}

func TestDismissClearsImmediately(t *testing.T) {
	notifier := NewNotifier(time.Hour)

	notifier.Notify("message", CategoryError)
	notifier.Dismiss()

	assert.Nil(t, notifier.Current())
}

func TestDismissDoesNotAffectLaterNotification(t *testing.T) {
	notifier := NewNotifier(100 * time.Millisecond)

	notifier.Notify("first", CategorySuccess)
	notifier.Dismiss()
	notifier.Notify("second", CategorySuccess)

	time.Sleep(50 * time.Millisecond)
	current := notifier.Current()
	assert.NotNil(t, current)
	assert.Equal(t, "second", current.Message)
}

func TestDismissWithoutNotificationIsNoOp(t *testing.T) {
	notifier := NewNotifier(time.Hour)

	notifier.Dismiss()

	assert.Nil(t, notifier.Current())
}
