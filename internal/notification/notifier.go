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

// Package notification provides the transient user-facing notification channel.
//
// There is a single notification channel system wide: at most one notification
// is visible at a time, and a newly raised notification supersedes the pending
// auto-clear of the previous one.
package notification

import (
	"sync"
	"time"

	"github.com/onramp-io/onramp/internal/system/log"
)

// Category defines the category of a notification.
type Category string

const (
	// CategorySuccess denotes a success notification.
	CategorySuccess Category = "success"
	// CategoryError denotes an error notification.
	CategoryError Category = "error"
)

// Notification represents a transient user-facing message.
type Notification struct {
	Message  string   `json:"message"`
	Category Category `json:"category"`
}

// Notifier owns the single notification channel. Each raised notification
// auto-clears after the configured display duration unless it is dismissed
// earlier or superseded by a newer notification.
type Notifier struct {
	mu         sync.Mutex
	current    *Notification
	timer      *time.Timer
	generation uint64
	ttl        time.Duration
}

// NewNotifier creates a notifier whose notifications clear after the given duration.
func NewNotifier(ttl time.Duration) *Notifier {
	return &Notifier{
		ttl: ttl,
	}
}

// Notify raises a notification, replacing any currently visible one and
// restarting the auto-clear delay. The superseded notification's pending
// clear is invalidated so it cannot blank out the new notification.
func (n *Notifier) Notify(message string, category Category) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "Notifier"))

	n.mu.Lock()
	defer n.mu.Unlock()

	n.generation++
	gen := n.generation
	n.current = &Notification{
		Message:  message,
		Category: category,
	}

	if n.timer != nil {
		n.timer.Stop()
	}
	n.timer = time.AfterFunc(n.ttl, func() {
		n.clear(gen)
	})

	logger.Debug("Notification raised", log.String("category", string(category)))
}

// Dismiss clears the visible notification immediately and cancels the
// pending auto-clear so it does not fire against a later notification.
func (n *Notifier) Dismiss() {
	n.mu.Lock()
	defer n.mu.Unlock()

	// Bumping the generation invalidates any clear that has already fired
	// and is waiting on the lock.
	n.generation++
	if n.timer != nil {
		n.timer.Stop()
		n.timer = nil
	}
	n.current = nil
}

// Current returns the currently visible notification, or nil when none is visible.
func (n *Notifier) Current() *Notification {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.current
}

// clear removes the notification raised at the given generation. A stale
// timer firing after a newer notification was raised is a no-op.
func (n *Notifier) clear(gen uint64) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.generation != gen {
		return
	}
	n.current = nil
	n.timer = nil
}
