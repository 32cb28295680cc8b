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

package config

import "sync"

// OnrampRuntime holds the runtime configuration for the Onramp server.
type OnrampRuntime struct {
	OnrampHome string `yaml:"onramp_home"`
	Config     Config `yaml:"config"`
}

var (
	runtimeConfig *OnrampRuntime
	once          sync.Once
)

// InitializeOnrampRuntime initializes the OnrampRuntime configuration.
func InitializeOnrampRuntime(onrampHome string, config *Config) error {
	once.Do(func() {
		runtimeConfig = &OnrampRuntime{
			OnrampHome: onrampHome,
			Config:     *config,
		}
	})

	return nil
}

// GetOnrampRuntime returns the OnrampRuntime configuration.
func GetOnrampRuntime() *OnrampRuntime {
	if runtimeConfig == nil {
		panic("OnrampRuntime is not initialized")
	}
	return runtimeConfig
}

// ResetOnrampRuntime resets the OnrampRuntime.
// This should only be used in tests to reset the singleton state.
func ResetOnrampRuntime() {
	runtimeConfig = nil
	once = sync.Once{}
}
