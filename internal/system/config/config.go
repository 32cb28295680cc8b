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

// Package config provides structures and functions for loading and managing server configurations.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	yaml "gopkg.in/yaml.v3"
)

// ServerConfig holds the server configuration details.
type ServerConfig struct {
	Hostname string `yaml:"hostname"`
	Port     int    `yaml:"port"`
	HTTPOnly bool   `yaml:"http_only"`
}

// SecurityConfig holds the security configuration details.
type SecurityConfig struct {
	CertFile string `yaml:"cert_file"`
	KeyFile  string `yaml:"key_file"`
}

// DataSource holds the individual database connection details.
type DataSource struct {
	Type            string `yaml:"type"`
	Hostname        string `yaml:"hostname"`
	Port            int    `yaml:"port"`
	Name            string `yaml:"name"`
	Username        string `yaml:"username"`
	Password        string `yaml:"password"`
	SSLMode         string `yaml:"sslmode"`
	Path            string `yaml:"path"`
	Options         string `yaml:"options"`
	MaxOpenConns    int    `yaml:"max_open_conns"`
	MaxIdleConns    int    `yaml:"max_idle_conns"`
	ConnMaxLifetime int    `yaml:"conn_max_lifetime"`
}

// DatabaseConfig holds the different database configuration details.
type DatabaseConfig struct {
	Runtime DataSource `yaml:"runtime"`
}

// CacheConfig holds the session cache configuration details.
type CacheConfig struct {
	Disabled bool `yaml:"disabled"`
	Size     int  `yaml:"size"`
	TTL      int  `yaml:"ttl"`
}

// CORSConfig holds the CORS configuration details.
type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// WizardConfig holds the configuration details for the wizard orchestration service.
type WizardConfig struct {
	// ReturningUserTarget is the step a returning user lands on after the welcome-back screen.
	// Supported values are "basic-info" (continue onboarding) and "dashboard" (finish immediately).
	ReturningUserTarget string `yaml:"returning_user_target"`
}

// NotificationConfig holds the configuration details for transient notifications.
type NotificationConfig struct {
	// DisplayDuration is the number of seconds a notification stays visible before auto-clearing.
	DisplayDuration int `yaml:"display_duration"`
}

// Config holds the complete configuration details of the server.
type Config struct {
	Server       ServerConfig       `yaml:"server"`
	Security     SecurityConfig     `yaml:"security"`
	Database     DatabaseConfig     `yaml:"database"`
	Cache        CacheConfig        `yaml:"cache"`
	CORS         CORSConfig         `yaml:"cors"`
	Wizard       WizardConfig       `yaml:"wizard"`
	Notification NotificationConfig `yaml:"notification"`
}

// DefaultNotificationDisplayDuration is the fallback notification visibility period in seconds.
const DefaultNotificationDisplayDuration = 4

// DefaultReturningUserTarget is the fallback step for returning users after welcome-back.
const DefaultReturningUserTarget = "basic-info"

// LoadConfig loads the configurations from the specified file path.
func LoadConfig(path string) (*Config, error) {
	cleanPath := filepath.Clean(path)
	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", cleanPath, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", cleanPath, err)
	}

	applyDefaults(&cfg)
	return &cfg, nil
}

// applyDefaults fills in defaults for optional configurations.
func applyDefaults(cfg *Config) {
	if cfg.Notification.DisplayDuration <= 0 {
		cfg.Notification.DisplayDuration = DefaultNotificationDisplayDuration
	}
	if cfg.Wizard.ReturningUserTarget == "" {
		cfg.Wizard.ReturningUserTarget = DefaultReturningUserTarget
	}
}
