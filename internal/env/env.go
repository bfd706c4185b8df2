package env

import (
	"os"
	"strconv"
	"strings"
	"time"
)

func GetEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func GetInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(strings.TrimSpace(value)); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func GetBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolValue, err := strconv.ParseBool(strings.TrimSpace(value)); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func GetDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if duration, err := time.ParseDuration(strings.TrimSpace(value)); err == nil {
			return duration
		}
	}
	return defaultValue
}

// GetList splits a comma separated value, dropping empty entries.
func GetList(key string, defaultValue []string) []string {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}

// Server environment variable keys
const (
	EnvPort               = "PORT"
	EnvAppEnv             = "APP_ENV"
	EnvRateLimitPerMin    = "RATE_LIMIT_PER_MIN"
	EnvCORSAllowedOrigins = "CORS_ALLOWED_ORIGINS"
)

// Menu-related environment variable keys
const (
	EnvDefaultLocation = "MENU_DEFAULT_LOCATION"
	EnvLineWidth       = "MENU_LINE_WIDTH"
	EnvLocale          = "MENU_LOCALE"
	EnvTimezone        = "MENU_TIMEZONE"
	EnvColor           = "MENU_COLOR"

	// Upstream feeds
	EnvEatAPIBaseURL = "EAT_API_BASE_URL"
	EnvFeedTimeout   = "FEED_TIMEOUT"
)

/*
This project serves the daily menu of the TUM canteens as fixed-width text for terminals and scripts.
Mensa API Copyright (C) 2025 OpenSourceDUTH
    This program is free software: you can redistribute it and/or modify
    it under the terms of the GNU General Public License as published by
    the Free Software Foundation, either version 3 of the License, or
    (at your option) any later version.

    This program is distributed in the hope that it will be useful,
    but WITHOUT ANY WARRANTY; without even the implied warranty of
    MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
    GNU General Public License for more details.

    You should have received a copy of the GNU General Public License
    along with this program.  If not, see <https://www.gnu.org/licenses/>.
*/
