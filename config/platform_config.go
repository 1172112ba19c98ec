// Package config builds the platform configuration from the process environment.
package config

import (
	"os"

	"pushkit_api/types"

	"github.com/joho/godotenv"
)

// Getenv looks up one environment variable. os.Getenv satisfies it.
type Getenv func(key string) string

var options = []struct {
	suffix      string
	field       string
	placeholder string
	set         func(c *types.PlatformConfig, v string)
}{
	{types.ENV_FIREBASE_API_KEY, "apiKey", types.PLACEHOLDER_API_KEY, func(c *types.PlatformConfig, v string) { c.APIKey = v }},
	{types.ENV_FIREBASE_AUTH_DOMAIN, "authDomain", types.PLACEHOLDER_AUTH_DOMAIN, func(c *types.PlatformConfig, v string) { c.AuthDomain = v }},
	{types.ENV_FIREBASE_PROJECT_ID, "projectId", types.PLACEHOLDER_PROJECT_ID, func(c *types.PlatformConfig, v string) { c.ProjectID = v }},
	{types.ENV_FIREBASE_STORAGE_BUCKET, "storageBucket", types.PLACEHOLDER_STORAGE_BUCKET, func(c *types.PlatformConfig, v string) { c.StorageBucket = v }},
	{types.ENV_FIREBASE_MESSAGING_SENDER_ID, "messagingSenderId", types.PLACEHOLDER_MESSAGING_SENDER_ID, func(c *types.PlatformConfig, v string) { c.MessagingSenderID = v }},
	{types.ENV_FIREBASE_APP_ID, "appId", types.PLACEHOLDER_APP_ID, func(c *types.PlatformConfig, v string) { c.AppID = v }},
}

// Load reads the six platform fields. Unset or empty variables fall back to
// their placeholder, so every field of the result is populated.
func Load(getenv Getenv) types.PlatformConfig {
	prefix := Prefix(getenv)

	var cfg types.PlatformConfig
	for _, opt := range options {
		opt.set(&cfg, lookup(getenv, prefix+opt.suffix, opt.placeholder))
	}

	return cfg
}

// FromEnvironment loads any dotenv files and then the config from os.Getenv.
func FromEnvironment(dotenvPaths ...string) types.PlatformConfig {
	LoadDotEnv(dotenvPaths...)
	return Load(os.Getenv)
}

// VAPIDKey returns the key material for push token requests.
func VAPIDKey(getenv Getenv) string {
	return lookup(getenv, Prefix(getenv)+types.ENV_FIREBASE_VAPID_KEY, types.PLACEHOLDER_VAPID_KEY)
}

// PushEndpoint returns the web push subscription endpoint registered with FCM.
func PushEndpoint(getenv Getenv) string {
	return lookup(getenv, Prefix(getenv)+types.ENV_FIREBASE_PUSH_ENDPOINT, types.PLACEHOLDER_PUSH_ENDPOINT)
}

// Prefix is the variable prefix, EXPO_PUBLIC_ unless ENV_PREFIX overrides it.
func Prefix(getenv Getenv) string {
	return lookup(getenv, types.ENV_PREFIX_VARIABLE, types.DEFAULT_ENV_PREFIX)
}

// Options enumerates every recognised variable with its placeholder.
func Options(getenv Getenv) []types.ConfigOption {
	prefix := Prefix(getenv)

	result := make([]types.ConfigOption, 0, len(options)+2)
	for _, opt := range options {
		result = append(result, types.ConfigOption{
			Env:         prefix + opt.suffix,
			Field:       opt.field,
			Placeholder: opt.placeholder,
		})
	}

	result = append(result,
		types.ConfigOption{Env: prefix + types.ENV_FIREBASE_VAPID_KEY, Field: "vapidKey", Placeholder: types.PLACEHOLDER_VAPID_KEY},
		types.ConfigOption{Env: prefix + types.ENV_FIREBASE_PUSH_ENDPOINT, Field: "pushEndpoint", Placeholder: types.PLACEHOLDER_PUSH_ENDPOINT},
	)

	return result
}

// LoadDotEnv loads the given dotenv files (".env" when none are given).
// Missing files are ignored and variables already set are never overwritten.
func LoadDotEnv(paths ...string) {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, path := range paths {
		_ = godotenv.Load(path)
	}
}

func lookup(getenv Getenv, key, placeholder string) string {
	if value := getenv(key); value != "" {
		return value
	}
	return placeholder
}
