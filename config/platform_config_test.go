package config

import (
	"os"
	"path/filepath"
	"testing"

	"pushkit_api/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mapEnv(values map[string]string) Getenv {
	return func(key string) string {
		return values[key]
	}
}

func TestLoad_AllUnsetYieldsPlaceholders(t *testing.T) {
	cfg := Load(mapEnv(nil))

	assert.Equal(t, types.PlatformConfig{
		APIKey:            "your-api-key",
		AuthDomain:        "your-project.firebaseapp.com",
		ProjectID:         "your-project-id",
		StorageBucket:     "your-project.appspot.com",
		MessagingSenderID: "your-sender-id",
		AppID:             "your-app-id",
	}, cfg)
	assert.Len(t, cfg.UsesPlaceholders(), 6)
}

func TestLoad_SetValuesWin(t *testing.T) {
	cfg := Load(mapEnv(map[string]string{
		"EXPO_PUBLIC_FIREBASE_API_KEY":             "key",
		"EXPO_PUBLIC_FIREBASE_AUTH_DOMAIN":         "demo.firebaseapp.com",
		"EXPO_PUBLIC_FIREBASE_PROJECT_ID":          "demo",
		"EXPO_PUBLIC_FIREBASE_STORAGE_BUCKET":      "demo.appspot.com",
		"EXPO_PUBLIC_FIREBASE_MESSAGING_SENDER_ID": "1234",
		"EXPO_PUBLIC_FIREBASE_APP_ID":              "1:1234:web:abcd",
	}))

	assert.Equal(t, "key", cfg.APIKey)
	assert.Equal(t, "demo.firebaseapp.com", cfg.AuthDomain)
	assert.Equal(t, "demo", cfg.ProjectID)
	assert.Equal(t, "demo.appspot.com", cfg.StorageBucket)
	assert.Equal(t, "1234", cfg.MessagingSenderID)
	assert.Equal(t, "1:1234:web:abcd", cfg.AppID)
	assert.Empty(t, cfg.UsesPlaceholders())
}

func TestLoad_EmptyValueFallsBack(t *testing.T) {
	cfg := Load(mapEnv(map[string]string{
		"EXPO_PUBLIC_FIREBASE_PROJECT_ID": "",
		"EXPO_PUBLIC_FIREBASE_APP_ID":     "app",
	}))

	assert.Equal(t, types.PLACEHOLDER_PROJECT_ID, cfg.ProjectID)
	assert.Equal(t, "app", cfg.AppID)
	assert.Contains(t, cfg.UsesPlaceholders(), types.ENV_FIREBASE_PROJECT_ID)
	assert.NotContains(t, cfg.UsesPlaceholders(), types.ENV_FIREBASE_APP_ID)
}

func TestLoad_PrefixOverride(t *testing.T) {
	env := mapEnv(map[string]string{
		"ENV_PREFIX":                   "NEXT_PUBLIC_",
		"NEXT_PUBLIC_FIREBASE_API_KEY": "next-key",
		"EXPO_PUBLIC_FIREBASE_API_KEY": "expo-key",
	})

	assert.Equal(t, "next-key", Load(env).APIKey)
	assert.Equal(t, "NEXT_PUBLIC_FIREBASE_VAPID_KEY", Options(env)[6].Env)
}

func TestVAPIDKey(t *testing.T) {
	assert.Equal(t, "your-vapid-key", VAPIDKey(mapEnv(nil)))
	assert.Equal(t, "BPk", VAPIDKey(mapEnv(map[string]string{"EXPO_PUBLIC_FIREBASE_VAPID_KEY": "BPk"})))
}

func TestPushEndpoint(t *testing.T) {
	assert.Equal(t, types.PLACEHOLDER_PUSH_ENDPOINT, PushEndpoint(mapEnv(nil)))
}

func TestOptions_ListsEveryVariable(t *testing.T) {
	opts := Options(mapEnv(nil))
	require.Len(t, opts, 8)

	cfg := Load(mapEnv(nil))
	assert.Equal(t, "EXPO_PUBLIC_FIREBASE_API_KEY", opts[0].Env)
	assert.Equal(t, cfg.APIKey, opts[0].Placeholder)
	assert.Equal(t, "vapidKey", opts[6].Field)
}

func TestFirebaseConfig(t *testing.T) {
	cfg := Load(mapEnv(map[string]string{"EXPO_PUBLIC_FIREBASE_PROJECT_ID": "demo"}))
	fb := cfg.FirebaseConfig()

	assert.Equal(t, "demo", fb.ProjectID)
	assert.Equal(t, types.PLACEHOLDER_STORAGE_BUCKET, fb.StorageBucket)
}

func TestFromEnvironment_ReadsDotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("EXPO_PUBLIC_FIREBASE_APP_ID=from-dotenv\n"), 0o600))

	t.Setenv("EXPO_PUBLIC_FIREBASE_APP_ID", "")
	os.Unsetenv("EXPO_PUBLIC_FIREBASE_APP_ID")

	cfg := FromEnvironment(path, filepath.Join(t.TempDir(), "missing.env"))
	assert.Equal(t, "from-dotenv", cfg.AppID)
}

func TestLoadDotEnv_DoesNotOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("EXPO_PUBLIC_FIREBASE_API_KEY=from-dotenv\n"), 0o600))
	t.Setenv("EXPO_PUBLIC_FIREBASE_API_KEY", "from-env")

	LoadDotEnv(path)
	assert.Equal(t, "from-env", Load(os.Getenv).APIKey)
}
