package types

import firebase "firebase.google.com/go"

// PlatformConfig is the Firebase web configuration the platform context is built from.
type PlatformConfig struct {
	APIKey            string `json:"apiKey"`
	AuthDomain        string `json:"authDomain"`
	ProjectID         string `json:"projectId"`
	StorageBucket     string `json:"storageBucket"`
	MessagingSenderID string `json:"messagingSenderId"`
	AppID             string `json:"appId"`
}

// FirebaseConfig returns the subset of the config understood by the Admin SDK.
func (c PlatformConfig) FirebaseConfig() *firebase.Config {
	return &firebase.Config{
		ProjectID:     c.ProjectID,
		StorageBucket: c.StorageBucket,
	}
}

// UsesPlaceholders lists the env suffixes of fields that still hold their placeholder value.
func (c PlatformConfig) UsesPlaceholders() []string {
	var fields []string
	check := func(suffix, value, placeholder string) {
		if value == placeholder {
			fields = append(fields, suffix)
		}
	}

	check(ENV_FIREBASE_API_KEY, c.APIKey, PLACEHOLDER_API_KEY)
	check(ENV_FIREBASE_AUTH_DOMAIN, c.AuthDomain, PLACEHOLDER_AUTH_DOMAIN)
	check(ENV_FIREBASE_PROJECT_ID, c.ProjectID, PLACEHOLDER_PROJECT_ID)
	check(ENV_FIREBASE_STORAGE_BUCKET, c.StorageBucket, PLACEHOLDER_STORAGE_BUCKET)
	check(ENV_FIREBASE_MESSAGING_SENDER_ID, c.MessagingSenderID, PLACEHOLDER_MESSAGING_SENDER_ID)
	check(ENV_FIREBASE_APP_ID, c.AppID, PLACEHOLDER_APP_ID)

	return fields
}

// ConfigOption documents one recognised environment option.
type ConfigOption struct {
	Env         string `json:"env"`
	Field       string `json:"field"`
	Placeholder string `json:"placeholder"`
}

// MessagingRegistration is the document stored per client in the tokens collection.
// Owner is the UID of the user that registered the client.
type MessagingRegistration struct {
	ClientId string `json:"clientId" firestore:"clientId"`
	Token    string `json:"token" firestore:"token"`
	Owner    string `json:"owner" firestore:"owner"`
}
