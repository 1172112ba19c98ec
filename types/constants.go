package types

// Environment
const (
	ENV_PREFIX_VARIABLE = "ENV_PREFIX"
	DEFAULT_ENV_PREFIX  = "EXPO_PUBLIC_"

	ENV_FIREBASE_API_KEY             = "FIREBASE_API_KEY"
	ENV_FIREBASE_AUTH_DOMAIN         = "FIREBASE_AUTH_DOMAIN"
	ENV_FIREBASE_PROJECT_ID          = "FIREBASE_PROJECT_ID"
	ENV_FIREBASE_STORAGE_BUCKET      = "FIREBASE_STORAGE_BUCKET"
	ENV_FIREBASE_MESSAGING_SENDER_ID = "FIREBASE_MESSAGING_SENDER_ID"
	ENV_FIREBASE_APP_ID              = "FIREBASE_APP_ID"
	ENV_FIREBASE_VAPID_KEY           = "FIREBASE_VAPID_KEY"
	ENV_FIREBASE_PUSH_ENDPOINT       = "FIREBASE_PUSH_ENDPOINT"

	ENV_FIREBASE_CREDENTIALS_FILE = "FIREBASE_CREDENTIALS_FILE"
	ENV_PORT                      = "PORT"
	DEFAULT_PORT                  = "8080"
)

// Placeholders used when a variable is unset or empty. They keep every
// field populated but are not valid for real platform use.
const (
	PLACEHOLDER_API_KEY             = "your-api-key"
	PLACEHOLDER_AUTH_DOMAIN         = "your-project.firebaseapp.com"
	PLACEHOLDER_PROJECT_ID          = "your-project-id"
	PLACEHOLDER_STORAGE_BUCKET      = "your-project.appspot.com"
	PLACEHOLDER_MESSAGING_SENDER_ID = "your-sender-id"
	PLACEHOLDER_APP_ID              = "your-app-id"
	PLACEHOLDER_VAPID_KEY           = "your-vapid-key"
	PLACEHOLDER_PUSH_ENDPOINT       = "https://fcm.googleapis.com/fcm/send/your-subscription"
)

// Firebase
const (
	FIREBASE_LOGGER_NAME                = "pushkit-api"
	FIREBASE_MESSAGING_TOKEN_COLLECTION = "messagingTokens"
	FIREBASE_INSTALLATIONS_URL          = "https://firebaseinstallations.googleapis.com/v1"
	FIREBASE_REGISTRATIONS_URL          = "https://fcmregistrations.googleapis.com/v1"
	FIREBASE_INSTALLATIONS_SDK_VERSION  = "w:0.6.4"
	FIREBASE_INSTALLATIONS_AUTH_VERSION = "FIS_v2"
	FIREBASE_INSTALLATIONS_AUTH_HEADER  = "x-goog-firebase-installations-auth"
	FIREBASE_API_KEY_HEADER             = "x-goog-api-key"
)
