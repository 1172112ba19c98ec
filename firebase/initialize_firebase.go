package firebase

import (
	"context"
	"fmt"
	"strings"

	"pushkit_api/push"
	"pushkit_api/types"

	"cloud.google.com/go/logging"
	firebase "firebase.google.com/go"
	"google.golang.org/api/option"
)

// Settings is everything InitFirebaseApp needs besides client options.
type Settings struct {
	Config       types.PlatformConfig
	VAPIDKey     string
	PushEndpoint string
}

func InitFirebaseApp(ctx context.Context, settings Settings, opts ...option.ClientOption) (*types.FirebaseApp, error) {
	cfg := settings.Config

	// Initialize logging client
	loggingClient, err := logging.NewClient(ctx, cfg.ProjectID, opts...)
	if err != nil {
		return nil, fmt.Errorf("error initializing logging client: %w", err)
	}
	logger := loggingClient.Logger(types.FIREBASE_LOGGER_NAME)

	logSuccess(logger, "Logging client initialized successfully")

	if placeholders := cfg.UsesPlaceholders(); len(placeholders) > 0 {
		logger.Log(logging.Entry{
			Severity: logging.Warning,
			Payload:  "Platform config uses placeholder values",
			Labels:   map[string]string{"fields": strings.Join(placeholders, ",")},
		})
	}

	// Initialize the app from the platform config
	app, err := firebase.NewApp(ctx, cfg.FirebaseConfig(), opts...)
	if err != nil {
		logFailure(logger, "Error initializing Firebase app", err)
		return nil, err
	}
	logSuccess(logger, "Firebase app initialized successfully")

	// Initialize the Firestore client
	db, err := app.Firestore(ctx)
	if err != nil {
		logFailure(logger, "Error initializing Firestore client", err)
		return nil, err
	}
	logSuccess(logger, "Firestore client initialized successfully")

	// Initialize the Storage client, bound to the configured bucket
	gcs, err := app.Storage(ctx)
	if err != nil {
		logFailure(logger, "Error initializing Storage client", err)
		return nil, err
	}
	logSuccess(logger, "Storage client initialized successfully")

	// Initialize the Auth client
	auth, err := app.Auth(ctx)
	if err != nil {
		logFailure(logger, "Error initializing Auth client", err)
		return nil, err
	}
	logSuccess(logger, "Auth client initialized successfully")

	// Initialize the Messaging client
	messagingClient, err := app.Messaging(ctx)
	if err != nil {
		logFailure(logger, "Error initializing Messaging client", err)
		return nil, err
	}
	logSuccess(logger, "Messaging client initialized successfully")

	// Initialize the push token registrar
	endpoint := settings.PushEndpoint
	if endpoint == "" {
		endpoint = types.PLACEHOLDER_PUSH_ENDPOINT
	}
	registrar, err := push.NewRegistrar(cfg, push.WithEndpoint(endpoint))
	if err != nil {
		logFailure(logger, "Error initializing push registrar", err)
		return nil, err
	}
	logSuccess(logger, "Push registrar initialized successfully")

	return &types.FirebaseApp{
		Context:       ctx,
		Config:        cfg,
		VAPIDKey:      settings.VAPIDKey,
		Admin:         app,
		DB:            db,
		Storage:       gcs,
		Auth:          auth,
		Logger:        logger,
		MessageClient: messagingClient,
		Registrar:     registrar,
	}, nil
}

func logSuccess(logger types.EntryLogger, msg string) {
	logger.Log(logging.Entry{
		Severity: logging.Info,
		Payload:  msg,
		Labels:   map[string]string{"status": "success"},
	})
}

func logFailure(logger types.EntryLogger, msg string, err error) {
	logger.Log(logging.Entry{
		Severity: logging.Error,
		Payload:  msg,
		Labels:   map[string]string{"error": err.Error()},
	})
}
