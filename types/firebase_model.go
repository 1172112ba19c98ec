package types

import (
	"context"

	"cloud.google.com/go/firestore"
	"cloud.google.com/go/logging"
	firebase "firebase.google.com/go"
	"firebase.google.com/go/auth"
	"firebase.google.com/go/messaging"
	"firebase.google.com/go/storage"
)

// EntryLogger is the subset of *logging.Logger the service writes to.
type EntryLogger interface {
	Log(e logging.Entry)
}

// TokenRequester obtains push registration tokens for the configured app.
type TokenRequester interface {
	GetToken(ctx context.Context, vapidKey string) (string, error)
}

type FirebaseApp struct {
	Context       context.Context
	Config        PlatformConfig
	VAPIDKey      string
	Admin         *firebase.App
	DB            *firestore.Client
	Storage       *storage.Client
	Auth          *auth.Client
	Logger        EntryLogger
	MessageClient *messaging.Client
	Registrar     TokenRequester
}
