// Package firebase initializes the platform context and its service handles
// once per process.
package firebase

import (
	"context"
	"log"
	"os"
	"sync"

	"pushkit_api/config"
	"pushkit_api/types"

	"google.golang.org/api/option"
)

// InitFunc builds the platform handles.
type InitFunc func(ctx context.Context) (*types.FirebaseApp, error)

// Bootstrap runs its InitFunc at most once and hands every caller the same
// result. A failed initialization is not retried.
type Bootstrap struct {
	initFn InitFunc
	once   sync.Once
	app    *types.FirebaseApp
	err    error
}

func NewBootstrap(initFn InitFunc) *Bootstrap {
	return &Bootstrap{initFn: initFn}
}

// Get initializes on first call. The handles outlive the caller, so init
// receives ctx's values but never its cancellation or deadline.
func (b *Bootstrap) Get(ctx context.Context) (*types.FirebaseApp, error) {
	b.once.Do(func() {
		b.app, b.err = b.initFn(context.WithoutCancel(ctx))
	})
	return b.app, b.err
}

var defaultBootstrap = NewBootstrap(initFromEnvironment)

// Default returns the process-wide handles, initializing them on first use.
func Default(ctx context.Context) (*types.FirebaseApp, error) {
	return defaultBootstrap.Get(ctx)
}

// MustDefault is Default for startup paths: a failed initialization stops the process.
func MustDefault(ctx context.Context) *types.FirebaseApp {
	app, err := Default(ctx)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase: %v\n", err)
	}
	return app
}

func initFromEnvironment(ctx context.Context) (*types.FirebaseApp, error) {
	cfg := config.FromEnvironment()

	var opts []option.ClientOption
	if file := os.Getenv(types.ENV_FIREBASE_CREDENTIALS_FILE); file != "" {
		opts = append(opts, option.WithCredentialsFile(file))
	}

	return InitFirebaseApp(ctx, Settings{
		Config:       cfg,
		VAPIDKey:     config.VAPIDKey(os.Getenv),
		PushEndpoint: config.PushEndpoint(os.Getenv),
	}, opts...)
}
