// Package push issues FCM registration tokens for a web push subscription.
//
// A token is obtained in two calls: a Firebase Installation is created for
// the app, and its auth token is then used to register the subscription and
// the VAPID key with the FCM registrations API.
package push

import (
	"context"
	"crypto/ecdh"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"pushkit_api/types"
)

var (
	ErrInvalidKeyMaterial = errors.New("push: VAPID key material is empty")
	ErrNoRegistrar        = errors.New("push: registrar is not initialized")
)

// Registrar requests registration tokens for one app and one subscription.
// It holds no mutable state, so concurrent GetToken calls are independent.
type Registrar struct {
	config           types.PlatformConfig
	endpoint         string
	installationsURL string
	registrationsURL string
	client           *http.Client

	p256dh string
	auth   string
}

type Option func(*Registrar)

func WithHTTPClient(client *http.Client) Option {
	return func(r *Registrar) { r.client = client }
}

func WithEndpoint(endpoint string) Option {
	return func(r *Registrar) { r.endpoint = endpoint }
}

// WithBaseURLs points the registrar at alternative installations and registrations APIs.
func WithBaseURLs(installationsURL, registrationsURL string) Option {
	return func(r *Registrar) {
		r.installationsURL = strings.TrimSuffix(installationsURL, "/")
		r.registrationsURL = strings.TrimSuffix(registrationsURL, "/")
	}
}

// NewRegistrar creates a registrar with a fresh subscription key pair.
func NewRegistrar(config types.PlatformConfig, opts ...Option) (*Registrar, error) {
	r := &Registrar{
		config:           config,
		endpoint:         types.PLACEHOLDER_PUSH_ENDPOINT,
		installationsURL: types.FIREBASE_INSTALLATIONS_URL,
		registrationsURL: types.FIREBASE_REGISTRATIONS_URL,
		client:           &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(r)
	}

	key, err := ecdh.P256().GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("error generating subscription key: %w", err)
	}
	secret := make([]byte, 16)
	if _, err := rand.Read(secret); err != nil {
		return nil, fmt.Errorf("error generating subscription auth secret: %w", err)
	}

	r.p256dh = base64.RawURLEncoding.EncodeToString(key.PublicKey().Bytes())
	r.auth = base64.RawURLEncoding.EncodeToString(secret)

	return r, nil
}

// GetToken creates an installation and registers the subscription, returning
// the FCM registration token.
func (r *Registrar) GetToken(ctx context.Context, vapidKey string) (string, error) {
	if r == nil {
		return "", ErrNoRegistrar
	}
	if strings.TrimSpace(vapidKey) == "" {
		return "", ErrInvalidKeyMaterial
	}

	fid, err := newFID()
	if err != nil {
		return "", err
	}

	installation, err := r.createInstallation(ctx, fid)
	if err != nil {
		return "", err
	}

	return r.register(ctx, installation.AuthToken.Token, vapidKey)
}

// newFID generates a Firebase Installation ID: 22 base64url characters whose
// first four bits are 0111.
func newFID() (string, error) {
	b := make([]byte, 17)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("error generating installation id: %w", err)
	}
	b[0] = 0x70 | (b[0] & 0x0F)

	return base64.RawURLEncoding.EncodeToString(b)[:22], nil
}
