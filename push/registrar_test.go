package push

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"pushkit_api/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testConfig = types.PlatformConfig{
	APIKey:            "api-key",
	AuthDomain:        "demo.firebaseapp.com",
	ProjectID:         "demo",
	StorageBucket:     "demo.appspot.com",
	MessagingSenderID: "1234",
	AppID:             "1:1234:web:abcd",
}

type fakeFirebase struct {
	server        *httptest.Server
	installations atomic.Int32
	registrations atomic.Int32

	mu            sync.Mutex
	installation  installationRequest
	registration  registrationRequest
	headers       http.Header
	registerError int
}

func newFakeFirebase(t *testing.T) *fakeFirebase {
	f := &fakeFirebase{}
	mux := http.NewServeMux()

	mux.HandleFunc("/installations/projects/demo/installations", func(w http.ResponseWriter, r *http.Request) {
		n := f.installations.Add(1)

		var req installationRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		f.mu.Lock()
		f.installation = req
		f.mu.Unlock()

		if r.Header.Get(types.FIREBASE_API_KEY_HEADER) != "api-key" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		json.NewEncoder(w).Encode(map[string]interface{}{
			"name": "projects/demo/installations/" + req.FID,
			"fid":  req.FID,
			"authToken": map[string]string{
				"token":     "fis-" + string(rune('a'+n-1)),
				"expiresIn": "604800s",
			},
		})
	})

	mux.HandleFunc("/registrations/projects/demo/registrations", func(w http.ResponseWriter, r *http.Request) {
		f.registrations.Add(1)

		var req registrationRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		f.mu.Lock()
		f.registration = req
		f.headers = r.Header.Clone()
		status := f.registerError
		f.mu.Unlock()

		if status != 0 {
			w.WriteHeader(status)
			json.NewEncoder(w).Encode(map[string]interface{}{
				"error": map[string]interface{}{
					"code":    status,
					"message": "Missing required authentication credential.",
					"status":  "PERMISSION_DENIED",
				},
			})
			return
		}

		json.NewEncoder(w).Encode(map[string]string{
			"token": "tok-" + r.Header.Get(types.FIREBASE_INSTALLATIONS_AUTH_HEADER)[4:],
		})
	})

	f.server = httptest.NewServer(mux)
	t.Cleanup(f.server.Close)

	return f
}

func (f *fakeFirebase) registrar(t *testing.T) *Registrar {
	r, err := NewRegistrar(testConfig,
		WithBaseURLs(f.server.URL+"/installations/", f.server.URL+"/registrations"),
		WithEndpoint("https://push.example.com/sub/1"),
		WithHTTPClient(f.server.Client()),
	)
	require.NoError(t, err)
	return r
}

func TestGetToken_Success(t *testing.T) {
	f := newFakeFirebase(t)
	r := f.registrar(t)

	token, err := r.GetToken(context.Background(), "BPvapid")
	require.NoError(t, err)
	assert.Equal(t, "tok-fis-a", token)

	assert.Equal(t, "1:1234:web:abcd", f.installation.AppID)
	assert.Equal(t, types.FIREBASE_INSTALLATIONS_AUTH_VERSION, f.installation.AuthVersion)
	assert.Len(t, f.installation.FID, 22)

	assert.Equal(t, "https://push.example.com/sub/1", f.registration.Web.Endpoint)
	assert.Equal(t, "BPvapid", f.registration.Web.ApplicationPubKey)
	assert.Equal(t, "api-key", f.headers.Get(types.FIREBASE_API_KEY_HEADER))
	assert.Equal(t, "FIS fis-a", f.headers.Get(types.FIREBASE_INSTALLATIONS_AUTH_HEADER))

	p256dh, err := base64.RawURLEncoding.DecodeString(f.registration.Web.P256dh)
	require.NoError(t, err)
	assert.Len(t, p256dh, 65)
	auth, err := base64.RawURLEncoding.DecodeString(f.registration.Web.Auth)
	require.NoError(t, err)
	assert.Len(t, auth, 16)
}

func TestGetToken_EmptyKeyMaterial(t *testing.T) {
	f := newFakeFirebase(t)
	r := f.registrar(t)

	_, err := r.GetToken(context.Background(), "  ")
	assert.ErrorIs(t, err, ErrInvalidKeyMaterial)
	assert.Zero(t, f.installations.Load())
}

func TestGetToken_PermissionDenied(t *testing.T) {
	f := newFakeFirebase(t)
	f.registerError = http.StatusForbidden
	r := f.registrar(t)

	_, err := r.GetToken(context.Background(), "BPvapid")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPermissionDenied)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "register subscription", apiErr.Op)
	assert.Equal(t, "PERMISSION_DENIED", apiErr.Status)
}

func TestGetToken_UnparseableErrorBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte("upstream down"))
	}))
	defer server.Close()

	r, err := NewRegistrar(testConfig, WithBaseURLs(server.URL, server.URL))
	require.NoError(t, err)

	_, err = r.GetToken(context.Background(), "BPvapid")
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusServiceUnavailable, apiErr.StatusCode)
	assert.Equal(t, "create installation", apiErr.Op)
	assert.NotErrorIs(t, err, ErrPermissionDenied)
}

func TestGetToken_HonorsContext(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer server.Close()
	defer close(release)

	r, err := NewRegistrar(testConfig, WithBaseURLs(server.URL, server.URL))
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err = r.GetToken(ctx, "BPvapid")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestGetToken_ConcurrentCallsAreIndependent(t *testing.T) {
	f := newFakeFirebase(t)
	r := f.registrar(t)

	const calls = 5
	tokens := make([]string, calls)
	var wg sync.WaitGroup
	for i := 0; i < calls; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			token, err := r.GetToken(context.Background(), "BPvapid")
			assert.NoError(t, err)
			tokens[i] = token
		}(i)
	}
	wg.Wait()

	assert.EqualValues(t, calls, f.installations.Load())
	assert.EqualValues(t, calls, f.registrations.Load())
	for _, token := range tokens {
		assert.NotEmpty(t, token)
	}
}

func TestNewFID(t *testing.T) {
	for i := 0; i < 20; i++ {
		fid, err := newFID()
		require.NoError(t, err)
		require.Len(t, fid, 22)

		raw, err := base64.RawURLEncoding.DecodeString(fid + "A")
		require.NoError(t, err)
		assert.Equal(t, byte(0x70), raw[0]&0xF0)
	}
}

func TestGetToken_NilRegistrar(t *testing.T) {
	var r *Registrar
	var requester types.TokenRequester = r

	token, err := requester.GetToken(context.Background(), "BPvapid")
	assert.Empty(t, token)
	assert.ErrorIs(t, err, ErrNoRegistrar)
}
