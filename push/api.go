package push

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"pushkit_api/types"
)

var ErrPermissionDenied = errors.New("push: permission denied")

// APIError is a non-2xx response from one of the Firebase APIs.
type APIError struct {
	Op         string
	StatusCode int
	Status     string
	Message    string
}

func (e *APIError) Error() string {
	if e.Status != "" {
		return fmt.Sprintf("%s: %d %s: %s", e.Op, e.StatusCode, e.Status, e.Message)
	}
	return fmt.Sprintf("%s: %d: %s", e.Op, e.StatusCode, e.Message)
}

func (e *APIError) Is(target error) bool {
	return target == ErrPermissionDenied && (e.Status == "PERMISSION_DENIED" || e.StatusCode == http.StatusForbidden)
}

type installationRequest struct {
	FID         string `json:"fid"`
	AuthVersion string `json:"authVersion"`
	AppID       string `json:"appId"`
	SDKVersion  string `json:"sdkVersion"`
}

type installationResponse struct {
	Name         string `json:"name"`
	FID          string `json:"fid"`
	RefreshToken string `json:"refreshToken"`
	AuthToken    struct {
		Token     string `json:"token"`
		ExpiresIn string `json:"expiresIn"`
	} `json:"authToken"`
}

type webSubscription struct {
	Endpoint          string `json:"endpoint"`
	Auth              string `json:"auth"`
	P256dh            string `json:"p256dh"`
	ApplicationPubKey string `json:"applicationPubKey,omitempty"`
}

type registrationRequest struct {
	Web webSubscription `json:"web"`
}

type registrationResponse struct {
	Token string `json:"token"`
}

type errorEnvelope struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

func (r *Registrar) createInstallation(ctx context.Context, fid string) (*installationResponse, error) {
	url := fmt.Sprintf("%s/projects/%s/installations", r.installationsURL, r.config.ProjectID)

	var resp installationResponse
	err := r.post(ctx, "create installation", url, nil, installationRequest{
		FID:         fid,
		AuthVersion: types.FIREBASE_INSTALLATIONS_AUTH_VERSION,
		AppID:       r.config.AppID,
		SDKVersion:  types.FIREBASE_INSTALLATIONS_SDK_VERSION,
	}, &resp)
	if err != nil {
		return nil, err
	}

	if resp.AuthToken.Token == "" {
		return nil, errors.New("create installation: response has no auth token")
	}

	return &resp, nil
}

func (r *Registrar) register(ctx context.Context, authToken, vapidKey string) (string, error) {
	url := fmt.Sprintf("%s/projects/%s/registrations", r.registrationsURL, r.config.ProjectID)
	headers := map[string]string{
		types.FIREBASE_INSTALLATIONS_AUTH_HEADER: "FIS " + authToken,
	}

	var resp registrationResponse
	err := r.post(ctx, "register subscription", url, headers, registrationRequest{
		Web: webSubscription{
			Endpoint:          r.endpoint,
			Auth:              r.auth,
			P256dh:            r.p256dh,
			ApplicationPubKey: vapidKey,
		},
	}, &resp)
	if err != nil {
		return "", err
	}

	if resp.Token == "" {
		return "", errors.New("register subscription: response has no token")
	}

	return resp.Token, nil
}

func (r *Registrar) post(ctx context.Context, op, url string, headers map[string]string, body, out interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("%s: error encoding request: %w", op, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set(types.FIREBASE_API_KEY_HEADER, r.config.APIKey)
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	res, err := r.client.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer res.Body.Close()

	data, err := io.ReadAll(res.Body)
	if err != nil {
		return fmt.Errorf("%s: error reading response: %w", op, err)
	}

	if res.StatusCode < 200 || res.StatusCode > 299 {
		apiErr := &APIError{Op: op, StatusCode: res.StatusCode, Message: http.StatusText(res.StatusCode)}

		var envelope errorEnvelope
		if json.Unmarshal(data, &envelope) == nil && envelope.Error.Message != "" {
			apiErr.Status = envelope.Error.Status
			apiErr.Message = envelope.Error.Message
		}

		return apiErr
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%s: error decoding response: %w", op, err)
	}

	return nil
}
