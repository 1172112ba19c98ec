package notifications

import (
	"context"
	"errors"

	"pushkit_api/types"

	"cloud.google.com/go/logging"
)

// ErrMessagingUnavailable means no token request was attempted because the
// messaging handle is missing.
var ErrMessagingUnavailable = errors.New("messaging registrar is not initialized")

// TokenResult separates a retrieved token from the reason none was retrieved.
type TokenResult struct {
	Token string
	Err   error
}

func (r TokenResult) OK() bool {
	return r.Err == nil && r.Token != ""
}

// Attempted reports whether a request was issued to the platform.
func (r TokenResult) Attempted() bool {
	return !errors.Is(r.Err, ErrMessagingUnavailable)
}

// RequestPushToken asks the platform for a registration token and keeps the
// failure reason. Failures of an attempted request are logged once.
func RequestPushToken(ctx context.Context, requester types.TokenRequester, vapidKey string, logger types.EntryLogger) TokenResult {
	if requester == nil {
		return TokenResult{Err: ErrMessagingUnavailable}
	}

	token, err := requester.GetToken(ctx, vapidKey)
	if err == nil && token == "" {
		err = errors.New("platform returned an empty registration token")
	}
	if err != nil {
		logger.Log(logging.Entry{
			Severity: logging.Error,
			Payload:  "Error getting push registration token",
			Labels:   map[string]string{"error": err.Error()},
		})
		return TokenResult{Err: err}
	}

	return TokenResult{Token: token}
}

// GetPushToken is best effort: it returns the token and true on success, and
// "" and false on any failure. Every failure, including a missing messaging
// handle, is logged exactly once. Errors never reach the caller.
func GetPushToken(ctx context.Context, requester types.TokenRequester, vapidKey string, logger types.EntryLogger) (string, bool) {
	result := RequestPushToken(ctx, requester, vapidKey, logger)
	if !result.Attempted() {
		logger.Log(logging.Entry{
			Severity: logging.Error,
			Payload:  "Error getting push registration token",
			Labels:   map[string]string{"error": result.Err.Error()},
		})
	}
	return result.Token, result.OK()
}
