package notifications

import (
	"context"
	"errors"
	"fmt"

	"pushkit_api/types"

	"cloud.google.com/go/logging"
	"firebase.google.com/go/messaging"
)

// DryRunSender validates messages without delivering them. *messaging.Client implements it.
type DryRunSender interface {
	SendDryRun(ctx context.Context, message *messaging.Message) (string, error)
}

// VerifyRegistrationToken checks that FCM accepts the token as a message target.
func VerifyRegistrationToken(context context.Context, client DryRunSender, logger types.EntryLogger, token string) error {
	if token == "" {
		errorMsg := "registration token is empty"
		logger.Log(logging.Entry{
			Severity: logging.Error,
			Payload:  "Error verifying registration token",
			Labels:   map[string]string{"error": errorMsg},
		})
		return errors.New(errorMsg)
	}

	message := &messaging.Message{
		Data:  map[string]string{"type": "verify"},
		Token: token,
	}

	_, err := client.SendDryRun(context, message)
	if err != nil {
		logger.Log(logging.Entry{
			Severity: logging.Error,
			Payload:  "Error verifying registration token",
			Labels:   map[string]string{"error": err.Error()},
		})
		return fmt.Errorf("error verifying registration token: %w", err)
	}

	return nil
}
