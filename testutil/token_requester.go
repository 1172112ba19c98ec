package testutil

import (
	"context"
	"sync/atomic"
)

// TokenRequesterFunc adapts a function to types.TokenRequester.
type TokenRequesterFunc func(ctx context.Context, vapidKey string) (string, error)

func (f TokenRequesterFunc) GetToken(ctx context.Context, vapidKey string) (string, error) {
	return f(ctx, vapidKey)
}

// StaticTokenRequester returns the same outcome on every call and counts calls.
type StaticTokenRequester struct {
	Token string
	Err   error
	calls atomic.Int32
}

func (s *StaticTokenRequester) GetToken(ctx context.Context, vapidKey string) (string, error) {
	s.calls.Add(1)
	if s.Err != nil {
		return "", s.Err
	}
	return s.Token, nil
}

func (s *StaticTokenRequester) Calls() int {
	return int(s.calls.Load())
}
