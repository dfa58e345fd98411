package notification

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"wearsync/config"
	"wearsync/internal/domain/service"

	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNew_WithoutFirebaseUsesNoop(t *testing.T) {
	for _, cfg := range []*config.Config{
		{},
		{Firebase: &config.FirebaseConfig{}},
	} {
		svc, err := New(Params{Ctx: context.Background(), Config: cfg, Logger: discardLogger()})
		require.NoError(t, err)
		assert.IsType(t, &noopService{}, svc)

		report, err := svc.SendPush(context.Background(), []string{"token"}, service.PushMessage{Title: "title"})
		require.NoError(t, err)
		assert.Equal(t, &service.PushReport{}, report)
	}
}

func TestFirebaseService_SendPush_Guards(t *testing.T) {
	svc := &firebaseService{logger: discardLogger()}

	report, err := svc.SendPush(context.Background(), nil, service.PushMessage{Title: "title"})
	require.NoError(t, err)
	assert.Zero(t, report.Sent)
	assert.Nil(t, report.InvalidTokens)

	tokens := make([]string, service.MaxPushTokens+1)
	_, err = svc.SendPush(context.Background(), tokens, service.PushMessage{Title: "title"})
	assert.ErrorContains(t, err, "token count exceeds limit")
}

func TestUnregisteredTokens(t *testing.T) {
	responses := []*messaging.SendResponse{
		{Success: true, MessageID: "m1"},
		{Error: errors.New("internal")},
		nil,
	}

	assert.Empty(t, unregisteredTokens([]string{"a", "b", "c"}, responses))
	assert.Empty(t, unregisteredTokens(nil, responses))
}
