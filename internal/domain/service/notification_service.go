package service

import (
	"context"
)

// MaxPushTokens is the most tokens one SendPush call accepts.
const MaxPushTokens = 500

// PushMessage is a notification shown on the user's phones. Data is
// delivered to the app alongside it.
type PushMessage struct {
	Title string
	Body  string
	Data  map[string]string
}

// PushReport summarizes one SendPush call. InvalidTokens lists tokens the
// push service no longer accepts; the caller should forget them.
type PushReport struct {
	Sent          int
	Failed        int
	InvalidTokens []string
}

// NotificationService delivers push notifications to registered phones.
type NotificationService interface {
	SendPush(ctx context.Context, tokens []string, msg PushMessage) (*PushReport, error)
}
