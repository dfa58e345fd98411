package notification

import (
	"context"
	"log/slog"

	"wearsync/config"
	"wearsync/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/option"
)

type firebaseService struct {
	client *messaging.Client
	logger *slog.Logger
}

// NewFirebaseService creates a Firebase Cloud Messaging notification service
func NewFirebaseService(ctx context.Context, cfg *config.FirebaseConfig, logger *slog.Logger) (service.NotificationService, error) {
	var opts []option.ClientOption
	if cfg.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsPath))
	}

	var appCfg *firebase.Config
	if cfg.ProjectID != "" {
		appCfg = &firebase.Config{ProjectID: cfg.ProjectID}
	}

	app, err := firebase.NewApp(ctx, appCfg, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	return &firebaseService{
		client: client,
		logger: logger,
	}, nil
}

// SendPush sends one multicast request for at most service.MaxPushTokens tokens
func (s *firebaseService) SendPush(ctx context.Context, tokens []string, msg service.PushMessage) (*service.PushReport, error) {
	if len(tokens) == 0 {
		return &service.PushReport{}, nil
	}

	if len(tokens) > service.MaxPushTokens {
		return nil, errors.Errorf("token count exceeds limit: %d (max %d)", len(tokens), service.MaxPushTokens)
	}

	response, err := s.client.SendEachForMulticast(ctx, &messaging.MulticastMessage{
		Tokens: tokens,
		Notification: &messaging.Notification{
			Title: msg.Title,
			Body:  msg.Body,
		},
		Data: msg.Data,
		Android: &messaging.AndroidConfig{
			CollapseKey: msg.Data["device_id"],
		},
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to send multicast notification")
	}

	report := &service.PushReport{
		Sent:          response.SuccessCount,
		Failed:        response.FailureCount,
		InvalidTokens: unregisteredTokens(tokens, response.Responses),
	}

	s.logger.Debug("Multicast notification sent",
		slog.Int("sent", report.Sent),
		slog.Int("failed", report.Failed),
		slog.Int("invalid_tokens", len(report.InvalidTokens)),
	)

	return report, nil
}

// unregisteredTokens returns the tokens FCM rejected as unknown or malformed.
// Responses are in token order.
func unregisteredTokens(tokens []string, responses []*messaging.SendResponse) []string {
	var invalid []string
	for i, resp := range responses {
		if resp == nil || resp.Error == nil || i >= len(tokens) {
			continue
		}
		if messaging.IsUnregistered(resp.Error) || messaging.IsInvalidArgument(resp.Error) {
			invalid = append(invalid, tokens[i])
		}
	}

	return invalid
}

// noopService drops notifications when Firebase is not configured
type noopService struct {
	logger *slog.Logger
}

func (s *noopService) SendPush(ctx context.Context, tokens []string, msg service.PushMessage) (*service.PushReport, error) {
	s.logger.DebugContext(ctx, "Push disabled, dropping notification",
		slog.String("title", msg.Title),
		slog.Int("token_count", len(tokens)),
	)

	return &service.PushReport{}, nil
}

// Params holds dependencies for NotificationService, injected by Fx
type Params struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// New creates the Firebase service, or a no-op service when Firebase is not configured
func New(params Params) (service.NotificationService, error) {
	cfg := params.Config.Firebase
	if cfg == nil || (cfg.ProjectID == "" && cfg.CredentialsPath == "") {
		params.Logger.Info("Firebase not configured, using no-op notification service")

		return &noopService{logger: params.Logger}, nil
	}

	params.Logger.Info("Using Firebase Cloud Messaging", slog.String("project_id", cfg.ProjectID))

	return NewFirebaseService(params.Ctx, cfg, params.Logger)
}

// Module provides the notification FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(New),
)
