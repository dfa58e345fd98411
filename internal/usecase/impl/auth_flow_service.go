package impl

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"log/slog"
	"net/url"
	"slices"
	"strings"
	"time"

	"wearsync/config"
	deliverycontext "wearsync/internal/delivery/context"
	"wearsync/internal/domain/entity"
	domainerrors "wearsync/internal/domain/errors"
	"wearsync/internal/domain/provider"
	"wearsync/internal/domain/repository"
	"wearsync/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const stateTokenBytes = 32

// States a device may be moved to pending_auth from when a new flow starts.
var reauthorizableStatuses = []entity.DeviceStatus{
	entity.DeviceStatusDisconnected,
	entity.DeviceStatusPendingAuth,
	entity.DeviceStatusConnected,
	entity.DeviceStatusError,
	entity.DeviceStatusTokenExpired,
}

type authFlowService struct {
	flowRepo     repository.AuthFlowRepository
	deviceRepo   repository.ConnectedDeviceRepository
	stateTTL     time.Duration
	allowedHosts []string
	logger       *slog.Logger
	now          func() time.Time
}

// AuthFlowServiceParams holds dependencies for AuthFlowService, injected by Fx.
type AuthFlowServiceParams struct {
	fx.In

	FlowRepo   repository.AuthFlowRepository
	DeviceRepo repository.ConnectedDeviceRepository
	Config     *config.Config
	Logger     *slog.Logger
}

// NewAuthFlowService creates a new auth flow service instance
func NewAuthFlowService(params AuthFlowServiceParams) usecase.AuthFlowUsecase {
	svc := &authFlowService{
		flowRepo:   params.FlowRepo,
		deviceRepo: params.DeviceRepo,
		stateTTL:   10 * time.Minute,
		logger:     params.Logger,
		now:        time.Now,
	}
	if params.Config != nil && params.Config.OAuth != nil {
		if params.Config.OAuth.StateTTL > 0 {
			svc.stateTTL = params.Config.OAuth.StateTTL
		}
		svc.allowedHosts = params.Config.OAuth.AllowedRedirectHosts
	}

	return svc
}

// CreateFlow starts an OAuth round trip for provider and returns the raw state token.
func (s *authFlowService) CreateFlow(
	ctx context.Context,
	userID uuid.UUID,
	providerID entity.ProviderID,
	redirectURI string,
) (*entity.AuthFlow, error) {
	if userID == uuid.Nil {
		return nil, domainerrors.ErrNotAuthenticated
	}
	if !provider.IsSupported(providerID) {
		return nil, domainerrors.ErrInvalidProvider
	}
	if err := s.validateRedirectURI(redirectURI); err != nil {
		return nil, err
	}

	state, err := newStateToken()
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate state token")
	}

	now := s.now()
	flow := &entity.AuthFlowState{
		ID:          uuid.New(),
		UserID:      userID,
		Provider:    providerID,
		StateHash:   hashStateToken(state),
		RedirectURI: redirectURI,
		ExpiresAt:   now.Add(s.stateTTL),
		CreatedAt:   now,
	}
	if err := s.flowRepo.CreateFlow(ctx, flow); err != nil {
		return nil, errors.Wrap(err, "failed to create auth flow")
	}

	s.markPendingAuth(ctx, userID, providerID)
	s.sweepExpired(ctx, now)

	return &entity.AuthFlow{
		State:     state,
		ExpiresAt: flow.ExpiresAt,
	}, nil
}

// ConsumeFlow redeems a state token exactly once.
func (s *authFlowService) ConsumeFlow(ctx context.Context, userID uuid.UUID, state string) (*entity.ConsumedAuthFlow, error) {
	// The row is deleted before any check so a rejected token cannot be retried.
	flow, err := s.flowRepo.ConsumeFlow(ctx, hashStateToken(state))
	if err != nil {
		if errors.Is(err, repository.ErrAuthFlowNotFound) {
			return nil, domainerrors.ErrExpiredOrInvalidState
		}

		return nil, errors.Wrap(err, "failed to consume auth flow")
	}

	if flow.IsExpired(s.now()) || userID == uuid.Nil || flow.UserID != userID {
		s.log(ctx).Warn("Rejected auth flow state",
			slog.String("provider", string(flow.Provider)),
			slog.Bool("expired", flow.IsExpired(s.now())),
		)

		return nil, domainerrors.ErrExpiredOrInvalidState
	}

	return &entity.ConsumedAuthFlow{
		UserID:      flow.UserID,
		Provider:    flow.Provider,
		RedirectURI: flow.RedirectURI,
	}, nil
}

func (s *authFlowService) validateRedirectURI(redirectURI string) error {
	u, err := url.Parse(redirectURI)
	if err != nil || !u.IsAbs() || u.Host == "" || (u.Scheme != "https" && u.Scheme != "http") {
		return domainerrors.ErrValidationFailed.WrapMessage("redirect_uri must be an absolute http(s) URL")
	}
	if len(s.allowedHosts) > 0 && !slices.Contains(s.allowedHosts, strings.ToLower(u.Hostname())) {
		return domainerrors.ErrValidationFailed.WrapMessage("redirect_uri host is not allowed")
	}

	return nil
}

// markPendingAuth moves an existing link of the provider to pending_auth unless it is syncing.
func (s *authFlowService) markPendingAuth(ctx context.Context, userID uuid.UUID, providerID entity.ProviderID) {
	device, err := s.deviceRepo.FindDeviceByUserAndProvider(ctx, userID, providerID)
	if err != nil {
		if !errors.Is(err, repository.ErrDeviceNotFound) {
			s.log(ctx).Warn("Failed to load device for new auth flow", slog.Any("error", err))
		}

		return
	}

	if _, err := s.deviceRepo.TransitionStatus(ctx, device.ID, reauthorizableStatuses, entity.DeviceStatusPendingAuth); err != nil {
		s.log(ctx).Warn("Failed to mark device pending auth",
			slog.String("device_id", device.ID.String()),
			slog.Any("error", err),
		)
	}
}

func (s *authFlowService) sweepExpired(ctx context.Context, now time.Time) {
	deleted, err := s.flowRepo.DeleteExpiredFlows(ctx, now)
	if err != nil {
		s.log(ctx).Warn("Failed to sweep expired auth flows", slog.Any("error", err))

		return
	}
	if deleted > 0 {
		s.log(ctx).Debug("Swept expired auth flows", slog.Int64("count", deleted))
	}
}

func (s *authFlowService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

func newStateToken() (string, error) {
	buf := make([]byte, stateTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}

	return base64.RawURLEncoding.EncodeToString(buf), nil
}

func hashStateToken(state string) string {
	sum := sha256.Sum256([]byte(state))

	return hex.EncodeToString(sum[:])
}
