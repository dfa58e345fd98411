package usecase

import (
	"context"

	"wearsync/internal/domain/entity"

	"github.com/google/uuid"
)

// AuthFlowUsecase mints and redeems single-use OAuth state tokens.
type AuthFlowUsecase interface {
	// CreateFlow starts an OAuth round trip for provider and returns the raw state token.
	CreateFlow(ctx context.Context, userID uuid.UUID, provider entity.ProviderID, redirectURI string) (*entity.AuthFlow, error)

	// ConsumeFlow redeems a state token exactly once.
	// Unknown, expired, replayed or foreign tokens all fail with ErrExpiredOrInvalidState.
	ConsumeFlow(ctx context.Context, userID uuid.UUID, state string) (*entity.ConsumedAuthFlow, error)
}
