package entity

import (
	"time"

	"github.com/google/uuid"
)

// AuthFlowState is a pending OAuth round trip. Only the hash of the state token is kept.
type AuthFlowState struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Provider    ProviderID
	StateHash   string
	RedirectURI string
	ExpiresAt   time.Time
	CreatedAt   time.Time
}

// IsExpired reports whether the flow is no longer usable at now.
func (s *AuthFlowState) IsExpired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

// AuthFlow is returned to the client when a flow is created.
type AuthFlow struct {
	State        string    `json:"state"`
	ExpiresAt    time.Time `json:"expires_at"`
	AuthorizeURL string    `json:"authorize_url,omitempty"`
}

// ConsumedAuthFlow is what a valid state token resolves to.
type ConsumedAuthFlow struct {
	UserID      uuid.UUID
	Provider    ProviderID
	RedirectURI string
}
