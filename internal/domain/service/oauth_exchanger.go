package service

import (
	"context"

	"wearsync/internal/domain/entity"
)

// OAuthGrant is the result of a successful authorization code exchange.
type OAuthGrant struct {
	Credential     entity.ProviderCredential
	ProviderUserID string
	Scopes         []string
}

// OAuthExchanger performs the provider side of the OAuth round trip.
type OAuthExchanger interface {
	// AuthorizeURL builds the provider consent URL for a state token.
	AuthorizeURL(provider entity.ProviderID, state, redirectURI string) (string, error)

	// Exchange trades an authorization code for provider credentials.
	Exchange(ctx context.Context, provider entity.ProviderID, code, redirectURI string) (*OAuthGrant, error)

	// Refresh returns a usable credential, refreshing it when expired.
	// refreshed is true when the returned credential differs from cred.
	Refresh(ctx context.Context, provider entity.ProviderID, cred *entity.ProviderCredential) (fresh *entity.ProviderCredential, refreshed bool, err error)
}
