// Package oauth talks to provider token endpoints through golang.org/x/oauth2.
package oauth

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"wearsync/config"
	"wearsync/internal/domain/entity"
	domainerrors "wearsync/internal/domain/errors"
	"wearsync/internal/domain/provider"
	"wearsync/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"golang.org/x/oauth2"
)

const tokenRequestTimeout = 15 * time.Second

type exchanger struct {
	clients    map[entity.ProviderID]config.OAuthClientConfig
	httpClient *http.Client

	// endpointFor is replaced in tests to point at a local token server.
	endpointFor func(p *provider.Provider) oauth2.Endpoint
}

// NewExchanger creates an OAuthExchanger for every provider with configured client credentials.
func NewExchanger(cfg *config.Config) service.OAuthExchanger {
	clients := make(map[entity.ProviderID]config.OAuthClientConfig)
	if cfg.OAuth != nil {
		for id, client := range cfg.OAuth.Providers {
			clients[entity.ProviderID(id)] = client
		}
	}

	return &exchanger{
		clients: clients,
		httpClient: &http.Client{
			Timeout:   tokenRequestTimeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		endpointFor: registryEndpoint,
	}
}

func registryEndpoint(p *provider.Provider) oauth2.Endpoint {
	return oauth2.Endpoint{AuthURL: p.AuthURL, TokenURL: p.TokenURL}
}

// AuthorizeURL builds the provider consent URL for a state token.
func (e *exchanger) AuthorizeURL(providerID entity.ProviderID, state, redirectURI string) (string, error) {
	p, cfg, err := e.oauthConfig(providerID, redirectURI)
	if err != nil {
		return "", err
	}

	opts := []oauth2.AuthCodeOption{oauth2.AccessTypeOffline}
	for key, value := range p.AuthParams {
		opts = append(opts, oauth2.SetAuthURLParam(key, value))
	}

	return cfg.AuthCodeURL(state, opts...), nil
}

// Exchange trades an authorization code for provider credentials.
func (e *exchanger) Exchange(ctx context.Context, providerID entity.ProviderID, code, redirectURI string) (*service.OAuthGrant, error) {
	p, cfg, err := e.oauthConfig(providerID, redirectURI)
	if err != nil {
		return nil, err
	}

	token, err := cfg.Exchange(e.clientContext(ctx), code)
	if err != nil {
		return nil, classifyTokenError(err, domainerrors.ErrProviderAuth)
	}

	return &service.OAuthGrant{
		Credential:     credentialFromToken(token),
		ProviderUserID: providerUserID(token, p.UserIDField),
		Scopes:         grantedScopes(token),
	}, nil
}

// Refresh returns cred untouched while it is valid and a refreshed credential otherwise.
func (e *exchanger) Refresh(
	ctx context.Context,
	providerID entity.ProviderID,
	cred *entity.ProviderCredential,
) (*entity.ProviderCredential, bool, error) {
	current := &oauth2.Token{
		AccessToken:  cred.AccessToken,
		RefreshToken: cred.RefreshToken,
		TokenType:    cred.TokenType,
		Expiry:       cred.Expiry,
	}
	if current.Valid() {
		return cred, false, nil
	}
	if cred.RefreshToken == "" {
		return nil, false, domainerrors.NewSyncFailure(domainerrors.ErrTokenExpired, "", "access token expired and no refresh token was issued", nil)
	}

	_, cfg, err := e.oauthConfig(providerID, "")
	if err != nil {
		return nil, false, err
	}

	token, err := cfg.TokenSource(e.clientContext(ctx), current).Token()
	if err != nil {
		return nil, false, classifyTokenError(err, domainerrors.ErrTokenExpired)
	}

	fresh := credentialFromToken(token)

	return &fresh, true, nil
}

func (e *exchanger) oauthConfig(providerID entity.ProviderID, redirectURI string) (*provider.Provider, *oauth2.Config, error) {
	p, ok := provider.Lookup(providerID)
	if !ok {
		return nil, nil, domainerrors.ErrInvalidProvider
	}

	client, ok := e.clients[providerID]
	if !ok || client.ClientID == "" {
		return nil, nil, errors.Wrapf(domainerrors.ErrInternalError, "oauth client for %s is not configured", providerID)
	}

	return p, &oauth2.Config{
		ClientID:     client.ClientID,
		ClientSecret: client.ClientSecret,
		Endpoint:     e.endpointFor(p),
		RedirectURL:  redirectURI,
		Scopes:       p.Scopes,
	}, nil
}

func (e *exchanger) clientContext(ctx context.Context) context.Context {
	return context.WithValue(ctx, oauth2.HTTPClient, e.httpClient)
}

// classifyTokenError turns a token endpoint failure into a SyncFailure carrying the provider's code.
// Rejections (4xx) get kind; server errors and transport failures are ErrSyncFailed.
func classifyTokenError(err error, kind *domainerrors.BaseError) error {
	var retrieveErr *oauth2.RetrieveError
	if !errors.As(err, &retrieveErr) {
		return domainerrors.NewSyncFailure(domainerrors.ErrSyncFailed, "", "", err)
	}

	code := retrieveErr.ErrorCode
	status := 0
	if retrieveErr.Response != nil {
		status = retrieveErr.Response.StatusCode
	}
	if code == "" {
		code = "HTTP_" + strconv.Itoa(status)
	}

	message := retrieveErr.ErrorDescription
	if message == "" && retrieveErr.ErrorCode == "" {
		message = strings.TrimSpace(string(retrieveErr.Body))
	}

	if status >= http.StatusInternalServerError {
		kind = domainerrors.ErrSyncFailed
	}

	return domainerrors.NewSyncFailure(kind, code, message, err)
}

func credentialFromToken(token *oauth2.Token) entity.ProviderCredential {
	return entity.ProviderCredential{
		AccessToken:  token.AccessToken,
		RefreshToken: token.RefreshToken,
		TokenType:    token.Type(),
		Expiry:       token.Expiry,
	}
}

// providerUserID reads the account id from the token response, then from the id_token claims.
func providerUserID(token *oauth2.Token, field string) string {
	if field == "" {
		return ""
	}

	parts := strings.Split(field, ".")
	if v := stringify(walk(token.Extra(parts[0]), parts[1:])); v != "" {
		return v
	}

	idToken, ok := token.Extra("id_token").(string)
	if !ok || idToken == "" {
		return ""
	}

	// Unverified: the id_token came straight from the token endpoint.
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(idToken, claims); err != nil {
		return ""
	}

	return stringify(walk(map[string]any(claims), parts))
}

func walk(v any, path []string) any {
	for _, key := range path {
		m, ok := v.(map[string]any)
		if !ok {
			return nil
		}
		v = m[key]
	}

	return v
}

func stringify(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case nil:
		return ""
	default:
		return fmt.Sprint(t)
	}
}

func grantedScopes(token *oauth2.Token) []string {
	raw, ok := token.Extra("scope").(string)
	if !ok || raw == "" {
		return nil
	}

	return strings.FieldsFunc(raw, func(r rune) bool { return r == ' ' || r == ',' })
}
