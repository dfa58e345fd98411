package repository

import (
	"context"
	"time"

	"wearsync/internal/domain/entity"

	"github.com/pkg/errors"
)

var (
	// ErrAuthFlowNotFound is returned when no pending flow matches a state hash.
	ErrAuthFlowNotFound = errors.New("auth flow not found")
)

// AuthFlowRepository stores pending OAuth round trips.
type AuthFlowRepository interface {
	// CreateFlow persists a new pending flow.
	CreateFlow(ctx context.Context, flow *entity.AuthFlowState) error

	// ConsumeFlow deletes and returns the flow with stateHash.
	// Only one caller can consume a given flow; the others get ErrAuthFlowNotFound.
	ConsumeFlow(ctx context.Context, stateHash string) (*entity.AuthFlowState, error)

	// DeleteExpiredFlows removes flows that expired before now.
	DeleteExpiredFlows(ctx context.Context, now time.Time) (int64, error)
}
