package postgres

import (
	"context"
	"time"

	"wearsync/internal/domain/entity"
	domainerrors "wearsync/internal/domain/errors"
	"wearsync/internal/domain/repository"
	"wearsync/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// authFlowRepository implements the repository.AuthFlowRepository interface.
type authFlowRepository struct {
	db *gorm.DB
}

// NewAuthFlowRepository is the constructor for authFlowRepository.
func NewAuthFlowRepository(db *gorm.DB) repository.AuthFlowRepository {
	return &authFlowRepository{
		db: db,
	}
}

// CreateFlow persists a new pending flow.
func (repo *authFlowRepository) CreateFlow(ctx context.Context, flow *entity.AuthFlowState) error {
	if flow.ID == uuid.Nil {
		flow.ID = uuid.New()
	}
	flowM := fromAuthFlowDomain(flow)

	if err := repo.db.WithContext(ctx).Create(flowM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create auth flow")
	}
	flow.CreatedAt = flowM.CreatedAt

	return nil
}

// ConsumeFlow deletes and returns the flow with stateHash.
// The delete is conditional on the row still existing, so a concurrent consumer loses.
func (repo *authFlowRepository) ConsumeFlow(ctx context.Context, stateHash string) (*entity.AuthFlowState, error) {
	var flowM model.AuthFlowStateModel

	if err := repo.db.WithContext(ctx).
		Where("state_hash = ?", stateHash).
		First(&flowM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAuthFlowNotFound
		}

		return nil, errors.Wrap(err, "failed to find auth flow")
	}

	result := repo.db.WithContext(ctx).
		Where("id = ?", flowM.ID).
		Delete(&model.AuthFlowStateModel{})
	if result.Error != nil {
		return nil, errors.Wrap(result.Error, "failed to consume auth flow")
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrAuthFlowNotFound
	}

	return toAuthFlowDomain(&flowM), nil
}

// DeleteExpiredFlows removes flows that expired before now.
func (repo *authFlowRepository) DeleteExpiredFlows(ctx context.Context, now time.Time) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("expires_at <= ?", now).
		Delete(&model.AuthFlowStateModel{})
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to delete expired auth flows")
	}

	return result.RowsAffected, nil
}

// --- Mapper Functions ---

func toAuthFlowDomain(data *model.AuthFlowStateModel) *entity.AuthFlowState {
	if data == nil {
		return nil
	}

	return &entity.AuthFlowState{
		ID:          data.ID,
		UserID:      data.UserID,
		Provider:    entity.ProviderID(data.Provider),
		StateHash:   data.StateHash,
		RedirectURI: data.RedirectURI,
		ExpiresAt:   data.ExpiresAt,
		CreatedAt:   data.CreatedAt,
	}
}

func fromAuthFlowDomain(data *entity.AuthFlowState) *model.AuthFlowStateModel {
	if data == nil {
		return nil
	}

	return &model.AuthFlowStateModel{
		ID:          data.ID,
		UserID:      data.UserID,
		Provider:    string(data.Provider),
		StateHash:   data.StateHash,
		RedirectURI: data.RedirectURI,
		ExpiresAt:   data.ExpiresAt,
		CreatedAt:   data.CreatedAt,
	}
}
