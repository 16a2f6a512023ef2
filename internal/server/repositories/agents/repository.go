// Package agents contains the persistence layer for agent credential records.
package agents

import (
	"context"

	"github.com/policia-dp/delegacia-api/internal/server/models"
)

// Repository is the store contract consumed after authorization and
// validation have passed. Implementations signal an email uniqueness
// conflict with common.ErrorAlreadyExists and a missing record with
// common.ErrorNotFound.
type Repository interface {
	FindAll(ctx context.Context) ([]*models.Agent, error)
	FindByID(ctx context.Context, id int64) (*models.Agent, error)
	FindByEmail(ctx context.Context, email string) (*models.Agent, error)
	Create(ctx context.Context, agent *models.Agent) (*models.Agent, error)
	Update(ctx context.Context, agent *models.Agent) (*models.Agent, error)
	UpdatePartial(ctx context.Context, id int64, patch models.AgentPatch) (*models.Agent, error)
	Delete(ctx context.Context, id int64) error
}
