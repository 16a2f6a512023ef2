package services

import (
	"context"
	"database/sql"

	"github.com/policia-dp/delegacia-api/internal/server/models"
	"github.com/policia-dp/delegacia-api/internal/server/repositories/repomanager"
)

// AgentService exposes CRUD operations over registered agents. Errors from
// the repository layer (common.ErrorNotFound, common.ErrorAlreadyExists)
// pass through untouched so the transport can map them to responses.
type AgentService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewAgentService(db *sql.DB, m repomanager.RepositoryManager) *AgentService {
	return &AgentService{db: db, repomanager: m}
}

// List returns every agent, password hashes excluded.
func (s *AgentService) List(ctx context.Context) ([]*models.Agent, error) {
	return s.repomanager.Agents(s.db).FindAll(ctx)
}

// Get returns a single agent by id.
func (s *AgentService) Get(ctx context.Context, id int64) (*models.Agent, error) {
	return s.repomanager.Agents(s.db).FindByID(ctx, id)
}

// Update replaces every mutable field of the agent identified by agent.ID.
func (s *AgentService) Update(ctx context.Context, agent *models.Agent) (*models.Agent, error) {
	return s.repomanager.Agents(s.db).Update(ctx, agent)
}

// UpdatePartial applies only the fields present in the patch.
func (s *AgentService) UpdatePartial(ctx context.Context, id int64, patch models.AgentPatch) (*models.Agent, error) {
	return s.repomanager.Agents(s.db).UpdatePartial(ctx, id, patch)
}

// Delete removes the agent by id.
func (s *AgentService) Delete(ctx context.Context, id int64) error {
	return s.repomanager.Agents(s.db).Delete(ctx, id)
}
