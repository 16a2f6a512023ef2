// Package services contains server-side business logic. This file implements
// AuthService, which handles agent registration and login with password
// hashing and JWT issuance.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/policia-dp/delegacia-api/internal/common"
	"github.com/policia-dp/delegacia-api/internal/server/auth"
	"github.com/policia-dp/delegacia-api/internal/server/config"
	"github.com/policia-dp/delegacia-api/internal/server/models"
	"github.com/policia-dp/delegacia-api/internal/server/repositories/repomanager"
)

// AuthService provides authentication-related operations:
// - Register: create agents with a hashed password
// - Login: verify credentials and mint an access token
type AuthService struct {
	db                    *sql.DB
	repomanager           repomanager.RepositoryManager
	hasher                *auth.PasswordHasher
	jwtSecret             []byte
	tokenValidityDuration time.Duration
}

// NewAuthService constructs an AuthService using repositories and server config.
func NewAuthService(db *sql.DB, m repomanager.RepositoryManager, hasher *auth.PasswordHasher, cfg *config.Config) *AuthService {
	return &AuthService{
		db:                    db,
		repomanager:           m,
		hasher:                hasher,
		jwtSecret:             []byte(cfg.JWTSecret),
		tokenValidityDuration: cfg.TokenValidityDuration,
	}
}

// Register hashes the agent's password and stores the agent. A duplicate
// email surfaces as common.ErrorAlreadyExists.
func (s *AuthService) Register(ctx context.Context, agent *models.Agent, senha string) (*models.Agent, error) {
	hash, err := s.hasher.Hash(senha)
	if err != nil {
		return nil, fmt.Errorf("%w: hashing password: %v", common.ErrorInternal, err)
	}
	agent.SenhaHash = hash

	repo := s.repomanager.Agents(s.db)
	created, err := repo.Create(ctx, agent)
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("%w: creating agent: %v", common.ErrorInternal, err)
	}
	return created, nil
}

// Login verifies the email/password pair and, on success, returns the agent
// together with a signed access token. An unknown email and a wrong password
// produce the same common.ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, email, senha string) (*models.Agent, string, error) {
	if email == "" || senha == "" {
		return nil, "", common.ErrMissingCredentials
	}

	repo := s.repomanager.Agents(s.db)
	agent, err := repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, "", common.ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("%w: loading agent: %v", common.ErrorInternal, err)
	}

	ok, err := s.hasher.Verify(senha, agent.SenhaHash)
	if err != nil {
		return nil, "", fmt.Errorf("%w: verifying password: %v", common.ErrorInternal, err)
	}
	if !ok {
		return nil, "", common.ErrInvalidCredentials
	}

	token, err := auth.GenerateToken(agent.ID, agent.Cargo, s.jwtSecret, s.tokenValidityDuration)
	if err != nil {
		return nil, "", common.ErrTokenGeneration
	}
	return agent, token, nil
}
