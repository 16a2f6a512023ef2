package agents

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/policia-dp/delegacia-api/internal/common"
	"github.com/policia-dp/delegacia-api/internal/dbx"
	"github.com/policia-dp/delegacia-api/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}

func (r *PostgresRepository) FindAll(ctx context.Context) ([]*models.Agent, error) {
	query :=
		`SELECT id, nome, email, cargo, data_de_incorporacao FROM agentes
		 ORDER BY id
		 `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := []*models.Agent{}
	for rows.Next() {
		a := &models.Agent{}
		if err := rows.Scan(&a.ID, &a.Nome, &a.Email, &a.Cargo, &a.DataDeIncorporacao); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) FindByID(ctx context.Context, id int64) (*models.Agent, error) {
	query :=
		`SELECT id, nome, email, cargo, data_de_incorporacao FROM agentes
		 WHERE id = $1
		 `

	agent := &models.Agent{}
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&agent.ID, &agent.Nome, &agent.Email, &agent.Cargo, &agent.DataDeIncorporacao)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return agent, nil
}

// FindByEmail is the only lookup that loads the password hash; it serves the
// login flow and nothing else.
func (r *PostgresRepository) FindByEmail(ctx context.Context, email string) (*models.Agent, error) {
	query :=
		`SELECT id, nome, email, senha, cargo, data_de_incorporacao FROM agentes
		 WHERE email = $1
		 `

	agent := &models.Agent{}
	err := r.db.QueryRowContext(ctx, query, email).
		Scan(&agent.ID, &agent.Nome, &agent.Email, &agent.SenhaHash, &agent.Cargo, &agent.DataDeIncorporacao)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return agent, nil
}

func (r *PostgresRepository) Create(ctx context.Context, agent *models.Agent) (*models.Agent, error) {
	query :=
		`INSERT INTO agentes (nome, email, senha, cargo, data_de_incorporacao)
         VALUES ($1, $2, $3, $4, $5)
		 RETURNING id
		 `

	err := r.db.QueryRowContext(ctx, query,
		agent.Nome, agent.Email, agent.SenhaHash, agent.Cargo, agent.DataDeIncorporacao).Scan(&agent.ID)

	if err != nil {
		if isUniqueViolation(err) {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return agent, nil
}

func (r *PostgresRepository) Update(ctx context.Context, agent *models.Agent) (*models.Agent, error) {
	query :=
		`UPDATE agentes SET nome = $1, email = $2, cargo = $3, data_de_incorporacao = $4
		 WHERE id = $5
		 RETURNING id, nome, email, cargo, data_de_incorporacao
		 `

	updated := &models.Agent{}
	err := r.db.QueryRowContext(ctx, query,
		agent.Nome, agent.Email, agent.Cargo, agent.DataDeIncorporacao, agent.ID).
		Scan(&updated.ID, &updated.Nome, &updated.Email, &updated.Cargo, &updated.DataDeIncorporacao)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		if isUniqueViolation(err) {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return updated, nil
}

func (r *PostgresRepository) UpdatePartial(ctx context.Context, id int64, patch models.AgentPatch) (*models.Agent, error) {
	if patch.IsEmpty() {
		return r.FindByID(ctx, id)
	}

	set := make([]string, 0, 4)
	args := make([]any, 0, 5)
	add := func(column string, value any) {
		args = append(args, value)
		set = append(set, fmt.Sprintf("%s = $%d", column, len(args)))
	}
	if patch.Nome != nil {
		add("nome", *patch.Nome)
	}
	if patch.Email != nil {
		add("email", *patch.Email)
	}
	if patch.Cargo != nil {
		add("cargo", *patch.Cargo)
	}
	if patch.DataDeIncorporacao != nil {
		add("data_de_incorporacao", *patch.DataDeIncorporacao)
	}

	args = append(args, id)
	query := fmt.Sprintf(
		`UPDATE agentes SET %s WHERE id = $%d RETURNING id, nome, email, cargo, data_de_incorporacao`,
		strings.Join(set, ", "), len(args))

	updated := &models.Agent{}
	err := r.db.QueryRowContext(ctx, query, args...).
		Scan(&updated.ID, &updated.Nome, &updated.Email, &updated.Cargo, &updated.DataDeIncorporacao)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		if isUniqueViolation(err) {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return updated, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM agentes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if affected == 0 {
		return common.ErrorNotFound
	}

	return nil
}
