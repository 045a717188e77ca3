package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/estoqueio/estoque-api/internal/domain"
	"github.com/estoqueio/estoque-api/internal/domain/entity"
	"github.com/estoqueio/estoque-api/internal/domain/repository"
)

var _ repository.UsuarioRepository = (*UsuarioRepo)(nil)

const usuarioCols = `id, nome, email, cpf, senha, cargo, status, unidade_id, criado_em, atualizado_em`

// UsuarioRepo implementação de UsuarioRepository sobre PostgreSQL (usável com pool ou tx).
type UsuarioRepo struct {
	q Querier
}

// NewUsuarioRepository constrói o adaptador de persistência de usuários.
func NewUsuarioRepository(q Querier) *UsuarioRepo {
	return &UsuarioRepo{q: q}
}

// Create persiste um novo usuário.
func (r *UsuarioRepo) Create(usuario *entity.Usuario) error {
	query := `
		INSERT INTO usuarios (` + usuarioCols + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		usuario.ID, usuario.Nome, usuario.Email, usuario.CPF, usuario.Senha,
		usuario.Cargo, usuario.Status, usuario.UnidadeID, usuario.CriadoEm, usuario.AtualizadoEm,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicado
		}
		return fmt.Errorf("insert usuario: %w", err)
	}
	return nil
}

// GetByID obtém um usuário por ID.
func (r *UsuarioRepo) GetByID(id string) (*entity.Usuario, error) {
	return r.scanOne(`SELECT `+usuarioCols+` FROM usuarios WHERE id = $1`, id)
}

// GetByEmail obtém um usuário por e-mail.
func (r *UsuarioRepo) GetByEmail(email string) (*entity.Usuario, error) {
	return r.scanOne(`SELECT `+usuarioCols+` FROM usuarios WHERE email = $1 LIMIT 1`, email)
}

// GetByCPF obtém um usuário por CPF (já normalizado, só dígitos).
func (r *UsuarioRepo) GetByCPF(cpf string) (*entity.Usuario, error) {
	return r.scanOne(`SELECT `+usuarioCols+` FROM usuarios WHERE cpf = $1 LIMIT 1`, cpf)
}

// Update atualiza um usuário.
func (r *UsuarioRepo) Update(usuario *entity.Usuario) error {
	query := `
		UPDATE usuarios SET nome = $2, email = $3, cpf = $4, senha = $5,
			cargo = $6, status = $7, unidade_id = $8, atualizado_em = $9
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		usuario.ID, usuario.Nome, usuario.Email, usuario.CPF, usuario.Senha,
		usuario.Cargo, usuario.Status, usuario.UnidadeID, usuario.AtualizadoEm,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicado
		}
		return fmt.Errorf("update usuario: %w", err)
	}
	return nil
}

// ListByUnidade lista usuários de uma unidade com paginação.
func (r *UsuarioRepo) ListByUnidade(unidadeID string, limit, offset int) ([]*entity.Usuario, error) {
	query := `SELECT ` + usuarioCols + `
		FROM usuarios WHERE unidade_id = $1 ORDER BY criado_em DESC LIMIT $2 OFFSET $3`
	return r.scanMany(query, unidadeID, limit, offset)
}

// List lista usuários de todas as unidades com paginação.
func (r *UsuarioRepo) List(limit, offset int) ([]*entity.Usuario, error) {
	query := `SELECT ` + usuarioCols + `
		FROM usuarios ORDER BY criado_em DESC LIMIT $1 OFFSET $2`
	return r.scanMany(query, limit, offset)
}

// Exists verifica se um usuário existe.
func (r *UsuarioRepo) Exists(id string) (bool, error) {
	var ok bool
	err := r.q.QueryRow(context.Background(), `SELECT EXISTS (SELECT 1 FROM usuarios WHERE id = $1)`, id).Scan(&ok)
	if err != nil {
		return false, fmt.Errorf("exists usuario: %w", err)
	}
	return ok, nil
}

// Delete remove um usuário por ID.
func (r *UsuarioRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM usuarios WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrConflito
		}
		return fmt.Errorf("delete usuario: %w", err)
	}
	return nil
}

func (r *UsuarioRepo) scanOne(query string, args ...any) (*entity.Usuario, error) {
	var u entity.Usuario
	err := r.q.QueryRow(context.Background(), query, args...).Scan(
		&u.ID, &u.Nome, &u.Email, &u.CPF, &u.Senha, &u.Cargo, &u.Status,
		&u.UnidadeID, &u.CriadoEm, &u.AtualizadoEm,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get usuario: %w", err)
	}
	return &u, nil
}

func (r *UsuarioRepo) scanMany(query string, args ...any) ([]*entity.Usuario, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list usuarios: %w", err)
	}
	defer rows.Close()
	var list []*entity.Usuario
	for rows.Next() {
		var u entity.Usuario
		if err := rows.Scan(&u.ID, &u.Nome, &u.Email, &u.CPF, &u.Senha, &u.Cargo, &u.Status,
			&u.UnidadeID, &u.CriadoEm, &u.AtualizadoEm); err != nil {
			return nil, fmt.Errorf("scan usuario: %w", err)
		}
		list = append(list, &u)
	}
	return list, rows.Err()
}
