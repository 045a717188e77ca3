// Package authz resolve o escopo de unidades de um usuário autenticado e
// centraliza as regras de autorização usadas pelo motor de movimentação e
// pelo fluxo de aprovação de produtos.
package authz

import (
	"github.com/estoqueio/estoque-api/internal/domain"
	"github.com/estoqueio/estoque-api/internal/domain/entity"
	"github.com/estoqueio/estoque-api/internal/domain/repository"
)

// Escopo delimita sobre quais unidades o usuário autenticado pode agir.
// Irrestrito (cargo gerente) significa todas as unidades; caso contrário o
// escopo é exatamente a unidade de lotação do usuário.
type Escopo struct {
	UsuarioID  string
	Cargo      string
	UnidadeID  string // unidade de lotação
	Irrestrito bool
}

// PodeAcessarUnidade informa se o escopo cobre a unidade alvo.
func (e *Escopo) PodeAcessarUnidade(unidadeID string) bool {
	return e.Irrestrito || e.UnidadeID == unidadeID
}

// PodeAprovarProduto informa se o cargo pode precificar e aprovar produtos.
func PodeAprovarProduto(cargo string) bool {
	return cargo == entity.CargoGerente || cargo == entity.CargoFinanceiro
}

// Resolver carrega o usuário e produz o escopo de acesso da requisição.
type Resolver struct {
	usuarios repository.UsuarioRepository
}

// NewResolver constrói o resolvedor de escopo.
func NewResolver(usuarios repository.UsuarioRepository) *Resolver {
	return &Resolver{usuarios: usuarios}
}

// Resolve relê o usuário do banco (o token carrega apenas identidade) e decide
// o escopo. Usuário inexistente devolve ErrNaoAutorizado; cadastro ainda não
// aprovado devolve ErrAcessoNegado. Sempre executa antes de qualquer mutação.
func (r *Resolver) Resolve(usuarioID string) (*Escopo, error) {
	usuario, err := r.usuarios.GetByID(usuarioID)
	if err != nil {
		return nil, err
	}
	if usuario == nil {
		return nil, domain.ErrNaoAutorizado
	}
	if usuario.Status != entity.StatusAprovado {
		return nil, domain.ErrAcessoNegado
	}
	return &Escopo{
		UsuarioID:  usuario.ID,
		Cargo:      usuario.Cargo,
		UnidadeID:  usuario.UnidadeID,
		Irrestrito: usuario.Cargo == entity.CargoGerente,
	}, nil
}
