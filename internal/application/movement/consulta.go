package movement

import (
	"fmt"
	"time"

	"github.com/estoqueio/estoque-api/internal/application/authz"
	"github.com/estoqueio/estoque-api/internal/domain"
	"github.com/estoqueio/estoque-api/internal/domain/entity"
	"github.com/estoqueio/estoque-api/internal/domain/repository"
)

// ConsultarMovimentacoesUseCase lista o livro de movimentações por produto ou
// por unidade, com recorte de datas e paginação. O escopo do ator limita o que
// ele enxerga: estoquista e financeiro só consultam a própria unidade.
type ConsultarMovimentacoesUseCase struct {
	movimentacoes repository.MovimentacaoRepository
	produtos      repository.ProdutoRepository
}

// NewConsultarMovimentacoesUseCase constrói o caso de uso de consulta.
func NewConsultarMovimentacoesUseCase(
	movimentacoes repository.MovimentacaoRepository,
	produtos repository.ProdutoRepository,
) *ConsultarMovimentacoesUseCase {
	return &ConsultarMovimentacoesUseCase{movimentacoes: movimentacoes, produtos: produtos}
}

// PorProduto lista as movimentações de um produto. O produto precisa existir
// e estar em unidade acessível ao ator.
func (uc *ConsultarMovimentacoesUseCase) PorProduto(escopo *authz.Escopo, produtoID string, de, ate *time.Time, limit, offset int) ([]*entity.Movimentacao, error) {
	produto, err := uc.produtos.GetByID(produtoID)
	if err != nil {
		return nil, fmt.Errorf("buscar produto: %w", err)
	}
	if produto == nil {
		return nil, &domain.ErroReferencia{Campo: "produto_id"}
	}
	if !escopo.PodeAcessarUnidade(produto.UnidadeID) {
		return nil, domain.ErrAcessoNegado
	}
	return uc.movimentacoes.ListByProduto(produtoID, de, ate, limit, offset)
}

// PorUnidade lista as movimentações com origem ou destino na unidade.
func (uc *ConsultarMovimentacoesUseCase) PorUnidade(escopo *authz.Escopo, unidadeID string, de, ate *time.Time, limit, offset int) ([]*entity.Movimentacao, error) {
	if !escopo.PodeAcessarUnidade(unidadeID) {
		return nil, domain.ErrAcessoNegado
	}
	return uc.movimentacoes.ListByUnidade(unidadeID, de, ate, limit, offset)
}
