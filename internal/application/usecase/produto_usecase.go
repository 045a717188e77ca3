package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/estoqueio/estoque-api/internal/application/authz"
	"github.com/estoqueio/estoque-api/internal/application/dto"
	"github.com/estoqueio/estoque-api/internal/application/validation"
	"github.com/estoqueio/estoque-api/internal/domain"
	"github.com/estoqueio/estoque-api/internal/domain/entity"
	"github.com/estoqueio/estoque-api/internal/domain/repository"
)

// ProdutoUseCase casos de uso de produto: cadastro, consulta, atualização e o
// fluxo de aprovação (pendente -> aprovado, sem caminho de volta).
// Quantidade em estoque não é editável por aqui: muda apenas via movimentações.
type ProdutoUseCase struct {
	produtos   repository.ProdutoRepository
	categorias repository.CategoriaRepository
	unidades   repository.UnidadeRepository
}

// NewProdutoUseCase constrói o caso de uso.
func NewProdutoUseCase(
	produtos repository.ProdutoRepository,
	categorias repository.CategoriaRepository,
	unidades repository.UnidadeRepository,
) *ProdutoUseCase {
	return &ProdutoUseCase{produtos: produtos, categorias: categorias, unidades: unidades}
}

// Criar cria um produto na unidade do escopo (ou na informada, se permitida).
// Produtos nascem pendentes; se o criador tem permissão de aprovação e já
// informa os dois preços, o produto nasce aprovado.
func (uc *ProdutoUseCase) Criar(escopo *authz.Escopo, in dto.CriarProdutoRequest) (*dto.ProdutoResponse, error) {
	unidadeID := in.UnidadeID
	if unidadeID == "" {
		unidadeID = escopo.UnidadeID
	}
	if err := validation.ValidarObrigatorios(map[string]any{
		"nome":         in.Nome,
		"categoria_id": in.CategoriaID,
		"unidade_id":   unidadeID,
	}, []string{"nome", "categoria_id", "unidade_id"}); err != nil {
		return nil, err
	}
	if !escopo.PodeAcessarUnidade(unidadeID) {
		return nil, domain.ErrAcessoNegado
	}
	if err := validation.VerificarReferencias([]validation.Referencia{
		{Fonte: uc.categorias, ID: in.CategoriaID, Campo: "categoria_id"},
		{Fonte: uc.unidades, ID: unidadeID, Campo: "unidade_id"},
	}); err != nil {
		return nil, err
	}
	if in.CodigoBarras != "" {
		existente, err := uc.produtos.GetPorCodigoBarras(in.CodigoBarras)
		if err != nil {
			return nil, err
		}
		if existente != nil {
			return nil, domain.ErrDuplicado
		}
	}

	precoCusto := decimal.Zero
	precoVenda := decimal.Zero
	if in.PrecoCusto != nil {
		if !validation.NaoNegativo(*in.PrecoCusto) {
			return nil, &domain.ErroValidacao{Campos: []string{"preco_custo"}}
		}
		precoCusto = *in.PrecoCusto
	}
	if in.PrecoVenda != nil {
		if !validation.NaoNegativo(*in.PrecoVenda) {
			return nil, &domain.ErroValidacao{Campos: []string{"preco_venda"}}
		}
		precoVenda = *in.PrecoVenda
	}

	status := entity.StatusPendente
	if in.PrecoCusto != nil && in.PrecoVenda != nil && authz.PodeAprovarProduto(escopo.Cargo) {
		status = entity.StatusAprovado
	}

	quantidadeMinima := in.QuantidadeMinima
	if quantidadeMinima <= 0 {
		quantidadeMinima = 1
	}

	now := time.Now()
	produto := &entity.Produto{
		ID:               uuid.New().String(),
		Nome:             in.Nome,
		Descricao:        in.Descricao,
		CodigoBarras:     in.CodigoBarras,
		PrecoCusto:       precoCusto,
		PrecoVenda:       precoVenda,
		QuantidadeMinima: quantidadeMinima,
		DataValidade:     in.DataValidade,
		Lote:             in.Lote,
		Localizacao:      in.Localizacao,
		Imagem:           in.Imagem,
		Ativo:            false, // estoque inicial zero
		Status:           status,
		CategoriaID:      in.CategoriaID,
		UnidadeID:        unidadeID,
		UsuarioID:        escopo.UsuarioID,
		CriadoEm:         now,
		AtualizadoEm:     now,
	}
	if err := uc.produtos.Create(produto); err != nil {
		return nil, err
	}
	return toProdutoResponse(produto), nil
}

// GetByID obtém um produto, respeitando o escopo de unidades do ator.
func (uc *ProdutoUseCase) GetByID(escopo *authz.Escopo, id string) (*dto.ProdutoResponse, error) {
	produto, err := uc.produtos.GetByID(id)
	if err != nil {
		return nil, err
	}
	if produto == nil {
		return nil, domain.ErrNaoEncontrado
	}
	if !escopo.PodeAcessarUnidade(produto.UnidadeID) {
		return nil, domain.ErrAcessoNegado
	}
	return toProdutoResponse(produto), nil
}

// Listar lista produtos: gerente vê todas as unidades, demais cargos apenas a própria.
func (uc *ProdutoUseCase) Listar(escopo *authz.Escopo, limit, offset int) (*dto.ProdutoListResponse, error) {
	var (
		list []*entity.Produto
		err  error
	)
	if escopo.Irrestrito {
		list, err = uc.produtos.List(limit, offset)
	} else {
		list, err = uc.produtos.ListByUnidade(escopo.UnidadeID, limit, offset)
	}
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProdutoResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProdutoResponse(p))
	}
	return &dto.ProdutoListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Atualizar atualiza os campos descritivos de um produto. Se os dois preços
// forem informados em um produto pendente, ele transita para aprovado, mas
// apenas quando o ator tem a mesma permissão exigida pela aprovação dedicada.
func (uc *ProdutoUseCase) Atualizar(escopo *authz.Escopo, id string, in dto.AtualizarProdutoRequest) (*dto.ProdutoResponse, error) {
	produto, err := uc.produtos.GetByID(id)
	if err != nil {
		return nil, err
	}
	if produto == nil {
		return nil, domain.ErrNaoEncontrado
	}
	if !escopo.PodeAcessarUnidade(produto.UnidadeID) {
		return nil, domain.ErrAcessoNegado
	}

	if in.Nome != nil {
		produto.Nome = *in.Nome
	}
	if in.Descricao != nil {
		produto.Descricao = *in.Descricao
	}
	if in.CodigoBarras != nil && *in.CodigoBarras != produto.CodigoBarras {
		if *in.CodigoBarras != "" {
			existente, err := uc.produtos.GetPorCodigoBarras(*in.CodigoBarras)
			if err != nil {
				return nil, err
			}
			if existente != nil && existente.ID != produto.ID {
				return nil, domain.ErrDuplicado
			}
		}
		produto.CodigoBarras = *in.CodigoBarras
	}
	if in.PrecoCusto != nil {
		if !validation.NaoNegativo(*in.PrecoCusto) {
			return nil, &domain.ErroValidacao{Campos: []string{"preco_custo"}}
		}
		produto.PrecoCusto = *in.PrecoCusto
	}
	if in.PrecoVenda != nil {
		if !validation.NaoNegativo(*in.PrecoVenda) {
			return nil, &domain.ErroValidacao{Campos: []string{"preco_venda"}}
		}
		produto.PrecoVenda = *in.PrecoVenda
	}
	if in.QuantidadeMinima != nil && *in.QuantidadeMinima > 0 {
		produto.QuantidadeMinima = *in.QuantidadeMinima
	}
	if in.DataValidade != nil {
		produto.DataValidade = in.DataValidade
	}
	if in.Lote != nil {
		produto.Lote = *in.Lote
	}
	if in.Localizacao != nil {
		produto.Localizacao = *in.Localizacao
	}
	if in.Imagem != nil {
		produto.Imagem = *in.Imagem
	}
	if in.CategoriaID != nil {
		if err := validation.VerificarReferencias([]validation.Referencia{
			{Fonte: uc.categorias, ID: *in.CategoriaID, Campo: "categoria_id"},
		}); err != nil {
			return nil, err
		}
		produto.CategoriaID = *in.CategoriaID
	}

	// Aprovação implícita: os dois preços informados em produto pendente.
	// Exige o mesmo cargo da aprovação dedicada.
	if produto.Status == entity.StatusPendente && in.PrecoCusto != nil && in.PrecoVenda != nil {
		if !authz.PodeAprovarProduto(escopo.Cargo) {
			return nil, domain.ErrAcessoNegado
		}
		produto.Status = entity.StatusAprovado
	}

	produto.Ativo = produto.QuantidadeEstoque > 0
	produto.AtualizadoEm = time.Now()
	if err := uc.produtos.Update(produto); err != nil {
		return nil, err
	}
	return toProdutoResponse(produto), nil
}

// Aprovar é a transição dedicada pendente -> aprovado: um cargo com permissão
// (gerente ou financeiro) define os dois preços de uma vez. Reaprovar um
// produto já processado é rejeitado como violação de regra de negócio.
func (uc *ProdutoUseCase) Aprovar(escopo *authz.Escopo, id string, in dto.AprovarProdutoRequest) (*dto.ProdutoResponse, error) {
	if !authz.PodeAprovarProduto(escopo.Cargo) {
		return nil, domain.ErrAcessoNegado
	}
	if err := validation.ValidarObrigatorios(map[string]any{
		"preco_custo": in.PrecoCusto,
		"preco_venda": in.PrecoVenda,
	}, []string{"preco_custo", "preco_venda"}); err != nil {
		return nil, err
	}
	if !validation.NaoNegativo(in.PrecoCusto) {
		return nil, &domain.ErroValidacao{Campos: []string{"preco_custo"}}
	}
	if !validation.NaoNegativo(in.PrecoVenda) {
		return nil, &domain.ErroValidacao{Campos: []string{"preco_venda"}}
	}

	produto, err := uc.produtos.GetByID(id)
	if err != nil {
		return nil, err
	}
	if produto == nil {
		return nil, &domain.ErroReferencia{Campo: "produto_id"}
	}
	if produto.Status != entity.StatusPendente {
		return nil, domain.ErrConflito
	}

	produto.PrecoCusto = in.PrecoCusto
	produto.PrecoVenda = in.PrecoVenda
	produto.Status = entity.StatusAprovado
	produto.Ativo = produto.QuantidadeEstoque > 0
	produto.AtualizadoEm = time.Now()
	if err := uc.produtos.Update(produto); err != nil {
		return nil, err
	}
	return toProdutoResponse(produto), nil
}

func toProdutoResponse(p *entity.Produto) *dto.ProdutoResponse {
	if p == nil {
		return nil
	}
	return &dto.ProdutoResponse{
		ID:                p.ID,
		Nome:              p.Nome,
		Descricao:         p.Descricao,
		CodigoBarras:      p.CodigoBarras,
		PrecoCusto:        p.PrecoCusto,
		PrecoVenda:        p.PrecoVenda,
		QuantidadeEstoque: p.QuantidadeEstoque,
		QuantidadeMinima:  p.QuantidadeMinima,
		DataValidade:      p.DataValidade,
		Lote:              p.Lote,
		Localizacao:       p.Localizacao,
		Imagem:            p.Imagem,
		Ativo:             p.Ativo,
		Status:            p.Status,
		CategoriaID:       p.CategoriaID,
		UnidadeID:         p.UnidadeID,
		UsuarioID:         p.UsuarioID,
		CriadoEm:          p.CriadoEm,
		AtualizadoEm:      p.AtualizadoEm,
	}
}
