package movement

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/estoqueio/estoque-api/internal/application/authz"
	"github.com/estoqueio/estoque-api/internal/application/dto"
	"github.com/estoqueio/estoque-api/internal/application/validation"
	"github.com/estoqueio/estoque-api/internal/domain"
	"github.com/estoqueio/estoque-api/internal/domain/entity"
	"github.com/estoqueio/estoque-api/internal/domain/repository"
)

// RegistrarMovimentacaoUseCase registra movimentações de estoque de forma
// transacional (ENTRADA, SAIDA, TRANSFERENCIA, AJUSTE) com bloqueio de linha
// (SELECT FOR UPDATE) e Commit/Rollback.
//
// Toda a validação acontece antes de abrir a transação; qualquer falha na fase
// de commit desfaz o lançamento e as atualizações de estoque juntos.
type RegistrarMovimentacaoUseCase struct {
	txRunner TxRunner
	produtos repository.ProdutoRepository
	usuarios repository.UsuarioRepository
	unidades repository.UnidadeRepository
}

// NewRegistrarMovimentacaoUseCase constrói o caso de uso.
func NewRegistrarMovimentacaoUseCase(
	txRunner TxRunner,
	produtos repository.ProdutoRepository,
	usuarios repository.UsuarioRepository,
	unidades repository.UnidadeRepository,
) *RegistrarMovimentacaoUseCase {
	return &RegistrarMovimentacaoUseCase{
		txRunner: txRunner,
		produtos: produtos,
		usuarios: usuarios,
		unidades: unidades,
	}
}

// Resultado é o retorno do commit: o lançamento criado e o estoque resultante
// do produto de origem.
type Resultado struct {
	Movimentacao      *entity.Movimentacao
	EstoqueResultante int64
}

// Registrar valida a requisição (falha no primeiro problema, cada categoria
// com erro distinto) e então aplica o movimento em uma única transação:
// insere o lançamento, atualiza a quantidade do produto de origem e, em
// transferências, credita ou cria o produto na unidade de destino.
//
// Semântica por tipo:
//
//	ENTRADA       novo = atual + quantidade
//	SAIDA         novo = atual - quantidade
//	AJUSTE        novo = quantidade (absoluto, não é delta)
//	TRANSFERENCIA origem perde quantidade; destino recebe em produto ativo de
//	              mesmo nome, ou em um novo registro pendente criado na hora
//
// O clamp final em zero e o recálculo de ativo valem para todos os tipos.
func (uc *RegistrarMovimentacaoUseCase) Registrar(ctx context.Context, escopo *authz.Escopo, in dto.RegistrarMovimentacaoRequest) (*Resultado, error) {
	// 1. Campos obrigatórios (a ordem determina a mensagem)
	valores := map[string]any{
		"tipo":       in.Tipo,
		"quantidade": in.Quantidade,
		"produto_id": in.ProdutoID,
		"usuario_id": escopo.UsuarioID,
	}
	if in.Quantidade == 0 {
		valores["quantidade"] = nil
	}
	if err := validation.ValidarObrigatorios(valores, []string{"tipo", "quantidade", "produto_id", "usuario_id"}); err != nil {
		return nil, err
	}
	if !entity.TipoValido(in.Tipo) {
		return nil, fmt.Errorf("tipo de movimentação desconhecido %q: %w", in.Tipo, domain.ErrEntradaInvalida)
	}

	// 2. Quantidade estritamente positiva
	if !validation.Positivo(in.Quantidade) {
		return nil, fmt.Errorf("quantidade deve ser maior que zero: %w", domain.ErrEntradaInvalida)
	}

	// 3. Unidade de origem: explícita ou a lotação do ator
	origem := in.UnidadeOrigemID
	if origem == "" {
		origem = escopo.UnidadeID
	}
	if origem == "" {
		return nil, &domain.ErroValidacao{Campos: []string{"unidade_origem_id"}}
	}

	// 4. Transferência exige destino distinto da origem
	destino := in.UnidadeDestinoID
	if in.Tipo == entity.TipoTransferencia {
		if destino == "" {
			return nil, &domain.ErroValidacao{Campos: []string{"unidade_destino_id"}}
		}
		if destino == origem {
			return nil, fmt.Errorf("unidade de destino deve ser diferente da origem: %w", domain.ErrConflito)
		}
	}

	// 5. Autorização: gerente ou escopo igual à unidade de origem
	if !escopo.PodeAcessarUnidade(origem) {
		return nil, domain.ErrAcessoNegado
	}

	// 6. Existência das referências (interrompe na primeira ausente)
	refs := []validation.Referencia{
		{Fonte: uc.produtos, ID: in.ProdutoID, Campo: "produto_id"},
		{Fonte: uc.usuarios, ID: escopo.UsuarioID, Campo: "usuario_id"},
		{Fonte: uc.unidades, ID: origem, Campo: "unidade_origem_id"},
	}
	if in.Tipo == entity.TipoTransferencia {
		refs = append(refs, validation.Referencia{Fonte: uc.unidades, ID: destino, Campo: "unidade_destino_id"})
	}
	if err := validation.VerificarReferencias(refs); err != nil {
		return nil, err
	}

	// 7. Regra de negócio: saída e transferência não podem exceder o estoque
	if in.Tipo == entity.TipoSaida || in.Tipo == entity.TipoTransferencia {
		produto, err := uc.produtos.GetByID(in.ProdutoID)
		if err != nil {
			return nil, err
		}
		if produto == nil {
			return nil, &domain.ErroReferencia{Campo: "produto_id"}
		}
		if produto.QuantidadeEstoque < in.Quantidade {
			return nil, &domain.ErroEstoque{Atual: produto.QuantidadeEstoque, Solicitada: in.Quantidade}
		}
	}

	now := time.Now()
	var resultado *Resultado

	// Transação: Commit se tudo ok, Rollback se algo falhar (TxRunner.Run cuida)
	err := uc.txRunner.Run(ctx, func(
		movRepo repository.MovimentacaoRepository,
		produtoRepo repository.ProdutoRepository,
	) error {
		// Bloqueia a linha do produto de origem (SELECT FOR UPDATE) para
		// impedir lost updates entre decrementos concorrentes
		produto, err := produtoRepo.GetForUpdate(in.ProdutoID)
		if err != nil {
			return err
		}
		if produto == nil {
			return &domain.ErroReferencia{Campo: "produto_id"}
		}

		// Re-checagem de estoque sob o lock: a leitura do passo 7 pode ter envelhecido
		if (in.Tipo == entity.TipoSaida || in.Tipo == entity.TipoTransferencia) &&
			produto.QuantidadeEstoque < in.Quantidade {
			return &domain.ErroEstoque{Atual: produto.QuantidadeEstoque, Solicitada: in.Quantidade}
		}

		mov := &entity.Movimentacao{
			ID:              uuid.New().String(),
			Tipo:            in.Tipo,
			Quantidade:      in.Quantidade,
			Data:            now,
			Observacao:      in.Observacao,
			Documento:       in.Documento,
			ProdutoID:       produto.ID,
			UsuarioID:       escopo.UsuarioID,
			UnidadeOrigemID: origem,
			CriadoEm:        now,
		}
		if in.Tipo == entity.TipoTransferencia {
			mov.UnidadeDestinoID = destino
		}
		if err := movRepo.Create(mov); err != nil {
			return err
		}

		var novo int64
		switch in.Tipo {
		case entity.TipoEntrada:
			novo = produto.QuantidadeEstoque + in.Quantidade
		case entity.TipoSaida:
			novo = produto.QuantidadeEstoque - in.Quantidade
		case entity.TipoAjuste:
			// Ajuste absoluto: define a quantidade, ignorando o valor anterior
			novo = in.Quantidade
		case entity.TipoTransferencia:
			novo = produto.QuantidadeEstoque - in.Quantidade
			if err := uc.creditarDestino(produtoRepo, produto, destino, in.Quantidade, escopo.UsuarioID, now); err != nil {
				return err
			}
		}

		// Clamp defensivo: a validação já impede resultado negativo no caminho
		// normal, mas a quantidade final nunca pode ficar abaixo de zero
		if novo < 0 {
			novo = 0
		}
		if err := produtoRepo.UpdateEstoque(produto.ID, novo, novo > 0); err != nil {
			return err
		}

		resultado = &Resultado{Movimentacao: mov, EstoqueResultante: novo}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resultado, nil
}

// creditarDestino aplica o lado receptor de uma transferência: soma em um
// produto ativo de mesmo nome na unidade de destino ou, se não houver, cria
// lá um novo registro pendente copiando os campos descritivos da origem.
// A identidade do produto é (nome, unidade): a linha de origem nunca muda de
// unidade, preservando o histórico de movimentações.
func (uc *RegistrarMovimentacaoUseCase) creditarDestino(
	produtoRepo repository.ProdutoRepository,
	origem *entity.Produto,
	unidadeDestinoID string,
	quantidade int64,
	usuarioID string,
	now time.Time,
) error {
	existente, err := produtoRepo.FindAtivoPorNomeEUnidadeForUpdate(origem.Nome, unidadeDestinoID)
	if err != nil {
		return err
	}
	if existente != nil {
		return produtoRepo.UpdateEstoque(existente.ID, existente.QuantidadeEstoque+quantidade, true)
	}

	novo := &entity.Produto{
		ID:                uuid.New().String(),
		Nome:              origem.Nome,
		Descricao:         origem.Descricao,
		PrecoCusto:        origem.PrecoCusto,
		PrecoVenda:        origem.PrecoVenda,
		QuantidadeEstoque: quantidade,
		QuantidadeMinima:  origem.QuantidadeMinima,
		DataValidade:      origem.DataValidade,
		Lote:              origem.Lote,
		Localizacao:       origem.Localizacao,
		Imagem:            origem.Imagem,
		Ativo:             true,
		Status:            entity.StatusPendente,
		CategoriaID:       origem.CategoriaID,
		UnidadeID:         unidadeDestinoID,
		UsuarioID:         usuarioID,
		CriadoEm:          now,
		AtualizadoEm:      now,
	}
	return produtoRepo.Create(novo)
}
