package movement_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/estoqueio/estoque-api/internal/application/authz"
	"github.com/estoqueio/estoque-api/internal/application/dto"
	"github.com/estoqueio/estoque-api/internal/application/movement"
	"github.com/estoqueio/estoque-api/internal/domain"
	"github.com/estoqueio/estoque-api/internal/domain/entity"
	"github.com/estoqueio/estoque-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes em memória
// ──────────────────────────────────────────────────────────────────────────────

type estoqueWrite struct {
	produtoID  string
	quantidade int64
	ativo      bool
}

type fakeProdutoRepo struct {
	porID map[string]*entity.Produto
	// forUpdate, quando preenchido, substitui o produto devolvido sob lock
	// (simula outra transação drenando o estoque entre a leitura e o lock)
	forUpdate map[string]*entity.Produto

	created       []*entity.Produto
	estoqueWrites []estoqueWrite
}

func newFakeProdutoRepo(produtos ...*entity.Produto) *fakeProdutoRepo {
	r := &fakeProdutoRepo{porID: map[string]*entity.Produto{}, forUpdate: map[string]*entity.Produto{}}
	for _, p := range produtos {
		r.porID[p.ID] = p
	}
	return r
}

func (r *fakeProdutoRepo) Create(p *entity.Produto) error {
	r.porID[p.ID] = p
	r.created = append(r.created, p)
	return nil
}

func (r *fakeProdutoRepo) GetByID(id string) (*entity.Produto, error) {
	return r.porID[id], nil
}

func (r *fakeProdutoRepo) GetForUpdate(id string) (*entity.Produto, error) {
	if p, ok := r.forUpdate[id]; ok {
		return p, nil
	}
	return r.porID[id], nil
}

func (r *fakeProdutoRepo) FindAtivoPorNomeEUnidadeForUpdate(nome, unidadeID string) (*entity.Produto, error) {
	for _, p := range r.porID {
		if p.Nome == nome && p.UnidadeID == unidadeID && p.Ativo {
			return p, nil
		}
	}
	return nil, nil
}

func (r *fakeProdutoRepo) UpdateEstoque(produtoID string, quantidade int64, ativo bool) error {
	r.estoqueWrites = append(r.estoqueWrites, estoqueWrite{produtoID, quantidade, ativo})
	if p, ok := r.porID[produtoID]; ok {
		p.QuantidadeEstoque = quantidade
		p.Ativo = ativo
	}
	return nil
}

func (r *fakeProdutoRepo) GetPorCodigoBarras(string) (*entity.Produto, error) { return nil, nil }
func (r *fakeProdutoRepo) Update(*entity.Produto) error                       { return nil }
func (r *fakeProdutoRepo) ListByUnidade(string, int, int) ([]*entity.Produto, error) {
	return nil, nil
}
func (r *fakeProdutoRepo) List(int, int) ([]*entity.Produto, error) { return nil, nil }
func (r *fakeProdutoRepo) Delete(string) error                      { return nil }

var _ repository.ProdutoRepository = (*fakeProdutoRepo)(nil)

func (r *fakeProdutoRepo) Exists(id string) (bool, error) {
	_, ok := r.porID[id]
	return ok, nil
}

type fakeMovRepo struct {
	created   []*entity.Movimentacao
	createErr error
}

func (r *fakeMovRepo) Create(m *entity.Movimentacao) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.created = append(r.created, m)
	return nil
}

func (r *fakeMovRepo) GetByID(string) (*entity.Movimentacao, error) { return nil, nil }
func (r *fakeMovRepo) ListByProduto(string, *time.Time, *time.Time, int, int) ([]*entity.Movimentacao, error) {
	return nil, nil
}
func (r *fakeMovRepo) ListByUnidade(string, *time.Time, *time.Time, int, int) ([]*entity.Movimentacao, error) {
	return nil, nil
}

// fakeIDSet responde Exists para usuários e unidades.
type fakeIDSet struct{ ids map[string]bool }

func (s *fakeIDSet) Exists(id string) (bool, error) { return s.ids[id], nil }

type fakeUsuarioRepo struct{ fakeIDSet }

func (r *fakeUsuarioRepo) Create(*entity.Usuario) error               { return nil }
func (r *fakeUsuarioRepo) GetByID(string) (*entity.Usuario, error)    { return nil, nil }
func (r *fakeUsuarioRepo) GetByEmail(string) (*entity.Usuario, error) { return nil, nil }
func (r *fakeUsuarioRepo) GetByCPF(string) (*entity.Usuario, error)   { return nil, nil }
func (r *fakeUsuarioRepo) Update(*entity.Usuario) error               { return nil }
func (r *fakeUsuarioRepo) Delete(string) error                        { return nil }
func (r *fakeUsuarioRepo) List(int, int) ([]*entity.Usuario, error)   { return nil, nil }
func (r *fakeUsuarioRepo) ListByUnidade(string, int, int) ([]*entity.Usuario, error) {
	return nil, nil
}

type fakeUnidadeRepo struct{ fakeIDSet }

func (r *fakeUnidadeRepo) Create(*entity.Unidade) error             { return nil }
func (r *fakeUnidadeRepo) GetByID(string) (*entity.Unidade, error)  { return nil, nil }
func (r *fakeUnidadeRepo) Update(*entity.Unidade) error             { return nil }
func (r *fakeUnidadeRepo) List(int, int) ([]*entity.Unidade, error) { return nil, nil }
func (r *fakeUnidadeRepo) Delete(string) error                      { return nil }

// fakeTxRunner executa o bloco direto sobre os fakes e contabiliza o desfecho.
type fakeTxRunner struct {
	mov  *fakeMovRepo
	prod *fakeProdutoRepo

	commits   int
	rollbacks int
}

func (r *fakeTxRunner) Run(_ context.Context, fn func(repository.MovimentacaoRepository, repository.ProdutoRepository) error) error {
	if err := fn(r.mov, r.prod); err != nil {
		r.rollbacks++
		return err
	}
	r.commits++
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Cenário base
// ──────────────────────────────────────────────────────────────────────────────

const (
	unidadeA  = "11111111-1111-1111-1111-111111111111"
	unidadeB  = "22222222-2222-2222-2222-222222222222"
	usuarioID = "33333333-3333-3333-3333-333333333333"
	produtoID = "44444444-4444-4444-4444-444444444444"
)

type cenario struct {
	uc   *movement.RegistrarMovimentacaoUseCase
	prod *fakeProdutoRepo
	mov  *fakeMovRepo
	tx   *fakeTxRunner
}

func novoCenario(produtos ...*entity.Produto) *cenario {
	prod := newFakeProdutoRepo(produtos...)
	mov := &fakeMovRepo{}
	tx := &fakeTxRunner{mov: mov, prod: prod}
	usuarios := &fakeUsuarioRepo{fakeIDSet{ids: map[string]bool{usuarioID: true}}}
	unidades := &fakeUnidadeRepo{fakeIDSet{ids: map[string]bool{unidadeA: true, unidadeB: true}}}
	return &cenario{
		uc:   movement.NewRegistrarMovimentacaoUseCase(tx, prod, usuarios, unidades),
		prod: prod,
		mov:  mov,
		tx:   tx,
	}
}

func produtoBase(estoque int64) *entity.Produto {
	return &entity.Produto{
		ID:                produtoID,
		Nome:              "Parafuso M8",
		QuantidadeEstoque: estoque,
		QuantidadeMinima:  5,
		Ativo:             estoque > 0,
		Status:            entity.StatusAprovado,
		UnidadeID:         unidadeA,
		UsuarioID:         usuarioID,
	}
}

func escopoEstoquista() *authz.Escopo {
	return &authz.Escopo{UsuarioID: usuarioID, Cargo: entity.CargoEstoquista, UnidadeID: unidadeA}
}

func escopoGerente() *authz.Escopo {
	return &authz.Escopo{UsuarioID: usuarioID, Cargo: entity.CargoGerente, UnidadeID: unidadeA, Irrestrito: true}
}

// ──────────────────────────────────────────────────────────────────────────────
// Semântica por tipo
// ──────────────────────────────────────────────────────────────────────────────

func TestRegistrar_EntradaSomaEstoque(t *testing.T) {
	c := novoCenario(produtoBase(10))

	res, err := c.uc.Registrar(context.Background(), escopoEstoquista(), dto.RegistrarMovimentacaoRequest{
		Tipo: entity.TipoEntrada, Quantidade: 7, ProdutoID: produtoID,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(17), res.EstoqueResultante)
	assert.Equal(t, 1, c.tx.commits)
	require.Len(t, c.mov.created, 1)
	assert.Equal(t, entity.TipoEntrada, c.mov.created[0].Tipo)
	assert.Equal(t, unidadeA, c.mov.created[0].UnidadeOrigemID, "origem omitida assume a lotação do ator")
	require.Len(t, c.prod.estoqueWrites, 1)
	assert.True(t, c.prod.estoqueWrites[0].ativo)
}

func TestRegistrar_SaidaSubtraiEstoque(t *testing.T) {
	c := novoCenario(produtoBase(10))

	res, err := c.uc.Registrar(context.Background(), escopoEstoquista(), dto.RegistrarMovimentacaoRequest{
		Tipo: entity.TipoSaida, Quantidade: 4, ProdutoID: produtoID,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(6), res.EstoqueResultante)
	assert.True(t, c.prod.porID[produtoID].Ativo)
}

func TestRegistrar_SaidaTotalZeraEDesativa(t *testing.T) {
	c := novoCenario(produtoBase(10))

	res, err := c.uc.Registrar(context.Background(), escopoEstoquista(), dto.RegistrarMovimentacaoRequest{
		Tipo: entity.TipoSaida, Quantidade: 10, ProdutoID: produtoID,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(0), res.EstoqueResultante)
	assert.False(t, c.prod.porID[produtoID].Ativo, "estoque zerado desativa o produto")
}

func TestRegistrar_AjusteDefineQuantidadeAbsoluta(t *testing.T) {
	c := novoCenario(produtoBase(100))

	res, err := c.uc.Registrar(context.Background(), escopoEstoquista(), dto.RegistrarMovimentacaoRequest{
		Tipo: entity.TipoAjuste, Quantidade: 3, ProdutoID: produtoID,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(3), res.EstoqueResultante, "ajuste define o valor, não soma")
}

func TestRegistrar_TransferenciaCreditaProdutoExistenteNoDestino(t *testing.T) {
	destino := &entity.Produto{
		ID:                "55555555-5555-5555-5555-555555555555",
		Nome:              "Parafuso M8",
		QuantidadeEstoque: 2,
		Ativo:             true,
		Status:            entity.StatusAprovado,
		UnidadeID:         unidadeB,
	}
	c := novoCenario(produtoBase(10), destino)

	res, err := c.uc.Registrar(context.Background(), escopoEstoquista(), dto.RegistrarMovimentacaoRequest{
		Tipo: entity.TipoTransferencia, Quantidade: 4, ProdutoID: produtoID,
		UnidadeDestinoID: unidadeB,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(6), res.EstoqueResultante, "origem perde a quantidade")
	assert.Equal(t, int64(6), c.prod.porID[destino.ID].QuantidadeEstoque, "destino recebe a quantidade")
	assert.Empty(t, c.prod.created, "não cria produto novo quando já existe ativo de mesmo nome")
	assert.Equal(t, unidadeB, c.mov.created[0].UnidadeDestinoID)
}

func TestRegistrar_TransferenciaCriaProdutoPendenteNoDestino(t *testing.T) {
	c := novoCenario(produtoBase(10))

	res, err := c.uc.Registrar(context.Background(), escopoEstoquista(), dto.RegistrarMovimentacaoRequest{
		Tipo: entity.TipoTransferencia, Quantidade: 4, ProdutoID: produtoID,
		UnidadeDestinoID: unidadeB,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(6), res.EstoqueResultante)

	require.Len(t, c.prod.created, 1)
	novo := c.prod.created[0]
	assert.Equal(t, "Parafuso M8", novo.Nome)
	assert.Equal(t, unidadeB, novo.UnidadeID)
	assert.Equal(t, int64(4), novo.QuantidadeEstoque)
	assert.Equal(t, entity.StatusPendente, novo.Status, "produto criado na transferência nasce pendente")
	assert.True(t, novo.Ativo)
	assert.Empty(t, novo.CodigoBarras, "código de barras é único e não se copia")
	assert.NotEqual(t, produtoID, novo.ID)

	// A linha de origem permanece na unidade original
	assert.Equal(t, unidadeA, c.prod.porID[produtoID].UnidadeID)
}

// ──────────────────────────────────────────────────────────────────────────────
// Validação e autorização
// ──────────────────────────────────────────────────────────────────────────────

func TestRegistrar_CamposObrigatoriosNaOrdem(t *testing.T) {
	c := novoCenario(produtoBase(10))

	_, err := c.uc.Registrar(context.Background(), escopoEstoquista(), dto.RegistrarMovimentacaoRequest{})

	var ev *domain.ErroValidacao
	require.ErrorAs(t, err, &ev)
	assert.Equal(t, []string{"tipo", "quantidade", "produto_id"}, ev.Campos,
		"a ordem dos campos ausentes é determinística")
	assert.ErrorIs(t, err, domain.ErrEntradaInvalida)
	assert.Zero(t, c.tx.commits+c.tx.rollbacks, "nenhuma transação deve abrir")
}

func TestRegistrar_TipoDesconhecido(t *testing.T) {
	c := novoCenario(produtoBase(10))

	_, err := c.uc.Registrar(context.Background(), escopoEstoquista(), dto.RegistrarMovimentacaoRequest{
		Tipo: "DEVOLUCAO", Quantidade: 1, ProdutoID: produtoID,
	})
	assert.ErrorIs(t, err, domain.ErrEntradaInvalida)
}

func TestRegistrar_QuantidadeNegativa(t *testing.T) {
	c := novoCenario(produtoBase(10))

	_, err := c.uc.Registrar(context.Background(), escopoEstoquista(), dto.RegistrarMovimentacaoRequest{
		Tipo: entity.TipoEntrada, Quantidade: -5, ProdutoID: produtoID,
	})
	assert.ErrorIs(t, err, domain.ErrEntradaInvalida)
}

func TestRegistrar_TransferenciaExigeDestino(t *testing.T) {
	c := novoCenario(produtoBase(10))

	_, err := c.uc.Registrar(context.Background(), escopoEstoquista(), dto.RegistrarMovimentacaoRequest{
		Tipo: entity.TipoTransferencia, Quantidade: 1, ProdutoID: produtoID,
	})

	var ev *domain.ErroValidacao
	require.ErrorAs(t, err, &ev)
	assert.Equal(t, []string{"unidade_destino_id"}, ev.Campos)
}

func TestRegistrar_TransferenciaParaMesmaUnidade(t *testing.T) {
	c := novoCenario(produtoBase(10))

	_, err := c.uc.Registrar(context.Background(), escopoEstoquista(), dto.RegistrarMovimentacaoRequest{
		Tipo: entity.TipoTransferencia, Quantidade: 1, ProdutoID: produtoID,
		UnidadeDestinoID: unidadeA,
	})
	assert.ErrorIs(t, err, domain.ErrConflito)
}

func TestRegistrar_EstoquistaBloqueadoEmOutraUnidade(t *testing.T) {
	c := novoCenario(produtoBase(10))

	_, err := c.uc.Registrar(context.Background(), escopoEstoquista(), dto.RegistrarMovimentacaoRequest{
		Tipo: entity.TipoEntrada, Quantidade: 1, ProdutoID: produtoID,
		UnidadeOrigemID: unidadeB,
	})
	assert.ErrorIs(t, err, domain.ErrAcessoNegado)
	assert.Zero(t, c.tx.commits+c.tx.rollbacks)
}

func TestRegistrar_GerenteOperaQualquerUnidade(t *testing.T) {
	p := produtoBase(10)
	p.UnidadeID = unidadeB
	c := novoCenario(p)

	_, err := c.uc.Registrar(context.Background(), escopoGerente(), dto.RegistrarMovimentacaoRequest{
		Tipo: entity.TipoEntrada, Quantidade: 1, ProdutoID: produtoID,
		UnidadeOrigemID: unidadeB,
	})
	assert.NoError(t, err)
}

func TestRegistrar_ReferenciasChecadasEmSequencia(t *testing.T) {
	c := novoCenario() // nenhum produto cadastrado

	_, err := c.uc.Registrar(context.Background(), escopoEstoquista(), dto.RegistrarMovimentacaoRequest{
		Tipo: entity.TipoEntrada, Quantidade: 1, ProdutoID: "99999999-9999-9999-9999-999999999999",
	})

	var er *domain.ErroReferencia
	require.ErrorAs(t, err, &er)
	assert.Equal(t, "produto_id", er.Campo, "a primeira referência ausente interrompe a checagem")
	assert.ErrorIs(t, err, domain.ErrNaoEncontrado)
}

// ──────────────────────────────────────────────────────────────────────────────
// Estoque insuficiente e atomicidade
// ──────────────────────────────────────────────────────────────────────────────

func TestRegistrar_SaidaAlemDoEstoque(t *testing.T) {
	c := novoCenario(produtoBase(3))

	_, err := c.uc.Registrar(context.Background(), escopoEstoquista(), dto.RegistrarMovimentacaoRequest{
		Tipo: entity.TipoSaida, Quantidade: 5, ProdutoID: produtoID,
	})

	var ee *domain.ErroEstoque
	require.ErrorAs(t, err, &ee)
	assert.Equal(t, int64(3), ee.Atual)
	assert.Equal(t, int64(5), ee.Solicitada)
	assert.ErrorIs(t, err, domain.ErrEstoqueInsuficiente)
	assert.Zero(t, c.tx.commits, "falha de estoque na validação não abre transação")
	assert.Empty(t, c.mov.created)
}

func TestRegistrar_RecheckDeEstoqueSobLock(t *testing.T) {
	c := novoCenario(produtoBase(10))
	// Outra transação drenou o estoque entre a validação e o lock da linha
	drenado := produtoBase(2)
	c.prod.forUpdate[produtoID] = drenado

	_, err := c.uc.Registrar(context.Background(), escopoEstoquista(), dto.RegistrarMovimentacaoRequest{
		Tipo: entity.TipoSaida, Quantidade: 5, ProdutoID: produtoID,
	})

	var ee *domain.ErroEstoque
	require.ErrorAs(t, err, &ee)
	assert.Equal(t, int64(2), ee.Atual, "a quantidade reportada é a lida sob o lock")
	assert.Equal(t, 1, c.tx.rollbacks)
	assert.Empty(t, c.mov.created, "nada é lançado quando a re-checagem falha")
	assert.Empty(t, c.prod.estoqueWrites)
}

func TestRegistrar_FalhaNoLancamentoDesfazTudo(t *testing.T) {
	c := novoCenario(produtoBase(10))
	c.mov.createErr = errors.New("insert movimentacao: conexão perdida")

	_, err := c.uc.Registrar(context.Background(), escopoEstoquista(), dto.RegistrarMovimentacaoRequest{
		Tipo: entity.TipoEntrada, Quantidade: 5, ProdutoID: produtoID,
	})

	require.Error(t, err)
	assert.Equal(t, 1, c.tx.rollbacks)
	assert.Zero(t, c.tx.commits)
	assert.Empty(t, c.prod.estoqueWrites, "o estoque não é tocado se o lançamento falhar")
}

func TestRegistrar_ValidacaoNaoTemEfeitosColaterais(t *testing.T) {
	c := novoCenario(produtoBase(10))

	// Duas tentativas inválidas seguidas de uma válida
	for i := 0; i < 2; i++ {
		_, err := c.uc.Registrar(context.Background(), escopoEstoquista(), dto.RegistrarMovimentacaoRequest{
			Tipo: entity.TipoSaida, Quantidade: 50, ProdutoID: produtoID,
		})
		require.ErrorIs(t, err, domain.ErrEstoqueInsuficiente)
	}
	assert.Equal(t, int64(10), c.prod.porID[produtoID].QuantidadeEstoque)

	res, err := c.uc.Registrar(context.Background(), escopoEstoquista(), dto.RegistrarMovimentacaoRequest{
		Tipo: entity.TipoSaida, Quantidade: 10, ProdutoID: produtoID,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(0), res.EstoqueResultante)
}
