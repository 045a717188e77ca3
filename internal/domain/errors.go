package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Erros de domínio (sem dependências externas).
var (
	ErrNaoEncontrado        = errors.New("recurso não encontrado")
	ErrUsuarioNaoEncontrado = errors.New("usuário não encontrado")
	ErrEmailJaCadastrado    = errors.New("o e-mail já está cadastrado")
	ErrCPFJaCadastrado      = errors.New("o CPF já está cadastrado")
	ErrEntradaInvalida      = errors.New("entrada inválida")
	ErrDuplicado            = errors.New("recurso duplicado")
	ErrNaoAutorizado        = errors.New("não autorizado")
	ErrAcessoNegado         = errors.New("acesso negado")
	ErrConflito             = errors.New("conflito com o estado atual")
	ErrEstoqueInsuficiente  = errors.New("estoque insuficiente")
)

// ErroValidacao lista os campos obrigatórios ausentes ou inválidos de uma requisição.
// A ordem dos campos segue a ordem de declaração, para mensagens determinísticas.
type ErroValidacao struct {
	Campos []string
}

func (e *ErroValidacao) Error() string {
	return fmt.Sprintf("campos obrigatórios ausentes ou inválidos: %s", strings.Join(e.Campos, ", "))
}

// Is permite errors.Is(err, ErrEntradaInvalida).
func (e *ErroValidacao) Is(target error) bool {
	return target == ErrEntradaInvalida
}

// ErroReferencia indica que o id referenciado por um campo não existe.
type ErroReferencia struct {
	Campo string
}

func (e *ErroReferencia) Error() string {
	return fmt.Sprintf("%s não encontrado", e.Campo)
}

// Is permite errors.Is(err, ErrNaoEncontrado).
func (e *ErroReferencia) Is(target error) bool {
	return target == ErrNaoEncontrado
}

// ErroEstoque indica estoque insuficiente, com o contexto necessário para a
// mensagem ao cliente (estoque atual vs. quantidade solicitada).
type ErroEstoque struct {
	Atual      int64
	Solicitada int64
}

func (e *ErroEstoque) Error() string {
	return fmt.Sprintf("estoque insuficiente: atual %d, solicitado %d", e.Atual, e.Solicitada)
}

// Is permite errors.Is(err, ErrEstoqueInsuficiente).
func (e *ErroEstoque) Is(target error) bool {
	return target == ErrEstoqueInsuficiente
}
