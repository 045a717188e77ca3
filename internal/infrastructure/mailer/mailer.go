// Package mailer envia os e-mails transacionais da aplicação (boas-vindas e
// recuperação de senha) via SMTP. Todos os envios são fire-and-forget: rodam
// em goroutine própria, falhas vão para o log e nunca bloqueiam a resposta.
package mailer

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/estoqueio/estoque-api/internal/application/auth"
	"github.com/estoqueio/estoque-api/pkg/config"
	"github.com/estoqueio/estoque-api/pkg/logger"
)

var _ auth.Mailer = (*SMTPMailer)(nil)

// SMTPMailer implementação do contrato auth.Mailer sobre gomail.
// Com SMTP_HOST vazio o envio é desligado (útil em desenvolvimento e testes).
type SMTPMailer struct {
	cfg config.SMTPConfig
	log *logger.Logger
}

// New constrói o mailer.
func New(cfg config.SMTPConfig, log *logger.Logger) *SMTPMailer {
	return &SMTPMailer{cfg: cfg, log: log}
}

// EnviarBoasVindas envia o e-mail de boas-vindas após o cadastro.
func (m *SMTPMailer) EnviarBoasVindas(para, nome string) {
	corpo := fmt.Sprintf(
		"Olá, %s!\n\nSeu cadastro foi recebido e aguarda aprovação de um gerente.\nVocê será notificado assim que o acesso for liberado.",
		nome,
	)
	m.enviar(para, "Bem-vindo ao controle de estoque", corpo)
}

// EnviarRecuperacaoSenha envia o token de redefinição de senha.
// O token expira em minutos; o corpo informa o prazo.
func (m *SMTPMailer) EnviarRecuperacaoSenha(para, nome, token string) {
	corpo := fmt.Sprintf(
		"Olá, %s!\n\nUse o código abaixo para redefinir sua senha. Ele expira em poucos minutos.\n\n%s",
		nome, token,
	)
	m.enviar(para, "Recuperação de senha", corpo)
}

func (m *SMTPMailer) enviar(para, assunto, corpo string) {
	if m.cfg.Host == "" {
		m.log.Debug().Str("para", para).Str("assunto", assunto).Msg("SMTP desligado, e-mail descartado")
		return
	}
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.From)
	msg.SetHeader("To", para)
	msg.SetHeader("Subject", assunto)
	msg.SetBody("text/plain", corpo)

	d := gomail.NewDialer(m.cfg.Host, m.cfg.Port, m.cfg.User, m.cfg.Password)
	go func() {
		if err := d.DialAndSend(msg); err != nil {
			m.log.Error().Err(err).Str("para", para).Str("assunto", assunto).Msg("falha no envio de e-mail")
		}
	}()
}
