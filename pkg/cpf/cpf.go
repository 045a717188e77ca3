// Package cpf valida números de CPF (Cadastro de Pessoas Físicas) pelo
// algoritmo oficial de dígitos verificadores (módulo 11).
package cpf

import "strings"

// Normalizar remove pontuação usual (pontos e hífen) e espaços.
func Normalizar(cpf string) string {
	r := strings.NewReplacer(".", "", "-", "", " ", "")
	return r.Replace(cpf)
}

// Valido verifica se o CPF tem 11 dígitos, não é uma sequência repetida e
// possui dígitos verificadores corretos.
func Valido(cpf string) bool {
	cpf = Normalizar(cpf)
	if len(cpf) != 11 {
		return false
	}
	repetido := true
	for i := 0; i < 11; i++ {
		if cpf[i] < '0' || cpf[i] > '9' {
			return false
		}
		if cpf[i] != cpf[0] {
			repetido = false
		}
	}
	// CPFs como 000.000.000-00 e 111.111.111-11 passam no módulo 11 mas são inválidos
	if repetido {
		return false
	}
	return digito(cpf, 9) == int(cpf[9]-'0') && digito(cpf, 10) == int(cpf[10]-'0')
}

// digito calcula o dígito verificador na posição pos (9 ou 10).
func digito(cpf string, pos int) int {
	soma := 0
	for i := 0; i < pos; i++ {
		soma += int(cpf[i]-'0') * (pos + 1 - i)
	}
	resto := (soma * 10) % 11
	if resto == 10 {
		return 0
	}
	return resto
}
