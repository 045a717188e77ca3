// Package validator encapsula o go-playground/validator para validação de
// shape dos DTOs HTTP (tags `validate`). As regras de negócio de estoque
// ficam em internal/application/validation.
package validator

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErroCampo descreve um campo que falhou na validação de struct.
type ErroCampo struct {
	Campo string
	Tag   string
	Param string
}

var validate = newValidate()

// newValidate configura o validador para reportar os nomes dos campos como
// aparecem no JSON, não como aparecem no struct Go.
func newValidate() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	return v
}

// ValidarStruct valida as tags `validate` de um DTO e devolve os campos que
// falharam, na ordem de declaração do struct.
func ValidarStruct(data interface{}) []ErroCampo {
	err := validate.Struct(data)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []ErroCampo{{Campo: "body", Tag: "invalid"}}
	}
	erros := make([]ErroCampo, 0, len(verrs))
	for _, fe := range verrs {
		erros = append(erros, ErroCampo{
			Campo: fe.Field(),
			Tag:   fe.Tag(),
			Param: fe.Param(),
		})
	}
	return erros
}
