package service

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

// NewValidator returns a validator with the custom tags used by guest input.
func NewValidator() *validator.Validate {
	validate := validator.New()
	_ = validate.RegisterValidation("cpf", CPFValidator)
	return validate
}

// NormalizeCPF strips the usual 000.000.000-00 punctuation.
func NormalizeCPF(cpf string) string {
	return strings.NewReplacer(".", "", "-", "", " ", "").Replace(strings.TrimSpace(cpf))
}

// ValidCPF checks length and both check digits of a digits-only CPF.
func ValidCPF(cpf string) bool {
	if len(cpf) != 11 {
		return false
	}
	digits := make([]int, 11)
	same := true
	for i, ch := range cpf {
		if ch < '0' || ch > '9' {
			return false
		}
		digits[i] = int(ch - '0')
		if digits[i] != digits[0] {
			same = false
		}
	}
	if same {
		return false
	}

	for _, n := range []int{9, 10} {
		sum := 0
		for i := 0; i < n; i++ {
			sum += digits[i] * (n + 1 - i)
		}
		check := sum * 10 % 11
		if check == 10 {
			check = 0
		}
		if check != digits[n] {
			return false
		}
	}
	return true
}

func CPFValidator(fl validator.FieldLevel) bool {
	cpf, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	return ValidCPF(cpf)
}

// fromValidatorErrors maps validator failures onto a ValidationError keyed by
// the lower-cased field name.
func fromValidatorErrors(err error) error {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return err
	}

	vErr := &ValidationError{}
	for _, fe := range ve {
		field := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "required":
			vErr.add(field, field+" é obrigatório")
		case "min":
			vErr.add(field, field+" deve ter no mínimo "+fe.Param()+" caracteres")
		case "max":
			vErr.add(field, field+" deve ter no máximo "+fe.Param()+" caracteres")
		case "cpf":
			vErr.add(field, "CPF inválido")
		default:
			vErr.add(field, field+" inválido")
		}
	}
	return vErr
}
