package handlers

import (
	"unicode/utf8"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/ryanjorgeac/rinha-de-backend-2024-q1-ufpb/internal/core/domain"
)

// registerCustomValidators wires domain validation rules into gin's binding
// validator. txdesc bounds the description length in runes, not bytes.
func registerCustomValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return v.RegisterValidation("txdesc", func(fl validator.FieldLevel) bool {
		n := utf8.RuneCountInString(fl.Field().String())
		return n >= 1 && n <= domain.MaxDescriptionLen
	})
}
