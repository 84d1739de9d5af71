package dto

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/habitloop/backend/internal/domain/insights"
)

// RegisterValidators installs custom binding validators. "dateonly" enforces
// the strict YYYY-MM-DD format the API speaks everywhere.
func RegisterValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("dateonly", func(fl validator.FieldLevel) bool {
			_, err := insights.ParseDate(fl.Field().String())
			return err == nil
		})
	}
}
