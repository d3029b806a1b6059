package handlers

import (
	"reflect"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/SscSPs/budgetwise/internal/core/domain"
)

var registerOnce sync.Once

// RegisterValidators installs the ledger's custom rules on gin's validator engine.
// Decimal fields are validated through their string form.
func RegisterValidators() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{})
		_ = v.RegisterValidation("decimal_positive", decimalPositive)
		_ = v.RegisterValidation("envelope_name", envelopeName)
	})
}

func decimalValue(field reflect.Value) interface{} {
	if d, ok := field.Interface().(decimal.Decimal); ok {
		return d.String()
	}
	return nil
}

func decimalPositive(fl validator.FieldLevel) bool {
	d, err := decimal.NewFromString(fl.Field().String())
	return err == nil && d.IsPositive()
}

func envelopeName(fl validator.FieldLevel) bool {
	return domain.ValidateEnvelopeName(fl.Field().String()) == nil
}
