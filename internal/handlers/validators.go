package handlers

import (
	"fmt"
	"reflect"

	"github.com/SscSPs/freight_management_app/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// RegisterValidators installs the custom binding tags on gin's validator engine.
// It must run before the first request is bound.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected validator engine %T", binding.Validator.Engine())
	}

	// Amounts are validated as numbers so gte/lte work on decimal fields.
	v.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{})

	validations := map[string]validator.Func{
		"accounttype":    validAccountType,
		"userrole":       validUserRole,
		"shipmentstatus": validShipmentStatus,
		"paymentstatus":  validPaymentStatus,
	}
	for tag, fn := range validations {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return fmt.Errorf("cannot register %s validator: %w", tag, err)
		}
	}
	return nil
}

func decimalValue(field reflect.Value) interface{} {
	if d, ok := field.Interface().(decimal.Decimal); ok {
		f, _ := d.Float64()
		return f
	}
	return nil
}

func validAccountType(fl validator.FieldLevel) bool {
	return domain.AccountType(fl.Field().String()).IsValid()
}

func validUserRole(fl validator.FieldLevel) bool {
	return domain.Role(fl.Field().String()).IsValid()
}

func validShipmentStatus(fl validator.FieldLevel) bool {
	return domain.ShipmentStatus(fl.Field().String()).IsValid()
}

func validPaymentStatus(fl validator.FieldLevel) bool {
	return domain.PaymentStatus(fl.Field().String()).IsValid()
}
