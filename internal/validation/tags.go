package validation

import (
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	govalidator "github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"privfin/internal/models"
)

// RegisterTags registers the custom validation tags and type handling on
// Gin's binding engine. Call once at startup before any binding happens.
func RegisterTags() {
	if v, ok := binding.Validator.Engine().(*govalidator.Validate); ok {
		v.RegisterCustomTypeFunc(decimalAsString, decimal.Decimal{})
		v.RegisterTagNameFunc(jsonTagName)
		_ = v.RegisterValidation("budget_period", validateBudgetPeriod)
		_ = v.RegisterValidation("decimal", validateDecimal)
	}
}

// decimalAsString presents decimal.Decimal fields to the engine as their
// exact string form so tags like required and decimal can inspect them.
func decimalAsString(field reflect.Value) interface{} {
	if d, ok := field.Interface().(decimal.Decimal); ok {
		return d.String()
	}
	return nil
}

// jsonTagName makes field issues report JSON field names instead of Go
// struct field names.
func jsonTagName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return fld.Name
	}
	return name
}

func validateBudgetPeriod(fl govalidator.FieldLevel) bool {
	return models.BudgetPeriod(fl.Field().String()).Valid()
}

// validateDecimal accepts any non-negative decimal value.
func validateDecimal(fl govalidator.FieldLevel) bool {
	d, err := decimal.NewFromString(fl.Field().String())
	return err == nil && !d.IsNegative()
}
