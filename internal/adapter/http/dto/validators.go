package dto

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Balances are stored at scale 4; anything finer would be silently rounded.
const maxAmountScale = 4

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("decimal_amount", validateDecimalAmount)
	}
}

// validateDecimalAmount accepts strictly positive decimal strings with at
// most four fractional digits.
func validateDecimalAmount(fl validator.FieldLevel) bool {
	d, err := decimal.NewFromString(fl.Field().String())
	if err != nil {
		return false
	}
	if d.LessThanOrEqual(decimal.Zero) {
		return false
	}
	return int(d.Exponent()) >= -maxAmountScale
}
