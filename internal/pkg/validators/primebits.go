package validators

import (
	"github.com/go-playground/validator/v10"
)

// PrimeBitsTag is the struct tag name under which PrimeBitsValidation is registered.
const PrimeBitsTag = "primebits"

// PrimeBitsValidation validates the bit length of a single RSA prime.
// The resulting modulus is roughly twice as long.
func PrimeBitsValidation(fl validator.FieldLevel) bool {
	switch fl.Field().Uint() {
	case 256, 512, 768, 1024, 1536, 2048:
		return true
	default:
		return false
	}
}

// Register installs the custom validations on v.
func Register(v *validator.Validate) error {
	return v.RegisterValidation(PrimeBitsTag, PrimeBitsValidation)
}
