package validator

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var integerCompile = regexp.MustCompile(`^[-+]?[0-9]{1,19}$`)

// Integer 只允许十进制整数，可带符号
func Integer(f1 validator.FieldLevel) bool {
	valid, ok := f1.Field().Interface().(string)
	if !ok {
		return false
	}
	return integerCompile.MatchString(valid)
}
