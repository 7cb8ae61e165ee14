// Файл: pkg/customvalidator/validators.go

package customvalidator

import (
	"regexp"

	"github.com/go-playground/validator/v10"

	"airline-datagen/pkg/constants"
)

var branchIDRegex = regexp.MustCompile(`^branch\d{5}$`)

// RegisterCustomValidations регистрирует правила предметной области
// в переданном экземпляре валидатора.
func RegisterCustomValidations(v *validator.Validate) error {
	if err := v.RegisterValidation("branch_id", isBranchID); err != nil {
		return err
	}
	if err := v.RegisterValidation("city", isKnownCity); err != nil {
		return err
	}
	return nil
}

// New возвращает валидатор с уже подключёнными правилами.
// Если правило не зарегистрировалось, это ошибка сборки, поэтому паникуем.
func New() *validator.Validate {
	v := validator.New()
	if err := RegisterCustomValidations(v); err != nil {
		panic("ошибка регистрации валидаторов: " + err.Error())
	}
	return v
}

func isBranchID(fl validator.FieldLevel) bool {
	return branchIDRegex.MatchString(fl.Field().String())
}

func isKnownCity(fl validator.FieldLevel) bool {
	return constants.IsKnownCity(fl.Field().String())
}
