package utils

import (
	"path/filepath"
	"strings"

	"github.com/OzanKutlar/Ders-Control/internal/app/services/core/schedule"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("hhmm", validateHHMM)
	validate.RegisterValidation("filename", validateFilename)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validateHHMM(fl validator.FieldLevel) bool {
	_, err := schedule.ParseTimeOfDay(fl.Field().String())
	return err == nil
}

func validateFilename(fl validator.FieldLevel) bool {
	name := fl.Field().String()
	if name == "" || name == "." || name == ".." {
		return false
	}
	return filepath.Base(name) == name && !strings.ContainsAny(name, `/\`)
}
