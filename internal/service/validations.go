package service

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	errorvalues "github.com/limbo/tasktracker/internal/error_values"
)

// Package for custom validations
var (
	validate *validator.Validate
	once     sync.Once
)

func InitValidator() {
	once.Do(func() {
		validate = validator.New()
		validate.RegisterValidation("not_blank", func(fl validator.FieldLevel) bool {
			return strings.TrimSpace(fl.Field().String()) != ""
		})
	})
}

func validateStruct(s any) error {
	InitValidator()
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		err = errorvalues.ErrValidation
		for _, fieldErr := range validationErrors {
			err = errors.Join(err, fieldErr)
		}
		return err
	}
	return fmt.Errorf("validation unexpected error: %w", err)
}
