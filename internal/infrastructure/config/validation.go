package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/galactictrader/galactic-trader-go/internal/domain/shared"
)

// ValidateConfig checks every section against its struct tags and reports
// all failures in one error
func ValidateConfig(cfg *Config) error {
	err := validator.New().Struct(cfg)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	messages := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		ve := shared.NewValidationError(fe.Namespace(),
			fmt.Sprintf("failed %q with value '%v'", fe.Tag(), fe.Value()))
		messages = append(messages, ve.Error())
	}
	return shared.NewDomainError(strings.Join(messages, "; "))
}
