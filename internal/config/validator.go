package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks field constraints on a loaded configuration and reports
// every offending environment variable at once
func Validate(cfg *Config) error {
	err := validate.Struct(cfg)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%s: %w", ErrMsgInvalidConfig, err)
	}

	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fmt.Sprintf("%s (%s=%s)", fe.Field(), fe.Tag(), fe.Param()))
	}
	return fmt.Errorf("%s: %s", ErrMsgInvalidConfig, strings.Join(fields, ", "))
}

// Warnings returns non-fatal notes about a configuration, such as settings
// that are valid but likely unintended
func Warnings(cfg *Config) []string {
	var warnings []string

	if cfg.DiscordToken != "" && cfg.DiscordGuildID == "" {
		warnings = append(warnings, WarnMsgNoGuild)
	}
	if cfg.DiscordForceCommandUpdate {
		warnings = append(warnings, WarnMsgForceUpdate)
	}
	if cfg.StepDelay == 0 {
		warnings = append(warnings, WarnMsgNoStepDelay)
	}
	if strings.EqualFold(cfg.LogLevel, "debug") && (cfg.Environment == "prod" || cfg.Environment == "production") {
		warnings = append(warnings, WarnMsgDebugInProduction)
	}

	return warnings
}
