package config

import (
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/prometheus/common/model"

	"github.com/vango-dev/inputkit/internal/errors"
	"github.com/vango-dev/inputkit/pkg/defaults"
	"github.com/vango-dev/inputkit/pkg/input"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// validatorInstance returns the shared validator with the input_kind and
// metric_name rules registered.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("input_kind", func(fl validator.FieldLevel) bool {
			return validKind(fl.Field().String())
		})
		_ = v.RegisterValidation("metric_name", func(fl validator.FieldLevel) bool {
			return model.IsValidMetricName(model.LabelValue(fl.Field().String()))
		})

		validateInst = v
	})
	return validateInst
}

// validKind accepts any supported input kind and the wildcard.
func validKind(s string) bool {
	if s == defaults.Wildcard {
		return true
	}
	_, err := input.ParseKind(s)
	return err == nil
}

// Validate checks field constraints, theme kinds and the selected theme.
func (c *Config) Validate() error {
	if err := validatorInstance().Struct(c); err != nil {
		return convertValidationError(err)
	}

	buckets := c.Preview.Metrics.Buckets
	for i := 1; i < len(buckets); i++ {
		if buckets[i] <= buckets[i-1] {
			return errors.New(errors.CodeConfigInvalid).
				WithDetail("preview.metrics.buckets: buckets must be strictly increasing")
		}
	}

	for _, theme := range c.ThemeNames() {
		if strings.TrimSpace(theme) == "" {
			return errors.New(errors.CodeConfigInvalid).
				WithDetail("themes: theme names must not be empty")
		}
		for kind := range c.Themes[theme] {
			if !validKind(kind) {
				return errors.New(errors.CodeConfigInvalid).
					WithDetail(fmt.Sprintf("themes.%s: unknown input kind %q", theme, kind))
			}
		}
	}

	if c.Theme != "" {
		if _, ok := c.Themes[c.Theme]; !ok {
			detail := fmt.Sprintf("theme %q is not defined", c.Theme)
			if names := c.ThemeNames(); len(names) > 0 {
				detail += "; available: " + strings.Join(names, ", ")
			}
			return errors.New(errors.CodeUnknownTheme).WithDetail(detail)
		}
	}
	return nil
}

// convertValidationError turns the first validator failure into an E122.
func convertValidationError(err error) error {
	ves, ok := err.(validator.ValidationErrors)
	if !ok || len(ves) == 0 {
		return errors.New(errors.CodeConfigInvalid).Wrap(err)
	}
	fe := ves[0]
	field := yamlishFieldName(fe)
	return errors.New(errors.CodeConfigInvalid).
		WithDetail(fmt.Sprintf("%s failed validation for tag '%s' (value %v)", field, fe.Tag(), fe.Value())).
		Wrap(err)
}

func yamlishFieldName(fe validator.FieldError) string {
	parts := strings.Split(fe.StructNamespace(), ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	for i, p := range parts {
		parts[i] = strings.ToLower(p)
	}
	return strings.Join(parts, ".")
}
