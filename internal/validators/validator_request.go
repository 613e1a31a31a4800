// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/simran-bhella/twitter-clone/models"
)

// RequestValidator checks request DTOs against their `validate` struct tags.
type RequestValidator struct {
	validate *validator.Validate
}

// NewRequestValidator builds a validator that reports fields by their JSON
// names and understands the "notblank" and "maxbytes" tags.
func NewRequestValidator() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	// registration only fails for an empty tag or nil func
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	// "max" counts runes; bcrypt limits bytes
	_ = v.RegisterValidation("maxbytes", func(fl validator.FieldLevel) bool {
		limit, err := strconv.Atoi(fl.Param())
		if err != nil {
			return false
		}
		return len(fl.Field().String()) <= limit
	})

	return &RequestValidator{validate: v}
}

func (v *RequestValidator) Validate(ctx context.Context, obj any) error {
	switch value := obj.(type) {
	case models.RegisterRequest, models.LoginRequest, models.UpdateUserRequest, models.TweetRequest:
		return v.validateStruct(ctx, value)
	case *models.RegisterRequest:
		return v.validateStruct(ctx, derefOrNil(value))
	case *models.LoginRequest:
		return v.validateStruct(ctx, derefOrNil(value))
	case *models.UpdateUserRequest:
		return v.validateStruct(ctx, derefOrNil(value))
	case *models.TweetRequest:
		return v.validateStruct(ctx, derefOrNil(value))
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}
}

func derefOrNil[T any](p *T) any {
	if p == nil {
		return nil
	}
	return *p
}

func (v *RequestValidator) validateStruct(ctx context.Context, obj any) error {
	if obj == nil {
		return fmt.Errorf("%w: nil request", ErrValidation)
	}

	return toValidationError(v.validate.StructCtx(ctx, obj))
}

func toValidationError(err error) error {
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}

	messages := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		messages = append(messages, fieldMessage(fe))
	}

	return fmt.Errorf("%w: %s", ErrValidation, strings.Join(messages, "; "))
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "notblank":
		return fe.Field() + " is required"
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param())
	case "maxbytes":
		return fmt.Sprintf("%s must be at most %s bytes", fe.Field(), fe.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", fe.Field(), fe.Param())
	case "email":
		return fe.Field() + " must be a valid email address"
	default:
		return fe.Field() + " is invalid"
	}
}
