// Package validate проверяет входные данные запросов по декларативным правилам.
//
// Правила описываются тегами `validate` на структурах запросов (см. internal/models),
// а имена полей в сообщениях берутся из тегов `json`. Все нарушения собираются
// в одну ошибку apperr.ErrValidation.
package validate

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/magabrotheeeer/contact-manager/internal/lib/apperr"
)

// Validator оборачивает validator.Validate с настройкой имён полей.
type Validator struct {
	v *validator.Validate
}

// New создаёт Validator, который называет поля по их JSON-именам.
func New() *Validator {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		switch name {
		case "-":
			return ""
		case "":
			return fld.Name
		}
		return name
	})
	return &Validator{v: v}
}

// Struct проверяет структуру по её тегам.
func (v *Validator) Struct(s any) error {
	err := v.v.Struct(s)
	if err == nil {
		return nil
	}
	var errs validator.ValidationErrors
	if errors.As(err, &errs) {
		return apperr.Validation(Message(errs))
	}
	return fmt.Errorf("validate.Struct: %w", err)
}

// Message собирает человекочитаемое описание всех нарушений через запятую.
func Message(errs validator.ValidationErrors) string {
	msgs := make([]string, 0, len(errs))
	for _, err := range errs {
		switch err.ActualTag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("field %s is a required field", err.Field()))
		case "max":
			msgs = append(msgs, fmt.Sprintf("field %s must be at most %s characters", err.Field(), err.Param()))
		case "min":
			if err.Kind() == reflect.String {
				msgs = append(msgs, fmt.Sprintf("field %s must not be empty", err.Field()))
			} else {
				msgs = append(msgs, fmt.Sprintf("field %s must be at least %s", err.Field(), err.Param()))
			}
		case "lte":
			msgs = append(msgs, fmt.Sprintf("field %s must be at most %s", err.Field(), err.Param()))
		case "email":
			msgs = append(msgs, fmt.Sprintf("field %s must be a valid email", err.Field()))
		default:
			msgs = append(msgs, fmt.Sprintf("field %s is not valid", err.Field()))
		}
	}
	return strings.Join(msgs, ", ")
}

// ID разбирает идентификатор из пути запроса. Допустимы только положительные целые.
func ID(field, raw string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperr.Validation(fmt.Sprintf("field %s must be a positive number", field))
	}
	return id, nil
}

// QueryInt разбирает целочисленный параметр строки запроса.
// Пустое значение заменяется на def.
func QueryInt(field, raw string, def int) (int, error) {
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, apperr.Validation(fmt.Sprintf("field %s must be a number", field))
	}
	return n, nil
}
