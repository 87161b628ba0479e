// Package validation содержит функции проверки формата входящих чеков.
package validation

import (
	"regexp"

	"github.com/go-playground/validator/v10"

	"github.com/mmeshcher/receipt-processor/internal/model"
)

var (
	dateRegex = regexp.MustCompile(`^[0-9]{4}-[0-9]{2}-[0-9]{2}$`)
	timeRegex = regexp.MustCompile(`^[0-9]{1,2}:[0-9]{2}$`)
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// Имена тегов уникальны, ошибки регистрации здесь невозможны.
	_ = v.RegisterValidation("receiptdate", func(fl validator.FieldLevel) bool {
		return IsDateFormatValid(fl.Field().String())
	})
	_ = v.RegisterValidation("receipttime", func(fl validator.FieldLevel) bool {
		return IsTimeFormatValid(fl.Field().String())
	})
	_ = v.RegisterValidation("amount", func(fl validator.FieldLevel) bool {
		_, ok := ParseNumber(fl.Field().String())
		return ok
	})

	return v
}

// IsValidReceipt проверяет наличие обязательных полей чека и их формат.
// Календарная корректность даты и времени не проверяется.
func IsValidReceipt(r *model.Receipt) bool {
	if r == nil {
		return false
	}

	return validate.Struct(r) == nil
}

// IsDateFormatValid проверяет дату в формате yyyy-mm-dd.
func IsDateFormatValid(date string) bool {
	return dateRegex.MatchString(date)
}

// IsTimeFormatValid проверяет время в 24-часовом формате h:mm или hh:mm без часового пояса.
func IsTimeFormatValid(t string) bool {
	return timeRegex.MatchString(t)
}
