package book

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"catalogapi/internal/httpx"
)

var validate = validator.New()

// payload is the JSON body accepted by the add and edit endpoints.
// Pointer fields distinguish a missing key from an empty string: presence
// is required, emptiness is allowed.
type payload struct {
	Code   *string `json:"code" validate:"required,max=255"`
	Name   *string `json:"name" validate:"required,max=255"`
	Author *string `json:"author" validate:"required,max=255"`
	Status *string `json:"status" validate:"required,max=255"`
}

func (p payload) toBook() Book {
	var b Book
	if p.Code != nil {
		b.Code = *p.Code
	}
	if p.Name != nil {
		b.Name = *p.Name
	}
	if p.Author != nil {
		b.Author = *p.Author
	}
	if p.Status != nil {
		b.Status = *p.Status
	}
	return b
}

// Validate runs the struct rules and converts the result into an ordered
// violation list. An empty list means the candidate can be persisted.
func Validate(s interface{}) []httpx.Violation {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var violations []httpx.Violation
	for _, fe := range err.(validator.ValidationErrors) {
		field := fe.Field()

		var message string
		switch fe.Tag() {
		case "required":
			message = fmt.Sprintf("%s is required", field)
		case "max":
			message = fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
		default:
			message = fmt.Sprintf("%s is invalid", field)
		}

		fieldName := strings.ToLower(field[:1]) + field[1:]
		violations = append(violations, httpx.Violation{
			Field:   fieldName,
			Message: message,
		})
	}

	return violations
}
