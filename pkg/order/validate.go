package order

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// CreateOrderInput is the payload accepted when placing a new order.
type CreateOrderInput struct {
	CustomerName        string      `json:"customerName" validate:"required"`
	CustomerPhone       string      `json:"customerPhone" validate:"required"`
	CustomerEmail       string      `json:"customerEmail" validate:"required,email"`
	CustomerAddress     string      `json:"customerAddress" validate:"required"`
	DeliveryTime        string      `json:"deliveryTime" validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
	SpecialInstructions string      `json:"specialInstructions"`
	Items               []ItemInput `json:"items" validate:"required,min=1,dive"`
}

// ItemInput is one requested line item.
type ItemInput struct {
	ID       string  `json:"id" validate:"required"`
	Name     string  `json:"name" validate:"required"`
	Price    float64 `json:"price" validate:"gt=0"`
	Quantity int     `json:"quantity" validate:"gt=0"`
}

// FieldError names one violated input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError reports the full list of violated fields for a request.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		names = append(names, f.Field)
	}
	return "validation failed: " + strings.Join(names, ", ")
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate checks in against the creation constraints and returns a
// *ValidationError listing every violated field.
func (in CreateOrderInput) Validate() error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	ve := &ValidationError{}
	for _, fe := range verrs {
		// Namespace is e.g. "CreateOrderInput.items[0].price"; drop the
		// leading struct name so callers see request field paths.
		field := fe.Namespace()
		if i := strings.Index(field, "."); i >= 0 {
			field = field[i+1:]
		}
		ve.Fields = append(ve.Fields, FieldError{Field: field, Message: messageFor(fe)})
	}
	return ve
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "datetime":
		return "must be an ISO-8601 timestamp"
	case "min":
		return fmt.Sprintf("must contain at least %s entries", fe.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	}
	return "is invalid"
}
