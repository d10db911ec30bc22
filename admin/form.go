package admin

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"foodhub/models"
	"foodhub/utils"
)

type Field int

const (
	FieldName Field = iota
	FieldDescription
	FieldCategory
	FieldPrice
)

var fieldNames = map[string]Field{
	"name":        FieldName,
	"description": FieldDescription,
	"category":    FieldCategory,
	"price":       FieldPrice,
}

func ParseField(name string) (Field, error) {
	f, ok := fieldNames[strings.ToLower(name)]
	if !ok {
		return 0, fmt.Errorf("unknown form field %q", name)
	}
	return f, nil
}

// FoodForm is the add-food input as typed by the admin. Price stays text
// until submission.
type FoodForm struct {
	Name        string `validate:"required"`
	Description string `validate:"required"`
	Category    string `validate:"required,category"`
	Price       string `validate:"required,numeric"`
}

func NewFoodForm() FoodForm {
	return FoodForm{Category: models.DefaultCategory}
}

func (f *FoodForm) UpdateField(field Field, value string) error {
	switch field {
	case FieldName:
		f.Name = value
	case FieldDescription:
		f.Description = value
	case FieldCategory:
		f.Category = value
	case FieldPrice:
		f.Price = value
	default:
		return fmt.Errorf("unknown form field %d", field)
	}
	return nil
}

func (f *FoodForm) Reset() {
	*f = NewFoodForm()
}

// Request validates the form and converts it to the API payload.
func (f FoodForm) Request(v *validator.Validate) (models.FoodRequest, error) {
	trimmed := FoodForm{
		Name:        strings.TrimSpace(f.Name),
		Description: strings.TrimSpace(f.Description),
		Category:    strings.TrimSpace(f.Category),
		Price:       strings.TrimSpace(f.Price),
	}
	if err := v.Struct(trimmed); err != nil {
		field := ""
		if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
			field = strings.ToLower(errs[0].Field())
		}
		return models.FoodRequest{}, &models.ValidationError{Field: field, Message: formMessage(err)}
	}

	price, err := strconv.ParseFloat(trimmed.Price, 64)
	if err != nil || price < 0 {
		return models.FoodRequest{}, &models.ValidationError{Field: "price", Message: "Please enter a valid price."}
	}

	return models.FoodRequest{
		Name:        trimmed.Name,
		Description: trimmed.Description,
		Category:    trimmed.Category,
		Price:       price,
	}, nil
}

func formMessage(err error) string {
	if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 && errs[0].Tag() == "numeric" {
		return "Please enter a valid price."
	}
	return utils.ValidationMessage(err)
}
