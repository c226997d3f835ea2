package dto

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"

	dom "inventory/internal/domain"
)

// CreateItemRequest is the JSON body for POST /items.
// Pointer fields distinguish "absent" from a zero value, so quantity=0
// fails the gt rule instead of slipping past required.
type CreateItemRequest struct {
	Name        string   `json:"name" binding:"required"`
	Quantity    *int     `json:"quantity" binding:"required,gt=0"`
	Price       *float64 `json:"price" binding:"required,gt=0"`
	Description string   `json:"description" binding:"required"`
}

// UpdateItemRequest is the JSON body for PUT /items/{id}.
// Every field is optional; nil means "keep the stored value".
type UpdateItemRequest struct {
	Name        *string  `json:"name" binding:"omitempty,min=1"`
	Quantity    *int     `json:"quantity" binding:"omitempty,gt=0"`
	Price       *float64 `json:"price" binding:"omitempty,gt=0"`
	Description *string  `json:"description" binding:"omitempty,min=1"`
}

// Patch converts the request into a domain patch.
func (r UpdateItemRequest) Patch() dom.ItemPatch {
	return dom.ItemPatch{
		Name:        r.Name,
		Quantity:    r.Quantity,
		Price:       r.Price,
		Description: r.Description,
	}
}

type ItemResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Quantity    int       `json:"quantity"`
	Price       float64   `json:"price"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ItemValidationMessages turns a binding error into the per-field rule
// messages returned on 400 responses, one entry per violated rule.
func ItemValidationMessages(err error) []string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		out := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			out = append(out, itemRuleMessage(fe.Field()))
		}
		return out
	}
	var ute *json.UnmarshalTypeError
	if errors.As(err, &ute) && ute.Field != "" {
		return []string{itemRuleMessage(ute.Field)}
	}
	return []string{"invalid request body"}
}

func itemRuleMessage(field string) string {
	switch field {
	case "Name", "name":
		return "name is required"
	case "Quantity", "quantity":
		return "quantity must be a positive integer"
	case "Price", "price":
		return "price must be a positive number"
	case "Description", "description":
		return "description is required"
	}
	return "invalid field: " + field
}
