package create

import (
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/bookstore/fulfillment/internal/domain/models"
)

var validate = validator.New()

type CreateOrderRequest struct {
	UserID           string `json:"user_id" validate:"required,uuid"`
	BookISBN         string `json:"book_isbn" validate:"required,min=10,max=13"`
	Quantity         int32  `json:"quantity" validate:"required,gt=0"`
	TotalAmountCents uint64 `json:"total_amount_cents" validate:"required,gt=0"`
}

func (req *CreateOrderRequest) Validate() error {
	return validate.Struct(req)
}

func (req *CreateOrderRequest) toDTO() models.Order {
	return models.Order{
		UserUUID:         uuid.MustParse(req.UserID),
		BookISBN:         req.BookISBN,
		Quantity:         req.Quantity,
		TotalAmountCents: req.TotalAmountCents,
	}
}
