package dto

import (
	"time"

	"github.com/contafacil/honorarios_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateReceiptRequest defines the expected JSON body for issuing a receipt.
type CreateReceiptRequest struct {
	ClientID       string          `json:"clientID" binding:"required"`
	Amount         decimal.Decimal `json:"amount" binding:"required"`
	Description    string          `json:"description" binding:"required"`
	ReferenceMonth *int            `json:"referenceMonth" binding:"omitempty,min=1,max=13"`
	ReferenceYear  *int            `json:"referenceYear" binding:"omitempty,min=2000,max=2100"`
}

// ReceiptResponse defines the receipt data returned by the API.
type ReceiptResponse struct {
	ReceiptID      string          `json:"receiptID"`
	Number         int             `json:"number"`
	ClientID       string          `json:"clientID"`
	Amount         decimal.Decimal `json:"amount"`
	Description    string          `json:"description"`
	ReferenceMonth *int            `json:"referenceMonth,omitempty"`
	ReferenceYear  *int            `json:"referenceYear,omitempty"`
	IssuedAt       time.Time       `json:"issuedAt"`
}

// ToReceiptResponse maps a domain receipt to its API representation.
func ToReceiptResponse(r *domain.Receipt) ReceiptResponse {
	return ReceiptResponse{
		ReceiptID:      r.ReceiptID,
		Number:         r.Number,
		ClientID:       r.ClientID,
		Amount:         r.Amount,
		Description:    r.Description,
		ReferenceMonth: r.ReferenceMonth,
		ReferenceYear:  r.ReferenceYear,
		IssuedAt:       r.IssuedAt,
	}
}
