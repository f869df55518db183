package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Receipt is a numbered payment receipt issued to a client, optionally
// referencing the (month, year) fee it settles. Numbers are sequential and
// unique across the whole store.
type Receipt struct {
	ReceiptID      string          `json:"receiptID"`
	Number         int             `json:"number"`
	ClientID       string          `json:"clientID"`
	Amount         decimal.Decimal `json:"amount"`
	Description    string          `json:"description"`
	ReferenceMonth *int            `json:"referenceMonth,omitempty"`
	ReferenceYear  *int            `json:"referenceYear,omitempty"`
	IssuedAt       time.Time       `json:"issuedAt"`
}

// ReceiptWithClient joins the client fields document renderers need.
type ReceiptWithClient struct {
	Receipt
	ClientName    string  `json:"clientName"`
	ClientCNPJ    *string `json:"clientCNPJ,omitempty"`
	ClientCPF     *string `json:"clientCPF,omitempty"`
	ClientAddress *string `json:"clientAddress,omitempty"`
}
