package domain

import "github.com/shopspring/decimal"

// YearSummary aggregates the fee ledger for one calendar year.
type YearSummary struct {
	Year          int             `json:"year"`
	Total         int             `json:"total"`
	Paid          int             `json:"paid"`
	Pending       int             `json:"pending"`
	Late          int             `json:"late"`
	TotalAmount   decimal.Decimal `json:"totalAmount"`
	PaidAmount    decimal.Decimal `json:"paidAmount"`
	PendingAmount decimal.Decimal `json:"pendingAmount"`
}

// ClientYearSummary is one year's rollup inside a client report.
type ClientYearSummary struct {
	Year          int             `json:"year"`
	Total         int             `json:"total"`
	Paid          int             `json:"paid"`
	Pending       int             `json:"pending"`
	TotalAmount   decimal.Decimal `json:"totalAmount"`
	PaidAmount    decimal.Decimal `json:"paidAmount"`
	PendingAmount decimal.Decimal `json:"pendingAmount"`
}

// ClientReport is the full statement for one client, consumed by the PDF
// report collaborator.
type ClientReport struct {
	Client       Client              `json:"client"`
	Fees         []FeeRecord         `json:"fees"`
	YearSummary  []ClientYearSummary `json:"yearSummary"`
	Receipts     []Receipt           `json:"receipts"`
	TotalBilled  decimal.Decimal     `json:"totalBilled"`
	TotalPaid    decimal.Decimal     `json:"totalPaid"`
	OpenBalance  decimal.Decimal     `json:"openBalance"`
}

// PaymentMethodTotal aggregates paid fees of a year by payment method.
type PaymentMethodTotal struct {
	Method string          `json:"method"`
	Count  int             `json:"count"`
	Total  decimal.Decimal `json:"total"`
}

// DueFee is a pending fee surfaced by the due-soon query, enriched with the
// contact fields the notification collaborator needs.
type DueFee struct {
	FeeRecord
	ClientName  string  `json:"clientName"`
	ClientEmail *string `json:"clientEmail,omitempty"`
}
