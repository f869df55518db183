package domain

import "github.com/shopspring/decimal"

// Client represents a billable entity of the accounting office.
//
// InternalCode is the human-assigned identifier used in the yearly fee
// spreadsheets. It is a best-effort secondary key: historical imports are not
// guaranteed to keep it unique, so only ClientID is authoritative.
type Client struct {
	ClientID     string  `json:"clientID"`
	InternalCode string  `json:"internalCode"`
	Name         string  `json:"name"`
	CNPJ         *string `json:"cnpj,omitempty"`
	CPF          *string `json:"cpf,omitempty"`
	Address      *string `json:"address,omitempty"`
	Phone        *string `json:"phone,omitempty"`
	Email        *string `json:"email,omitempty"`
	Active       bool    `json:"active"`
	// DefaultFeeAmount is the legacy per-client monthly amount, kept for
	// clients registered before per-year amounts existed.
	DefaultFeeAmount *decimal.Decimal `json:"defaultFeeAmount,omitempty"`
	AuditFields
}
