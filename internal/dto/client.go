package dto

import (
	"github.com/contafacil/honorarios_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateClientRequest defines the expected JSON body for creating a client.
type CreateClientRequest struct {
	InternalCode string           `json:"internalCode"`
	Name         string           `json:"name" binding:"required"`
	CNPJ         *string          `json:"cnpj"`
	CPF          *string          `json:"cpf"`
	Address      *string          `json:"address"`
	Phone        *string          `json:"phone"`
	Email        *string          `json:"email"`
	Active       *bool            `json:"active"`
	DefaultFee   *decimal.Decimal `json:"defaultFeeAmount"`
	// YearlyAmount optionally registers a default amount for one year and
	// seeds that year's pending records on creation.
	YearlyAmount *YearlyAmountSeed `json:"yearlyAmount"`
}

// YearlyAmountSeed is the optional amount registered together with a new client.
type YearlyAmountSeed struct {
	Year   int             `json:"year" binding:"required,min=2000,max=2100"`
	Amount decimal.Decimal `json:"amount" binding:"required"`
}

// UpdateClientRequest defines the expected JSON body for updating a client.
type UpdateClientRequest struct {
	InternalCode *string          `json:"internalCode"`
	Name         *string          `json:"name"`
	CNPJ         *string          `json:"cnpj"`
	CPF          *string          `json:"cpf"`
	Address      *string          `json:"address"`
	Phone        *string          `json:"phone"`
	Email        *string          `json:"email"`
	Active       *bool            `json:"active"`
	DefaultFee   *decimal.Decimal `json:"defaultFeeAmount"`
}

// ClientResponse defines the client data returned by the API.
type ClientResponse struct {
	ClientID     string           `json:"clientID"`
	InternalCode string           `json:"internalCode,omitempty"`
	Name         string           `json:"name"`
	CNPJ         *string          `json:"cnpj,omitempty"`
	CPF          *string          `json:"cpf,omitempty"`
	Address      *string          `json:"address,omitempty"`
	Phone        *string          `json:"phone,omitempty"`
	Email        *string          `json:"email,omitempty"`
	Active       bool             `json:"active"`
	DefaultFee   *decimal.Decimal `json:"defaultFeeAmount,omitempty"`
}

// ToClientResponse maps a domain client to its API representation.
func ToClientResponse(c *domain.Client) ClientResponse {
	return ClientResponse{
		ClientID:     c.ClientID,
		InternalCode: c.InternalCode,
		Name:         c.Name,
		CNPJ:         c.CNPJ,
		CPF:          c.CPF,
		Address:      c.Address,
		Phone:        c.Phone,
		Email:        c.Email,
		Active:       c.Active,
		DefaultFee:   c.DefaultFeeAmount,
	}
}
