package dto

import (
	"time"

	"github.com/contafacil/honorarios_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateCertificateRequest defines the expected JSON body for registering a
// digital-certificate sale. Either ClientID or StandaloneName identifies the
// buyer.
type CreateCertificateRequest struct {
	ClientID       *string         `json:"clientID"`
	StandaloneName *string         `json:"standaloneName"`
	TaxID          *string         `json:"taxID"`
	Type           string          `json:"type" binding:"required"`
	Category       string          `json:"category" binding:"required"`
	Media          *string         `json:"media"`
	ValidityYears  int             `json:"validityYears" binding:"required,min=1,max=5"`
	IssuedAt       time.Time       `json:"issuedAt" binding:"required"`
	ExpiresAt      time.Time       `json:"expiresAt" binding:"required"`
	Amount         decimal.Decimal `json:"amount" binding:"required"`
	Note           *string         `json:"note"`
	LinkedToFee    bool            `json:"linkedToFee"`
	FeeMonth       *int            `json:"feeMonth" binding:"omitempty,min=1,max=13"`
	FeeYear        *int            `json:"feeYear" binding:"omitempty,min=2000,max=2100"`
}

// UpdateCertificateRequest defines the mutable certificate fields.
type UpdateCertificateRequest struct {
	Status        *domain.CertificateStatus `json:"status" binding:"omitempty,oneof=ATIVO REVOGADO VENCIDO"`
	PaymentStatus *domain.FeeStatus         `json:"paymentStatus" binding:"omitempty,oneof=PENDENTE PAGO ATRASADO"`
	Media         *string                   `json:"media"`
	Note          *string                   `json:"note"`
	Amount        *decimal.Decimal          `json:"amount"`
	ExpiresAt     *time.Time                `json:"expiresAt"`
}
