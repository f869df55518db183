package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CertificateStatus is the validity state of a digital certificate.
type CertificateStatus string

const (
	CertificateActive  CertificateStatus = "ATIVO"
	CertificateRevoked CertificateStatus = "REVOGADO"
	CertificateExpired CertificateStatus = "VENCIDO"
)

// Certificate is a digital-certificate sale. It may belong to a registered
// client or to a walk-in buyer (StandaloneName), and may optionally be linked
// to a (month, year) fee record so receipt generation invoices both together.
type Certificate struct {
	CertificateID  string            `json:"certificateID"`
	ClientID       *string           `json:"clientID,omitempty"`
	StandaloneName *string           `json:"standaloneName,omitempty"`
	TaxID          *string           `json:"taxID,omitempty"`
	Type           string            `json:"type"`
	Category       string            `json:"category"`
	Media          *string           `json:"media,omitempty"`
	ValidityYears  int               `json:"validityYears"`
	IssuedAt       time.Time         `json:"issuedAt"`
	ExpiresAt      time.Time         `json:"expiresAt"`
	Amount         decimal.Decimal   `json:"amount"`
	Status         CertificateStatus `json:"status"`
	PaymentStatus  FeeStatus         `json:"paymentStatus"`
	Note           *string           `json:"note,omitempty"`
	LinkedToFee    bool              `json:"linkedToFee"`
	FeeMonth       *int              `json:"feeMonth,omitempty"`
	FeeYear        *int              `json:"feeYear,omitempty"`
	RegisteredAt   time.Time         `json:"registeredAt"`
}
