package dto

import (
	"time"

	"github.com/contafacil/honorarios_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateFeeRequest defines the expected JSON body for creating one fee record.
type CreateFeeRequest struct {
	ClientID  string          `json:"clientID" binding:"required"`
	Year      int             `json:"year" binding:"required,min=2000,max=2100"`
	MonthSlot int             `json:"monthSlot" binding:"required,min=1,max=13"`
	Amount    decimal.Decimal `json:"amount" binding:"required"`
	DueDate   *time.Time      `json:"dueDate"`
	Note      *string         `json:"note"`
}

// MarkFeePaidRequest defines the expected JSON body for settling a fee.
// PaymentDate defaults to today when omitted.
type MarkFeePaidRequest struct {
	PaymentDate   *time.Time `json:"paymentDate"`
	PaymentMethod *string    `json:"paymentMethod"`
}

// SetYearlyAmountRequest registers a client's default amount for one year.
type SetYearlyAmountRequest struct {
	Year   int             `json:"year" binding:"required,min=2000,max=2100"`
	Amount decimal.Decimal `json:"amount" binding:"required"`
}

// CreateYearFeesRequest registers a yearly amount and creates the year's
// missing monthly records for one client in a single call.
type CreateYearFeesRequest struct {
	Year   int             `json:"year" binding:"required,min=2000,max=2100"`
	Amount decimal.Decimal `json:"amount" binding:"required"`
}

// FeeResponse defines the fee record data returned by the API.
type FeeResponse struct {
	FeeID         string           `json:"feeID"`
	ClientID      string           `json:"clientID"`
	Year          int              `json:"year"`
	MonthSlot     int              `json:"monthSlot"`
	Amount        decimal.Decimal  `json:"amount"`
	Status        domain.FeeStatus `json:"status"`
	DueDate       *time.Time       `json:"dueDate,omitempty"`
	PaymentDate   *time.Time       `json:"paymentDate,omitempty"`
	PaymentMethod *string          `json:"paymentMethod,omitempty"`
	Note          *string          `json:"note,omitempty"`
}

// ToFeeResponse maps a domain fee record to its API representation.
func ToFeeResponse(f *domain.FeeRecord) FeeResponse {
	return FeeResponse{
		FeeID:         f.FeeID,
		ClientID:      f.ClientID,
		Year:          f.Year,
		MonthSlot:     f.MonthSlot,
		Amount:        f.Amount,
		Status:        f.Status,
		DueDate:       f.DueDate,
		PaymentDate:   f.PaymentDate,
		PaymentMethod: f.PaymentMethod,
		Note:          f.Note,
	}
}

// ToFeeResponseSlice maps a slice of domain fee records.
func ToFeeResponseSlice(fees []domain.FeeRecord) []FeeResponse {
	out := make([]FeeResponse, len(fees))
	for i := range fees {
		out[i] = ToFeeResponse(&fees[i])
	}
	return out
}
