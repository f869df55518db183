package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// FeeStatus is the lifecycle state of a fee record. The wire values are the
// Portuguese ones stored by the legacy system; they must not be translated or
// historical data becomes unreadable.
type FeeStatus string

const (
	FeePending FeeStatus = "PENDENTE"
	FeePaid    FeeStatus = "PAGO"
	FeeLate    FeeStatus = "ATRASADO"
)

// Month slots 1-12 are calendar months. Slot 13 is the 13th-salary charge
// billed at year end alongside December.
const ThirteenthSalarySlot = 13

// FeeRecord is one billing line of the ledger: one client, one year, one
// month slot. (ClientID, Year, MonthSlot) is the natural key and is enforced
// unique by the store.
type FeeRecord struct {
	FeeID         string          `json:"feeID"`
	ClientID      string          `json:"clientID"`
	Year          int             `json:"year"`
	MonthSlot     int             `json:"monthSlot"`
	Amount        decimal.Decimal `json:"amount"`
	Status        FeeStatus       `json:"status"`
	DueDate       *time.Time      `json:"dueDate,omitempty"`
	PaymentDate   *time.Time      `json:"paymentDate,omitempty"`
	PaymentMethod *string         `json:"paymentMethod,omitempty"`
	Note          *string         `json:"note,omitempty"`
}

// YearlyFeeAmount is the default monthly amount registered for a client and
// year, used as the template when generating that year's pending records.
// Unique per (ClientID, Year); re-registration overwrites.
type YearlyFeeAmount struct {
	ClientID string          `json:"clientID"`
	Year     int             `json:"year"`
	Amount   decimal.Decimal `json:"amount"`
}
