package services_test

import (
	"context"
	"time"

	"github.com/contafacil/honorarios_app/internal/core/domain"
	portsrepo "github.com/contafacil/honorarios_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock ClientRepository ---

type MockClientRepository struct {
	mock.Mock
}

func (m *MockClientRepository) FindClientByID(ctx context.Context, clientID string) (*domain.Client, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}

func (m *MockClientRepository) ListClients(ctx context.Context, active bool) ([]domain.Client, error) {
	args := m.Called(ctx, active)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Client), args.Error(1)
}

func (m *MockClientRepository) ListAllClients(ctx context.Context) ([]domain.Client, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Client), args.Error(1)
}

func (m *MockClientRepository) SaveClient(ctx context.Context, client domain.Client) error {
	args := m.Called(ctx, client)
	return args.Error(0)
}

func (m *MockClientRepository) UpdateClient(ctx context.Context, client domain.Client) error {
	args := m.Called(ctx, client)
	return args.Error(0)
}

func (m *MockClientRepository) SaveClientInTx(ctx context.Context, tx pgx.Tx, client domain.Client) error {
	args := m.Called(ctx, tx, client)
	return args.Error(0)
}

func (m *MockClientRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	tx, _ := args.Get(0).(pgx.Tx)
	return tx, args.Error(1)
}

func (m *MockClientRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockClientRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

// --- Mock FeeRepository ---

type MockFeeRepository struct {
	mock.Mock
}

func (m *MockFeeRepository) FindFeeByID(ctx context.Context, feeID string) (*domain.FeeRecord, error) {
	args := m.Called(ctx, feeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FeeRecord), args.Error(1)
}

func (m *MockFeeRepository) ListFees(ctx context.Context, filter portsrepo.FeeFilter) ([]domain.FeeRecord, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FeeRecord), args.Error(1)
}

func (m *MockFeeRepository) SaveFee(ctx context.Context, fee domain.FeeRecord) error {
	args := m.Called(ctx, fee)
	return args.Error(0)
}

func (m *MockFeeRepository) MarkFeePaid(ctx context.Context, feeID string, paymentDate time.Time, paymentMethod *string) error {
	args := m.Called(ctx, feeID, paymentDate, paymentMethod)
	return args.Error(0)
}

func (m *MockFeeRepository) InsertFeeIfAbsentInTx(ctx context.Context, tx pgx.Tx, fee domain.FeeRecord) (bool, error) {
	args := m.Called(ctx, tx, fee)
	return args.Bool(0), args.Error(1)
}

func (m *MockFeeRepository) MarkTuplePaidInTx(ctx context.Context, tx pgx.Tx, clientID string, year, monthSlot int, amount decimal.Decimal, paymentDate *time.Time, paymentMethod *string) (bool, error) {
	args := m.Called(ctx, tx, clientID, year, monthSlot, amount, paymentDate, paymentMethod)
	return args.Bool(0), args.Error(1)
}

func (m *MockFeeRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	tx, _ := args.Get(0).(pgx.Tx)
	return tx, args.Error(1)
}

func (m *MockFeeRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockFeeRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

// --- Mock FeeAmountRepository ---

type MockFeeAmountRepository struct {
	mock.Mock
}

func (m *MockFeeAmountRepository) FindYearlyAmount(ctx context.Context, clientID string, year int) (*domain.YearlyFeeAmount, error) {
	args := m.Called(ctx, clientID, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.YearlyFeeAmount), args.Error(1)
}

func (m *MockFeeAmountRepository) ListYearlyAmounts(ctx context.Context, clientID string) ([]domain.YearlyFeeAmount, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.YearlyFeeAmount), args.Error(1)
}

func (m *MockFeeAmountRepository) ListAllYearlyAmounts(ctx context.Context) ([]portsrepo.YearlyAmountEntry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]portsrepo.YearlyAmountEntry), args.Error(1)
}

func (m *MockFeeAmountRepository) UpsertYearlyAmount(ctx context.Context, amount domain.YearlyFeeAmount) error {
	args := m.Called(ctx, amount)
	return args.Error(0)
}

// --- Mock ReceiptRepository ---

type MockReceiptRepository struct {
	mock.Mock
}

func (m *MockReceiptRepository) FindReceiptByID(ctx context.Context, receiptID string) (*domain.ReceiptWithClient, error) {
	args := m.Called(ctx, receiptID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ReceiptWithClient), args.Error(1)
}

func (m *MockReceiptRepository) ListReceipts(ctx context.Context, filter portsrepo.ReceiptFilter) ([]domain.Receipt, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Receipt), args.Error(1)
}

func (m *MockReceiptRepository) ReceiptExists(ctx context.Context, clientID string, month, year int) (bool, error) {
	args := m.Called(ctx, clientID, month, year)
	return args.Bool(0), args.Error(1)
}

func (m *MockReceiptRepository) SaveReceipt(ctx context.Context, receipt domain.Receipt) (int, error) {
	args := m.Called(ctx, receipt)
	return args.Int(0), args.Error(1)
}

// --- Mock CertificateRepository ---

type MockCertificateRepository struct {
	mock.Mock
}

func (m *MockCertificateRepository) FindCertificateByID(ctx context.Context, certificateID string) (*domain.Certificate, error) {
	args := m.Called(ctx, certificateID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Certificate), args.Error(1)
}

func (m *MockCertificateRepository) ListCertificates(ctx context.Context, filter portsrepo.CertificateFilter) ([]domain.Certificate, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Certificate), args.Error(1)
}

func (m *MockCertificateRepository) ListExpiringCertificates(ctx context.Context, withinDays int) ([]domain.Certificate, error) {
	args := m.Called(ctx, withinDays)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Certificate), args.Error(1)
}

func (m *MockCertificateRepository) SaveCertificate(ctx context.Context, certificate domain.Certificate) error {
	args := m.Called(ctx, certificate)
	return args.Error(0)
}

func (m *MockCertificateRepository) UpdateCertificate(ctx context.Context, certificate domain.Certificate) error {
	args := m.Called(ctx, certificate)
	return args.Error(0)
}

func (m *MockCertificateRepository) DeleteCertificate(ctx context.Context, certificateID string) error {
	args := m.Called(ctx, certificateID)
	return args.Error(0)
}

// --- Mock UserRepository ---

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) ListUsers(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateUserStatus(ctx context.Context, userID string, status domain.UserStatus) error {
	args := m.Called(ctx, userID, status)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateUserRole(ctx context.Context, userID string, role domain.UserRole) error {
	args := m.Called(ctx, userID, role)
	return args.Error(0)
}

func (m *MockUserRepository) DeleteUser(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// --- Mock AuditLogRepository ---

type MockAuditLogRepository struct {
	mock.Mock
}

func (m *MockAuditLogRepository) AppendAuditLog(ctx context.Context, entry domain.AuditLogEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockAuditLogRepository) ListAuditLogs(ctx context.Context, filter portsrepo.AuditLogFilter) ([]domain.AuditLogEntry, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AuditLogEntry), args.Error(1)
}

// --- Mock ReportingRepository ---

type MockReportingRepository struct {
	mock.Mock
}

func (m *MockReportingRepository) GetYearSummary(ctx context.Context, year int) (*domain.YearSummary, error) {
	args := m.Called(ctx, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.YearSummary), args.Error(1)
}

func (m *MockReportingRepository) GetClientYearSummaries(ctx context.Context, clientID string) ([]domain.ClientYearSummary, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ClientYearSummary), args.Error(1)
}

func (m *MockReportingRepository) GetPaymentMethodTotals(ctx context.Context, year int) ([]domain.PaymentMethodTotal, error) {
	args := m.Called(ctx, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PaymentMethodTotal), args.Error(1)
}

func (m *MockReportingRepository) ListDueFees(ctx context.Context, year, month int) ([]domain.DueFee, error) {
	args := m.Called(ctx, year, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DueFee), args.Error(1)
}

// --- Mock AuditSvc ---

type MockAuditSvc struct {
	mock.Mock
}

func (m *MockAuditSvc) Record(ctx context.Context, actor, action string, table, recordID, detail *string) {
	m.Called(ctx, actor, action, table, recordID, detail)
}

func (m *MockAuditSvc) ListEntries(ctx context.Context, filter portsrepo.AuditLogFilter) ([]domain.AuditLogEntry, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AuditLogEntry), args.Error(1)
}
