package services_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/contafacil/honorarios_app/internal/core/domain"
	"github.com/contafacil/honorarios_app/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// stride builds the 4 rows of one client block. amounts, dates and methods
// are keyed by 1-based sheet column.
func stride(code, name string, amounts, dates, methods map[int]string) [][]string {
	rows := make([][]string, 4)
	for i := range rows {
		rows[i] = make([]string, 15)
	}
	rows[0][0] = code
	rows[0][1] = name
	for col, v := range amounts {
		rows[0][col-1] = v
	}
	for col, v := range dates {
		rows[2][col-1] = v
	}
	for col, v := range methods {
		rows[3][col-1] = v
	}
	return rows
}

func sheetWith(strides ...[][]string) [][]string {
	rows := [][]string{{"CÓD", "NOME"}}
	for _, s := range strides {
		rows = append(rows, s...)
	}
	return rows
}

type ImportServiceTestSuite struct {
	suite.Suite
	clientRepo *MockClientRepository
	feeRepo    *MockFeeRepository
	audit      *MockAuditSvc
	service    *services.ImportService
}

func (s *ImportServiceTestSuite) SetupTest() {
	s.clientRepo = new(MockClientRepository)
	s.feeRepo = new(MockFeeRepository)
	s.audit = new(MockAuditSvc)
	s.service = services.NewImportService(s.clientRepo, s.feeRepo, s.audit, discardLogger())

	s.feeRepo.On("Begin", mock.Anything).Return(nil, nil)
	s.feeRepo.On("Commit", mock.Anything, mock.Anything).Return(nil)
	s.feeRepo.On("Rollback", mock.Anything, mock.Anything).Return(nil).Maybe()
	s.audit.On("Record", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Maybe()
}

func (s *ImportServiceTestSuite) TestImportMarksExistingClientPaid() {
	ctx := context.Background()
	client := domain.Client{ClientID: "c-1", InternalCode: "12", Name: "PADARIA CENTRAL"}
	s.clientRepo.On("ListAllClients", ctx).Return([]domain.Client{client}, nil).Once()

	// January amount in column 3, paid on the 9th by pix
	rows := sheetWith(stride("12", "Padaria Central",
		map[int]string{3: "R$ 645,00"},
		map[int]string{3: "09/jan"},
		map[int]string{3: "pix"},
	))

	s.feeRepo.On("InsertFeeIfAbsentInTx", mock.Anything, mock.Anything, mock.MatchedBy(func(f domain.FeeRecord) bool {
		return f.ClientID == "c-1" && f.Year == 2024 && f.MonthSlot == 1 &&
			f.Amount.Equal(decimal.RequireFromString("645.00")) && f.Status == domain.FeePending
	})).Return(true, nil).Once()
	s.feeRepo.On("MarkTuplePaidInTx", mock.Anything, mock.Anything, "c-1", 2024, 1,
		decimal.RequireFromString("645.00"), mock.Anything, mock.MatchedBy(func(m *string) bool {
			return m != nil && *m == "pix"
		})).Return(true, nil).Once()

	result, err := s.service.ImportSheet(ctx, rows, "2024", 2024)

	s.Require().NoError(err)
	s.Equal(1, result.Created)
	s.Equal(1, result.Updated)
	s.Equal(0, result.ClientsCreated)
	s.Empty(result.Errors)
	s.feeRepo.AssertExpectations(s.T())
}

func (s *ImportServiceTestSuite) TestImportColumnMapping() {
	ctx := context.Background()
	client := domain.Client{ClientID: "c-1", InternalCode: "7", Name: "MERCADO BOM PRECO"}
	s.clientRepo.On("ListAllClients", ctx).Return([]domain.Client{client}, nil).Once()

	// column 14 is the 13th salary, column 15 is December
	rows := sheetWith(stride("7", "Mercado Bom Preco",
		map[int]string{14: "500,00", 15: "645,00"},
		nil, nil,
	))

	var slots []int
	s.feeRepo.On("InsertFeeIfAbsentInTx", mock.Anything, mock.Anything, mock.AnythingOfType("domain.FeeRecord")).
		Run(func(args mock.Arguments) {
			slots = append(slots, args.Get(2).(domain.FeeRecord).MonthSlot)
		}).Return(true, nil).Twice()
	s.feeRepo.On("MarkTuplePaidInTx", mock.Anything, mock.Anything, "c-1", 2023, mock.Anything,
		mock.Anything, mock.Anything, mock.Anything).Return(true, nil).Twice()

	result, err := s.service.ImportSheet(ctx, rows, "2023", 2023)

	s.Require().NoError(err)
	// column order puts the 13th-salary slot before December
	s.Equal([]int{13, 12}, slots)
	s.Equal(2, result.Created)
	s.feeRepo.AssertExpectations(s.T())
}

func (s *ImportServiceTestSuite) TestImportAutoCreatesUnknownClientOnce() {
	ctx := context.Background()
	s.clientRepo.On("ListAllClients", ctx).Return([]domain.Client{}, nil).Once()

	// the same unknown client appears in two strides; only one creation
	rows := sheetWith(
		stride("99", "Cliente Novo", map[int]string{3: "100,00"}, nil, nil),
		stride("99", "Cliente Novo", map[int]string{4: "100,00"}, nil, nil),
	)

	s.clientRepo.On("SaveClientInTx", mock.Anything, mock.Anything, mock.MatchedBy(func(c domain.Client) bool {
		return c.InternalCode == "99" && c.Name == "Cliente Novo" && !c.Active
	})).Return(nil).Once()
	s.feeRepo.On("InsertFeeIfAbsentInTx", mock.Anything, mock.Anything, mock.Anything).Return(true, nil).Twice()
	s.feeRepo.On("MarkTuplePaidInTx", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything,
		mock.Anything, mock.Anything, mock.Anything).Return(true, nil).Twice()

	result, err := s.service.ImportSheet(ctx, rows, "2024", 2024)

	s.Require().NoError(err)
	s.Equal(1, result.ClientsCreated)
	s.clientRepo.AssertExpectations(s.T())
}

func (s *ImportServiceTestSuite) TestImportFallsBackToNameMatch() {
	ctx := context.Background()
	client := domain.Client{ClientID: "c-1", InternalCode: "12", Name: "PADARIA CENTRAL"}
	s.clientRepo.On("ListAllClients", ctx).Return([]domain.Client{client}, nil).Once()

	// renumbered code, same name in a different case
	rows := sheetWith(stride("47", "padaria central", map[int]string{3: "100,00"}, nil, nil))

	s.feeRepo.On("InsertFeeIfAbsentInTx", mock.Anything, mock.Anything, mock.MatchedBy(func(f domain.FeeRecord) bool {
		return f.ClientID == "c-1"
	})).Return(true, nil).Once()
	s.feeRepo.On("MarkTuplePaidInTx", mock.Anything, mock.Anything, "c-1", 2024, 1,
		mock.Anything, mock.Anything, mock.Anything).Return(true, nil).Once()

	result, err := s.service.ImportSheet(ctx, rows, "2024", 2024)

	s.Require().NoError(err)
	s.Equal(0, result.ClientsCreated)
	s.clientRepo.AssertNotCalled(s.T(), "SaveClientInTx")
	s.feeRepo.AssertExpectations(s.T())
}

func (s *ImportServiceTestSuite) TestImportSkipsEmptyMonthsAndHeaderStrides() {
	ctx := context.Background()
	client := domain.Client{ClientID: "c-1", InternalCode: "3", Name: "ACME"}
	s.clientRepo.On("ListAllClients", ctx).Return([]domain.Client{client}, nil).Once()

	headerStride := stride("", "SEÇÃO COMÉRCIO", nil, nil, nil)
	rows := sheetWith(
		headerStride,
		stride("3", "Acme", map[int]string{3: "isento", 5: "200,00"}, nil, nil),
	)

	s.feeRepo.On("InsertFeeIfAbsentInTx", mock.Anything, mock.Anything, mock.MatchedBy(func(f domain.FeeRecord) bool {
		return f.MonthSlot == 3
	})).Return(true, nil).Once()
	s.feeRepo.On("MarkTuplePaidInTx", mock.Anything, mock.Anything, "c-1", 2024, 3,
		mock.Anything, mock.Anything, mock.Anything).Return(true, nil).Once()

	result, err := s.service.ImportSheet(ctx, rows, "2024", 2024)

	s.Require().NoError(err)
	s.Equal(1, result.SkippedRows)
	s.Equal(1, result.Created)
	s.feeRepo.AssertExpectations(s.T())
}

func (s *ImportServiceTestSuite) TestImportAccumulatesTupleErrors() {
	ctx := context.Background()
	client := domain.Client{ClientID: "c-1", InternalCode: "5", Name: "FALHA LTDA"}
	s.clientRepo.On("ListAllClients", ctx).Return([]domain.Client{client}, nil).Once()

	rows := sheetWith(stride("5", "Falha Ltda",
		map[int]string{3: "100,00", 4: "100,00"},
		nil, nil,
	))

	s.feeRepo.On("InsertFeeIfAbsentInTx", mock.Anything, mock.Anything, mock.MatchedBy(func(f domain.FeeRecord) bool {
		return f.MonthSlot == 1
	})).Return(false, assert.AnError).Once()
	s.feeRepo.On("InsertFeeIfAbsentInTx", mock.Anything, mock.Anything, mock.MatchedBy(func(f domain.FeeRecord) bool {
		return f.MonthSlot == 2
	})).Return(true, nil).Once()
	s.feeRepo.On("MarkTuplePaidInTx", mock.Anything, mock.Anything, "c-1", 2024, 2,
		mock.Anything, mock.Anything, mock.Anything).Return(true, nil).Once()

	result, err := s.service.ImportSheet(ctx, rows, "2024", 2024)

	s.Require().NoError(err)
	s.Len(result.Errors, 1)
	s.Equal(2, result.Errors[0].Row)
	s.Equal(1, result.Created)
	s.Equal(1, result.Updated)
	s.feeRepo.AssertExpectations(s.T())
}

func TestImportServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ImportServiceTestSuite))
}
