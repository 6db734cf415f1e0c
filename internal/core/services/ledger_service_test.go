package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/mecmec98/billingrestapi/internal/apperrors"
	"github.com/mecmec98/billingrestapi/internal/core/domain"
	portssvc "github.com/mecmec98/billingrestapi/internal/core/ports/services"
	"github.com/mecmec98/billingrestapi/internal/core/services"
	"github.com/mecmec98/billingrestapi/internal/dto"
)

// --- Mock LedgerRepository ---
type MockLedgerRepository struct {
	mock.Mock
}

func (m *MockLedgerRepository) PostTransaction(ctx context.Context, entry domain.LedgerEntry) (*domain.LedgerEntry, error) {
	args := m.Called(ctx, entry)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LedgerEntry), args.Error(1)
}

func (m *MockLedgerRepository) CreateEntry(ctx context.Context, entry domain.LedgerEntry) (*domain.LedgerEntry, error) {
	args := m.Called(ctx, entry)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LedgerEntry), args.Error(1)
}

func (m *MockLedgerRepository) UpdateStatus(ctx context.Context, id int64, status domain.LedgerStatus) (*domain.LedgerEntry, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LedgerEntry), args.Error(1)
}

func (m *MockLedgerRepository) DeleteEntry(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockLedgerRepository) ListEntries(ctx context.Context) ([]domain.LedgerEntry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LedgerEntry), args.Error(1)
}

func (m *MockLedgerRepository) FindEntriesByConsumer(ctx context.Context, consumerID int64) ([]domain.LedgerEntry, error) {
	args := m.Called(ctx, consumerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LedgerEntry), args.Error(1)
}

func (m *MockLedgerRepository) LatestBalance(ctx context.Context, consumerID int64) (decimal.Decimal, error) {
	args := m.Called(ctx, consumerID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockLedgerRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(pgx.Tx), args.Error(1)
}

func (m *MockLedgerRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockLedgerRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

// --- Test Suite ---
type LedgerServiceTestSuite struct {
	suite.Suite
	mockRepo *MockLedgerRepository
	service  portssvc.LedgerSvcFacade
}

func (suite *LedgerServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockLedgerRepository)
	suite.service = services.NewLedgerService(suite.mockRepo)
}

func int64Ptr(v int64) *int64 { return &v }
func int16Ptr(v int16) *int16 { return &v }
func decimalPtr(d decimal.Decimal) *decimal.Decimal {
	return &d
}

// --- Test Cases ---

func (suite *LedgerServiceTestSuite) TestPostTransaction_Success() {
	ctx := context.Background()
	req := dto.PostTransactionRequest{
		ConsumerID:  int64Ptr(7),
		RefNo:       "BILL-2024-0042",
		Particulars: "Water bill for March",
		Debit:       decimal.NewFromInt(500),
		Credit:      decimal.Zero,
		ByUser:      "teller1",
		Status:      int16Ptr(int16(domain.StatusUnpaid)),
		Amount:      decimal.NewFromInt(500),
	}

	expected := &domain.LedgerEntry{
		ID:          101,
		ConsumerID:  7,
		RefNo:       req.RefNo,
		DateEntered: time.Now().UTC(),
		Particulars: req.Particulars,
		Debit:       req.Debit,
		Credit:      req.Credit,
		Balance:     decimal.NewFromInt(500),
		ByUser:      req.ByUser,
		Status:      domain.StatusUnpaid,
		Amount:      req.Amount,
	}

	suite.mockRepo.On("PostTransaction", ctx, mock.MatchedBy(func(e domain.LedgerEntry) bool {
		return e.ConsumerID == 7 && e.RefNo == req.RefNo && e.Debit.Equal(req.Debit) && e.Balance.IsZero()
	})).Return(expected, nil).Once()

	entry, err := suite.service.PostTransaction(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(entry)
	suite.Equal(int64(101), entry.ID)
	suite.True(entry.Balance.Equal(decimal.NewFromInt(500)))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestPostTransaction_NegativeDebit() {
	ctx := context.Background()
	req := dto.PostTransactionRequest{
		ConsumerID:  int64Ptr(7),
		RefNo:       "BILL-2024-0042",
		Particulars: "Water bill for March",
		Debit:       decimal.NewFromInt(-1),
		ByUser:      "teller1",
		Status:      int16Ptr(int16(domain.StatusUnpaid)),
	}

	entry, err := suite.service.PostTransaction(ctx, req)

	suite.Require().Error(err)
	suite.Nil(entry)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "PostTransaction")
}

func (suite *LedgerServiceTestSuite) TestPostTransaction_ConsumerNotFound() {
	ctx := context.Background()
	req := dto.PostTransactionRequest{
		ConsumerID:  int64Ptr(999),
		RefNo:       "BILL-2024-0042",
		Particulars: "Water bill for March",
		Debit:       decimal.NewFromInt(500),
		ByUser:      "teller1",
		Status:      int16Ptr(int16(domain.StatusUnpaid)),
	}

	suite.mockRepo.On("PostTransaction", ctx, mock.AnythingOfType("domain.LedgerEntry")).
		Return(nil, apperrors.ErrNotFound).Once()

	entry, err := suite.service.PostTransaction(ctx, req)

	suite.Require().Error(err)
	suite.Nil(entry)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestCreateEntry_Success() {
	ctx := context.Background()
	req := dto.CreateLedgerEntryRequest{
		ConsumerID:  int64Ptr(3),
		RefNo:       "MIG-0001",
		Particulars: "Opening balance",
		Debit:       decimalPtr(decimal.NewFromInt(1200)),
		Credit:      decimalPtr(decimal.Zero),
		Balance:     decimalPtr(decimal.NewFromInt(1200)),
		ByUser:      "admin",
		Status:      int16Ptr(int16(domain.StatusUnpaid)),
		Amount:      decimalPtr(decimal.NewFromInt(1200)),
	}

	expected := &domain.LedgerEntry{ID: 1, ConsumerID: 3, Balance: decimal.NewFromInt(1200)}

	suite.mockRepo.On("CreateEntry", ctx, mock.MatchedBy(func(e domain.LedgerEntry) bool {
		return e.ConsumerID == 3 && e.Balance.Equal(decimal.NewFromInt(1200))
	})).Return(expected, nil).Once()

	entry, err := suite.service.CreateEntry(ctx, req)

	suite.Require().NoError(err)
	suite.Equal(int64(1), entry.ID)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestUpdateStatus_InvalidStatus() {
	ctx := context.Background()

	entry, err := suite.service.UpdateStatus(ctx, 5, domain.LedgerStatus(9))

	suite.Require().Error(err)
	suite.Nil(entry)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateStatus")
}

func (suite *LedgerServiceTestSuite) TestUpdateStatus_Success() {
	ctx := context.Background()
	expected := &domain.LedgerEntry{ID: 5, Status: domain.StatusPaid}

	suite.mockRepo.On("UpdateStatus", ctx, int64(5), domain.StatusPaid).Return(expected, nil).Once()

	entry, err := suite.service.UpdateStatus(ctx, 5, domain.StatusPaid)

	suite.Require().NoError(err)
	suite.Equal(domain.StatusPaid, entry.Status)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestLatestBalance_NotFound() {
	ctx := context.Background()

	suite.mockRepo.On("LatestBalance", ctx, int64(42)).Return(decimal.Decimal{}, apperrors.ErrNotFound).Once()

	_, err := suite.service.LatestBalance(ctx, 42)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestLedgerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerServiceTestSuite))
}
