package services_test

import (
	"context"
	"encoding/json"
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

// --- Mock ReceiptRepository ---
type MockReceiptRepository struct {
	mock.Mock
}

func (m *MockReceiptRepository) ListReceipts(ctx context.Context) ([]domain.Receipt, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Receipt), args.Error(1)
}

func (m *MockReceiptRepository) FindReceiptByID(ctx context.Context, id int64) (*domain.Receipt, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Receipt), args.Error(1)
}

func (m *MockReceiptRepository) RemitSummary(ctx context.Context, machineSN *string) ([]domain.RemitBatchSummary, error) {
	args := m.Called(ctx, machineSN)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RemitBatchSummary), args.Error(1)
}

func (m *MockReceiptRepository) CreateReceipt(ctx context.Context, receipt domain.Receipt) (*domain.Receipt, error) {
	args := m.Called(ctx, receipt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Receipt), args.Error(1)
}

func (m *MockReceiptRepository) UpdateReceipt(ctx context.Context, receipt domain.Receipt) (*domain.Receipt, error) {
	args := m.Called(ctx, receipt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Receipt), args.Error(1)
}

func (m *MockReceiptRepository) DeleteReceipt(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockReceiptRepository) Remit(ctx context.Context, machineSN string) (*domain.RemittanceResult, error) {
	args := m.Called(ctx, machineSN)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RemittanceResult), args.Error(1)
}

func (m *MockReceiptRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(pgx.Tx), args.Error(1)
}

func (m *MockReceiptRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockReceiptRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

// --- Test Suite ---
type ReceiptServiceTestSuite struct {
	suite.Suite
	mockRepo *MockReceiptRepository
	service  portssvc.ReceiptSvcFacade
}

func (suite *ReceiptServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockReceiptRepository)
	suite.service = services.NewReceiptService(suite.mockRepo)
}

// --- Test Cases ---

func (suite *ReceiptServiceTestSuite) TestRemit_Success() {
	ctx := context.Background()
	now := time.Now().UTC()
	batch := 4
	receipts := []domain.Receipt{
		{ID: 1, ORNumber: "0000001", MachineSN: "SN-01", TotalAmount: decimal.NewFromFloat(150.25), Status: domain.ReceiptRemitted, RemitBatch: &batch, DateRemitted: &now},
		{ID: 2, ORNumber: "0000002", MachineSN: "SN-01", TotalAmount: decimal.NewFromFloat(199.75), Status: domain.ReceiptRemitted, RemitBatch: &batch, DateRemitted: &now},
		{ID: 3, ORNumber: "0000003", MachineSN: "SN-01", TotalAmount: decimal.NewFromInt(100), Status: domain.ReceiptRemitted, RemitBatch: &batch, DateRemitted: &now},
	}
	expected := &domain.RemittanceResult{
		MachineSN:   "SN-01",
		Remitted:    3,
		RemitBatch:  batch,
		TotalAmount: decimal.NewFromFloat(450.00),
		Receipts:    receipts,
	}

	suite.mockRepo.On("Remit", ctx, "SN-01").Return(expected, nil).Once()

	result, err := suite.service.Remit(ctx, "SN-01")

	suite.Require().NoError(err)
	suite.Require().NotNil(result)
	suite.Equal(3, result.Remitted)
	suite.Equal(4, result.RemitBatch)
	suite.Equal("450.00", result.TotalAmount.StringFixed(2))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ReceiptServiceTestSuite) TestRemit_NothingPending() {
	ctx := context.Background()
	expected := &domain.RemittanceResult{MachineSN: "SN-01", Remitted: 0}

	suite.mockRepo.On("Remit", ctx, "SN-01").Return(expected, nil).Once()

	result, err := suite.service.Remit(ctx, "SN-01")

	suite.Require().NoError(err)
	suite.Require().NotNil(result)
	suite.Equal(0, result.Remitted)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ReceiptServiceTestSuite) TestCreateReceipt_Success() {
	ctx := context.Background()
	items := json.RawMessage(`[{"desc":"Water bill","amount":"350.00"}]`)
	req := dto.CreateReceiptRequest{
		ORNumber:    "0000010",
		MachineSN:   "SN-01",
		Items:       items,
		ToCustomer:  "Juan Dela Cruz",
		ByUser:      "teller1",
		TotalAmount: decimalPtr(decimal.NewFromFloat(350.00)),
		PaymentMode: "cash",
		SeriesBatch: "1",
	}

	expected := &domain.Receipt{ID: 10, ORNumber: req.ORNumber, MachineSN: req.MachineSN, Status: domain.ReceiptIssued}

	suite.mockRepo.On("CreateReceipt", ctx, mock.MatchedBy(func(r domain.Receipt) bool {
		return r.ORNumber == req.ORNumber && r.MachineSN == req.MachineSN && r.TotalAmount.Equal(decimal.NewFromFloat(350.00))
	})).Return(expected, nil).Once()

	receipt, err := suite.service.CreateReceipt(ctx, req)

	suite.Require().NoError(err)
	suite.Equal(domain.ReceiptIssued, receipt.Status)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ReceiptServiceTestSuite) TestCreateReceipt_NegativeAmount() {
	ctx := context.Background()
	req := dto.CreateReceiptRequest{
		ORNumber:    "0000010",
		MachineSN:   "SN-01",
		Items:       json.RawMessage(`[]`),
		ToCustomer:  "Juan Dela Cruz",
		ByUser:      "teller1",
		TotalAmount: decimalPtr(decimal.NewFromInt(-5)),
		PaymentMode: "cash",
		SeriesBatch: "1",
	}

	receipt, err := suite.service.CreateReceipt(ctx, req)

	suite.Require().Error(err)
	suite.Nil(receipt)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "CreateReceipt")
}

func (suite *ReceiptServiceTestSuite) TestCreateReceipt_DuplicateORNumber() {
	ctx := context.Background()
	req := dto.CreateReceiptRequest{
		ORNumber:    "0000001",
		MachineSN:   "SN-01",
		Items:       json.RawMessage(`[]`),
		ToCustomer:  "Juan Dela Cruz",
		ByUser:      "teller1",
		TotalAmount: decimalPtr(decimal.NewFromInt(100)),
		PaymentMode: "cash",
		SeriesBatch: "1",
	}

	suite.mockRepo.On("CreateReceipt", ctx, mock.AnythingOfType("domain.Receipt")).
		Return(nil, apperrors.ErrDuplicate).Once()

	receipt, err := suite.service.CreateReceipt(ctx, req)

	suite.Require().Error(err)
	suite.Nil(receipt)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ReceiptServiceTestSuite) TestRemitSummary_ByMachine() {
	ctx := context.Background()
	sn := "SN-01"
	expected := []domain.RemitBatchSummary{
		{MachineSN: sn, RemitBatch: 2, ReceiptCount: 5, TotalAmount: decimal.NewFromInt(900)},
		{MachineSN: sn, RemitBatch: 1, ReceiptCount: 3, TotalAmount: decimal.NewFromInt(450)},
	}

	suite.mockRepo.On("RemitSummary", ctx, &sn).Return(expected, nil).Once()

	summaries, err := suite.service.RemitSummary(ctx, &sn)

	suite.Require().NoError(err)
	suite.Len(summaries, 2)
	suite.Equal(2, summaries[0].RemitBatch)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestReceiptServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReceiptServiceTestSuite))
}
