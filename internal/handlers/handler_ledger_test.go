package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/mecmec98/billingrestapi/internal/apperrors"
	"github.com/mecmec98/billingrestapi/internal/core/domain"
	portssvc "github.com/mecmec98/billingrestapi/internal/core/ports/services"
	"github.com/mecmec98/billingrestapi/internal/dto"
	"github.com/mecmec98/billingrestapi/internal/handlers"
	"github.com/mecmec98/billingrestapi/internal/utils"
	"github.com/mecmec98/billingrestapi/pkg/config"
)

const testJWTSecret = "test-secret-key-that-is-long-enough"

// --- Mock LedgerService ---
type MockLedgerService struct {
	mock.Mock
}

func (m *MockLedgerService) PostTransaction(ctx context.Context, req dto.PostTransactionRequest) (*domain.LedgerEntry, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LedgerEntry), args.Error(1)
}

func (m *MockLedgerService) CreateEntry(ctx context.Context, req dto.CreateLedgerEntryRequest) (*domain.LedgerEntry, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LedgerEntry), args.Error(1)
}

func (m *MockLedgerService) UpdateStatus(ctx context.Context, id int64, status domain.LedgerStatus) (*domain.LedgerEntry, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LedgerEntry), args.Error(1)
}

func (m *MockLedgerService) LatestBalance(ctx context.Context, consumerID int64) (decimal.Decimal, error) {
	args := m.Called(ctx, consumerID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockLedgerService) ListEntries(ctx context.Context) ([]domain.LedgerEntry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LedgerEntry), args.Error(1)
}

func (m *MockLedgerService) FindEntriesByConsumer(ctx context.Context, consumerID int64) ([]domain.LedgerEntry, error) {
	args := m.Called(ctx, consumerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LedgerEntry), args.Error(1)
}

func (m *MockLedgerService) DeleteEntry(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

var _ portssvc.LedgerSvcFacade = (*MockLedgerService)(nil)

// --- Mock ReceiptService ---
type MockReceiptService struct {
	mock.Mock
}

func (m *MockReceiptService) ListReceipts(ctx context.Context) ([]domain.Receipt, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Receipt), args.Error(1)
}

func (m *MockReceiptService) GetReceiptByID(ctx context.Context, id int64) (*domain.Receipt, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Receipt), args.Error(1)
}

func (m *MockReceiptService) CreateReceipt(ctx context.Context, req dto.CreateReceiptRequest) (*domain.Receipt, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Receipt), args.Error(1)
}

func (m *MockReceiptService) UpdateReceipt(ctx context.Context, id int64, req dto.UpdateReceiptRequest) (*domain.Receipt, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Receipt), args.Error(1)
}

func (m *MockReceiptService) DeleteReceipt(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockReceiptService) Remit(ctx context.Context, machineSN string) (*domain.RemittanceResult, error) {
	args := m.Called(ctx, machineSN)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RemittanceResult), args.Error(1)
}

func (m *MockReceiptService) RemitSummary(ctx context.Context, machineSN *string) ([]domain.RemitBatchSummary, error) {
	args := m.Called(ctx, machineSN)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RemitBatchSummary), args.Error(1)
}

var _ portssvc.ReceiptSvcFacade = (*MockReceiptService)(nil)

// --- Mock MachineService ---
type MockMachineService struct {
	mock.Mock
}

func (m *MockMachineService) ListMachines(ctx context.Context) ([]domain.POSMachine, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.POSMachine), args.Error(1)
}

func (m *MockMachineService) GetMachineByID(ctx context.Context, id int) (*domain.POSMachine, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.POSMachine), args.Error(1)
}

func (m *MockMachineService) CreateMachine(ctx context.Context, req dto.CreateMachineRequest) (*domain.POSMachine, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.POSMachine), args.Error(1)
}

func (m *MockMachineService) UpdateMachine(ctx context.Context, id int, req dto.UpdateMachineRequest) (*domain.POSMachine, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.POSMachine), args.Error(1)
}

func (m *MockMachineService) DeleteMachine(ctx context.Context, id int) (*domain.POSMachine, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.POSMachine), args.Error(1)
}

func (m *MockMachineService) PeekSeries(ctx context.Context, serialNum string) (*domain.ORSeries, error) {
	args := m.Called(ctx, serialNum)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ORSeries), args.Error(1)
}

func (m *MockMachineService) ForwardSeries(ctx context.Context, serialNum string) (*domain.ORSeries, error) {
	args := m.Called(ctx, serialNum)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ORSeries), args.Error(1)
}

var _ portssvc.MachineSvcFacade = (*MockMachineService)(nil)

// --- Mock ConsumerService ---
type MockConsumerService struct {
	mock.Mock
}

func (m *MockConsumerService) ListConsumers(ctx context.Context) ([]domain.Consumer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Consumer), args.Error(1)
}

func (m *MockConsumerService) GetConsumerByID(ctx context.Context, id int64) (*domain.Consumer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Consumer), args.Error(1)
}

func (m *MockConsumerService) CreateConsumer(ctx context.Context, req dto.CreateConsumerRequest) (*domain.Consumer, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Consumer), args.Error(1)
}

func (m *MockConsumerService) UpdateConsumer(ctx context.Context, id int64, req dto.UpdateConsumerRequest) (*domain.Consumer, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Consumer), args.Error(1)
}

func (m *MockConsumerService) DeleteConsumer(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

var _ portssvc.ConsumerSvcFacade = (*MockConsumerService)(nil)

// --- Mock UserService ---
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.LoginResponse), args.Error(1)
}

func (m *MockUserService) ListUsers(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserService) GetUserByID(ctx context.Context, id int) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) CreateUser(ctx context.Context, req dto.CreateUserRequest) (*domain.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) UpdatePassword(ctx context.Context, id int, req dto.UpdatePasswordRequest) error {
	args := m.Called(ctx, id, req)
	return args.Error(0)
}

func (m *MockUserService) DeleteUser(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

var _ portssvc.UserSvcFacade = (*MockUserService)(nil)

// --- Shared helpers ---

type testMocks struct {
	ledger   *MockLedgerService
	receipt  *MockReceiptService
	machine  *MockMachineService
	consumer *MockConsumerService
	user     *MockUserService
}

func newTestRouter() (*gin.Engine, *testMocks) {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	mocks := &testMocks{
		ledger:   new(MockLedgerService),
		receipt:  new(MockReceiptService),
		machine:  new(MockMachineService),
		consumer: new(MockConsumerService),
		user:     new(MockUserService),
	}

	cfg := &config.Config{
		JWTSecret:         testJWTSecret,
		JWTExpiryDuration: time.Hour,
		JWTIssuer:         "billingrestapi-test",
		LoginRateLimit:    "100-M",
		IsProduction:      true, // skip swagger routes
	}

	handlers.RegisterRoutes(r, cfg, &portssvc.ServiceContainer{
		Ledger:   mocks.ledger,
		Receipt:  mocks.receipt,
		Machine:  mocks.machine,
		Consumer: mocks.consumer,
		User:     mocks.user,
	})
	return r, mocks
}

func generateTestToken(t *testing.T, userID string) string {
	t.Helper()
	token, err := utils.GenerateJWT(userID, testJWTSecret, time.Hour, "billingrestapi-test")
	if err != nil {
		t.Fatalf("failed to sign test token: %v", err)
	}
	return token
}

func int64Ptr(v int64) *int64 { return &v }
func int16Ptr(v int16) *int16 { return &v }
func decimalPtr(d decimal.Decimal) *decimal.Decimal {
	return &d
}

// --- Test Suite ---
type LedgerHandlerTestSuite struct {
	suite.Suite
	router *gin.Engine
	mocks  *testMocks
}

func (suite *LedgerHandlerTestSuite) SetupTest() {
	suite.router, suite.mocks = newTestRouter()
}

func (suite *LedgerHandlerTestSuite) authedRequest(method, url string, body interface{}) *http.Request {
	var buf bytes.Buffer
	if body != nil {
		suite.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req, _ := http.NewRequest(method, url, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+generateTestToken(suite.T(), "1"))
	return req
}

// --- Test Cases ---

func (suite *LedgerHandlerTestSuite) TestPostTransaction_Success() {
	body := dto.PostTransactionRequest{
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
		RefNo:       body.RefNo,
		Particulars: body.Particulars,
		Debit:       body.Debit,
		Balance:     decimal.NewFromInt(500),
		ByUser:      body.ByUser,
		Status:      domain.StatusUnpaid,
		Amount:      body.Amount,
	}

	suite.mocks.ledger.On("PostTransaction", mock.Anything, mock.MatchedBy(func(r dto.PostTransactionRequest) bool {
		return *r.ConsumerID == 7 && r.RefNo == body.RefNo
	})).Return(expected, nil).Once()

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, suite.authedRequest(http.MethodPost, "/wb_ledger/transaction", body))

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.LedgerEntryResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(int64(101), resp.ID)
	suite.True(resp.Balance.Equal(decimal.NewFromInt(500)))
	suite.mocks.ledger.AssertExpectations(suite.T())
}

func (suite *LedgerHandlerTestSuite) TestPostTransaction_MissingFields() {
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, suite.authedRequest(http.MethodPost, "/wb_ledger/transaction", map[string]interface{}{
		"particulars": "no consumer id",
	}))

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mocks.ledger.AssertNotCalled(suite.T(), "PostTransaction")
}

func (suite *LedgerHandlerTestSuite) TestPostTransaction_Unauthorized() {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/wb_ledger/transaction", bytes.NewBufferString("{}"))
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mocks.ledger.AssertNotCalled(suite.T(), "PostTransaction")
}

func (suite *LedgerHandlerTestSuite) TestLatestBalance_Success() {
	suite.mocks.ledger.On("LatestBalance", mock.Anything, int64(7)).
		Return(decimal.NewFromFloat(123.45), nil).Once()

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, suite.authedRequest(http.MethodGet, "/wb_ledger/balance/7", nil))

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.BalanceResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.True(resp.Balance.Equal(decimal.NewFromFloat(123.45)))
	suite.mocks.ledger.AssertExpectations(suite.T())
}

func (suite *LedgerHandlerTestSuite) TestLatestBalance_NotFound() {
	suite.mocks.ledger.On("LatestBalance", mock.Anything, int64(42)).
		Return(decimal.Decimal{}, apperrors.ErrNotFound).Once()

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, suite.authedRequest(http.MethodGet, "/wb_ledger/balance/42", nil))

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mocks.ledger.AssertExpectations(suite.T())
}

func (suite *LedgerHandlerTestSuite) TestUpdateStatus_Success() {
	expected := &domain.LedgerEntry{ID: 5, Status: domain.StatusPaid}
	suite.mocks.ledger.On("UpdateStatus", mock.Anything, int64(5), domain.StatusPaid).
		Return(expected, nil).Once()

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, suite.authedRequest(http.MethodPut, "/wb_ledger/status/5", dto.UpdateLedgerStatusRequest{
		Status: int16Ptr(int16(domain.StatusPaid)),
	}))

	suite.Equal(http.StatusOK, w.Code)
	suite.mocks.ledger.AssertExpectations(suite.T())
}

func (suite *LedgerHandlerTestSuite) TestUpdateStatus_BadID() {
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, suite.authedRequest(http.MethodPut, "/wb_ledger/status/abc", dto.UpdateLedgerStatusRequest{
		Status: int16Ptr(1),
	}))

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mocks.ledger.AssertNotCalled(suite.T(), "UpdateStatus")
}

func TestLedgerHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerHandlerTestSuite))
}
