package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/freightops/freight_broker_app/internal/apperrors"
	"github.com/freightops/freight_broker_app/internal/core/domain"
	portssvc "github.com/freightops/freight_broker_app/internal/core/ports/services"
	"github.com/freightops/freight_broker_app/internal/dto"
	"github.com/freightops/freight_broker_app/internal/handlers"
	"github.com/freightops/freight_broker_app/internal/platform/config"
)

// --- Mock CustomerService ---
type MockCustomerService struct {
	mock.Mock
}

func (m *MockCustomerService) ListRecords(ctx context.Context, q domain.QueryDescriptor) ([]domain.Customer, int64, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]domain.Customer), args.Get(1).(int64), args.Error(2)
}
func (m *MockCustomerService) SearchRecords(ctx context.Context, q domain.QueryDescriptor) ([]domain.Customer, int64, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]domain.Customer), args.Get(1).(int64), args.Error(2)
}
func (m *MockCustomerService) GetRecordByID(ctx context.Context, id string) (*domain.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}
func (m *MockCustomerService) RecordStats(ctx context.Context, period string) (*dto.StatsResult, error) {
	args := m.Called(ctx, period)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.StatsResult), args.Error(1)
}
func (m *MockCustomerService) CreateRecord(ctx context.Context, fields map[string]any, actorID string) (*domain.Customer, error) {
	args := m.Called(ctx, fields, actorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}
func (m *MockCustomerService) UpdateRecord(ctx context.Context, id string, fields map[string]any, actorID string) (*domain.Customer, bool, error) {
	args := m.Called(ctx, id, fields, actorID)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*domain.Customer), args.Bool(1), args.Error(2)
}
func (m *MockCustomerService) DeleteRecord(ctx context.Context, id string, actorID string) error {
	args := m.Called(ctx, id, actorID)
	return args.Error(0)
}
func (m *MockCustomerService) BulkUpdateRecords(ctx context.Context, ids []string, fields map[string]any, actorID string) (int64, error) {
	args := m.Called(ctx, ids, fields, actorID)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockCustomerService) BulkDeleteRecords(ctx context.Context, ids []string, actorID string) (int64, error) {
	args := m.Called(ctx, ids, actorID)
	return args.Get(0).(int64), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.CustomerSvcFacade = (*MockCustomerService)(nil)

// --- Mock HistoryService ---
type MockHistoryService struct {
	mock.Mock
}

func (m *MockHistoryService) GetEntityHistory(ctx context.Context, entityType domain.EntityType, entityID string, limit, offset int) ([]domain.HistoryRecord, int64, error) {
	args := m.Called(ctx, entityType, entityID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]domain.HistoryRecord), args.Get(1).(int64), args.Error(2)
}
func (m *MockHistoryService) ResolveActors(ctx context.Context, records []domain.HistoryRecord) (map[string]domain.User, error) {
	args := m.Called(ctx, records)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.User), args.Error(1)
}

var _ portssvc.HistorySvcFacade = (*MockHistoryService)(nil)

// --- Mock TokenService ---
type MockTokenService struct {
	mock.Mock
}

func (m *MockTokenService) GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	args := m.Called(ctx, user)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}
func (m *MockTokenService) ValidateAccessToken(ctx context.Context, tokenString string) (string, domain.UserRole, error) {
	args := m.Called(ctx, tokenString)
	return args.String(0), args.Get(1).(domain.UserRole), args.Error(2)
}

var _ portssvc.TokenSvcFacade = (*MockTokenService)(nil)

// --- Test Suite ---
type CustomerHandlerTestSuite struct {
	suite.Suite
	router              *gin.Engine
	mockCustomerService *MockCustomerService
	mockHistoryService  *MockHistoryService
	mockTokenService    *MockTokenService
	userID              string
}

func (suite *CustomerHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.mockCustomerService = new(MockCustomerService)
	suite.mockHistoryService = new(MockHistoryService)
	suite.mockTokenService = new(MockTokenService)
	suite.userID = uuid.NewString()

	// IsProduction keeps the swagger routes out of the test engine.
	cfg := &config.Config{IsProduction: true}
	services := &portssvc.ServiceContainer{
		Customer: suite.mockCustomerService,
		History:  suite.mockHistoryService,
		Token:    suite.mockTokenService,
	}
	handlers.RegisterRoutes(suite.router, cfg, services, nil)
}

// doRequest performs an authenticated request against the test router.
func (suite *CustomerHandlerTestSuite) doRequest(method, url string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	suite.mockTokenService.On("ValidateAccessToken", mock.Anything, "test-token").
		Return(suite.userID, domain.RoleDispatcher, nil).Once()

	req, _ := http.NewRequest(method, url, reader)
	req.Header.Set("Authorization", "Bearer test-token")
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// responseEnvelope mirrors the uniform response shape for assertions.
type responseEnvelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Error   *struct {
		Message string                     `json:"message"`
		Fields  []apperrors.FieldViolation `json:"fields"`
	} `json:"error"`
	Pagination *dto.Pagination `json:"pagination"`
}

func (suite *CustomerHandlerTestSuite) parseEnvelope(w *httptest.ResponseRecorder) responseEnvelope {
	var env responseEnvelope
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

// --- Test Cases ---

func (suite *CustomerHandlerTestSuite) TestListCustomers_Success() {
	customers := []domain.Customer{
		{CustomerID: uuid.NewString(), CompanyName: "Acme Shipping", Email: "ops@acme.test", Status: domain.CustomerStatusActive},
		{CustomerID: uuid.NewString(), CompanyName: "Globex Freight", Email: "ops@globex.test", Status: domain.CustomerStatusActive},
	}
	suite.mockCustomerService.On("ListRecords", mock.Anything, mock.MatchedBy(func(q domain.QueryDescriptor) bool {
		return q.Page == 2 && q.Limit == 5
	})).Return(customers, int64(12), nil).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/customers?page=2&limit=5", nil)

	suite.Equal(http.StatusOK, w.Code)
	env := suite.parseEnvelope(w)
	suite.True(env.Success)

	var items []dto.CustomerListItem
	suite.Require().NoError(json.Unmarshal(env.Data, &items))
	suite.Len(items, 2)
	suite.Require().NotNil(env.Pagination)
	suite.Equal(int64(12), env.Pagination.Total)
	suite.Equal(3, env.Pagination.TotalPages)
	suite.Equal(2, env.Pagination.CurrentPage)
	suite.Equal(5, env.Pagination.Limit)
	suite.mockCustomerService.AssertExpectations(suite.T())
}

func (suite *CustomerHandlerTestSuite) TestGetCustomer_NotFound() {
	customerID := uuid.NewString()
	suite.mockCustomerService.On("GetRecordByID", mock.Anything, customerID).
		Return(nil, apperrors.NewNotFoundError("customer", customerID)).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/customers/"+customerID, nil)

	suite.Equal(http.StatusNotFound, w.Code)
	env := suite.parseEnvelope(w)
	suite.False(env.Success)
	suite.Require().NotNil(env.Error)
	suite.Equal("Resource not found", env.Error.Message)
}

func (suite *CustomerHandlerTestSuite) TestCreateCustomer_Success() {
	created := &domain.Customer{
		CustomerID:  uuid.NewString(),
		CompanyName: "Acme Shipping",
		Email:       "ops@acme.test",
		Status:      domain.CustomerStatusActive,
	}
	// The actor forwarded to the service must be the token's subject.
	suite.mockCustomerService.On("CreateRecord", mock.Anything, mock.MatchedBy(func(fields map[string]any) bool {
		return fields["companyName"] == "Acme Shipping"
	}), suite.userID).Return(created, nil).Once()

	w := suite.doRequest(http.MethodPost, "/api/v1/customers", map[string]any{
		"companyName": "Acme Shipping",
		"email":       "ops@acme.test",
	})

	suite.Equal(http.StatusCreated, w.Code)
	env := suite.parseEnvelope(w)
	suite.True(env.Success)

	var resp dto.CustomerResponse
	suite.Require().NoError(json.Unmarshal(env.Data, &resp))
	suite.Equal(created.CustomerID, resp.ID)
	suite.mockCustomerService.AssertExpectations(suite.T())
}

func (suite *CustomerHandlerTestSuite) TestCreateCustomer_ValidationFailure() {
	suite.mockCustomerService.On("CreateRecord", mock.Anything, mock.Anything, suite.userID).
		Return(nil, apperrors.NewValidationError(apperrors.FieldViolation{Field: "email", Message: "must be a valid email"})).Once()

	w := suite.doRequest(http.MethodPost, "/api/v1/customers", map[string]any{
		"companyName": "Acme Shipping",
		"email":       "not-an-email",
	})

	suite.Equal(http.StatusBadRequest, w.Code)
	env := suite.parseEnvelope(w)
	suite.False(env.Success)
	suite.Require().NotNil(env.Error)
	suite.Require().Len(env.Error.Fields, 1)
	suite.Equal("email", env.Error.Fields[0].Field)
}

func (suite *CustomerHandlerTestSuite) TestCreateCustomer_Duplicate() {
	suite.mockCustomerService.On("CreateRecord", mock.Anything, mock.Anything, suite.userID).
		Return(nil, apperrors.NewDuplicateError("email", "ops@acme.test")).Once()

	w := suite.doRequest(http.MethodPost, "/api/v1/customers", map[string]any{
		"companyName": "Acme Shipping",
		"email":       "ops@acme.test",
	})

	suite.Equal(http.StatusConflict, w.Code)
	env := suite.parseEnvelope(w)
	suite.False(env.Success)
}

func (suite *CustomerHandlerTestSuite) TestListCustomers_MissingToken() {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/customers", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockCustomerService.AssertNotCalled(suite.T(), "ListRecords", mock.Anything, mock.Anything)
}

func (suite *CustomerHandlerTestSuite) TestGetCustomerHistory_Success() {
	customerID := uuid.NewString()
	actorID := uuid.NewString()
	records := []domain.HistoryRecord{
		{
			HistoryID:  uuid.NewString(),
			EntityType: domain.EntityCustomer,
			EntityID:   customerID,
			Action:     domain.ActionUpdated,
			ActorID:    actorID,
			Changes: []domain.FieldChange{
				{Field: "phone", OldValue: "555-0100", NewValue: "555-0199"},
			},
		},
	}
	suite.mockHistoryService.On("GetEntityHistory", mock.Anything, domain.EntityCustomer, customerID, 20, 0).
		Return(records, int64(1), nil).Once()
	suite.mockHistoryService.On("ResolveActors", mock.Anything, records).
		Return(map[string]domain.User{actorID: {UserID: actorID, Name: "Dana Dispatcher"}}, nil).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/customers/"+customerID+"/history", nil)

	suite.Equal(http.StatusOK, w.Code)
	env := suite.parseEnvelope(w)
	suite.True(env.Success)

	var page dto.HistoryPage
	suite.Require().NoError(json.Unmarshal(env.Data, &page))
	suite.Require().Len(page.Items, 1)
	suite.Equal(int64(1), page.Total)
	suite.Require().NotNil(page.Items[0].Actor)
	suite.Equal("Dana Dispatcher", page.Items[0].Actor.Name)
	suite.mockHistoryService.AssertExpectations(suite.T())
}

func (suite *CustomerHandlerTestSuite) TestDeleteCustomer_Success() {
	customerID := uuid.NewString()
	suite.mockCustomerService.On("DeleteRecord", mock.Anything, customerID, suite.userID).
		Return(nil).Once()

	w := suite.doRequest(http.MethodDelete, "/api/v1/customers/"+customerID, nil)

	suite.Equal(http.StatusOK, w.Code)
	env := suite.parseEnvelope(w)
	suite.True(env.Success)
	suite.Equal("Record deleted", env.Message)
}

func (suite *CustomerHandlerTestSuite) TestUpdateCustomer_NoChangesIndicator() {
	customerID := uuid.NewString()
	current := &domain.Customer{
		CustomerID:  customerID,
		CompanyName: "Acme Shipping",
		Email:       "ops@acme.test",
	}
	suite.mockCustomerService.On("UpdateRecord", mock.Anything, customerID, mock.Anything, suite.userID).
		Return(current, false, nil).Once()

	w := suite.doRequest(http.MethodPut, "/api/v1/customers/"+customerID, map[string]any{
		"companyName": "Acme Shipping",
	})

	suite.Equal(http.StatusOK, w.Code)
	env := suite.parseEnvelope(w)
	suite.True(env.Success)
	suite.Equal("no changes", env.Message)

	var resp dto.CustomerResponse
	suite.Require().NoError(json.Unmarshal(env.Data, &resp))
	suite.Equal(customerID, resp.ID)
}

func (suite *CustomerHandlerTestSuite) TestUpdateCustomer_Changed() {
	customerID := uuid.NewString()
	updated := &domain.Customer{
		CustomerID:  customerID,
		CompanyName: "Acme Logistics",
		Email:       "ops@acme.test",
	}
	suite.mockCustomerService.On("UpdateRecord", mock.Anything, customerID, mock.Anything, suite.userID).
		Return(updated, true, nil).Once()

	w := suite.doRequest(http.MethodPut, "/api/v1/customers/"+customerID, map[string]any{
		"companyName": "Acme Logistics",
	})

	suite.Equal(http.StatusOK, w.Code)
	env := suite.parseEnvelope(w)
	suite.True(env.Success)
	suite.Empty(env.Message)
}

func (suite *CustomerHandlerTestSuite) TestInternalError_DetailOnlyInDevMode() {
	customerID := uuid.NewString()
	suite.mockCustomerService.On("GetRecordByID", mock.Anything, customerID).
		Return(nil, errors.New("connection pool exhausted")).Twice()

	// production router hides the cause
	w := suite.doRequest(http.MethodGet, "/api/v1/customers/"+customerID, nil)
	suite.Equal(http.StatusInternalServerError, w.Code)
	env := suite.parseEnvelope(w)
	suite.Require().NotNil(env.Error)
	suite.Equal("Internal server error", env.Error.Message)

	// a development router passes it through
	devRouter := gin.New()
	handlers.RegisterRoutes(devRouter, &config.Config{}, &portssvc.ServiceContainer{
		Customer: suite.mockCustomerService,
		History:  suite.mockHistoryService,
		Token:    suite.mockTokenService,
	}, nil)
	suite.mockTokenService.On("ValidateAccessToken", mock.Anything, "test-token").
		Return(suite.userID, domain.RoleDispatcher, nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/customers/"+customerID, nil)
	req.Header.Set("Authorization", "Bearer test-token")
	devW := httptest.NewRecorder()
	devRouter.ServeHTTP(devW, req)

	suite.Equal(http.StatusInternalServerError, devW.Code)
	devEnv := suite.parseEnvelope(devW)
	suite.Require().NotNil(devEnv.Error)
	suite.Contains(devEnv.Error.Message, "connection pool exhausted")
}

// --- Run Test Suite ---
func TestCustomerHandler(t *testing.T) {
	suite.Run(t, new(CustomerHandlerTestSuite))
}
