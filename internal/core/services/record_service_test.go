package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/freightops/freight_broker_app/internal/apperrors"
	"github.com/freightops/freight_broker_app/internal/core/domain"
	"github.com/freightops/freight_broker_app/internal/core/services"
	"github.com/freightops/freight_broker_app/internal/platform/cache"
	"github.com/freightops/freight_broker_app/internal/utils/rules"
)

// --- Mock EntityRepository ---
type MockEntityRepo[T any] struct {
	mock.Mock
}

func (m *MockEntityRepo[T]) Find(ctx context.Context, q domain.QueryDescriptor, includeDeleted bool) ([]T, int64, error) {
	args := m.Called(ctx, q, includeDeleted)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]T), args.Get(1).(int64), args.Error(2)
}

func (m *MockEntityRepo[T]) FindByID(ctx context.Context, id string) (*T, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}

func (m *MockEntityRepo[T]) ExistsWhere(ctx context.Context, field string, value any, excludeID string) (bool, error) {
	args := m.Called(ctx, field, value, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockEntityRepo[T]) CountCreatedBetween(ctx context.Context, from, to time.Time) (int64, error) {
	args := m.Called(ctx, from, to)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockEntityRepo[T]) Insert(ctx context.Context, fields map[string]any) (*T, error) {
	args := m.Called(ctx, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}

func (m *MockEntityRepo[T]) UpdateFields(ctx context.Context, id string, fields map[string]any) (int64, error) {
	args := m.Called(ctx, id, fields)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockEntityRepo[T]) SoftDelete(ctx context.Context, id string, deletedAt time.Time, deletedBy string) error {
	args := m.Called(ctx, id, deletedAt, deletedBy)
	return args.Error(0)
}

func (m *MockEntityRepo[T]) HardDelete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// --- Mock HistoryWriter ---
type MockHistoryWriter struct {
	mock.Mock
}

func (m *MockHistoryWriter) SaveHistory(ctx context.Context, record domain.HistoryRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

// --- Test Suite ---
type RecordServiceTestSuite struct {
	suite.Suite
	mockRepo    *MockEntityRepo[domain.Customer]
	mockHistory *MockHistoryWriter
	service     *services.RecordService[domain.Customer]
	now         time.Time
}

func (suite *RecordServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockEntityRepo[domain.Customer])
	suite.mockHistory = new(MockHistoryWriter)
	// Wednesday, so the week window starts on Monday two days earlier.
	suite.now = time.Date(2025, 6, 11, 15, 30, 0, 0, time.UTC)
	suite.service = services.NewRecordService(services.RecordConfig[domain.Customer]{
		EntityType: domain.EntityCustomer,
		EntityName: "customer",
		Repo:       suite.mockRepo,
		History:    suite.mockHistory,
		CreateRules: rules.RuleSet{
			"companyName": "required",
			"email":       "required,email",
		},
		UpdateRules: rules.RuleSet{
			"companyName": "required",
			"email":       "required,email",
		},
		SearchFields: []string{"companyName", "email"},
		UniqueFields: []string{"email"},
		SoftDelete:   true,
	}, services.WithRecordClock[domain.Customer](func() time.Time { return suite.now }))
}

func (suite *RecordServiceTestSuite) TestCreateRecord_Success() {
	ctx := context.Background()
	actorID := uuid.NewString()
	created := &domain.Customer{CompanyName: "Acme Shipping", Email: "ops@acme.test"}

	suite.mockRepo.On("ExistsWhere", ctx, "email", "ops@acme.test", "").Return(false, nil).Once()
	suite.mockRepo.On("Insert", ctx, mock.MatchedBy(func(fields map[string]any) bool {
		_, hasID := fields["id"]
		return hasID &&
			fields["companyName"] == "Acme Shipping" &&
			fields["createdBy"] == actorID &&
			fields["createdAt"] == suite.now
	})).Return(created, nil).Once()
	suite.mockHistory.On("SaveHistory", ctx, mock.MatchedBy(func(h domain.HistoryRecord) bool {
		return h.Action == domain.ActionCreated && h.ActorID == actorID && h.EntityType == domain.EntityCustomer
	})).Return(nil).Once()

	result, err := suite.service.CreateRecord(ctx, map[string]any{
		"companyName": "Acme Shipping",
		"email":       "ops@acme.test",
	}, actorID)

	suite.Require().NoError(err)
	suite.Equal("Acme Shipping", result.CompanyName)
	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockHistory.AssertExpectations(suite.T())
}

func (suite *RecordServiceTestSuite) TestCreateRecord_StripsClientBookkeeping() {
	ctx := context.Background()
	created := &domain.Customer{}

	suite.mockRepo.On("ExistsWhere", ctx, "email", "ops@acme.test", "").Return(false, nil).Once()
	suite.mockRepo.On("Insert", ctx, mock.MatchedBy(func(fields map[string]any) bool {
		// the echoed-back id and createdBy must be replaced, not trusted
		return fields["id"] != "spoofed" && fields["createdBy"] != "someone-else"
	})).Return(created, nil).Once()
	suite.mockHistory.On("SaveHistory", ctx, mock.Anything).Return(nil).Once()

	_, err := suite.service.CreateRecord(ctx, map[string]any{
		"companyName": "Acme Shipping",
		"email":       "ops@acme.test",
		"id":          "spoofed",
		"createdBy":   "someone-else",
	}, uuid.NewString())

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *RecordServiceTestSuite) TestCreateRecord_ValidationFailure() {
	ctx := context.Background()

	_, err := suite.service.CreateRecord(ctx, map[string]any{
		"companyName": "Acme Shipping",
		"email":       "not-an-email",
	}, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	var validationErr *apperrors.ValidationError
	suite.Require().ErrorAs(err, &validationErr)
	suite.Len(validationErr.Violations, 1)
	suite.Equal("email", validationErr.Violations[0].Field)
	suite.mockRepo.AssertNotCalled(suite.T(), "Insert", mock.Anything, mock.Anything)
}

func (suite *RecordServiceTestSuite) TestCreateRecord_DuplicatePreCheck() {
	ctx := context.Background()

	suite.mockRepo.On("ExistsWhere", ctx, "email", "ops@acme.test", "").Return(true, nil).Once()

	_, err := suite.service.CreateRecord(ctx, map[string]any{
		"companyName": "Acme Shipping",
		"email":       "ops@acme.test",
	}, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockRepo.AssertNotCalled(suite.T(), "Insert", mock.Anything, mock.Anything)
}

func (suite *RecordServiceTestSuite) TestCreateRecord_NoActorSkipsAudit() {
	ctx := context.Background()
	created := &domain.Customer{}

	suite.mockRepo.On("ExistsWhere", ctx, "email", "ops@acme.test", "").Return(false, nil).Once()
	suite.mockRepo.On("Insert", ctx, mock.Anything).Return(created, nil).Once()

	_, err := suite.service.CreateRecord(ctx, map[string]any{
		"companyName": "Acme Shipping",
		"email":       "ops@acme.test",
	}, "")

	suite.Require().NoError(err)
	suite.mockHistory.AssertNotCalled(suite.T(), "SaveHistory", mock.Anything, mock.Anything)
}

func (suite *RecordServiceTestSuite) TestListRecords_SearchMatchesAcrossSearchableFields() {
	ctx := context.Background()

	// the free-text term must reach storage with the entity's searchable
	// fields attached, even when the caller never named them
	suite.mockRepo.On("Find", ctx, mock.MatchedBy(func(q domain.QueryDescriptor) bool {
		return q.Search == "acme" &&
			len(q.SearchFields) == 2 &&
			q.SearchFields[0] == "companyName" &&
			q.SearchFields[1] == "email"
	}), false).Return([]domain.Customer{{CompanyName: "Acme Shipping"}}, int64(1), nil).Once()

	records, total, err := suite.service.ListRecords(ctx, domain.QueryDescriptor{
		Page:   1,
		Limit:  10,
		Search: "acme",
	})

	suite.Require().NoError(err)
	suite.Equal(int64(1), total)
	suite.Len(records, 1)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *RecordServiceTestSuite) TestGetRecordByID_MalformedID() {
	_, err := suite.service.GetRecordByID(context.Background(), "not-a-uuid")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInvalidArgument)
	suite.mockRepo.AssertNotCalled(suite.T(), "FindByID", mock.Anything, mock.Anything)
}

func (suite *RecordServiceTestSuite) TestUpdateRecord_MalformedID() {
	_, _, err := suite.service.UpdateRecord(context.Background(), "not-a-uuid", map[string]any{
		"companyName": "Acme Logistics",
	}, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInvalidArgument)
	suite.mockRepo.AssertNotCalled(suite.T(), "FindByID", mock.Anything, mock.Anything)
}

func (suite *RecordServiceTestSuite) TestDeleteRecord_MalformedID() {
	err := suite.service.DeleteRecord(context.Background(), "not-a-uuid", uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInvalidArgument)
	suite.mockRepo.AssertNotCalled(suite.T(), "SoftDelete", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *RecordServiceTestSuite) TestUpdateRecord_NoOpSkipsStorageAndAudit() {
	ctx := context.Background()
	id := uuid.NewString()
	current := &domain.Customer{
		CustomerID:  id,
		CompanyName: "Acme Shipping",
		Email:       "ops@acme.test",
		Status:      domain.CustomerStatusActive,
	}

	suite.mockRepo.On("FindByID", ctx, id).Return(current, nil).Once()

	result, changed, err := suite.service.UpdateRecord(ctx, id, map[string]any{
		"companyName": "  Acme Shipping  ", // whitespace only, not a real change
	}, uuid.NewString())

	suite.Require().NoError(err)
	suite.False(changed)
	suite.Equal(current, result)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateFields", mock.Anything, mock.Anything, mock.Anything)
	suite.mockHistory.AssertNotCalled(suite.T(), "SaveHistory", mock.Anything, mock.Anything)
}

func (suite *RecordServiceTestSuite) TestUpdateRecord_WritesOnlyChangedFields() {
	ctx := context.Background()
	id := uuid.NewString()
	actorID := uuid.NewString()
	current := &domain.Customer{
		CustomerID:  id,
		CompanyName: "Acme Shipping",
		Email:       "ops@acme.test",
	}

	suite.mockRepo.On("FindByID", ctx, id).Return(current, nil).Twice()
	suite.mockRepo.On("UpdateFields", ctx, id, mock.MatchedBy(func(fields map[string]any) bool {
		_, touchesEmail := fields["email"]
		return fields["companyName"] == "Acme Logistics" &&
			!touchesEmail &&
			fields["lastUpdatedBy"] == actorID &&
			fields["lastUpdatedAt"] == suite.now
	})).Return(int64(1), nil).Once()
	suite.mockHistory.On("SaveHistory", ctx, mock.MatchedBy(func(h domain.HistoryRecord) bool {
		return h.Action == domain.ActionUpdated &&
			len(h.Changes) == 1 &&
			h.Changes[0].Field == "companyName" &&
			h.Changes[0].OldValue == "Acme Shipping" &&
			h.Changes[0].NewValue == "Acme Logistics"
	})).Return(nil).Once()

	_, changed, err := suite.service.UpdateRecord(ctx, id, map[string]any{
		"companyName": "Acme Logistics",
		"email":       "ops@acme.test", // unchanged, must not be written
	}, actorID)

	suite.Require().NoError(err)
	suite.True(changed)
	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockHistory.AssertExpectations(suite.T())
}

func (suite *RecordServiceTestSuite) TestDeleteRecord_SoftDeletes() {
	ctx := context.Background()
	id := uuid.NewString()
	actorID := uuid.NewString()

	suite.mockRepo.On("SoftDelete", ctx, id, suite.now, actorID).Return(nil).Once()
	suite.mockHistory.On("SaveHistory", ctx, mock.MatchedBy(func(h domain.HistoryRecord) bool {
		return h.Action == domain.ActionDeleted && h.EntityID == id
	})).Return(nil).Once()

	err := suite.service.DeleteRecord(ctx, id, actorID)

	suite.Require().NoError(err)
	suite.mockRepo.AssertNotCalled(suite.T(), "HardDelete", mock.Anything, mock.Anything)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *RecordServiceTestSuite) TestBulkUpdateRecords_CountsOnlyRealWrites() {
	ctx := context.Background()
	actorID := uuid.NewString()
	changedID, unchangedID, missingID := uuid.NewString(), uuid.NewString(), uuid.NewString()
	changed := &domain.Customer{CustomerID: changedID, CompanyName: "Old Name", Email: "a@acme.test"}
	unchanged := &domain.Customer{CustomerID: unchangedID, CompanyName: "Fresh Name", Email: "b@acme.test"}

	suite.mockRepo.On("FindByID", ctx, changedID).Return(changed, nil)
	suite.mockRepo.On("FindByID", ctx, unchangedID).Return(unchanged, nil)
	suite.mockRepo.On("FindByID", ctx, missingID).Return(nil, apperrors.NewNotFoundError("customer", missingID))
	suite.mockRepo.On("UpdateFields", ctx, changedID, mock.Anything).Return(int64(1), nil).Once()
	suite.mockHistory.On("SaveHistory", ctx, mock.Anything).Return(nil).Once()

	modified, err := suite.service.BulkUpdateRecords(ctx, []string{changedID, unchangedID, missingID}, map[string]any{
		"companyName": "Fresh Name",
	}, actorID)

	suite.Require().NoError(err)
	suite.Equal(int64(1), modified)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *RecordServiceTestSuite) TestRecordStats_WeekStartsOnMonday() {
	ctx := context.Background()
	weekStart := time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC)

	suite.mockRepo.On("CountCreatedBetween", ctx, weekStart, suite.now).Return(int64(4), nil).Once()

	result, err := suite.service.RecordStats(ctx, "week")

	suite.Require().NoError(err)
	suite.Equal(int64(4), result.Total)
	suite.Equal(weekStart, result.DateRange.From)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *RecordServiceTestSuite) TestRecordStats_ExplicitRangeCoversWholeDays() {
	ctx := context.Background()
	from := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	suite.mockRepo.On("CountCreatedBetween", ctx, from, to).Return(int64(7), nil).Once()

	result, err := suite.service.RecordStats(ctx, "2025-05-01 to 2025-05-31")

	suite.Require().NoError(err)
	suite.Equal(int64(7), result.Total)
	suite.Equal(from, result.DateRange.From)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *RecordServiceTestSuite) TestRecordStats_UnknownPeriod() {
	_, err := suite.service.RecordStats(context.Background(), "fortnight")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInvalidArgument)
	suite.mockRepo.AssertNotCalled(suite.T(), "CountCreatedBetween", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *RecordServiceTestSuite) TestSearchRecords_RequiresTerm() {
	_, _, err := suite.service.SearchRecords(context.Background(), domain.QueryDescriptor{Page: 1, Limit: 10})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInvalidArgument)
}

func TestRecordServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RecordServiceTestSuite))
}

// --- List caching ---

func TestListRecords_CachesUntilWrite(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockEntityRepo[domain.Customer])
	service := services.NewRecordService(services.RecordConfig[domain.Customer]{
		EntityType: domain.EntityCustomer,
		EntityName: "customer",
		Repo:       mockRepo,
		SoftDelete: true,
	}, services.WithListCache[domain.Customer](cache.New[domain.Customer](time.Minute)))

	customerID := uuid.NewString()
	q := domain.QueryDescriptor{Page: 1, Limit: 10, SortBy: "createdAt"}
	page := []domain.Customer{{CustomerID: customerID}}

	mockRepo.On("Find", ctx, q, false).Return(page, int64(1), nil).Once()

	for i := 0; i < 2; i++ {
		records, total, err := service.ListRecords(ctx, q)
		if err != nil {
			t.Fatalf("ListRecords: %v", err)
		}
		if total != 1 || len(records) != 1 {
			t.Fatalf("unexpected page: %d records, total %d", len(records), total)
		}
	}
	mockRepo.AssertNumberOfCalls(t, "Find", 1)

	// any write flushes the cache
	actorID := uuid.NewString()
	mockRepo.On("SoftDelete", ctx, customerID, mock.Anything, actorID).Return(nil).Once()
	if err := service.DeleteRecord(ctx, customerID, actorID); err != nil {
		t.Fatalf("DeleteRecord: %v", err)
	}

	mockRepo.On("Find", ctx, q, false).Return(nil, int64(0), nil).Once()
	if _, _, err := service.ListRecords(ctx, q); err != nil {
		t.Fatalf("ListRecords after delete: %v", err)
	}
	mockRepo.AssertNumberOfCalls(t, "Find", 2)
}
