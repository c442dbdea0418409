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
	portsrepo "github.com/freightops/freight_broker_app/internal/core/ports/repositories"
	portssvc "github.com/freightops/freight_broker_app/internal/core/ports/services"
	"github.com/freightops/freight_broker_app/internal/core/services"
)

// MockHistoryRepo extends the writer mock with the read half so it can back
// a full RepositoryProvider.
type MockHistoryRepo struct {
	MockHistoryWriter
}

func (m *MockHistoryRepo) FindHistoryByEntity(ctx context.Context, entityType domain.EntityType, entityID string, limit, offset int) ([]domain.HistoryRecord, int64, error) {
	args := m.Called(ctx, entityType, entityID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]domain.HistoryRecord), args.Get(1).(int64), args.Error(2)
}

// recordingNotifier captures delivery notifications.
type recordingNotifier struct {
	calls []domain.LoadStatus
}

func (n *recordingNotifier) NotifyLoadStatusChange(_ context.Context, load domain.Load, _ domain.LoadStatus) error {
	n.calls = append(n.calls, load.Status)
	return nil
}

type LoadServiceTestSuite struct {
	suite.Suite
	mockLoadRepo     *MockEntityRepo[domain.Load]
	mockCustomerRepo *MockEntityRepo[domain.Customer]
	mockCarrierRepo  *MockEntityRepo[domain.Carrier]
	mockHistory      *MockHistoryRepo
	notifier         *recordingNotifier
	service          portssvc.LoadSvcFacade
	now              time.Time
}

func (suite *LoadServiceTestSuite) SetupTest() {
	suite.mockLoadRepo = new(MockEntityRepo[domain.Load])
	suite.mockCustomerRepo = new(MockEntityRepo[domain.Customer])
	suite.mockCarrierRepo = new(MockEntityRepo[domain.Carrier])
	suite.mockHistory = new(MockHistoryRepo)
	suite.notifier = &recordingNotifier{}
	suite.now = time.Date(2025, 6, 11, 15, 30, 0, 0, time.UTC)

	repos := portsrepo.RepositoryProvider{
		LoadRepo:     suite.mockLoadRepo,
		CustomerRepo: suite.mockCustomerRepo,
		CarrierRepo:  suite.mockCarrierRepo,
		HistoryRepo:  suite.mockHistory,
	}
	suite.service = services.NewLoadService(repos, suite.notifier,
		services.WithRecordClock[domain.Load](func() time.Time { return suite.now }))
}

func (suite *LoadServiceTestSuite) TestCreateRecord_DefaultsStatusToListed() {
	ctx := context.Background()
	created := &domain.Load{}

	suite.mockLoadRepo.On("ExistsWhere", ctx, "refNumber", "FB-1001", "").Return(false, nil).Once()
	suite.mockLoadRepo.On("Insert", ctx, mock.MatchedBy(func(fields map[string]any) bool {
		return fields["status"] == "listed" && fields["refNumber"] == "FB-1001"
	})).Return(created, nil).Once()
	suite.mockHistory.On("SaveHistory", ctx, mock.Anything).Return(nil).Once()

	_, err := suite.service.CreateRecord(ctx, map[string]any{
		"refNumber":  "FB-1001",
		"customerId": uuid.NewString(),
	}, uuid.NewString())

	suite.Require().NoError(err)
	suite.mockLoadRepo.AssertExpectations(suite.T())
}

func (suite *LoadServiceTestSuite) TestUpdateLoadStatus_AllowedTransition() {
	ctx := context.Background()
	loadID := uuid.NewString()
	actorID := uuid.NewString()
	current := &domain.Load{LoadID: loadID, RefNumber: "FB-1001", Status: domain.LoadStatusListed}
	dispatched := &domain.Load{LoadID: loadID, RefNumber: "FB-1001", Status: domain.LoadStatusDispatched}

	suite.mockLoadRepo.On("FindByID", ctx, loadID).Return(current, nil).Twice()
	suite.mockLoadRepo.On("UpdateFields", ctx, loadID, mock.MatchedBy(func(fields map[string]any) bool {
		return fields["status"] == "dispatched"
	})).Return(int64(1), nil).Once()
	suite.mockLoadRepo.On("FindByID", ctx, loadID).Return(dispatched, nil).Once()
	suite.mockHistory.On("SaveHistory", ctx, mock.MatchedBy(func(h domain.HistoryRecord) bool {
		return h.Action == domain.ActionStatusUpdated && h.EntityID == loadID
	})).Return(nil).Once()

	updated, err := suite.service.UpdateLoadStatus(ctx, loadID, domain.LoadStatusDispatched, actorID)

	suite.Require().NoError(err)
	suite.Equal(domain.LoadStatusDispatched, updated.Status)
	suite.Empty(suite.notifier.calls)
	suite.mockLoadRepo.AssertExpectations(suite.T())
	suite.mockHistory.AssertExpectations(suite.T())
}

func (suite *LoadServiceTestSuite) TestUpdateLoadStatus_DeliveredNotifies() {
	ctx := context.Background()
	loadID := uuid.NewString()
	inTransit := &domain.Load{LoadID: loadID, Status: domain.LoadStatusInTransit}
	delivered := &domain.Load{LoadID: loadID, Status: domain.LoadStatusDelivered}

	suite.mockLoadRepo.On("FindByID", ctx, loadID).Return(inTransit, nil).Twice()
	suite.mockLoadRepo.On("UpdateFields", ctx, loadID, mock.Anything).Return(int64(1), nil).Once()
	suite.mockLoadRepo.On("FindByID", ctx, loadID).Return(delivered, nil).Once()
	suite.mockHistory.On("SaveHistory", ctx, mock.Anything).Return(nil).Once()

	_, err := suite.service.UpdateLoadStatus(ctx, loadID, domain.LoadStatusDelivered, uuid.NewString())

	suite.Require().NoError(err)
	suite.Equal([]domain.LoadStatus{domain.LoadStatusDelivered}, suite.notifier.calls)
}

func (suite *LoadServiceTestSuite) TestUpdateLoadStatus_ForbiddenTransition() {
	ctx := context.Background()
	loadID := uuid.NewString()
	current := &domain.Load{LoadID: loadID, Status: domain.LoadStatusListed}

	suite.mockLoadRepo.On("FindByID", ctx, loadID).Return(current, nil).Once()

	_, err := suite.service.UpdateLoadStatus(ctx, loadID, domain.LoadStatusDelivered, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockLoadRepo.AssertNotCalled(suite.T(), "UpdateFields", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *LoadServiceTestSuite) TestUpdateLoadStatus_UnknownStatus() {
	_, err := suite.service.UpdateLoadStatus(context.Background(), uuid.NewString(), "teleported", uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockLoadRepo.AssertNotCalled(suite.T(), "FindByID", mock.Anything, mock.Anything)
}

func (suite *LoadServiceTestSuite) TestUpdateLoadStatus_SameStatusIsNoOp() {
	ctx := context.Background()
	loadID := uuid.NewString()
	current := &domain.Load{LoadID: loadID, Status: domain.LoadStatusDispatched}

	suite.mockLoadRepo.On("FindByID", ctx, loadID).Return(current, nil).Once()

	updated, err := suite.service.UpdateLoadStatus(ctx, loadID, domain.LoadStatusDispatched, uuid.NewString())

	suite.Require().NoError(err)
	suite.Equal(current, updated)
	suite.mockLoadRepo.AssertNotCalled(suite.T(), "UpdateFields", mock.Anything, mock.Anything, mock.Anything)
	suite.mockHistory.AssertNotCalled(suite.T(), "SaveHistory", mock.Anything, mock.Anything)
}

func (suite *LoadServiceTestSuite) TestResolveLoadRelations_BatchesAndDedupes() {
	ctx := context.Background()
	customerID := uuid.NewString()
	carrierID := uuid.NewString()
	loads := []domain.Load{
		{LoadID: "l1", CustomerID: customerID, CarrierID: carrierID},
		{LoadID: "l2", CustomerID: customerID}, // same customer, no carrier
	}

	suite.mockCustomerRepo.On("Find", ctx, mock.MatchedBy(func(q domain.QueryDescriptor) bool {
		ids, ok := q.Conditions[0].Value.([]string)
		return ok && len(ids) == 1 && ids[0] == customerID
	}), false).Return([]domain.Customer{{CustomerID: customerID, CompanyName: "Acme"}}, int64(1), nil).Once()
	suite.mockCarrierRepo.On("Find", ctx, mock.MatchedBy(func(q domain.QueryDescriptor) bool {
		ids, ok := q.Conditions[0].Value.([]string)
		return ok && len(ids) == 1 && ids[0] == carrierID
	}), false).Return([]domain.Carrier{{CarrierID: carrierID, CompanyName: "FastFreight"}}, int64(1), nil).Once()

	rel, err := suite.service.ResolveLoadRelations(ctx, loads)

	suite.Require().NoError(err)
	suite.Equal("Acme", rel.Customers[customerID].CompanyName)
	suite.Equal("FastFreight", rel.Carriers[carrierID].CompanyName)
	suite.mockCustomerRepo.AssertExpectations(suite.T())
	suite.mockCarrierRepo.AssertExpectations(suite.T())
}

func (suite *LoadServiceTestSuite) TestExportLoads_NamesFileByDate() {
	ctx := context.Background()
	loads := []domain.Load{{LoadID: "l1", RefNumber: "FB-1001", Status: domain.LoadStatusListed}}

	suite.mockLoadRepo.On("Find", ctx, mock.MatchedBy(func(q domain.QueryDescriptor) bool {
		return q.Limit == 10000 && q.Page == 1
	}), false).Return(loads, int64(1), nil).Once()

	content, filename, err := suite.service.ExportLoads(ctx, domain.QueryDescriptor{Page: 3, Limit: 10})

	suite.Require().NoError(err)
	suite.Equal("loads_2025-06-11.xlsx", filename)
	suite.NotEmpty(content)
}

func TestLoadServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LoadServiceTestSuite))
}
