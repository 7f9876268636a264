//go:build integration
// +build integration

package db_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/ammerola/buyback-be/internal/adapters/db"
	"github.com/ammerola/buyback-be/internal/adapters/redis_adapter"
	"github.com/ammerola/buyback-be/internal/core/domain"
	"github.com/ammerola/buyback-be/internal/core/ports"
	"github.com/ammerola/buyback-be/internal/core/services"
	"github.com/ammerola/buyback-be/internal/handlers/middleware"
	"github.com/ammerola/buyback-be/test/helpers"
)

type BuybackWorkflowSuite struct {
	suite.Suite
	testDB    *helpers.TestDB
	service   *services.BuybackService
	ctx       context.Context
	accountID uuid.UUID
	condition *domain.AuditCondition
}

func (s *BuybackWorkflowSuite) SetupSuite() {
	s.testDB = helpers.SetupTestDB(s.T())
	testRedis := helpers.SetupTestRedis(s.T())
	s.ctx = context.Background()

	logger := helpers.TestLogger()
	cache := redis_adapter.NewCache(testRedis.Client, time.Minute, logger)
	references := redis_adapter.NewReferenceGenerator(cache, "AR", "BO", logger)

	s.service = services.NewBuybackService(
		db.NewSessionFactory(s.testDB.Database, cache, time.Minute, logger),
		services.NewCascadeEngine(services.DefaultCascadeRules(), middleware.ContextIdentity{}, references, logger),
		services.NewAggregateRecomputer(logger),
		nil,
		nil,
		services.BuybackOptions{},
		logger,
	)
}

func (s *BuybackWorkflowSuite) SetupTest() {
	helpers.TruncateAllTables(s.T(), s.testDB.PgxPool)

	s.accountID = uuid.New()
	helpers.SeedModule(s.T(), s.testDB.PgxPool, helpers.CreateTestModule(s.accountID))
	s.condition = helpers.CreateTestCondition("functional")
	helpers.SeedCondition(s.T(), s.testDB.PgxPool, s.condition)
}

func (s *BuybackWorkflowSuite) countAuditItems(requestID uuid.UUID) int {
	var count int
	err := s.testDB.PgxPool.QueryRow(s.ctx,
		`SELECT COUNT(*) FROM audit_items WHERE audit_request_id = $1`, requestID).Scan(&count)
	s.Require().NoError(err)
	return count
}

func (s *BuybackWorkflowSuite) deviceStatus(id uuid.UUID) string {
	var status string
	err := s.testDB.PgxPool.QueryRow(s.ctx,
		`SELECT status FROM devices WHERE id = $1`, id).Scan(&status)
	s.Require().NoError(err)
	return status
}

func (s *BuybackWorkflowSuite) TestConvertAuditRequest() {
	request, err := s.service.CreateAuditRequest(s.ctx, ports.AuditRequestInput{
		AccountID:           s.accountID,
		SupplierOrderNumber: helpers.Ptr("PO-2001"),
		Items: []ports.AuditRequestItemInput{
			{ProductID: uuid.New(), ExpectedQuantity: helpers.Ptr(3), ReceivedQuantity: helpers.Ptr(2)},
			{ProductID: uuid.New(), ExpectedQuantity: helpers.Ptr(1), ReceivedQuantity: helpers.Ptr(1)},
		},
	})
	s.Require().NoError(err)
	s.NotNil(request.Reference)
	s.Equal(4, request.ExpectedQuantity)
	s.Equal(3, request.ReceivedQuantity)
	s.False(request.Converted)

	converted, err := s.service.ConvertAuditRequest(s.ctx, request.ID)
	s.Require().NoError(err)
	s.True(converted.Converted)
	s.Equal(3, s.countAuditItems(request.ID))

	// a second conversion is a no-op
	_, err = s.service.ConvertAuditRequest(s.ctx, request.ID)
	s.Require().NoError(err)
	s.Equal(3, s.countAuditItems(request.ID))
}

func (s *BuybackWorkflowSuite) TestAuditToValidatedOffer() {
	request, err := s.service.CreateAuditRequest(s.ctx, ports.AuditRequestInput{
		AccountID:           s.accountID,
		SupplierOrderNumber: helpers.Ptr("PO-2002"),
	})
	s.Require().NoError(err)

	device := helpers.CreateTestDevice(s.accountID)
	helpers.SeedDevice(s.T(), s.testDB.PgxPool, device)

	item, err := s.service.CreateAuditItem(s.ctx, ports.AuditItemInput{
		AuditRequestID:   request.ID,
		DeviceID:         &device.ID,
		ProductID:        helpers.Ptr(uuid.New()),
		AuditConditionID: &s.condition.ID,
		StatePrice:       helpers.Ptr(decimal.RequireFromString("120.50")),
	})
	s.Require().NoError(err)
	s.Require().NotNil(item.Status)
	s.Equal(domain.AuditItemAudited, *item.Status)
	s.Equal(string(domain.DeviceInAudit), s.deviceStatus(device.ID))

	offer, err := s.service.AddAuditItemsToOffer(s.ctx, s.accountID, nil, ports.OfferSelection{
		AuditItemIDs: []uuid.UUID{item.ID},
	})
	s.Require().NoError(err)
	s.Equal(1, offer.NumberOfItems)
	s.True(decimal.RequireFromString("120.50").Equal(offer.TotalStatePrice))
	s.Equal("PO-2002", *offer.SupplierOrderNumber)

	item, err = s.service.GetAuditItem(s.ctx, item.ID)
	s.Require().NoError(err)
	s.Equal(domain.AuditItemValorised, *item.Status)
	s.Equal(string(domain.DeviceInBuybackOffer), s.deviceStatus(device.ID))

	offer, err = s.service.UpdateBuybackOffer(s.ctx, offer.ID, ports.BuybackOfferPatch{
		Status: ports.Some("accepted"),
	})
	s.Require().NoError(err)
	s.True(offer.Validated)
	s.True(offer.Closed)
	s.NotNil(offer.ValidatedAt)
}

func (s *BuybackWorkflowSuite) TestAddAuditItemsToOffer_NothingSelected() {
	_, err := s.service.AddAuditItemsToOffer(s.ctx, s.accountID, nil, ports.OfferSelection{})
	s.Require().Error(err)
	_, ok := domain.AsValidationError(err)
	s.True(ok)
}

func TestBuybackWorkflowSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration tests in short mode")
	}
	suite.Run(t, new(BuybackWorkflowSuite))
}
