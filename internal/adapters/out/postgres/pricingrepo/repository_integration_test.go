package pricingrepo_test

import (
	"context"
	"testing"
	"time"

	"hubops/internal/adapters/out/postgres/pgtest"
	"hubops/internal/adapters/out/postgres/pricingrepo"
	"hubops/internal/core/domain/model/kernel"
	"hubops/internal/core/domain/model/pricing"
	"hubops/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(key string, aggregate any) {
	m.Called(key, aggregate)
}

type PricingRuleRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *pricingrepo.GormPricingRuleRepository
	tracker    *MockAggregateTracker
}

func (suite *PricingRuleRepositoryIntegrationTestSuite) SetupSuite() {
	container, db, err := pgtest.Start(context.Background())
	suite.container = container
	suite.Require().NoError(err)
	suite.db = db
}

func (suite *PricingRuleRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(pgtest.Truncate(suite.db))

	suite.tracker = &MockAggregateTracker{}
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Return()
	suite.repository = pricingrepo.NewGormPricingRuleRepository(suite.db, suite.tracker)
}

func (suite *PricingRuleRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *PricingRuleRepositoryIntegrationTestSuite) key(origin, destination, from, to string) pricing.Key {
	band, err := kernel.NewWeightBand(decimal.RequireFromString(from), decimal.RequireFromString(to))
	suite.Require().NoError(err)
	key, err := pricing.NewKey(origin, destination, "svc1", band)
	suite.Require().NoError(err)
	return key
}

func (suite *PricingRuleRepositoryIntegrationTestSuite) rule(key pricing.Key, base, extra string) *pricing.Rule {
	rule, err := pricing.NewRule(key, pricing.Rates{
		BaseRate:          decimal.RequireFromString(base),
		AdditionalCharges: decimal.RequireFromString(extra),
	}, time.Now().UTC())
	suite.Require().NoError(err)
	return rule
}

func (suite *PricingRuleRepositoryIntegrationTestSuite) TestUpsert_InsertsThenOverwrites() {
	ctx := context.Background()
	key := suite.key("LHR", "KHI", "0", "0.5")

	suite.Require().NoError(suite.repository.Upsert(ctx, suite.rule(key, "200", "15")))
	suite.Require().NoError(suite.repository.Upsert(ctx, suite.rule(key, "250", "0")))

	stored, err := suite.repository.Get(ctx, key)
	suite.Require().NoError(err)
	suite.True(stored.Rates().BaseRate.Equal(decimal.NewFromInt(250)))
	suite.True(stored.Rates().AdditionalCharges.IsZero())

	var rows int64
	suite.Require().NoError(suite.db.Model(&pricingrepo.RuleDTO{}).Count(&rows).Error)
	suite.Equal(int64(1), rows)
}

func (suite *PricingRuleRepositoryIntegrationTestSuite) TestGet_MatchesBandByValue() {
	ctx := context.Background()
	suite.Require().NoError(suite.repository.Upsert(ctx, suite.rule(suite.key("LHR", "KHI", "0.5", "1"), "300", "0")))

	stored, err := suite.repository.Get(ctx, suite.key("LHR", "KHI", "0.500", "1.0"))
	suite.Require().NoError(err)
	suite.True(stored.Rates().BaseRate.Equal(decimal.NewFromInt(300)))
}

func (suite *PricingRuleRepositoryIntegrationTestSuite) TestGet_DirectedKeys() {
	ctx := context.Background()
	suite.Require().NoError(suite.repository.Upsert(ctx, suite.rule(suite.key("LHR", "KHI", "0", "0.5"), "200", "0")))

	_, err := suite.repository.Get(ctx, suite.key("KHI", "LHR", "0", "0.5"))

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound, "the mirror is written by the handler, not the repository")
}

func TestPricingRuleRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(PricingRuleRepositoryIntegrationTestSuite))
}
