package sequencerepo_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"hubops/internal/adapters/out/postgres/pgtest"
	"hubops/internal/adapters/out/postgres/sequencerepo"
	"hubops/internal/core/domain/model/sequence"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

type SequenceRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *sequencerepo.GormSequenceRepository
}

func (suite *SequenceRepositoryIntegrationTestSuite) SetupSuite() {
	container, db, err := pgtest.Start(context.Background())
	suite.container = container
	suite.Require().NoError(err)
	suite.db = db
	suite.repository = sequencerepo.NewGormSequenceRepository(db)
}

func (suite *SequenceRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(pgtest.Truncate(suite.db))
}

func (suite *SequenceRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *SequenceRepositoryIntegrationTestSuite) TestNextNumber_CountsPerKindAndYear() {
	ctx := context.Background()

	for want := int64(1); want <= 3; want++ {
		got, err := suite.repository.NextNumber(ctx, sequence.KindArrival, 25)
		suite.Require().NoError(err)
		suite.Equal(want, got)
	}

	got, err := suite.repository.NextNumber(ctx, sequence.KindManifest, 25)
	suite.Require().NoError(err)
	suite.Equal(int64(1), got, "kinds count independently")

	got, err = suite.repository.NextNumber(ctx, sequence.KindArrival, 26)
	suite.Require().NoError(err)
	suite.Equal(int64(1), got, "a new year restarts the counter")
}

func (suite *SequenceRepositoryIntegrationTestSuite) TestNextNumber_ConcurrentCallersGetDistinctNumbers() {
	ctx := context.Background()
	const callers = 20

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		seen = make(map[int64]bool)
	)
	for range callers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			n, err := suite.repository.NextNumber(ctx, sequence.KindCN, 25)
			if !suite.NoError(err) {
				return
			}
			mu.Lock()
			seen[n] = true
			mu.Unlock()
		}()
	}
	wg.Wait()

	suite.Len(seen, callers)
	for n := int64(1); n <= callers; n++ {
		suite.True(seen[n], "missing %d", n)
	}
}

func (suite *SequenceRepositoryIntegrationTestSuite) TestReserve_SecondReservationCollides() {
	ctx := context.Background()
	at := time.Now().UTC()

	ok, err := suite.repository.Reserve(ctx, sequence.KindBatch, "BT25000001", "EMP-1", at)
	suite.Require().NoError(err)
	suite.True(ok)

	ok, err = suite.repository.Reserve(ctx, sequence.KindBatch, "BT25000001", "EMP-2", at)
	suite.Require().NoError(err)
	suite.False(ok)

	ok, err = suite.repository.Reserve(ctx, sequence.KindArrival, "BT25000001", "EMP-1", at)
	suite.Require().NoError(err)
	suite.True(ok, "issued codes are unique per kind")
}

func (suite *SequenceRepositoryIntegrationTestSuite) TestReserve_CollisionKeepsTransactionUsable() {
	ctx := context.Background()
	at := time.Now().UTC()
	_, err := suite.repository.Reserve(ctx, sequence.KindCN, "CN25000042", "", at)
	suite.Require().NoError(err)

	tx := suite.db.Begin()
	suite.Require().NoError(tx.Error)
	defer tx.Rollback()
	inTx := sequencerepo.NewGormSequenceRepository(tx)

	ok, err := inTx.Reserve(ctx, sequence.KindCN, "CN25000042", "", at)
	suite.Require().NoError(err)
	suite.False(ok)

	ok, err = inTx.Reserve(ctx, sequence.KindCN, "CN25000043", "", at)
	suite.Require().NoError(err)
	suite.True(ok)
	suite.Require().NoError(tx.Commit().Error)
}

func TestSequenceRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(SequenceRepositoryIntegrationTestSuite))
}
