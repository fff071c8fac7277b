package locks_test

import (
	"context"
	"testing"
	"time"

	"hubops/internal/adapters/out/locks"

	"github.com/bsm/redislock"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

type RedisLockerIntegrationTestSuite struct {
	suite.Suite
	container testcontainers.Container
	client    *redis.Client
}

func (suite *RedisLockerIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor: wait.ForLog("Ready to accept connections").
				WithStartupTimeout(30 * time.Second),
		},
		Started: true,
	})
	suite.Require().NoError(err)
	suite.container = container

	endpoint, err := container.Endpoint(ctx, "")
	suite.Require().NoError(err)

	suite.client = redis.NewClient(&redis.Options{Addr: endpoint})
	suite.Require().NoError(suite.client.Ping(ctx).Err())
}

func (suite *RedisLockerIntegrationTestSuite) TearDownSuite() {
	if suite.client != nil {
		suite.Require().NoError(suite.client.Close())
	}
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *RedisLockerIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.client.FlushAll(context.Background()).Err())
}

func (suite *RedisLockerIntegrationTestSuite) newLocker(retries int) *locks.RedisLocker {
	return locks.NewRedisLocker(redislock.New(suite.client), locks.RedisLockerConfig{
		TTL:        2 * time.Second,
		RetryDelay: 10 * time.Millisecond,
		MaxRetries: retries,
	}, logrus.New())
}

func (suite *RedisLockerIntegrationTestSuite) TestLock_ReleaseAllowsNextHolder() {
	ctx := context.Background()
	locker := suite.newLocker(5)

	release, err := locker.Lock(ctx, "MANIFEST:LHE")
	suite.Require().NoError(err)
	release()

	again, err := locker.Lock(ctx, "MANIFEST:LHE")
	suite.Require().NoError(err)
	again()
}

func (suite *RedisLockerIntegrationTestSuite) TestLock_OtherInstanceIsExcluded() {
	ctx := context.Background()
	first := suite.newLocker(2)
	second := suite.newLocker(2)

	release, err := first.Lock(ctx, "CN:LHE")
	suite.Require().NoError(err)
	defer release()

	_, err = second.Lock(ctx, "CN:LHE")

	suite.Require().ErrorIs(err, locks.ErrNotObtained)
}

func (suite *RedisLockerIntegrationTestSuite) TestLock_OtherInstanceProceedsAfterRelease() {
	ctx := context.Background()
	first := suite.newLocker(100)
	second := suite.newLocker(100)

	release, err := first.Lock(ctx, "CN:KHI")
	suite.Require().NoError(err)

	go func() {
		time.Sleep(50 * time.Millisecond)
		release()
	}()

	next, err := second.Lock(ctx, "CN:KHI")
	suite.Require().NoError(err)
	next()
}

func TestRedisLockerIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(RedisLockerIntegrationTestSuite))
}
