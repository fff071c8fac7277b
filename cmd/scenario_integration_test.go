package cmd_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"hubops/api"
	"hubops/cmd"
	hubhttp "hubops/internal/adapters/in/http"
	"hubops/internal/adapters/out/locks"
	"hubops/internal/adapters/out/postgres/pgtest"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

type ScenarioIntegrationTestSuite struct {
	suite.Suite
	ctx       context.Context
	container *postgres.PostgresContainer
	db        *gorm.DB
	e         *echo.Echo
}

func (suite *ScenarioIntegrationTestSuite) SetupSuite() {
	suite.ctx = context.Background()

	container, db, err := pgtest.Start(suite.ctx)
	suite.Require().NoError(err)
	suite.container = container
	suite.db = db

	cfg, err := cmd.LoadConfig("", "")
	suite.Require().NoError(err)
	logger, _ := test.NewNullLogger()

	app, err := cmd.NewCompositionRoot(cfg, db, locks.NewKeyedMutex(), logger)
	suite.Require().NoError(err)

	validate, err := hubhttp.OpenAPIValidator(api.OpenAPI)
	suite.Require().NoError(err)

	suite.e = echo.New()
	suite.e.Validator = hubhttp.NewRequestValidator()
	suite.e.Use(validate)
	app.CreateHTTPServer().Register(suite.e)
}

func (suite *ScenarioIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		_ = suite.container.Terminate(suite.ctx)
	}
}

func (suite *ScenarioIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(pgtest.Truncate(suite.db))
}

// call sends body as JSON and decodes the response into out when out is
// not nil. It returns the status code.
func (suite *ScenarioIntegrationTestSuite) call(method, target string, body any, out any) int {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	suite.e.ServeHTTP(rec, req)

	if out != nil && rec.Code < http.StatusBadRequest {
		suite.Require().NoError(json.Unmarshal(rec.Body.Bytes(), out), rec.Body.String())
	}
	return rec.Code
}

func (suite *ScenarioIntegrationTestSuite) register(cn string) hubhttp.Consignment {
	var c hubhttp.Consignment
	code := suite.call(http.MethodPost, "/api/v1/consignments", map[string]any{
		"cnNumber":          cn,
		"stationCode":       "LHE01",
		"originCityId":      "LHR",
		"destinationCityId": "KHI",
		"serviceId":         "svc1",
		"weight":            "0.5",
		"pieces":            1,
		"paymentMode":       "CASH",
		"totalAmount":       "200",
		"actor":             "booking",
	}, &c)
	suite.Require().Equal(http.StatusCreated, code)
	return c
}

func (suite *ScenarioIntegrationTestSuite) TestArrivalScenario() {
	registered := suite.register("CN000123")
	suite.Equal("PENDING", registered.Status)

	var arrival hubhttp.Document
	suite.Require().Equal(http.StatusCreated,
		suite.call(http.MethodPost, "/api/v1/arrivals", map[string]any{"stationCode": "LHE01"}, &arrival))
	suite.True(strings.HasPrefix(arrival.Code, "AR"), arrival.Code)
	suite.Equal("OPEN", arrival.Status)

	members := fmt.Sprintf("/api/v1/arrivals/%s/members", arrival.ID)
	var scanned hubhttp.Document
	suite.Require().Equal(http.StatusCreated,
		suite.call(http.MethodPost, members, map[string]any{"cnNumber": "CN000123", "actor": "hub-1"}, &scanned))
	suite.Require().Len(scanned.Members, 1)

	var c hubhttp.Consignment
	suite.Require().Equal(http.StatusOK, suite.call(http.MethodGet, "/api/v1/consignments/CN000123", nil, &c))
	suite.Equal("AT_HUB", c.Status)
	suite.Equal(arrival.ID, c.ArrivalScanID)

	suite.Equal(http.StatusConflict,
		suite.call(http.MethodPost, members, map[string]any{"cnNumber": "CN000123", "actor": "hub-1"}, nil))

	var completed hubhttp.Document
	suite.Require().Equal(http.StatusOK, suite.call(http.MethodPost,
		fmt.Sprintf("/api/v1/arrivals/%s/complete", arrival.ID), map[string]any{"actor": "supervisor"}, &completed))
	suite.Equal("COMPLETED", completed.Status)
	suite.NotNil(completed.CompletedAt)

	suite.Require().Equal(http.StatusOK, suite.call(http.MethodGet, "/api/v1/consignments/CN000123", nil, &c))
	suite.Equal("AT_HUB", c.Status)
	suite.Empty(c.ArrivalScanID)

	suite.Equal(http.StatusConflict,
		suite.call(http.MethodPost, members, map[string]any{"cnNumber": "CN000123", "actor": "hub-1"}, nil))
	suite.Equal(http.StatusNotFound,
		suite.call(http.MethodGet, "/api/v1/manifests/"+arrival.ID, nil, nil))

	today := time.Now().UTC().Format(time.DateOnly)
	var listed []hubhttp.DocumentSummary
	suite.Require().Equal(http.StatusOK, suite.call(http.MethodGet,
		fmt.Sprintf("/api/v1/arrivals?from=%s&to=%s&status=COMPLETED", today, today), nil, &listed))
	suite.Require().Len(listed, 1)
	suite.Equal(arrival.Code, listed[0].Code)
	suite.Equal(1, listed[0].Members)
	suite.Equal(0, listed[0].Unresolved)
}

func (suite *ScenarioIntegrationTestSuite) TestAddUnknownCNIsNotFound() {
	var arrival hubhttp.Document
	suite.Require().Equal(http.StatusCreated,
		suite.call(http.MethodPost, "/api/v1/arrivals", map[string]any{"stationCode": "LHE01"}, &arrival))

	suite.Equal(http.StatusNotFound, suite.call(http.MethodPost,
		fmt.Sprintf("/api/v1/arrivals/%s/members", arrival.ID), map[string]any{"cnNumber": "CN999999"}, nil))
}

func (suite *ScenarioIntegrationTestSuite) TestPricingMirrorScenario() {
	var written hubhttp.PricingRule
	suite.Require().Equal(http.StatusOK, suite.call(http.MethodPut, "/api/v1/pricing/rules", map[string]any{
		"originCityId":      "LHR",
		"destinationCityId": "KHI",
		"serviceId":         "svc1",
		"weightFrom":        "0",
		"weightTo":          "0.5",
		"baseRate":          "200",
		"additionalCharges": "0",
	}, &written))

	var mirrored hubhttp.PricingRule
	suite.Require().Equal(http.StatusOK, suite.call(http.MethodGet,
		"/api/v1/pricing/rules?origin=KHI&destination=LHR&service=svc1&weightFrom=0&weightTo=0.5", nil, &mirrored))
	suite.True(decimal.RequireFromString("200").Equal(mirrored.BaseRate), mirrored.BaseRate.String())
	suite.Equal("KHI", mirrored.OriginCityID)
	suite.Equal("LHR", mirrored.DestinationCityID)

	suite.Equal(http.StatusNotFound, suite.call(http.MethodGet,
		"/api/v1/pricing/rules?origin=KHI&destination=LHR&service=svc2&weightFrom=0&weightTo=0.5", nil, nil))
}

func (suite *ScenarioIntegrationTestSuite) TestBatchRotation() {
	var first, second, active hubhttp.Batch
	suite.Require().Equal(http.StatusCreated,
		suite.call(http.MethodPost, "/api/v1/batches", map[string]any{"staffCode": "S1", "stationCode": "LHE01"}, &first))
	suite.Require().Equal(http.StatusCreated,
		suite.call(http.MethodPost, "/api/v1/batches", map[string]any{"staffCode": "S1", "stationCode": "LHE01"}, &second))
	suite.NotEqual(first.Code, second.Code)

	suite.Require().Equal(http.StatusOK, suite.call(http.MethodGet, "/api/v1/batches/active?staff=S1", nil, &active))
	suite.Equal(second.ID, active.ID)

	var closed hubhttp.Batch
	suite.Require().Equal(http.StatusOK,
		suite.call(http.MethodPost, fmt.Sprintf("/api/v1/batches/%s/close", second.ID), nil, &closed))
	suite.Equal("CLOSED", closed.Status)
	suite.Equal(http.StatusNotFound, suite.call(http.MethodGet, "/api/v1/batches/active?staff=S1", nil, nil))
}

func (suite *ScenarioIntegrationTestSuite) TestAllocatedCodesAreDistinct() {
	seen := make(map[string]bool)
	for range 5 {
		var allocated hubhttp.AllocatedCode
		suite.Require().Equal(http.StatusCreated,
			suite.call(http.MethodPost, "/api/v1/sequences/MANIFEST", map[string]any{"scopeKey": "LHE01"}, &allocated))
		suite.False(seen[allocated.Code], allocated.Code)
		seen[allocated.Code] = true
	}
}

func (suite *ScenarioIntegrationTestSuite) TestVoidedConsignmentCannotBeScanned() {
	suite.register("CN000777")
	suite.Require().Equal(http.StatusOK, suite.call(http.MethodPost, "/api/v1/consignments/CN000777/void",
		map[string]any{"reason": "duplicate booking", "actor": "ops"}, nil))

	var arrival hubhttp.Document
	suite.Require().Equal(http.StatusCreated,
		suite.call(http.MethodPost, "/api/v1/arrivals", map[string]any{}, &arrival))
	suite.Equal(http.StatusUnprocessableEntity, suite.call(http.MethodPost,
		fmt.Sprintf("/api/v1/arrivals/%s/members", arrival.ID), map[string]any{"cnNumber": "CN000777"}, nil))
}

func TestScenarioIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(ScenarioIntegrationTestSuite))
}
