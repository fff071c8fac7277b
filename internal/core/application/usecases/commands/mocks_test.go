package commands_test

import (
	"context"
	"time"

	"hubops/internal/core/application/usecases/commands"
	"hubops/internal/core/domain/model/batch"
	"hubops/internal/core/domain/model/consignment"
	"hubops/internal/core/domain/model/hubdoc"
	"hubops/internal/core/domain/model/kernel"
	"hubops/internal/core/domain/model/pricing"
	"hubops/internal/core/domain/model/sequence"
	"hubops/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockConsignmentRepository struct{ mock.Mock }

func (m *MockConsignmentRepository) Add(ctx context.Context, c *consignment.Consignment) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockConsignmentRepository) Update(ctx context.Context, c *consignment.Consignment) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockConsignmentRepository) Get(ctx context.Context, cn string) (*consignment.Consignment, error) {
	args := m.Called(ctx, cn)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*consignment.Consignment), args.Error(1)
}

func (m *MockConsignmentRepository) GetForUpdate(ctx context.Context, cn string) (*consignment.Consignment, error) {
	args := m.Called(ctx, cn)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*consignment.Consignment), args.Error(1)
}

type MockBatchRepository struct{ mock.Mock }

func (m *MockBatchRepository) Add(ctx context.Context, b *batch.Batch) error {
	return m.Called(ctx, b).Error(0)
}

func (m *MockBatchRepository) Update(ctx context.Context, b *batch.Batch) error {
	return m.Called(ctx, b).Error(0)
}

func (m *MockBatchRepository) Get(ctx context.Context, id kernel.UUID) (*batch.Batch, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*batch.Batch), args.Error(1)
}

func (m *MockBatchRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*batch.Batch, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*batch.Batch), args.Error(1)
}

func (m *MockBatchRepository) GetActiveForUpdate(ctx context.Context, staffCode string) (*batch.Batch, error) {
	args := m.Called(ctx, staffCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*batch.Batch), args.Error(1)
}

type MockDocumentRepository struct{ mock.Mock }

func (m *MockDocumentRepository) Add(ctx context.Context, d *hubdoc.Document) error {
	return m.Called(ctx, d).Error(0)
}

func (m *MockDocumentRepository) Update(ctx context.Context, d *hubdoc.Document) error {
	return m.Called(ctx, d).Error(0)
}

func (m *MockDocumentRepository) Get(ctx context.Context, id kernel.UUID) (*hubdoc.Document, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*hubdoc.Document), args.Error(1)
}

func (m *MockDocumentRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*hubdoc.Document, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*hubdoc.Document), args.Error(1)
}

type MockPricingRuleRepository struct{ mock.Mock }

func (m *MockPricingRuleRepository) Upsert(ctx context.Context, rule *pricing.Rule) error {
	return m.Called(ctx, rule).Error(0)
}

func (m *MockPricingRuleRepository) Get(ctx context.Context, key pricing.Key) (*pricing.Rule, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pricing.Rule), args.Error(1)
}

type MockSequenceRepository struct{ mock.Mock }

func (m *MockSequenceRepository) NextNumber(ctx context.Context, kind sequence.Kind, yy int) (int64, error) {
	args := m.Called(ctx, kind, yy)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSequenceRepository) Reserve(
	ctx context.Context, kind sequence.Kind, code string, scopeKey string, at time.Time,
) (bool, error) {
	args := m.Called(ctx, kind, code, scopeKey, at)
	return args.Bool(0), args.Error(1)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) SavePoint(ctx context.Context, name string) error {
	return m.Called(ctx, name).Error(0)
}

func (m *MockUoW) RollbackTo(ctx context.Context, name string) error {
	return m.Called(ctx, name).Error(0)
}

func (m *MockUoW) ConsignmentRepository() ports.ConsignmentRepository {
	return m.Called().Get(0).(ports.ConsignmentRepository)
}

func (m *MockUoW) BatchRepository() ports.BatchRepository {
	return m.Called().Get(0).(ports.BatchRepository)
}

func (m *MockUoW) DocumentRepository() ports.DocumentRepository {
	return m.Called().Get(0).(ports.DocumentRepository)
}

func (m *MockUoW) PricingRuleRepository() ports.PricingRuleRepository {
	return m.Called().Get(0).(ports.PricingRuleRepository)
}

func (m *MockUoW) SequenceRepository() ports.SequenceRepository {
	return m.Called().Get(0).(ports.SequenceRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) create() *MockUoW {
	return m.Called().Get(0).(*MockUoW)
}

type sequenceFactory struct{ *MockUoWFactory }

func (f sequenceFactory) Create() commands.SequenceUoW { return f.create() }

type batchFactory struct{ *MockUoWFactory }

func (f batchFactory) Create() commands.BatchUoW { return f.create() }

type consignmentFactory struct{ *MockUoWFactory }

func (f consignmentFactory) Create() commands.ConsignmentUoW { return f.create() }

type documentFactory struct{ *MockUoWFactory }

func (f documentFactory) Create() commands.DocumentUoW { return f.create() }

type pricingFactory struct{ *MockUoWFactory }

func (f pricingFactory) Create() commands.PricingUoW { return f.create() }

type MockCodeAllocator struct{ mock.Mock }

func (m *MockCodeAllocator) Allocate(
	ctx context.Context, store ports.SequenceRepository, kind sequence.Kind, scopeKey string,
) (string, error) {
	args := m.Called(ctx, store, kind, scopeKey)
	return args.String(0), args.Error(1)
}

type MockBookingLookup struct{ mock.Mock }

func (m *MockBookingLookup) FindByCN(ctx context.Context, cn string) (*consignment.Consignment, error) {
	args := m.Called(ctx, cn)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*consignment.Consignment), args.Error(1)
}
