package services_test

import (
	"context"
	"testing"

	"github.com/ryanjorgeac/rinha-de-backend-2024-q1-ufpb/internal/apperrors"
	"github.com/ryanjorgeac/rinha-de-backend-2024-q1-ufpb/internal/core/domain"
	portsevents "github.com/ryanjorgeac/rinha-de-backend-2024-q1-ufpb/internal/core/ports/events"
	"github.com/ryanjorgeac/rinha-de-backend-2024-q1-ufpb/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// MockLedgerRepository is a mock type for the LedgerRepository interface
type MockLedgerRepository struct {
	mock.Mock
}

func (m *MockLedgerRepository) FindAccountByID(ctx context.Context, accountID int64) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockLedgerRepository) CompareAndApply(ctx context.Context, txn domain.Transaction) (*domain.Account, error) {
	args := m.Called(ctx, txn)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockLedgerRepository) StatementSnapshot(ctx context.Context, accountID int64, maxRecords int) (*domain.Account, []domain.Transaction, error) {
	args := m.Called(ctx, accountID, maxRecords)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*domain.Account), args.Get(1).([]domain.Transaction), args.Error(2)
}

// MockPublisher is a mock type for the events.Publisher interface
type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) PublishTransactionCompleted(ctx context.Context, event portsevents.TransactionCompleted) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

// --- Test Suite Setup ---

type LedgerServiceTestSuite struct {
	suite.Suite
	mockRepo      *MockLedgerRepository
	mockPublisher *MockPublisher
	service       *services.LedgerService
}

func (suite *LedgerServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockLedgerRepository)
	suite.mockPublisher = new(MockPublisher)
	suite.service = services.NewLedgerService(suite.mockRepo, suite.mockPublisher, nil)
}

// --- Test Cases ---

func (suite *LedgerServiceTestSuite) TestApply_CreditAccepted() {
	ctx := context.Background()
	expected := &domain.Account{AccountID: 1, Balance: 300, Limit: 0}

	suite.mockRepo.On("CompareAndApply", ctx, mock.MatchedBy(func(txn domain.Transaction) bool {
		return txn.AccountID == 1 && txn.Amount == 300 && txn.Kind == domain.Credit && txn.Description == "salary"
	})).Return(expected, nil).Once()
	suite.mockPublisher.On("PublishTransactionCompleted", ctx, mock.AnythingOfType("events.TransactionCompleted")).Return(nil).Once()

	account, err := suite.service.Apply(ctx, 1, 300, "salary")

	suite.Require().NoError(err)
	suite.Equal(expected, account)
	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockPublisher.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestApply_DebitDerivesKind() {
	ctx := context.Background()
	expected := &domain.Account{AccountID: 1, Balance: -500, Limit: 1000}

	suite.mockRepo.On("CompareAndApply", ctx, mock.MatchedBy(func(txn domain.Transaction) bool {
		return txn.Amount == -500 && txn.Kind == domain.Debit
	})).Return(expected, nil).Once()
	suite.mockPublisher.On("PublishTransactionCompleted", ctx, mock.Anything).Return(nil).Once()

	account, err := suite.service.Apply(ctx, 1, -500, "rent")

	suite.Require().NoError(err)
	suite.Equal(int64(-500), account.Balance)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestApply_OverdraftRejectionPassesThrough() {
	ctx := context.Background()
	overdraft := &apperrors.OverdraftError{AccountID: 1, Amount: -600, Limit: 1000}

	suite.mockRepo.On("CompareAndApply", ctx, mock.Anything).Return(nil, overdraft).Once()

	account, err := suite.service.Apply(ctx, 1, -600, "rent")

	suite.Require().Error(err)
	suite.Nil(account)
	suite.ErrorIs(err, apperrors.ErrOverdraftExceeded)

	var oe *apperrors.OverdraftError
	suite.Require().ErrorAs(err, &oe)
	suite.Equal(int64(-600), oe.Amount)
	suite.Equal(int64(1000), oe.Limit)

	// No event may be published for a rejected mutation.
	suite.mockPublisher.AssertNotCalled(suite.T(), "PublishTransactionCompleted", mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestApply_AccountNotFound() {
	ctx := context.Background()

	suite.mockRepo.On("CompareAndApply", ctx, mock.Anything).Return(nil, apperrors.ErrNotFound).Once()

	account, err := suite.service.Apply(ctx, 42, 100, "x")

	suite.Require().Error(err)
	suite.Nil(account)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *LedgerServiceTestSuite) TestApply_ZeroAmountRejectedBeforeStore() {
	ctx := context.Background()

	account, err := suite.service.Apply(ctx, 1, 0, "nothing")

	suite.Require().Error(err)
	suite.Nil(account)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "CompareAndApply", mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestApply_BadDescriptionRejectedBeforeStore() {
	ctx := context.Background()

	_, err := suite.service.Apply(ctx, 1, 100, "")
	suite.ErrorIs(err, apperrors.ErrValidation)

	_, err = suite.service.Apply(ctx, 1, 100, "elevenchars")
	suite.ErrorIs(err, apperrors.ErrValidation)

	suite.mockRepo.AssertNotCalled(suite.T(), "CompareAndApply", mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestApply_PublishFailureDoesNotFailApply() {
	ctx := context.Background()
	expected := &domain.Account{AccountID: 1, Balance: 300, Limit: 0}

	suite.mockRepo.On("CompareAndApply", ctx, mock.Anything).Return(expected, nil).Once()
	suite.mockPublisher.On("PublishTransactionCompleted", ctx, mock.Anything).Return(assert.AnError).Once()

	account, err := suite.service.Apply(ctx, 1, 300, "salary")

	// The mutation is committed; publishing is best-effort.
	suite.Require().NoError(err)
	suite.Equal(expected, account)
	suite.mockPublisher.AssertExpectations(suite.T())
}

func TestLedgerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerServiceTestSuite))
}
