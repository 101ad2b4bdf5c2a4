package handlers

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"

	"github.com/loanlift/loanlift-api/internal/auth"
	"github.com/loanlift/loanlift-api/internal/middleware"
	"github.com/loanlift/loanlift-api/internal/models"
	"github.com/loanlift/loanlift-api/internal/store"
)

// mockUserStore is a mock implementation of store.UserStore.
type mockUserStore struct {
	mock.Mock
}

func (m *mockUserStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *mockUserStore) FindRole(ctx context.Context, email string) (models.Role, models.UserStatus, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(models.Role), args.Get(1).(models.UserStatus), args.Error(2)
}

func (m *mockUserStore) List(ctx context.Context, f store.UserFilter) ([]models.User, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *mockUserStore) Insert(ctx context.Context, u *models.User) (string, error) {
	args := m.Called(ctx, u)
	return args.String(0), args.Error(1)
}

func (m *mockUserStore) UpdateModeration(ctx context.Context, id string, patch store.UserModeration) (store.UpdateResult, error) {
	args := m.Called(ctx, id, patch)
	return args.Get(0).(store.UpdateResult), args.Error(1)
}

// mockLoanStore is a mock implementation of store.LoanStore.
type mockLoanStore struct {
	mock.Mock
}

func (m *mockLoanStore) List(ctx context.Context, f store.LoanFilter) ([]models.Loan, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Loan), args.Error(1)
}

func (m *mockLoanStore) FindByID(ctx context.Context, id string) (*models.Loan, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Loan), args.Error(1)
}

func (m *mockLoanStore) Insert(ctx context.Context, l *models.Loan) (string, error) {
	args := m.Called(ctx, l)
	return args.String(0), args.Error(1)
}

func (m *mockLoanStore) Upsert(ctx context.Context, id string, patch store.LoanPatch) (store.UpdateResult, error) {
	args := m.Called(ctx, id, patch)
	return args.Get(0).(store.UpdateResult), args.Error(1)
}

func (m *mockLoanStore) Delete(ctx context.Context, id string) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

// mockApplicationStore is a mock implementation of store.ApplicationStore.
type mockApplicationStore struct {
	mock.Mock
}

func (m *mockApplicationStore) List(ctx context.Context, f store.ApplicationFilter) ([]models.Application, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Application), args.Error(1)
}

func (m *mockApplicationStore) Insert(ctx context.Context, a *models.Application) (string, error) {
	args := m.Called(ctx, a)
	return args.String(0), args.Error(1)
}

func (m *mockApplicationStore) UpdateStatus(ctx context.Context, id string, status models.ApplicationStatus, approvedAt *time.Time) (store.UpdateResult, error) {
	args := m.Called(ctx, id, status, approvedAt)
	return args.Get(0).(store.UpdateResult), args.Error(1)
}

func (m *mockApplicationStore) UpdateStage(ctx context.Context, id string, stage models.ApplicationStage) (store.UpdateResult, error) {
	args := m.Called(ctx, id, stage)
	return args.Get(0).(store.UpdateResult), args.Error(1)
}

func (m *mockApplicationStore) MarkFeePaid(ctx context.Context, id string) (store.UpdateResult, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(store.UpdateResult), args.Error(1)
}

func (m *mockApplicationStore) DeletePending(ctx context.Context, id string) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

// mockPaymentStore is a mock implementation of store.PaymentStore.
type mockPaymentStore struct {
	mock.Mock
}

func (m *mockPaymentStore) Insert(ctx context.Context, p *models.Payment) (string, error) {
	args := m.Called(ctx, p)
	return args.String(0), args.Error(1)
}

func (m *mockPaymentStore) FindByApplicationID(ctx context.Context, applicationID string) (*models.Payment, error) {
	args := m.Called(ctx, applicationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Payment), args.Error(1)
}

// mockGateway is a mock implementation of PaymentGateway.
type mockGateway struct {
	mock.Mock
}

func (m *mockGateway) CreateIntent(ctx context.Context, amount float64) (string, error) {
	args := m.Called(ctx, amount)
	return args.String(0), args.Error(1)
}

type testEnv struct {
	users *mockUserStore
	loans *mockLoanStore
	apps  *mockApplicationStore
	pays  *mockPaymentStore
	gw    *mockGateway
	h     *Handler
}

func newTestEnv() *testEnv {
	gin.SetMode(gin.TestMode)
	env := &testEnv{
		users: new(mockUserStore),
		loans: new(mockLoanStore),
		apps:  new(mockApplicationStore),
		pays:  new(mockPaymentStore),
		gw:    new(mockGateway),
	}
	env.h = NewHandler(env.users, env.loans, env.apps, env.pays, auth.NewTokenService("test-secret"), env.gw, false)
	return env
}

// withIdentity stands in for the authentication gate in handler tests.
func withIdentity(email string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.IdentityKey, email)
		c.Next()
	}
}

func performRequest(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
