package sales_test

import (
	"context"
	"database/sql"
	"net/http"
	"testing"
	"time"

	"go-ems/internal/sales"
	"go-ems/internal/shared/apperror"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeSalesRepository struct {
	withTxFn            func(tx *sql.Tx) sales.Repository
	createFn            func(ctx context.Context, sale *sales.Sale) error
	findAllByCompanyFn  func(ctx context.Context, companyID string) ([]sales.Sale, error)
	findAllByEmployeeFn func(ctx context.Context, companyID, employeeID string) ([]sales.Sale, error)
	sumForPeriodFn      func(ctx context.Context, companyID, employeeID string, periodStart, periodEnd time.Time) (int64, error)
}

func (f *fakeSalesRepository) WithTx(tx *sql.Tx) sales.Repository {
	if f.withTxFn != nil {
		return f.withTxFn(tx)
	}
	return f
}

func (f *fakeSalesRepository) Create(ctx context.Context, sale *sales.Sale) error {
	if f.createFn != nil {
		return f.createFn(ctx, sale)
	}
	return nil
}

func (f *fakeSalesRepository) FindAllByCompany(ctx context.Context, companyID string) ([]sales.Sale, error) {
	if f.findAllByCompanyFn != nil {
		return f.findAllByCompanyFn(ctx, companyID)
	}
	return nil, nil
}

func (f *fakeSalesRepository) FindAllByCompanyAndEmployee(ctx context.Context, companyID, employeeID string) ([]sales.Sale, error) {
	if f.findAllByEmployeeFn != nil {
		return f.findAllByEmployeeFn(ctx, companyID, employeeID)
	}
	return nil, nil
}

func (f *fakeSalesRepository) SumForPeriod(ctx context.Context, companyID, employeeID string, periodStart, periodEnd time.Time) (int64, error) {
	if f.sumForPeriodFn != nil {
		return f.sumForPeriodFn(ctx, companyID, employeeID, periodStart, periodEnd)
	}
	return 0, nil
}

func newSalesService(t *testing.T) (sales.Service, *fakeSalesRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repo := &fakeSalesRepository{}
	return sales.NewService(db, repo), repo, mock
}

func TestCreateSale_Success(t *testing.T) {
	svc, repo, mock := newSalesService(t)

	var created *sales.Sale
	repo.createFn = func(ctx context.Context, sale *sales.Sale) error {
		created = sale
		return nil
	}

	mock.ExpectBegin()
	mock.ExpectCommit()

	resp, err := svc.Create(context.Background(), uuid.NewString(), sales.CreateSaleRequest{
		EmployeeID: uuid.NewString(),
		Amount:     1500,
		OccurredAt: "2025-01-15",
	})

	assert.NoError(t, err)
	assert.NotNil(t, created)
	assert.Equal(t, int64(1500), resp.Amount)
	assert.Equal(t, "2025-01-15", resp.OccurredAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateSale_RejectsNonPositiveAmount(t *testing.T) {
	svc, _, _ := newSalesService(t)

	for _, amount := range []int64{0, -10} {
		_, err := svc.Create(context.Background(), uuid.NewString(), sales.CreateSaleRequest{
			EmployeeID: uuid.NewString(),
			Amount:     amount,
			OccurredAt: "2025-01-15",
		})
		httpErr := apperror.ToHTTP(err)
		assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	}
}

// company_id dari klaim token yang rusak harus jadi 400, bukan panic.
func TestCreateSale_RejectsMalformedCompanyID(t *testing.T) {
	svc, _, _ := newSalesService(t)

	_, err := svc.Create(context.Background(), "not-a-uuid", sales.CreateSaleRequest{
		EmployeeID: uuid.NewString(),
		Amount:     100,
		OccurredAt: "2025-01-15",
	})

	httpErr := apperror.ToHTTP(err)
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
}

func TestCreateSale_RejectsBadDate(t *testing.T) {
	svc, _, _ := newSalesService(t)

	_, err := svc.Create(context.Background(), uuid.NewString(), sales.CreateSaleRequest{
		EmployeeID: uuid.NewString(),
		Amount:     100,
		OccurredAt: "15/01/2025",
	})

	httpErr := apperror.ToHTTP(err)
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
}

func TestTotal_SumsPeriod(t *testing.T) {
	svc, repo, _ := newSalesService(t)

	repo.sumForPeriodFn = func(ctx context.Context, companyID, employeeID string, periodStart, periodEnd time.Time) (int64, error) {
		return 10000, nil
	}

	resp, err := svc.Total(context.Background(), uuid.NewString(), sales.TotalQueryRequest{
		EmployeeID:  uuid.NewString(),
		PeriodStart: "2025-01-01",
		PeriodEnd:   "2025-01-31",
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(10000), resp.Total)
}

func TestTotal_RejectsInvertedPeriod(t *testing.T) {
	svc, _, _ := newSalesService(t)

	_, err := svc.Total(context.Background(), uuid.NewString(), sales.TotalQueryRequest{
		EmployeeID:  uuid.NewString(),
		PeriodStart: "2025-02-01",
		PeriodEnd:   "2025-01-01",
	})

	httpErr := apperror.ToHTTP(err)
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
}
