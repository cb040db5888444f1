package sales

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"go-ems/internal/shared/apperror"

	"github.com/google/uuid"
)

var (
	errInvalidDate   = apperror.New(apperror.CodeInvalidInput, "invalid date format, expected YYYY-MM-DD", http.StatusBadRequest)
	errInvalidAmount = apperror.New(apperror.CodeInvalidInput, "sale amount must be positive", http.StatusBadRequest)
)

//go:generate mockgen -source=sales_service.go -destination=mock/sales_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, companyID string, req CreateSaleRequest) (SaleResponse, error)
	GetAll(ctx context.Context, companyID, actorID string, canReadAll bool) ([]SaleResponse, error)
	Total(ctx context.Context, companyID string, req TotalQueryRequest) (TotalResponse, error)
}

type service struct {
	db   *sql.DB
	repo Repository
}

func NewService(db *sql.DB, repo Repository) Service {
	return &service{db: db, repo: repo}
}

func (s *service) Create(ctx context.Context, companyID string, req CreateSaleRequest) (SaleResponse, error) {
	if req.Amount <= 0 {
		return SaleResponse{}, errInvalidAmount
	}
	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return SaleResponse{}, apperror.InvalidField("company_id")
	}
	employeeID, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		return SaleResponse{}, apperror.InvalidField("employee_id")
	}
	occurredAt, err := time.Parse("2006-01-02", req.OccurredAt)
	if err != nil {
		return SaleResponse{}, errInvalidDate
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return SaleResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	sale := &Sale{
		ID:         uuid.New(),
		CompanyID:  companyUUID,
		EmployeeID: employeeID,
		Amount:     req.Amount,
		OccurredAt: occurredAt,
		Notes:      req.Notes,
	}

	if err := qtx.Create(ctx, sale); err != nil {
		return SaleResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return SaleResponse{}, err
	}
	return mapToResponse(*sale), nil
}

func (s *service) GetAll(ctx context.Context, companyID, actorID string, canReadAll bool) ([]SaleResponse, error) {
	var (
		rows []Sale
		err  error
	)
	if canReadAll {
		rows, err = s.repo.FindAllByCompany(ctx, companyID)
	} else {
		rows, err = s.repo.FindAllByCompanyAndEmployee(ctx, companyID, actorID)
	}
	if err != nil {
		return nil, err
	}
	res := make([]SaleResponse, len(rows))
	for i, r := range rows {
		res[i] = mapToResponse(r)
	}
	return res, nil
}

func (s *service) Total(ctx context.Context, companyID string, req TotalQueryRequest) (TotalResponse, error) {
	periodStart, err := time.Parse("2006-01-02", req.PeriodStart)
	if err != nil {
		return TotalResponse{}, errInvalidDate
	}
	periodEnd, err := time.Parse("2006-01-02", req.PeriodEnd)
	if err != nil {
		return TotalResponse{}, errInvalidDate
	}
	if periodStart.After(periodEnd) {
		return TotalResponse{}, apperror.New(apperror.CodeInvalidInput, "period_start must be before or equal period_end", http.StatusBadRequest)
	}

	total, err := s.repo.SumForPeriod(ctx, companyID, req.EmployeeID, periodStart, periodEnd)
	if err != nil {
		return TotalResponse{}, err
	}

	return TotalResponse{
		EmployeeID:  req.EmployeeID,
		PeriodStart: req.PeriodStart,
		PeriodEnd:   req.PeriodEnd,
		Total:       total,
	}, nil
}

func mapToResponse(sale Sale) SaleResponse {
	return SaleResponse{
		ID:         sale.ID.String(),
		CompanyID:  sale.CompanyID.String(),
		EmployeeID: sale.EmployeeID.String(),
		Amount:     sale.Amount,
		OccurredAt: sale.OccurredAt.Format("2006-01-02"),
		Notes:      sale.Notes,
	}
}
