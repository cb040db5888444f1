package salary_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"go-ems/internal/attendance"
	"go-ems/internal/employee"
	"go-ems/internal/events"
	"go-ems/internal/messaging/kafka"
	"go-ems/internal/notification"
	"go-ems/internal/salary"
	salaryerrors "go-ems/internal/salary/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeSalaryRepository struct {
	withTxFn                     func(tx *sql.Tx) salary.Repository
	createFn                     func(ctx context.Context, record *salary.SalaryRecord) error
	updateFn                     func(ctx context.Context, record *salary.SalaryRecord) error
	findByIDAndCompanyFn         func(ctx context.Context, companyID, id string) (*salary.SalaryRecord, error)
	findAllByCompanyFn           func(ctx context.Context, companyID string) ([]salary.SalaryRecord, error)
	findAllByCompanyAndEmployee  func(ctx context.Context, companyID, employeeID string) ([]salary.SalaryRecord, error)
	hasActiveOverlappingPeriodFn func(ctx context.Context, companyID, employeeID string, periodStart, periodEnd time.Time, excludeRecordID *string) (bool, error)
	findSuccessorFn              func(ctx context.Context, companyID, recordID string) (*salary.SalaryRecord, error)
	createAuditLogFn             func(ctx context.Context, entry *salary.SalaryAuditLog) error
	findAuditLogsByLineageFn     func(ctx context.Context, companyID, lineageID string) ([]salary.SalaryAuditLog, error)
}

func (f *fakeSalaryRepository) WithTx(tx *sql.Tx) salary.Repository {
	if f.withTxFn != nil {
		return f.withTxFn(tx)
	}
	return f
}

func (f *fakeSalaryRepository) Create(ctx context.Context, record *salary.SalaryRecord) error {
	if f.createFn != nil {
		return f.createFn(ctx, record)
	}
	return nil
}

func (f *fakeSalaryRepository) Update(ctx context.Context, record *salary.SalaryRecord) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, record)
	}
	return nil
}

func (f *fakeSalaryRepository) FindByIDAndCompany(ctx context.Context, companyID, id string) (*salary.SalaryRecord, error) {
	if f.findByIDAndCompanyFn != nil {
		return f.findByIDAndCompanyFn(ctx, companyID, id)
	}
	return nil, errors.New("not configured")
}

func (f *fakeSalaryRepository) FindAllByCompany(ctx context.Context, companyID string) ([]salary.SalaryRecord, error) {
	if f.findAllByCompanyFn != nil {
		return f.findAllByCompanyFn(ctx, companyID)
	}
	return nil, nil
}

func (f *fakeSalaryRepository) FindAllByCompanyAndEmployee(ctx context.Context, companyID, employeeID string) ([]salary.SalaryRecord, error) {
	if f.findAllByCompanyAndEmployee != nil {
		return f.findAllByCompanyAndEmployee(ctx, companyID, employeeID)
	}
	return nil, nil
}

func (f *fakeSalaryRepository) HasActiveOverlappingPeriod(ctx context.Context, companyID, employeeID string, periodStart, periodEnd time.Time, excludeRecordID *string) (bool, error) {
	if f.hasActiveOverlappingPeriodFn != nil {
		return f.hasActiveOverlappingPeriodFn(ctx, companyID, employeeID, periodStart, periodEnd, excludeRecordID)
	}
	return false, nil
}

func (f *fakeSalaryRepository) FindSuccessor(ctx context.Context, companyID, recordID string) (*salary.SalaryRecord, error) {
	if f.findSuccessorFn != nil {
		return f.findSuccessorFn(ctx, companyID, recordID)
	}
	return nil, nil
}

func (f *fakeSalaryRepository) CreateAuditLog(ctx context.Context, entry *salary.SalaryAuditLog) error {
	if f.createAuditLogFn != nil {
		return f.createAuditLogFn(ctx, entry)
	}
	return nil
}

func (f *fakeSalaryRepository) FindAuditLogsByLineage(ctx context.Context, companyID, lineageID string) ([]salary.SalaryAuditLog, error) {
	if f.findAuditLogsByLineageFn != nil {
		return f.findAuditLogsByLineageFn(ctx, companyID, lineageID)
	}
	return nil, nil
}

type fakeEmployeeRepository struct {
	findByIDAndCompanyFn func(ctx context.Context, companyID, id string) (*employee.Employee, error)
	belongsToCompanyFn   func(ctx context.Context, companyID, employeeID string) (bool, error)
	resolveUserIDFn      func(ctx context.Context, companyID, employeeID string) (string, error)
}

func (f *fakeEmployeeRepository) FindByIDAndCompany(ctx context.Context, companyID, id string) (*employee.Employee, error) {
	if f.findByIDAndCompanyFn != nil {
		return f.findByIDAndCompanyFn(ctx, companyID, id)
	}
	return nil, errors.New("not configured")
}

func (f *fakeEmployeeRepository) BelongsToCompany(ctx context.Context, companyID, employeeID string) (bool, error) {
	if f.belongsToCompanyFn != nil {
		return f.belongsToCompanyFn(ctx, companyID, employeeID)
	}
	return true, nil
}

func (f *fakeEmployeeRepository) ResolveUserID(ctx context.Context, companyID, employeeID string) (string, error) {
	if f.resolveUserIDFn != nil {
		return f.resolveUserIDFn(ctx, companyID, employeeID)
	}
	return uuid.NewString(), nil
}

type fakeOutboxRepository struct {
	events []kafka.OutboxEvent
}

func (f *fakeOutboxRepository) WithTx(tx *sql.Tx) kafka.OutboxRepository { return f }

func (f *fakeOutboxRepository) Create(ctx context.Context, event kafka.OutboxEvent) error {
	f.events = append(f.events, event)
	return nil
}

func (f *fakeOutboxRepository) ListPending(ctx context.Context, limit int) ([]kafka.OutboxEvent, error) {
	return nil, nil
}

func (f *fakeOutboxRepository) MarkSent(ctx context.Context, id string) error { return nil }

func (f *fakeOutboxRepository) MarkFailed(ctx context.Context, id string, reason string) error {
	return nil
}

type fakeDispatcher struct {
	inputs []notification.NotifyInput
	err    error
}

func (f *fakeDispatcher) Notify(ctx context.Context, in notification.NotifyInput) error {
	f.inputs = append(f.inputs, in)
	return f.err
}

type fakeAttendanceSource struct {
	summary attendance.PeriodSummary
}

func (f *fakeAttendanceSource) SummaryForPeriod(ctx context.Context, companyID, employeeID string, periodStart, periodEnd time.Time) (attendance.PeriodSummary, error) {
	return f.summary, nil
}

type fakeSalesSource struct {
	total int64
}

func (f *fakeSalesSource) SumForPeriod(ctx context.Context, companyID, employeeID string, periodStart, periodEnd time.Time) (int64, error) {
	return f.total, nil
}

type fakeCounterRepository struct {
	next int64
}

func (f *fakeCounterRepository) GetNextValue(ctx context.Context, companyID string, counterType string) (int64, error) {
	f.next++
	return f.next, nil
}

type serviceDeps struct {
	db         *sql.DB
	mock       sqlmock.Sqlmock
	repo       *fakeSalaryRepository
	employees  *fakeEmployeeRepository
	attendance *fakeAttendanceSource
	sales      *fakeSalesSource
	outbox     *fakeOutboxRepository
	dispatcher *fakeDispatcher
	counters   *fakeCounterRepository
}

func newTestService(t *testing.T) (salary.Service, *serviceDeps) {
	t.Helper()

	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	deps := &serviceDeps{
		db:         db,
		mock:       mock,
		repo:       &fakeSalaryRepository{},
		employees:  &fakeEmployeeRepository{},
		attendance: &fakeAttendanceSource{},
		sales:      &fakeSalesSource{},
		outbox:     &fakeOutboxRepository{},
		dispatcher: &fakeDispatcher{},
		counters:   &fakeCounterRepository{},
	}

	svc := salary.NewServiceWithDeps(
		db,
		deps.repo,
		deps.employees,
		deps.attendance,
		deps.sales,
		deps.outbox,
		deps.dispatcher,
		deps.counters,
	)
	return svc, deps
}

func activeRecord(companyID, employeeID uuid.UUID) *salary.SalaryRecord {
	return &salary.SalaryRecord{
		ID:          uuid.New(),
		CompanyID:   companyID,
		EmployeeID:  employeeID,
		PeriodStart: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		PeriodEnd:   time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC),
		Reference:   "SAL-000001",
		Status:      salary.StatusPaid,
		Total:       2900,
		Breakdown:   []byte(`{"base_salary":2000,"total":2900}`),
		CreatedBy:   uuid.New(),
	}
}

func TestCreate_Success(t *testing.T) {
	svc, deps := newTestService(t)

	var created *salary.SalaryRecord
	deps.repo.createFn = func(ctx context.Context, record *salary.SalaryRecord) error {
		created = record
		return nil
	}

	deps.mock.ExpectBegin()
	deps.mock.ExpectCommit()

	companyID := uuid.NewString()
	actorID := uuid.NewString()

	resp, err := svc.Create(context.Background(), companyID, actorID, salary.CreateSalaryRequest{
		EmployeeID:   uuid.NewString(),
		PeriodStart:  "2025-01-01",
		PeriodEnd:    "2025-01-31",
		BaseSalary:   2000,
		SalesTotal:   10000,
		BonusPercent: 5,
		WorkedHours:  180,
		OvertimeRate: 20,
	})

	assert.NoError(t, err)
	assert.NotNil(t, created)
	assert.Equal(t, salary.StatusPaid, created.Status)
	assert.Nil(t, created.CorrectionOf)
	assert.Equal(t, int64(2900), resp.Total)
	assert.Equal(t, "SAL-000001", resp.Reference)
	assert.NoError(t, deps.mock.ExpectationsWereMet())
}

func TestCreate_PendingStatus(t *testing.T) {
	svc, deps := newTestService(t)

	var created *salary.SalaryRecord
	deps.repo.createFn = func(ctx context.Context, record *salary.SalaryRecord) error {
		created = record
		return nil
	}

	deps.mock.ExpectBegin()
	deps.mock.ExpectCommit()

	resp, err := svc.Create(context.Background(), uuid.NewString(), uuid.NewString(), salary.CreateSalaryRequest{
		EmployeeID:  uuid.NewString(),
		Status:      salary.StatusPending,
		PeriodStart: "2025-01-01",
		PeriodEnd:   "2025-01-31",
		BaseSalary:  2000,
		WorkedHours: 160,
	})

	assert.NoError(t, err)
	assert.NotNil(t, created)
	assert.Equal(t, salary.StatusPending, created.Status)
	assert.Equal(t, salary.StatusPending, resp.Status)
	assert.NoError(t, deps.mock.ExpectationsWereMet())
}

func TestCreate_RejectsUnknownStatus(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Create(context.Background(), uuid.NewString(), uuid.NewString(), salary.CreateSalaryRequest{
		EmployeeID:  uuid.NewString(),
		Status:      "approved",
		PeriodStart: "2025-01-01",
		PeriodEnd:   "2025-01-31",
		BaseSalary:  2000,
		WorkedHours: 160,
	})

	assert.ErrorIs(t, err, salaryerrors.ErrInvalidStatus)
}

func TestCreate_ActivePeriodOverlap(t *testing.T) {
	svc, deps := newTestService(t)

	deps.repo.hasActiveOverlappingPeriodFn = func(ctx context.Context, companyID, employeeID string, periodStart, periodEnd time.Time, excludeRecordID *string) (bool, error) {
		return true, nil
	}

	deps.mock.ExpectBegin()
	deps.mock.ExpectRollback()

	_, err := svc.Create(context.Background(), uuid.NewString(), uuid.NewString(), salary.CreateSalaryRequest{
		EmployeeID:  uuid.NewString(),
		PeriodStart: "2025-01-01",
		PeriodEnd:   "2025-01-31",
		BaseSalary:  2000,
		WorkedHours: 160,
	})

	assert.ErrorIs(t, err, salaryerrors.ErrActivePeriodOverlap)
	assert.NoError(t, deps.mock.ExpectationsWereMet())
}

func TestCreate_RejectsUnknownEmployee(t *testing.T) {
	svc, deps := newTestService(t)

	deps.repo.findByIDAndCompanyFn = nil
	deps.employees.belongsToCompanyFn = func(ctx context.Context, companyID, employeeID string) (bool, error) {
		return false, nil
	}

	_, err := svc.Create(context.Background(), uuid.NewString(), uuid.NewString(), salary.CreateSalaryRequest{
		EmployeeID:  uuid.NewString(),
		PeriodStart: "2025-01-01",
		PeriodEnd:   "2025-01-31",
		BaseSalary:  2000,
		WorkedHours: 160,
	})

	assert.ErrorIs(t, err, salaryerrors.ErrEmployeeNotInCompany)
}

func TestGenerate_UsesPeriodAggregates(t *testing.T) {
	svc, deps := newTestService(t)

	companyID := uuid.New()
	employeeID := uuid.New()

	deps.employees.findByIDAndCompanyFn = func(ctx context.Context, cid, id string) (*employee.Employee, error) {
		return &employee.Employee{ID: employeeID, CompanyID: companyID, BaseSalary: 2000}, nil
	}
	deps.attendance.summary = attendance.PeriodSummary{WorkedMinutes: 180 * 60, AbsentDays: 0}
	deps.sales.total = 10000

	var created *salary.SalaryRecord
	deps.repo.createFn = func(ctx context.Context, record *salary.SalaryRecord) error {
		created = record
		return nil
	}

	deps.mock.ExpectBegin()
	deps.mock.ExpectCommit()

	resp, err := svc.Generate(context.Background(), companyID.String(), uuid.NewString(), salary.GenerateSalaryRequest{
		EmployeeID:   employeeID.String(),
		PeriodStart:  "2025-01-01",
		PeriodEnd:    "2025-01-31",
		BonusPercent: 5,
		OvertimeRate: 20,
	})

	assert.NoError(t, err)
	assert.NotNil(t, created)
	assert.Equal(t, int64(2900), resp.Total)
	assert.Equal(t, int64(20), resp.Breakdown.OvertimeHours)
	assert.NoError(t, deps.mock.ExpectationsWereMet())
}

func TestCorrect_Success(t *testing.T) {
	svc, deps := newTestService(t)

	companyID := uuid.New()
	employeeID := uuid.New()
	original := activeRecord(companyID, employeeID)

	deps.repo.findByIDAndCompanyFn = func(ctx context.Context, cid, id string) (*salary.SalaryRecord, error) {
		if id == original.ID.String() {
			clone := *original
			return &clone, nil
		}
		return nil, salaryerrors.ErrSalaryNotFound
	}

	var updated *salary.SalaryRecord
	var created *salary.SalaryRecord
	var audit *salary.SalaryAuditLog
	deps.repo.updateFn = func(ctx context.Context, record *salary.SalaryRecord) error {
		updated = record
		return nil
	}
	deps.repo.createFn = func(ctx context.Context, record *salary.SalaryRecord) error {
		created = record
		return nil
	}
	deps.repo.createAuditLogFn = func(ctx context.Context, entry *salary.SalaryAuditLog) error {
		audit = entry
		return nil
	}

	deps.mock.ExpectBegin()
	deps.mock.ExpectCommit()

	actorID := uuid.NewString()
	resp, err := svc.Correct(context.Background(), companyID.String(), actorID, original.ID.String(), salary.CorrectSalaryRequest{
		BaseSalary:  2500,
		WorkedHours: 160,
		Reason:      "wrong base salary",
	})

	assert.NoError(t, err)

	assert.NotNil(t, updated)
	assert.Equal(t, salary.StatusCorrected, updated.Status)

	assert.NotNil(t, created)
	assert.Equal(t, salary.StatusPaid, created.Status)
	if assert.NotNil(t, created.CorrectionOf) {
		assert.Equal(t, original.ID, *created.CorrectionOf)
	}
	assert.Equal(t, int64(2500), resp.Total)

	if assert.NotNil(t, audit) {
		assert.Equal(t, salary.AuditActionCorrect, audit.Action)
		assert.Equal(t, original.ID, audit.LineageID)
		assert.NotEmpty(t, audit.OldSnapshot)
		assert.NotEmpty(t, audit.NewSnapshot)
	}

	if assert.Len(t, deps.outbox.events, 1) {
		assert.Equal(t, events.SalaryCorrectedTopic, deps.outbox.events[0].Topic)
	}

	// karyawan dan admin sama-sama diberi tahu
	assert.Len(t, deps.dispatcher.inputs, 2)
	assert.Equal(t, notification.AudienceEmployee, deps.dispatcher.inputs[0].Audience)
	assert.Equal(t, notification.AudienceAdmin, deps.dispatcher.inputs[1].Audience)

	assert.NoError(t, deps.mock.ExpectationsWereMet())
}

func TestCorrect_AlreadyCorrectedConflict(t *testing.T) {
	svc, deps := newTestService(t)

	companyID := uuid.New()
	record := activeRecord(companyID, uuid.New())
	record.Status = salary.StatusCorrected

	deps.repo.findByIDAndCompanyFn = func(ctx context.Context, cid, id string) (*salary.SalaryRecord, error) {
		clone := *record
		return &clone, nil
	}

	_, err := svc.Correct(context.Background(), companyID.String(), uuid.NewString(), record.ID.String(), salary.CorrectSalaryRequest{
		BaseSalary:  2500,
		WorkedHours: 160,
	})

	assert.ErrorIs(t, err, salaryerrors.ErrAlreadyCorrected)
	assert.Empty(t, deps.outbox.events)
	assert.Empty(t, deps.dispatcher.inputs)
}

func TestCorrect_DeletedRecordConflict(t *testing.T) {
	svc, deps := newTestService(t)

	companyID := uuid.New()
	record := activeRecord(companyID, uuid.New())
	record.Deleted = true
	record.Status = salary.StatusDeleted

	deps.repo.findByIDAndCompanyFn = func(ctx context.Context, cid, id string) (*salary.SalaryRecord, error) {
		clone := *record
		return &clone, nil
	}

	_, err := svc.Correct(context.Background(), companyID.String(), uuid.NewString(), record.ID.String(), salary.CorrectSalaryRequest{
		BaseSalary:  2500,
		WorkedHours: 160,
	})

	assert.ErrorIs(t, err, salaryerrors.ErrRecordDeleted)
	assert.Empty(t, deps.dispatcher.inputs)
}

func TestCorrect_NotFound(t *testing.T) {
	svc, deps := newTestService(t)

	deps.repo.findByIDAndCompanyFn = func(ctx context.Context, cid, id string) (*salary.SalaryRecord, error) {
		return nil, sql.ErrNoRows
	}

	_, err := svc.Correct(context.Background(), uuid.NewString(), uuid.NewString(), uuid.NewString(), salary.CorrectSalaryRequest{
		BaseSalary:  2500,
		WorkedHours: 160,
	})

	assert.ErrorIs(t, err, salaryerrors.ErrSalaryNotFound)
}

func TestCorrect_NotificationFailureDoesNotFail(t *testing.T) {
	svc, deps := newTestService(t)

	companyID := uuid.New()
	original := activeRecord(companyID, uuid.New())

	deps.repo.findByIDAndCompanyFn = func(ctx context.Context, cid, id string) (*salary.SalaryRecord, error) {
		clone := *original
		return &clone, nil
	}
	deps.dispatcher.err = errors.New("relay down")

	deps.mock.ExpectBegin()
	deps.mock.ExpectCommit()

	_, err := svc.Correct(context.Background(), companyID.String(), uuid.NewString(), original.ID.String(), salary.CorrectSalaryRequest{
		BaseSalary:  2500,
		WorkedHours: 160,
	})

	assert.NoError(t, err)
	assert.NoError(t, deps.mock.ExpectationsWereMet())
}

func TestDelete_Success(t *testing.T) {
	svc, deps := newTestService(t)

	companyID := uuid.New()
	record := activeRecord(companyID, uuid.New())

	deps.repo.findByIDAndCompanyFn = func(ctx context.Context, cid, id string) (*salary.SalaryRecord, error) {
		clone := *record
		return &clone, nil
	}

	var updated *salary.SalaryRecord
	var audit *salary.SalaryAuditLog
	deps.repo.updateFn = func(ctx context.Context, rec *salary.SalaryRecord) error {
		updated = rec
		return nil
	}
	deps.repo.createAuditLogFn = func(ctx context.Context, entry *salary.SalaryAuditLog) error {
		audit = entry
		return nil
	}

	deps.mock.ExpectBegin()
	deps.mock.ExpectCommit()

	err := svc.Delete(context.Background(), companyID.String(), uuid.NewString(), record.ID.String())

	assert.NoError(t, err)
	assert.NotNil(t, updated)
	assert.True(t, updated.Deleted)
	assert.Equal(t, salary.StatusDeleted, updated.Status)

	if assert.NotNil(t, audit) {
		assert.Equal(t, salary.AuditActionDelete, audit.Action)
	}
	if assert.Len(t, deps.outbox.events, 1) {
		assert.Equal(t, events.SalaryDeletedTopic, deps.outbox.events[0].Topic)
	}
	assert.Len(t, deps.dispatcher.inputs, 1)
	assert.NoError(t, deps.mock.ExpectationsWereMet())
}

func TestDelete_AlreadyDeletedConflict(t *testing.T) {
	svc, deps := newTestService(t)

	companyID := uuid.New()
	record := activeRecord(companyID, uuid.New())
	record.Deleted = true
	record.Status = salary.StatusDeleted

	deps.repo.findByIDAndCompanyFn = func(ctx context.Context, cid, id string) (*salary.SalaryRecord, error) {
		clone := *record
		return &clone, nil
	}

	err := svc.Delete(context.Background(), companyID.String(), uuid.NewString(), record.ID.String())

	assert.ErrorIs(t, err, salaryerrors.ErrAlreadyDeleted)
	assert.Empty(t, deps.outbox.events)
}

// Record yang statusnya corrected tapi belum dihapus masih boleh
// dihapus; hanya record yang sudah deleted yang ditolak.
func TestDelete_CorrectedRecordSucceeds(t *testing.T) {
	svc, deps := newTestService(t)

	companyID := uuid.New()
	record := activeRecord(companyID, uuid.New())
	record.Status = salary.StatusCorrected

	deps.repo.findByIDAndCompanyFn = func(ctx context.Context, cid, id string) (*salary.SalaryRecord, error) {
		clone := *record
		return &clone, nil
	}

	var updated *salary.SalaryRecord
	var audit *salary.SalaryAuditLog
	deps.repo.updateFn = func(ctx context.Context, rec *salary.SalaryRecord) error {
		updated = rec
		return nil
	}
	deps.repo.createAuditLogFn = func(ctx context.Context, entry *salary.SalaryAuditLog) error {
		audit = entry
		return nil
	}

	deps.mock.ExpectBegin()
	deps.mock.ExpectCommit()

	err := svc.Delete(context.Background(), companyID.String(), uuid.NewString(), record.ID.String())

	assert.NoError(t, err)
	if assert.NotNil(t, updated) {
		assert.True(t, updated.Deleted)
		// posisi di rantai tetap terbaca
		assert.Equal(t, salary.StatusCorrected, updated.Status)
	}
	if assert.NotNil(t, audit) {
		assert.Equal(t, salary.AuditActionDelete, audit.Action)
	}
	assert.NoError(t, deps.mock.ExpectationsWereMet())
}

// Koreksi atas hasil koreksi: rantai A -> B -> C, lineage tetap akar A.
func TestCorrect_SequentialCorrections(t *testing.T) {
	svc, deps := newTestService(t)

	companyID := uuid.New()
	employeeID := uuid.New()

	rootA := activeRecord(companyID, employeeID)
	rootA.Status = salary.StatusCorrected

	recordB := activeRecord(companyID, employeeID)
	recordB.CorrectionOf = &rootA.ID

	byID := map[string]*salary.SalaryRecord{
		rootA.ID.String():   rootA,
		recordB.ID.String(): recordB,
	}
	deps.repo.findByIDAndCompanyFn = func(ctx context.Context, cid, id string) (*salary.SalaryRecord, error) {
		if rec, ok := byID[id]; ok {
			clone := *rec
			return &clone, nil
		}
		return nil, sql.ErrNoRows
	}

	var updated *salary.SalaryRecord
	var created *salary.SalaryRecord
	var audit *salary.SalaryAuditLog
	deps.repo.updateFn = func(ctx context.Context, rec *salary.SalaryRecord) error {
		updated = rec
		return nil
	}
	deps.repo.createFn = func(ctx context.Context, rec *salary.SalaryRecord) error {
		created = rec
		return nil
	}
	deps.repo.createAuditLogFn = func(ctx context.Context, entry *salary.SalaryAuditLog) error {
		audit = entry
		return nil
	}

	deps.mock.ExpectBegin()
	deps.mock.ExpectCommit()

	_, err := svc.Correct(context.Background(), companyID.String(), uuid.NewString(), recordB.ID.String(), salary.CorrectSalaryRequest{
		BaseSalary:  3000,
		WorkedHours: 160,
		Reason:      "second adjustment",
	})

	assert.NoError(t, err)

	if assert.NotNil(t, updated) {
		assert.Equal(t, recordB.ID, updated.ID)
		assert.Equal(t, salary.StatusCorrected, updated.Status)
	}
	if assert.NotNil(t, created) {
		assert.Equal(t, salary.StatusPaid, created.Status)
		if assert.NotNil(t, created.CorrectionOf) {
			assert.Equal(t, recordB.ID, *created.CorrectionOf)
		}
	}
	if assert.NotNil(t, audit) {
		assert.Equal(t, rootA.ID, audit.LineageID)
	}
	assert.NoError(t, deps.mock.ExpectationsWereMet())
}

func TestGetHistory_ChainOldestFirst(t *testing.T) {
	svc, deps := newTestService(t)

	companyID := uuid.New()
	employeeID := uuid.New()

	root := activeRecord(companyID, employeeID)
	root.Status = salary.StatusCorrected

	mid := activeRecord(companyID, employeeID)
	mid.Status = salary.StatusCorrected
	mid.CorrectionOf = &root.ID

	tip := activeRecord(companyID, employeeID)
	tip.CorrectionOf = &mid.ID

	byID := map[string]*salary.SalaryRecord{
		root.ID.String(): root,
		mid.ID.String():  mid,
		tip.ID.String():  tip,
	}
	successor := map[string]*salary.SalaryRecord{
		root.ID.String(): mid,
		mid.ID.String():  tip,
	}

	deps.repo.findByIDAndCompanyFn = func(ctx context.Context, cid, id string) (*salary.SalaryRecord, error) {
		if rec, ok := byID[id]; ok {
			clone := *rec
			return &clone, nil
		}
		return nil, sql.ErrNoRows
	}
	deps.repo.findSuccessorFn = func(ctx context.Context, cid, recordID string) (*salary.SalaryRecord, error) {
		if rec, ok := successor[recordID]; ok {
			clone := *rec
			return &clone, nil
		}
		return nil, nil
	}

	var queriedLineage string
	deps.repo.findAuditLogsByLineageFn = func(ctx context.Context, cid, lineageID string) ([]salary.SalaryAuditLog, error) {
		queriedLineage = lineageID
		return []salary.SalaryAuditLog{
			{ID: uuid.New(), Action: salary.AuditActionCorrect, LineageID: root.ID},
			{ID: uuid.New(), Action: salary.AuditActionCorrect, LineageID: root.ID},
		}, nil
	}

	// dimulai dari tengah rantai, hasil tetap akar sampai ujung
	resp, err := svc.GetHistory(context.Background(), companyID.String(), mid.ID.String())

	assert.NoError(t, err)
	assert.Equal(t, root.ID.String(), resp.LineageID)
	assert.Equal(t, root.ID.String(), queriedLineage)
	if assert.Len(t, resp.Chain, 3) {
		assert.Equal(t, root.ID.String(), resp.Chain[0].ID)
		assert.Equal(t, mid.ID.String(), resp.Chain[1].ID)
		assert.Equal(t, tip.ID.String(), resp.Chain[2].ID)
	}
	assert.Len(t, resp.AuditLog, 2)
}
