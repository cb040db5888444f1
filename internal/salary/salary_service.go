package salary

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"go-ems/internal/attendance"
	"go-ems/internal/employee"
	"go-ems/internal/events"
	"go-ems/internal/messaging/kafka"
	"go-ems/internal/notification"
	salaryerrors "go-ems/internal/salary/errors"
	"go-ems/internal/shared/counter"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// maxChainDepth membatasi penelusuran rantai koreksi; rantai sepanjang
// ini hanya mungkin kalau datanya sudah korup.
const maxChainDepth = 1000

// AttendanceSource dan SalesSource menyuplai agregat periode untuk
// Generate; repository modul terkait memenuhinya langsung.
type AttendanceSource interface {
	SummaryForPeriod(ctx context.Context, companyID, employeeID string, periodStart, periodEnd time.Time) (attendance.PeriodSummary, error)
}

type SalesSource interface {
	SumForPeriod(ctx context.Context, companyID, employeeID string, periodStart, periodEnd time.Time) (int64, error)
}

//go:generate mockgen -source=salary_service.go -destination=mock/salary_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, companyID, actorID string, req CreateSalaryRequest) (SalaryResponse, error)
	Generate(ctx context.Context, companyID, actorID string, req GenerateSalaryRequest) (SalaryResponse, error)
	GetAll(ctx context.Context, companyID, actorID string, canReadAll bool) ([]SalaryResponse, error)
	GetByID(ctx context.Context, companyID, id string) (SalaryResponse, error)
	Correct(ctx context.Context, companyID, actorID, id string, req CorrectSalaryRequest) (SalaryResponse, error)
	Delete(ctx context.Context, companyID, actorID, id string) error
	GetHistory(ctx context.Context, companyID, id string) (HistoryResponse, error)
}

type service struct {
	db         *sql.DB
	repo       Repository
	employees  employee.Repository
	attendance AttendanceSource
	sales      SalesSource
	outbox     kafka.OutboxRepository
	dispatcher notification.Dispatcher
	counters   counter.Repository
	logger     *zap.Logger
}

func NewService(db *sql.DB, repo Repository, employees employee.Repository) Service {
	return &service{
		db:        db,
		repo:      repo,
		employees: employees,
		logger:    zap.L().Named("salary_service"),
	}
}

// NewServiceWithDeps wires the full pipeline: period aggregation,
// outbox publication and notification dispatch.
func NewServiceWithDeps(
	db *sql.DB,
	repo Repository,
	employees employee.Repository,
	attendanceSrc AttendanceSource,
	salesSrc SalesSource,
	outbox kafka.OutboxRepository,
	dispatcher notification.Dispatcher,
	counters counter.Repository,
) Service {
	return &service{
		db:         db,
		repo:       repo,
		employees:  employees,
		attendance: attendanceSrc,
		sales:      salesSrc,
		outbox:     outbox,
		dispatcher: dispatcher,
		counters:   counters,
		logger:     zap.L().Named("salary_service"),
	}
}

func (s *service) Create(
	ctx context.Context,
	companyID, actorID string,
	req CreateSalaryRequest,
) (SalaryResponse, error) {
	companyUUID, employeeUUID, actorUUID, periodStart, periodEnd, err := validateIdentity(companyID, actorID, req.EmployeeID, req.PeriodStart, req.PeriodEnd)
	if err != nil {
		return SalaryResponse{}, err
	}

	belongs, err := s.employees.BelongsToCompany(ctx, companyID, req.EmployeeID)
	if err != nil {
		return SalaryResponse{}, err
	}
	if !belongs {
		return SalaryResponse{}, salaryerrors.ErrEmployeeNotInCompany
	}

	status := req.Status
	switch status {
	case "":
		status = StatusPaid
	case StatusPaid, StatusPending:
	default:
		return SalaryResponse{}, salaryerrors.ErrInvalidStatus
	}

	breakdown, err := Calculate(CalculationInput{
		BaseSalary:    req.BaseSalary,
		SalesTotal:    req.SalesTotal,
		BonusPercent:  req.BonusPercent,
		WorkedHours:   req.WorkedHours,
		OvertimeRate:  req.OvertimeRate,
		UndertimeRate: req.UndertimeRate,
		AbsenceRate:   req.AbsenceRate,
		AbsentDays:    req.AbsentDays,
	})
	if err != nil {
		return SalaryResponse{}, err
	}

	return s.insertRecord(ctx, companyUUID, employeeUUID, actorUUID, periodStart, periodEnd, status, breakdown, nil)
}

func (s *service) Generate(
	ctx context.Context,
	companyID, actorID string,
	req GenerateSalaryRequest,
) (SalaryResponse, error) {
	companyUUID, employeeUUID, actorUUID, periodStart, periodEnd, err := validateIdentity(companyID, actorID, req.EmployeeID, req.PeriodStart, req.PeriodEnd)
	if err != nil {
		return SalaryResponse{}, err
	}

	emp, err := s.employees.FindByIDAndCompany(ctx, companyID, req.EmployeeID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return SalaryResponse{}, salaryerrors.ErrEmployeeNotInCompany
		}
		return SalaryResponse{}, err
	}

	summary, err := s.attendance.SummaryForPeriod(ctx, companyID, req.EmployeeID, periodStart, periodEnd)
	if err != nil {
		return SalaryResponse{}, err
	}
	salesTotal, err := s.sales.SumForPeriod(ctx, companyID, req.EmployeeID, periodStart, periodEnd)
	if err != nil {
		return SalaryResponse{}, err
	}

	breakdown, err := Calculate(CalculationInput{
		BaseSalary:    emp.BaseSalary,
		SalesTotal:    salesTotal,
		BonusPercent:  req.BonusPercent,
		WorkedHours:   summary.WorkedMinutes / 60,
		OvertimeRate:  req.OvertimeRate,
		UndertimeRate: req.UndertimeRate,
		AbsenceRate:   req.AbsenceRate,
		AbsentDays:    summary.AbsentDays,
	})
	if err != nil {
		return SalaryResponse{}, err
	}

	return s.insertRecord(ctx, companyUUID, employeeUUID, actorUUID, periodStart, periodEnd, StatusPaid, breakdown, nil)
}

// insertRecord menulis record aktif baru dalam satu transaksi. Cek
// overlap dilakukan dulu untuk pesan error yang jelas; race tetap
// ditangkap partial unique index dan dipetakan ke 409.
func (s *service) insertRecord(
	ctx context.Context,
	companyUUID, employeeUUID, actorUUID uuid.UUID,
	periodStart, periodEnd time.Time,
	status string,
	breakdown Breakdown,
	correctionOf *uuid.UUID,
) (SalaryResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return SalaryResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	overlap, err := qtx.HasActiveOverlappingPeriod(ctx, companyUUID.String(), employeeUUID.String(), periodStart, periodEnd, nil)
	if err != nil {
		return SalaryResponse{}, err
	}
	if overlap {
		return SalaryResponse{}, salaryerrors.ErrActivePeriodOverlap
	}

	snapshot, err := json.Marshal(breakdown)
	if err != nil {
		return SalaryResponse{}, err
	}

	reference, err := s.nextReference(ctx, companyUUID.String())
	if err != nil {
		return SalaryResponse{}, err
	}

	record := &SalaryRecord{
		ID:           uuid.New(),
		CompanyID:    companyUUID,
		EmployeeID:   employeeUUID,
		PeriodStart:  periodStart,
		PeriodEnd:    periodEnd,
		Reference:    reference,
		Status:       status,
		CorrectionOf: correctionOf,
		Total:        breakdown.Total,
		Breakdown:    snapshot,
		CreatedBy:    actorUUID,
	}

	if err := qtx.Create(ctx, record); err != nil {
		return SalaryResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return SalaryResponse{}, err
	}

	return mapToResponse(*record), nil
}

func (s *service) GetAll(
	ctx context.Context,
	companyID, actorID string,
	canReadAll bool,
) ([]SalaryResponse, error) {
	var (
		records []SalaryRecord
		err     error
	)
	if canReadAll {
		records, err = s.repo.FindAllByCompany(ctx, companyID)
	} else {
		records, err = s.repo.FindAllByCompanyAndEmployee(ctx, companyID, actorID)
	}
	if err != nil {
		return nil, err
	}

	resp := make([]SalaryResponse, len(records))
	for i, record := range records {
		resp[i] = mapToResponse(record)
	}
	return resp, nil
}

func (s *service) GetByID(
	ctx context.Context,
	companyID, id string,
) (SalaryResponse, error) {
	record, err := s.repo.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return SalaryResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*record), nil
}

func (s *service) Correct(
	ctx context.Context,
	companyID, actorID, id string,
	req CorrectSalaryRequest,
) (SalaryResponse, error) {
	actorUUID, err := uuid.Parse(actorID)
	if err != nil {
		return SalaryResponse{}, salaryerrors.ErrInvalidActorID
	}
	if _, err := uuid.Parse(companyID); err != nil {
		return SalaryResponse{}, salaryerrors.ErrInvalidCompanyID
	}

	old, err := s.repo.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return SalaryResponse{}, mapRepositoryError(err)
	}
	if old.Deleted || old.Status == StatusDeleted {
		return SalaryResponse{}, salaryerrors.ErrRecordDeleted
	}
	if old.Status == StatusCorrected {
		return SalaryResponse{}, salaryerrors.ErrAlreadyCorrected
	}

	breakdown, err := Calculate(CalculationInput{
		BaseSalary:    req.BaseSalary,
		SalesTotal:    req.SalesTotal,
		BonusPercent:  req.BonusPercent,
		WorkedHours:   req.WorkedHours,
		OvertimeRate:  req.OvertimeRate,
		UndertimeRate: req.UndertimeRate,
		AbsenceRate:   req.AbsenceRate,
		AbsentDays:    req.AbsentDays,
	})
	if err != nil {
		return SalaryResponse{}, err
	}

	lineageID, err := s.lineageRoot(ctx, companyID, old)
	if err != nil {
		return SalaryResponse{}, err
	}

	newSnapshot, err := json.Marshal(breakdown)
	if err != nil {
		return SalaryResponse{}, err
	}

	oldSnapshot := recordSnapshot(old)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return SalaryResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	reference, err := s.nextReference(ctx, companyID)
	if err != nil {
		return SalaryResponse{}, err
	}

	replacement := &SalaryRecord{
		ID:           uuid.New(),
		CompanyID:    old.CompanyID,
		EmployeeID:   old.EmployeeID,
		PeriodStart:  old.PeriodStart,
		PeriodEnd:    old.PeriodEnd,
		Reference:    reference,
		Status:       StatusPaid,
		CorrectionOf: &old.ID,
		Total:        breakdown.Total,
		Breakdown:    newSnapshot,
		CreatedBy:    actorUUID,
	}

	old.Status = StatusCorrected
	if err := qtx.Update(ctx, old); err != nil {
		return SalaryResponse{}, mapRepositoryError(err)
	}
	if err := qtx.Create(ctx, replacement); err != nil {
		return SalaryResponse{}, mapRepositoryError(err)
	}

	audit := &SalaryAuditLog{
		ID:             uuid.New(),
		CompanyID:      old.CompanyID,
		SalaryRecordID: replacement.ID,
		LineageID:      lineageID,
		Action:         AuditActionCorrect,
		OldSnapshot:    oldSnapshot,
		NewSnapshot:    recordSnapshot(replacement),
		ActorID:        actorUUID,
	}
	if err := qtx.CreateAuditLog(ctx, audit); err != nil {
		return SalaryResponse{}, err
	}

	if err := s.writeCorrectedEvent(ctx, tx, old, replacement, actorID); err != nil {
		return SalaryResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return SalaryResponse{}, mapRepositoryError(err)
	}

	s.notifyCorrection(old, replacement, req.Reason)

	return mapToResponse(*replacement), nil
}

func (s *service) Delete(
	ctx context.Context,
	companyID, actorID, id string,
) error {
	actorUUID, err := uuid.Parse(actorID)
	if err != nil {
		return salaryerrors.ErrInvalidActorID
	}
	if _, err := uuid.Parse(companyID); err != nil {
		return salaryerrors.ErrInvalidCompanyID
	}

	record, err := s.repo.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return mapRepositoryError(err)
	}
	if record.Deleted || record.Status == StatusDeleted {
		return salaryerrors.ErrAlreadyDeleted
	}

	lineageID, err := s.lineageRoot(ctx, companyID, record)
	if err != nil {
		return err
	}

	oldSnapshot := recordSnapshot(record)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	// Record yang sudah dikoreksi tetap bisa dihapus; status corrected
	// dipertahankan supaya posisinya di rantai tetap terbaca.
	record.Deleted = true
	if record.Status != StatusCorrected {
		record.Status = StatusDeleted
	}
	if err := qtx.Update(ctx, record); err != nil {
		return mapRepositoryError(err)
	}

	audit := &SalaryAuditLog{
		ID:             uuid.New(),
		CompanyID:      record.CompanyID,
		SalaryRecordID: record.ID,
		LineageID:      lineageID,
		Action:         AuditActionDelete,
		OldSnapshot:    oldSnapshot,
		NewSnapshot:    recordSnapshot(record),
		ActorID:        actorUUID,
	}
	if err := qtx.CreateAuditLog(ctx, audit); err != nil {
		return err
	}

	if err := s.writeDeletedEvent(ctx, tx, record, actorID); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	s.notifyDeletion(record)

	return nil
}

func (s *service) GetHistory(
	ctx context.Context,
	companyID, id string,
) (HistoryResponse, error) {
	record, err := s.repo.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return HistoryResponse{}, mapRepositoryError(err)
	}

	// mundur ke akar rantai
	chain := []SalaryRecord{*record}
	current := record
	for depth := 0; current.CorrectionOf != nil; depth++ {
		if depth >= maxChainDepth {
			return HistoryResponse{}, fmt.Errorf("correction chain too deep for record %s", id)
		}
		prev, err := s.repo.FindByIDAndCompany(ctx, companyID, current.CorrectionOf.String())
		if err != nil {
			return HistoryResponse{}, mapRepositoryError(err)
		}
		chain = append([]SalaryRecord{*prev}, chain...)
		current = prev
	}

	// maju sampai ujung rantai
	tip := record
	for depth := 0; ; depth++ {
		if depth >= maxChainDepth {
			return HistoryResponse{}, fmt.Errorf("correction chain too deep for record %s", id)
		}
		next, err := s.repo.FindSuccessor(ctx, companyID, tip.ID.String())
		if err != nil {
			return HistoryResponse{}, err
		}
		if next == nil {
			break
		}
		chain = append(chain, *next)
		tip = next
	}

	lineageID := chain[0].ID

	entries, err := s.repo.FindAuditLogsByLineage(ctx, companyID, lineageID.String())
	if err != nil {
		return HistoryResponse{}, err
	}

	resp := HistoryResponse{
		LineageID: lineageID.String(),
		Chain:     make([]SalaryResponse, len(chain)),
		AuditLog:  make([]AuditEntryResponse, len(entries)),
	}
	for i, rec := range chain {
		resp.Chain[i] = mapToResponse(rec)
	}
	for i, entry := range entries {
		resp.AuditLog[i] = mapAuditEntry(entry)
	}
	return resp, nil
}

// nextReference mengambil nomor urut per company untuk referensi yang
// enak dibaca manusia; counter bersifat atomic di sisi database.
func (s *service) nextReference(ctx context.Context, companyID string) (string, error) {
	if s.counters == nil {
		return "", nil
	}
	seq, err := s.counters.GetNextValue(ctx, companyID, "salary_record")
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("SAL-%06d", seq), nil
}

// lineageRoot mengikuti pointer CorrectionOf sampai record akar.
func (s *service) lineageRoot(ctx context.Context, companyID string, record *SalaryRecord) (uuid.UUID, error) {
	current := record
	for depth := 0; current.CorrectionOf != nil; depth++ {
		if depth >= maxChainDepth {
			return uuid.Nil, fmt.Errorf("correction chain too deep for record %s", record.ID)
		}
		prev, err := s.repo.FindByIDAndCompany(ctx, companyID, current.CorrectionOf.String())
		if err != nil {
			return uuid.Nil, mapRepositoryError(err)
		}
		current = prev
	}
	return current.ID, nil
}

func (s *service) writeCorrectedEvent(ctx context.Context, tx *sql.Tx, old, replacement *SalaryRecord, actorID string) error {
	if s.outbox == nil {
		return nil
	}

	event := events.SalaryCorrectedEvent{
		EventID:     uuid.NewString(),
		CompanyID:   old.CompanyID.String(),
		EmployeeID:  old.EmployeeID.String(),
		OldRecordID: old.ID.String(),
		NewRecordID: replacement.ID.String(),
		PeriodStart: old.PeriodStart.Format("2006-01-02"),
		PeriodEnd:   old.PeriodEnd.Format("2006-01-02"),
		OldTotal:    old.Total,
		NewTotal:    replacement.Total,
		ActorID:     actorID,
		OccurredAt:  time.Now().UTC(),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            event.EventID,
		AggregateType: "salary_record",
		AggregateID:   replacement.ID.String(),
		EventType:     events.SalaryCorrectedEventType,
		Topic:         events.SalaryCorrectedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
}

func (s *service) writeDeletedEvent(ctx context.Context, tx *sql.Tx, record *SalaryRecord, actorID string) error {
	if s.outbox == nil {
		return nil
	}

	event := events.SalaryDeletedEvent{
		EventID:    uuid.NewString(),
		CompanyID:  record.CompanyID.String(),
		EmployeeID: record.EmployeeID.String(),
		RecordID:   record.ID.String(),
		ActorID:    actorID,
		OccurredAt: time.Now().UTC(),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            event.EventID,
		AggregateType: "salary_record",
		AggregateID:   record.ID.String(),
		EventType:     events.SalaryDeletedEventType,
		Topic:         events.SalaryDeletedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
}

// notifyCorrection berjalan setelah commit; kegagalan notifikasi tidak
// pernah membatalkan koreksi yang sudah tersimpan.
func (s *service) notifyCorrection(old, replacement *SalaryRecord, reason string) {
	if s.dispatcher == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	period := fmt.Sprintf("%s - %s", old.PeriodStart.Format("2006-01-02"), old.PeriodEnd.Format("2006-01-02"))
	meta := map[string]any{
		"old_record_id": old.ID.String(),
		"new_record_id": replacement.ID.String(),
		"old_total":     old.Total,
		"new_total":     replacement.Total,
	}
	if reason != "" {
		meta["reason"] = reason
	}

	err := s.dispatcher.Notify(ctx, notification.NotifyInput{
		CompanyID:   old.CompanyID.String(),
		EmployeeID:  old.EmployeeID.String(),
		Audience:    notification.AudienceEmployee,
		Type:        notification.TypeSalaryCorrected,
		Title:       "Salary corrected",
		Message:     fmt.Sprintf("Your salary for period %s has been corrected.", period),
		ActionURL:   fmt.Sprintf("/salaries/%s", replacement.ID),
		ActionLabel: "View salary",
		Meta:        meta,
	})
	if err != nil {
		s.logger.Warn("employee notification failed",
			zap.String("record_id", replacement.ID.String()),
			zap.Error(err),
		)
	}

	err = s.dispatcher.Notify(ctx, notification.NotifyInput{
		CompanyID:   old.CompanyID.String(),
		UserID:      replacement.CreatedBy.String(),
		Audience:    notification.AudienceAdmin,
		Type:        notification.TypeSalaryCorrected,
		Title:       "Salary correction recorded",
		Message:     fmt.Sprintf("Correction for employee %s, period %s, is recorded.", old.EmployeeID, period),
		ActionURL:   fmt.Sprintf("/salaries/%s/history", replacement.ID),
		ActionLabel: "View history",
		Meta:        meta,
	})
	if err != nil {
		s.logger.Warn("admin notification failed",
			zap.String("record_id", replacement.ID.String()),
			zap.Error(err),
		)
	}
}

func (s *service) notifyDeletion(record *SalaryRecord) {
	if s.dispatcher == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	period := fmt.Sprintf("%s - %s", record.PeriodStart.Format("2006-01-02"), record.PeriodEnd.Format("2006-01-02"))
	meta := map[string]any{
		"record_id": record.ID.String(),
		"total":     record.Total,
	}

	err := s.dispatcher.Notify(ctx, notification.NotifyInput{
		CompanyID:  record.CompanyID.String(),
		EmployeeID: record.EmployeeID.String(),
		Audience:   notification.AudienceEmployee,
		Type:       notification.TypeSalaryDeleted,
		Title:      "Salary record removed",
		Message:    fmt.Sprintf("Your salary record for period %s has been removed.", period),
		Meta:       meta,
	})
	if err != nil {
		s.logger.Warn("employee notification failed",
			zap.String("record_id", record.ID.String()),
			zap.Error(err),
		)
	}
}

func validateIdentity(
	companyID, actorID, employeeID, periodStart, periodEnd string,
) (uuid.UUID, uuid.UUID, uuid.UUID, time.Time, time.Time, error) {
	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return uuid.Nil, uuid.Nil, uuid.Nil, time.Time{}, time.Time{}, salaryerrors.ErrInvalidCompanyID
	}

	employeeUUID, err := uuid.Parse(employeeID)
	if err != nil {
		return uuid.Nil, uuid.Nil, uuid.Nil, time.Time{}, time.Time{}, salaryerrors.ErrInvalidEmployeeID
	}

	actorUUID, err := uuid.Parse(actorID)
	if err != nil {
		return uuid.Nil, uuid.Nil, uuid.Nil, time.Time{}, time.Time{}, salaryerrors.ErrInvalidActorID
	}

	start, err := parseDate(periodStart)
	if err != nil {
		return uuid.Nil, uuid.Nil, uuid.Nil, time.Time{}, time.Time{}, err
	}
	end, err := parseDate(periodEnd)
	if err != nil {
		return uuid.Nil, uuid.Nil, uuid.Nil, time.Time{}, time.Time{}, err
	}
	if start.After(end) {
		return uuid.Nil, uuid.Nil, uuid.Nil, time.Time{}, time.Time{}, salaryerrors.ErrInvalidDateRange
	}

	return companyUUID, employeeUUID, actorUUID, start, end, nil
}

func parseDate(v string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", v)
	if err != nil {
		return time.Time{}, salaryerrors.ErrInvalidDateFormat
	}
	return t, nil
}

// recordSnapshot membekukan keadaan record untuk baris audit.
func recordSnapshot(record *SalaryRecord) []byte {
	snap := map[string]any{
		"id":           record.ID.String(),
		"employee_id":  record.EmployeeID.String(),
		"period_start": record.PeriodStart.Format("2006-01-02"),
		"period_end":   record.PeriodEnd.Format("2006-01-02"),
		"status":       record.Status,
		"deleted":      record.Deleted,
		"total":        record.Total,
		"breakdown":    json.RawMessage(record.Breakdown),
	}
	if record.CorrectionOf != nil {
		snap["correction_of"] = record.CorrectionOf.String()
	}
	b, _ := json.Marshal(snap)
	return b
}

func mapToResponse(record SalaryRecord) SalaryResponse {
	resp := SalaryResponse{
		ID:          record.ID.String(),
		Reference:   record.Reference,
		CompanyID:   record.CompanyID.String(),
		EmployeeID:  record.EmployeeID.String(),
		PeriodStart: record.PeriodStart.Format("2006-01-02"),
		PeriodEnd:   record.PeriodEnd.Format("2006-01-02"),
		Status:      record.Status,
		Total:       record.Total,
		CreatedAt:   record.CreatedAt.Format(time.RFC3339),
	}
	if record.CorrectionOf != nil {
		v := record.CorrectionOf.String()
		resp.CorrectionOf = &v
	}
	var breakdown Breakdown
	if err := json.Unmarshal(record.Breakdown, &breakdown); err == nil {
		resp.Breakdown = breakdown
	}
	return resp
}

func mapAuditEntry(entry SalaryAuditLog) AuditEntryResponse {
	resp := AuditEntryResponse{
		ID:             entry.ID.String(),
		SalaryRecordID: entry.SalaryRecordID.String(),
		Action:         entry.Action,
		ActorID:        entry.ActorID.String(),
		CreatedAt:      entry.CreatedAt.Format(time.RFC3339),
	}
	if len(entry.OldSnapshot) > 0 {
		var v any
		if err := json.Unmarshal(entry.OldSnapshot, &v); err == nil {
			resp.OldSnapshot = v
		}
	}
	if len(entry.NewSnapshot) > 0 {
		var v any
		if err := json.Unmarshal(entry.NewSnapshot, &v); err == nil {
			resp.NewSnapshot = v
		}
	}
	return resp
}
