package consumer

import (
	"context"
	"encoding/json"
	"time"

	"go-ems/internal/events"
	"go-ems/internal/salary"

	"github.com/google/uuid"
	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// ConsumeSalaryCorrected memutakhirkan read model salary_profiles:
// satu baris per karyawan menunjuk ke record aktif terbarunya.
func ConsumeSalaryCorrected(
	ctx context.Context,
	reader *kafkago.Reader,
	profiles salary.ProfileRepository,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.salary_corrected")
	log.Info("salary corrected consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("salary corrected consumer stopped")
				return
			}
			log.Error("fetch salary corrected message failed", zap.Error(err))
			continue
		}

		var event events.SalaryCorrectedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode salary corrected event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		profile, err := profileFromEvent(event)
		if err != nil {
			log.Error("invalid salary corrected event, skipping",
				zap.String("event_id", event.EventID),
				zap.Error(err),
			)
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		if err := profiles.Upsert(ctx, profile); err != nil {
			log.Error("upsert salary profile failed",
				zap.String("employee_id", event.EmployeeID),
				zap.String("company_id", event.CompanyID),
				zap.Error(err),
			)
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit salary corrected message failed", zap.Error(err))
			continue
		}

		log.Info("salary profile updated from correction",
			zap.String("employee_id", event.EmployeeID),
			zap.String("new_record_id", event.NewRecordID),
		)
	}
}

// ConsumeSalaryDeleted menghapus baris profil ketika record aktif
// terakhir seorang karyawan dihapus.
func ConsumeSalaryDeleted(
	ctx context.Context,
	reader *kafkago.Reader,
	profiles salary.ProfileRepository,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.salary_deleted")
	log.Info("salary deleted consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("salary deleted consumer stopped")
				return
			}
			log.Error("fetch salary deleted message failed", zap.Error(err))
			continue
		}

		var event events.SalaryDeletedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode salary deleted event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		if err := profiles.Delete(ctx, event.CompanyID, event.EmployeeID); err != nil {
			log.Error("delete salary profile failed",
				zap.String("employee_id", event.EmployeeID),
				zap.String("company_id", event.CompanyID),
				zap.Error(err),
			)
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit salary deleted message failed", zap.Error(err))
			continue
		}

		log.Info("salary profile removed after deletion",
			zap.String("employee_id", event.EmployeeID),
			zap.String("record_id", event.RecordID),
		)
	}
}

func profileFromEvent(event events.SalaryCorrectedEvent) (*salary.SalaryProfile, error) {
	employeeID, err := uuid.Parse(event.EmployeeID)
	if err != nil {
		return nil, err
	}
	companyID, err := uuid.Parse(event.CompanyID)
	if err != nil {
		return nil, err
	}
	recordID, err := uuid.Parse(event.NewRecordID)
	if err != nil {
		return nil, err
	}
	periodStart, err := time.Parse("2006-01-02", event.PeriodStart)
	if err != nil {
		return nil, err
	}
	periodEnd, err := time.Parse("2006-01-02", event.PeriodEnd)
	if err != nil {
		return nil, err
	}

	return &salary.SalaryProfile{
		EmployeeID:     employeeID,
		CompanyID:      companyID,
		LatestRecordID: recordID,
		PeriodStart:    periodStart,
		PeriodEnd:      periodEnd,
		Total:          event.NewTotal,
	}, nil
}
