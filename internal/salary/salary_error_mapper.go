package salary

import (
	"database/sql"
	"errors"
	"strings"

	salaryerrors "go-ems/internal/salary/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// uq_salary_active_period adalah partial unique index: satu record aktif
// per karyawan per periode. Pelanggaran berarti dua penulis balapan,
// dipetakan ke 409.
const activePeriodConstraint = "uq_salary_active_period"

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) || errors.Is(err, sql.ErrNoRows) {
		return salaryerrors.ErrSalaryNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" && pgErr.ConstraintName == activePeriodConstraint {
			return salaryerrors.ErrActivePeriodOverlap
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, activePeriodConstraint) {
		return salaryerrors.ErrActivePeriodOverlap
	}

	return err
}
