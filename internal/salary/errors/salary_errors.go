package salaryerrors

import (
	"net/http"

	"go-ems/internal/shared/apperror"
)

var (
	ErrInvalidCompanyID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid company id",
		http.StatusBadRequest,
	)
	ErrInvalidActorID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid actor id",
		http.StatusBadRequest,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid employee id",
		http.StatusBadRequest,
	)
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidDateRange = apperror.New(
		apperror.CodeInvalidInput,
		"period_start must be before or equal period_end",
		http.StatusBadRequest,
	)
	ErrEmployeeNotInCompany = apperror.New(
		apperror.CodeInvalidInput,
		"employee does not belong to this company",
		http.StatusBadRequest,
	)
	ErrNegativeInput = apperror.New(
		apperror.CodeInvalidInput,
		"salary calculation inputs cannot be negative",
		http.StatusBadRequest,
	)
	ErrInvalidBonusPercent = apperror.New(
		apperror.CodeInvalidInput,
		"bonus_percent must be between 0 and 100",
		http.StatusBadRequest,
	)
	ErrNegativeTotal = apperror.New(
		apperror.CodeInvalidInput,
		"computed total salary is negative",
		http.StatusBadRequest,
	)
	ErrSalaryNotFound = apperror.New(
		apperror.CodeNotFound,
		"salary record not found",
		http.StatusNotFound,
	)
	ErrAlreadyCorrected = apperror.New(
		apperror.CodeConflict,
		"salary record is already corrected; correct its successor instead",
		http.StatusConflict,
	)
	ErrAlreadyDeleted = apperror.New(
		apperror.CodeConflict,
		"salary record is already deleted",
		http.StatusConflict,
	)
	ErrRecordDeleted = apperror.New(
		apperror.CodeConflict,
		"salary record is deleted and can no longer be corrected",
		http.StatusConflict,
	)
	ErrActivePeriodOverlap = apperror.New(
		apperror.CodeConflict,
		"an active salary record already exists for this period",
		http.StatusConflict,
	)
	ErrInvalidStatus = apperror.New(
		apperror.CodeInvalidInput,
		"invalid salary status",
		http.StatusBadRequest,
	)
)
