package salary

import (
	salaryerrors "go-ems/internal/salary/errors"
)

// StandardMonthlyHours adalah jam kerja normal satu periode; lembur dan
// kekurangan jam dihitung relatif terhadap angka ini.
const StandardMonthlyHours = 160

// CalculationInput holds the aggregated facts and rate constants for one
// employee and one period. Money values are int64 in the smallest unit.
type CalculationInput struct {
	BaseSalary    int64
	SalesTotal    int64
	BonusPercent  int64
	WorkedHours   int64
	OvertimeRate  int64
	UndertimeRate int64
	AbsenceRate   int64
	AbsentDays    int64
}

// Breakdown is the computed pay decomposition. It is persisted verbatim
// as the record's snapshot, so field names are part of the storage
// contract.
type Breakdown struct {
	BaseSalary         int64 `json:"base_salary"`
	SalesTotal         int64 `json:"sales_total"`
	BonusPercent       int64 `json:"bonus_percent"`
	WorkedHours        int64 `json:"worked_hours"`
	OvertimeHours      int64 `json:"overtime_hours"`
	UndertimeHours     int64 `json:"undertime_hours"`
	AbsentDays         int64 `json:"absent_days"`
	Bonus              int64 `json:"bonus"`
	OvertimeBonus      int64 `json:"overtime_bonus"`
	UndertimeDeduction int64 `json:"undertime_deduction"`
	AbsenceDeduction   int64 `json:"absence_deduction"`
	Total              int64 `json:"total"`
}

// Calculate is pure and deterministic: no I/O, no clock, no rounding
// surprises (integer arithmetic throughout). Invalid inputs are rejected,
// never clamped.
func Calculate(in CalculationInput) (Breakdown, error) {
	if in.BaseSalary < 0 || in.SalesTotal < 0 || in.WorkedHours < 0 ||
		in.OvertimeRate < 0 || in.UndertimeRate < 0 || in.AbsenceRate < 0 ||
		in.AbsentDays < 0 {
		return Breakdown{}, salaryerrors.ErrNegativeInput
	}
	if in.BonusPercent < 0 || in.BonusPercent > 100 {
		return Breakdown{}, salaryerrors.ErrInvalidBonusPercent
	}

	var overtimeHours, undertimeHours int64
	if in.WorkedHours > StandardMonthlyHours {
		overtimeHours = in.WorkedHours - StandardMonthlyHours
	} else {
		undertimeHours = StandardMonthlyHours - in.WorkedHours
	}

	bonus := in.SalesTotal * in.BonusPercent / 100
	overtimeBonus := overtimeHours * in.OvertimeRate
	undertimeDeduction := undertimeHours * in.UndertimeRate
	absenceDeduction := in.AbsentDays * in.AbsenceRate

	total := in.BaseSalary + bonus + overtimeBonus - undertimeDeduction - absenceDeduction
	if total < 0 {
		return Breakdown{}, salaryerrors.ErrNegativeTotal
	}

	return Breakdown{
		BaseSalary:         in.BaseSalary,
		SalesTotal:         in.SalesTotal,
		BonusPercent:       in.BonusPercent,
		WorkedHours:        in.WorkedHours,
		OvertimeHours:      overtimeHours,
		UndertimeHours:     undertimeHours,
		AbsentDays:         in.AbsentDays,
		Bonus:              bonus,
		OvertimeBonus:      overtimeBonus,
		UndertimeDeduction: undertimeDeduction,
		AbsenceDeduction:   absenceDeduction,
		Total:              total,
	}, nil
}
