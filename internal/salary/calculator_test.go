package salary_test

import (
	"testing"

	"go-ems/internal/salary"
	salaryerrors "go-ems/internal/salary/errors"

	"github.com/stretchr/testify/assert"
)

func TestCalculate_OvertimeWithBonus(t *testing.T) {
	breakdown, err := salary.Calculate(salary.CalculationInput{
		BaseSalary:   2000,
		SalesTotal:   10000,
		BonusPercent: 5,
		WorkedHours:  180,
		OvertimeRate: 20,
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(20), breakdown.OvertimeHours)
	assert.Equal(t, int64(0), breakdown.UndertimeHours)
	assert.Equal(t, int64(500), breakdown.Bonus)
	assert.Equal(t, int64(400), breakdown.OvertimeBonus)
	assert.Equal(t, int64(2900), breakdown.Total)
}

func TestCalculate_UndertimeDeduction(t *testing.T) {
	breakdown, err := salary.Calculate(salary.CalculationInput{
		BaseSalary:    2500,
		WorkedHours:   140,
		UndertimeRate: 15,
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(0), breakdown.OvertimeHours)
	assert.Equal(t, int64(20), breakdown.UndertimeHours)
	assert.Equal(t, int64(300), breakdown.UndertimeDeduction)
	assert.Equal(t, int64(2200), breakdown.Total)
}

func TestCalculate_ExactStandardHours(t *testing.T) {
	breakdown, err := salary.Calculate(salary.CalculationInput{
		BaseSalary:    3000,
		WorkedHours:   salary.StandardMonthlyHours,
		OvertimeRate:  20,
		UndertimeRate: 15,
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(0), breakdown.OvertimeHours)
	assert.Equal(t, int64(0), breakdown.UndertimeHours)
	assert.Equal(t, int64(3000), breakdown.Total)
}

func TestCalculate_AbsenceDeduction(t *testing.T) {
	breakdown, err := salary.Calculate(salary.CalculationInput{
		BaseSalary:  2000,
		WorkedHours: salary.StandardMonthlyHours,
		AbsenceRate: 100,
		AbsentDays:  3,
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(300), breakdown.AbsenceDeduction)
	assert.Equal(t, int64(1700), breakdown.Total)
}

func TestCalculate_BonusTruncatesTowardZero(t *testing.T) {
	breakdown, err := salary.Calculate(salary.CalculationInput{
		BaseSalary:   1000,
		SalesTotal:   999,
		BonusPercent: 3,
		WorkedHours:  salary.StandardMonthlyHours,
	})

	assert.NoError(t, err)
	// 999 * 3 / 100 = 29 dalam aritmetika integer
	assert.Equal(t, int64(29), breakdown.Bonus)
}

func TestCalculate_RejectsNegativeInputs(t *testing.T) {
	cases := []struct {
		name  string
		input salary.CalculationInput
	}{
		{"negative base salary", salary.CalculationInput{BaseSalary: -1}},
		{"negative sales total", salary.CalculationInput{BaseSalary: 1000, SalesTotal: -5}},
		{"negative worked hours", salary.CalculationInput{BaseSalary: 1000, WorkedHours: -1}},
		{"negative overtime rate", salary.CalculationInput{BaseSalary: 1000, OvertimeRate: -1}},
		{"negative absent days", salary.CalculationInput{BaseSalary: 1000, AbsentDays: -1}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := salary.Calculate(tc.input)
			assert.ErrorIs(t, err, salaryerrors.ErrNegativeInput)
		})
	}
}

func TestCalculate_RejectsBonusPercentOutOfRange(t *testing.T) {
	_, err := salary.Calculate(salary.CalculationInput{BaseSalary: 1000, BonusPercent: 101})
	assert.ErrorIs(t, err, salaryerrors.ErrInvalidBonusPercent)

	_, err = salary.Calculate(salary.CalculationInput{BaseSalary: 1000, BonusPercent: -1})
	assert.ErrorIs(t, err, salaryerrors.ErrInvalidBonusPercent)
}

func TestCalculate_RejectsNegativeTotal(t *testing.T) {
	_, err := salary.Calculate(salary.CalculationInput{
		BaseSalary:    100,
		WorkedHours:   0,
		UndertimeRate: 10,
	})
	assert.ErrorIs(t, err, salaryerrors.ErrNegativeTotal)
}
