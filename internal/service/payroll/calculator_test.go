package payroll_test

import (
	"testing"

	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/payroll"
	payrollservice "github.com/dayflow-hr/dayflow-backend-go/internal/service/payroll"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestComputeStandardBreakdown(t *testing.T) {
	calc := payrollservice.NewCalculator(payroll.DefaultPolicy())

	got := calc.Compute(dec("50000"), decimal.Zero, payroll.ComputeInput{})

	assert.True(t, got.Earnings.Basic.Equal(dec("50000")))
	assert.True(t, got.Earnings.HRA.Equal(dec("20000")), "hra = %s", got.Earnings.HRA)
	assert.True(t, got.Earnings.Conveyance.Equal(dec("1600")))
	assert.True(t, got.Earnings.Medical.Equal(dec("1250")))
	assert.True(t, got.GrossEarnings.Equal(dec("72850")), "gross = %s", got.GrossEarnings)

	assert.True(t, got.Deductions.PFEmployee.Equal(dec("6000")), "pf = %s", got.Deductions.PFEmployee)
	assert.True(t, got.Deductions.PFEmployer.Equal(dec("6000")))
	assert.True(t, got.Deductions.IncomeTax.Equal(dec("5000")), "tax = %s", got.Deductions.IncomeTax)
	assert.True(t, got.TotalDeductions.Equal(dec("11000")), "deductions = %s", got.TotalDeductions)
	assert.True(t, got.NetPay.Equal(dec("61850")), "net = %s", got.NetPay)
}

func TestComputeIsDeterministic(t *testing.T) {
	calc := payrollservice.NewCalculator(payroll.DefaultPolicy())
	input := payroll.ComputeInput{
		Bonus:         dec("2500"),
		Insurance:     dec("800"),
		LoanRepayment: dec("1200"),
	}

	first := calc.Compute(dec("83500"), dec("6.25"), input)
	second := calc.Compute(dec("83500"), dec("6.25"), input)

	assert.True(t, first.GrossEarnings.Equal(second.GrossEarnings))
	assert.True(t, first.TotalDeductions.Equal(second.TotalDeductions))
	assert.True(t, first.NetPay.Equal(second.NetPay))
}

func TestOvertimePay(t *testing.T) {
	calc := payrollservice.NewCalculator(payroll.DefaultPolicy())

	tests := []struct {
		name  string
		basic string
		hours string
		want  string
	}{
		// 50000 / (30*8) = 208.33/hr, times 1.5, times hours
		{"three and a half hours", "50000", "3.5", "1093.75"},
		{"one hour", "48000", "1", "300"},
		{"zero hours", "50000", "0", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := calc.OvertimePay(dec(tt.basic), dec(tt.hours))
			assert.True(t, got.Equal(dec(tt.want)), "got %s want %s", got, tt.want)
		})
	}
}

func TestComputeOvertimeFlowsIntoGross(t *testing.T) {
	calc := payrollservice.NewCalculator(payroll.DefaultPolicy())

	without := calc.Compute(dec("50000"), decimal.Zero, payroll.ComputeInput{})
	with := calc.Compute(dec("50000"), dec("3.5"), payroll.ComputeInput{})

	diff := with.GrossEarnings.Sub(without.GrossEarnings)
	assert.True(t, diff.Equal(dec("1093.75")), "diff = %s", diff)
	assert.True(t, with.Earnings.OvertimeAmount.Equal(dec("1093.75")))
}

func TestComputeAllowanceOverrides(t *testing.T) {
	calc := payrollservice.NewCalculator(payroll.DefaultPolicy())

	hra := dec("15000")
	conveyance := dec("0")
	got := calc.Compute(dec("50000"), decimal.Zero, payroll.ComputeInput{
		HRA:        &hra,
		Conveyance: &conveyance,
	})

	assert.True(t, got.Earnings.HRA.Equal(dec("15000")))
	assert.True(t, got.Earnings.Conveyance.IsZero())
	assert.True(t, got.Earnings.Medical.Equal(dec("1250")))
	// 50000 + 15000 + 0 + 1250
	assert.True(t, got.GrossEarnings.Equal(dec("66250")), "gross = %s", got.GrossEarnings)
}

func TestComputeNetPayCanGoNegative(t *testing.T) {
	calc := payrollservice.NewCalculator(payroll.DefaultPolicy())

	got := calc.Compute(dec("10000"), decimal.Zero, payroll.ComputeInput{
		LoanRepayment: dec("50000"),
	})

	assert.True(t, got.NetPay.IsNegative(), "net = %s", got.NetPay)
}

func TestComputeEmployerPFExcludedFromTotal(t *testing.T) {
	calc := payrollservice.NewCalculator(payroll.DefaultPolicy())

	got := calc.Compute(dec("50000"), decimal.Zero, payroll.ComputeInput{})

	withoutEmployerPF := got.Deductions.IncomeTax.
		Add(got.Deductions.ProfessionalTax).
		Add(got.Deductions.PFEmployee).
		Add(got.Deductions.Insurance).
		Add(got.Deductions.LoanRepayment).
		Add(got.Deductions.Other)
	assert.True(t, got.TotalDeductions.Equal(withoutEmployerPF))
}
