package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalcNetSalary(t *testing.T) {
	tests := []struct {
		name        string
		basicSalary float64
		hra         float64
		allowances  float64
		deductions  float64
		want        float64
	}{
		{
			name:        "lương đầy đủ",
			basicSalary: 30000,
			hra:         5000,
			allowances:  2000,
			deductions:  1500,
			want:        35500,
		},
		{
			name: "toàn bộ bằng 0",
			want: 0,
		},
		{
			name:        "khấu trừ lớn hơn thu nhập",
			basicSalary: 1000,
			deductions:  2500,
			want:        -1500,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalcNetSalary(tt.basicSalary, tt.hra, tt.allowances, tt.deductions)
			assert.Equal(t, tt.want, got)
		})
	}
}
