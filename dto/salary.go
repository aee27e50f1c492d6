package dto

type UpsertSalaryInput struct {
	BasicSalary float64 `json:"basicSalary"`
	Hra         float64 `json:"hra"`
	Allowances  float64 `json:"allowances"`
	Deductions  float64 `json:"deductions"`
}
