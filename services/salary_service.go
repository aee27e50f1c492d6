package services

// CalcNetSalary tính lương thực nhận: cơ bản + phụ cấp nhà ở +
// trợ cấp - khấu trừ. Không validate khoảng giá trị, admin nhập gì
// tính nấy.
func CalcNetSalary(basicSalary, hra, allowances, deductions float64) float64 {
	return basicSalary + hra + allowances - deductions
}
