package entities

// Branch - авиакомпания (филиал), строка branch.csv.
type Branch struct {
	BranchID       string `json:"branch_id" validate:"required,branch_id"`
	City           string `json:"city" validate:"required,city"`
	EmployeesCount int    `json:"employees_count" validate:"min=3,max=100"`
}
