package entities

type SalesPlan struct {
	BranchID    string `json:"branch_id" validate:"required,branch_id"`
	MonthlyPlan int    `json:"monthly_plan" validate:"min=8000,max=300000"`
}
