package entities

// Sale - одна продажа, строка sales.xlsx. BranchID всегда указывает на
// филиал из той же генерации.
type Sale struct {
	BranchID    string `json:"branch_id" validate:"required,branch_id"`
	SalesAmount int    `json:"sales_amount" validate:"min=10000,max=500000"`
}
