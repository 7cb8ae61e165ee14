// pkg/constants/constants.go
package constants

//============== ARTIFACTS ==============

// Имена файлов, которые генератор кладёт в выходную директорию.
const (
	BranchFileName    = "branch.csv"
	SalesFileName     = "sales.xlsx"
	SalesPlanFileName = "sales_plan.json"
)

// SalesSheetName - единственный лист в sales.xlsx.
const SalesSheetName = "Sheet1"

// Заголовки табличных артефактов. Порядок колонок важен.
var (
	BranchHeader = []string{"branch_id", "city", "employees_count"}
	SalesHeader  = []string{"branch_id", "sales_amount"}
)

//============== RANGES ==============

// Границы включительные. Те же значения продублированы в validate-тегах сущностей.
const (
	MinEmployees = 3
	MaxEmployees = 100

	MinSalesAmount = 10_000
	MaxSalesAmount = 500_000

	MinMonthlyPlan = 8_000
	MaxMonthlyPlan = 300_000
)

//============== DEFAULTS ==============

const (
	DefaultSeed      uint64 = 42
	DefaultCount            = 1000
	DefaultOutputDir        = "data"
)
