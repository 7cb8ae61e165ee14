package generators

import "fmt"

const branchIDPrefix = "branch"

// BranchID форматирует порядковый номер филиала: BranchID(7) == "branch00007".
func BranchID(n int) string {
	return fmt.Sprintf("%s%05d", branchIDPrefix, n)
}

// BranchIDs возвращает плотную последовательность branch00001..branchN.
// Из неё берут идентификаторы и филиалы, и планы продаж.
func BranchIDs(count int) []string {
	if count <= 0 {
		return []string{}
	}
	ids := make([]string, count)
	for i := range ids {
		ids[i] = BranchID(i + 1)
	}
	return ids
}
