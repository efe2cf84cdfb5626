package predictive

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/kineticlab/posterior/common"
	"github.com/kineticlab/posterior/model"
)

// Predictive-sample columns follow the micro-format
//
//	identifier '[' integer ']'
//
// where the integer is a 1-based condition index. parseCondition validates
// the whole name against that grammar and returns the 0-based experimental
// condition; anything else fails, there is no lenient fallback.
func parseCondition(column, base string) (int, error) {
	rest, ok := strings.CutPrefix(column, base+"[")
	if !ok || !strings.HasSuffix(rest, "]") {
		return 0, fmt.Errorf("column %q does not match %s[index]: %w", column, base, common.ErrorInvalidInput)
	}
	index, err := strconv.Atoi(strings.TrimSuffix(rest, "]"))
	if err != nil {
		return 0, fmt.Errorf("column %q does not match %s[index]: %w", column, base, common.ErrorInvalidInput)
	}
	return index - 1, nil
}

// selectColumns returns the table columns belonging to the base predictive
// variable, in table order.
func selectColumns(table *model.SampleTable, base string) []string {
	res := []string{}
	for _, column := range table.Columns() {
		if strings.Contains(column, base+"[") {
			res = append(res, column)
		}
	}
	return res
}
