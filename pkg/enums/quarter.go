package enums

import (
	"fmt"
	"strings"
	"time"

	"github.com/bespoked-bikes/sales-backend/pkg/types"
)

// Quarter identifies one of the four fixed calendar quarters used by
// commission reporting.
type Quarter string

const (
	QuarterQ1 Quarter = "Q1"
	QuarterQ2 Quarter = "Q2"
	QuarterQ3 Quarter = "Q3"
	QuarterQ4 Quarter = "Q4"
)

// ParseQuarter normalizes and validates a quarter tag.
func ParseQuarter(value string) (Quarter, error) {
	switch Quarter(strings.ToUpper(strings.TrimSpace(value))) {
	case QuarterQ1:
		return QuarterQ1, nil
	case QuarterQ2:
		return QuarterQ2, nil
	case QuarterQ3:
		return QuarterQ3, nil
	case QuarterQ4:
		return QuarterQ4, nil
	default:
		return "", fmt.Errorf("unrecognized quarter %q", value)
	}
}

func (q Quarter) String() string {
	return string(q)
}

// Range returns the inclusive begin/end dates of the quarter within the
// given calendar year.
func (q Quarter) Range(year int) (types.Date, types.Date) {
	switch q {
	case QuarterQ1:
		return types.NewDate(year, time.January, 1), types.NewDate(year, time.March, 31)
	case QuarterQ2:
		return types.NewDate(year, time.April, 1), types.NewDate(year, time.June, 30)
	case QuarterQ3:
		return types.NewDate(year, time.July, 1), types.NewDate(year, time.September, 30)
	case QuarterQ4:
		return types.NewDate(year, time.October, 1), types.NewDate(year, time.December, 31)
	default:
		return types.Date{}, types.Date{}
	}
}
