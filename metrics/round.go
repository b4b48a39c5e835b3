package metrics

import (
	"math"

	"github.com/shopspring/decimal"
)

// round2 rounds half away from zero to cents. Non-finite values become 0 so
// nothing downstream ever sees NaN or Inf.
func round2(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}
