package keyframe

import (
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Series is the ordered list of values of one channel, one per keyframe.
type Series []float64

// ParseSeries reads a raw "frame value frame value ..." string and keeps the
// values. Frame markers sit at even positions and are dropped.
func ParseSeries(raw string) (Series, error) {
	tokens := strings.Fields(raw)
	series := make(Series, 0, len(tokens)/2)
	for i := 1; i < len(tokens); i += 2 {
		v, err := strconv.ParseFloat(tokens[i], 64)
		if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
			return nil, errors.Errorf("token %d %q is not a number", i, tokens[i])
		}
		series = append(series, v)
	}
	return series, nil
}

func sameLength(a, b, c Series) bool {
	return len(a) == len(b) && len(b) == len(c)
}
