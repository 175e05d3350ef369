package engine

import (
	"fmt"

	"github.com/eisla/eisla/internal/model"
)

// AssignRefs gives every component a unique reference designator. Each
// prefix family numbers from 1 in input order: U1, U2, C1, J1. The input
// slice is not modified.
func AssignRefs(comps []model.Component) []model.Component {
	counters := make(map[string]int)
	out := make([]model.Component, len(comps))

	for i, c := range comps {
		prefix := c.RefPrefix
		if prefix == "" {
			prefix = "U"
		}
		counters[prefix]++
		c.Ref = fmt.Sprintf("%s%d", prefix, counters[prefix])
		out[i] = c
	}
	return out
}
