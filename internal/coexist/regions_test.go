package coexist

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFindContinuousRegions(t *testing.T) {
	tests := []struct {
		name string
		mask []bool
		want []Region
	}{
		{
			name: "run split by gap",
			mask: []bool{true, true, false, true},
			want: []Region{{Start: 0, End: 1}, {Start: 3, End: 3}},
		},
		{
			name: "all false",
			mask: []bool{false, false, false},
			want: nil,
		},
		{
			name: "all true closes at last index",
			mask: []bool{true, true, true, true, true},
			want: []Region{{Start: 0, End: 4}},
		},
		{
			name: "single true at end",
			mask: []bool{false, false, true},
			want: []Region{{Start: 2, End: 2}},
		},
		{
			name: "empty mask",
			mask: nil,
			want: nil,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := FindContinuousRegions(tc.mask)
			assert.Equal(t, tc.want, got)
		})
	}
}
