package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLerp(t *testing.T) {
	tests := []struct {
		a, b, t, want float64
	}{
		{0, 10, 0, 0},
		{0, 10, 1, 10},
		{0, 10, 0.25, 2.5},
		{4, -4, 0.5, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Lerp(tt.a, tt.b, tt.t))
	}
}
