package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/abitur-api/internal/models"
)

func TestGradeForPointsBoundaries(t *testing.T) {
	cases := []struct {
		points int
		grade  float64
	}{
		{300, 3.9},
		{318, 3.9},
		{319, 3.8},
		{480, 3.0},
		{481, 2.9},
		{570, 2.5},
		{580, 2.4},
		{588, 2.4},
		{660, 2.0},
		{822, 1.1},
		{823, 1.0},
		{900, 1.0},
		{950, 1.0},
	}
	for _, tc := range cases {
		got := GradeForPoints(tc.points)
		require.Equal(t, models.GradeStatusGraded, got.Status, "points %d", tc.points)
		assert.Equal(t, tc.grade, *got.Value, "points %d", tc.points)
	}
}

func TestGradeForPointsFailed(t *testing.T) {
	assert.Equal(t, models.Failed(), GradeForPoints(299))
	assert.Equal(t, models.Failed(), GradeForPoints(0))
}

func TestGradeBandsAreContiguous(t *testing.T) {
	require.Equal(t, 318, gradeBands[0].maxPoints)
	require.Equal(t, 3.9, gradeBands[0].grade)
	for i := 1; i < len(gradeBands); i++ {
		prev, band := gradeBands[i-1], gradeBands[i]
		assert.Equal(t, 18, band.maxPoints-prev.maxPoints, "band ending %d", band.maxPoints)
		assert.InDelta(t, 0.1, prev.grade-band.grade, 1e-9, "band ending %d", band.maxPoints)
	}
	assert.Equal(t, 1.1, gradeBands[len(gradeBands)-1].grade)
}
