package service

import "github.com/noah-isme/abitur-api/internal/models"

const (
	// PassingPoints is the lowest point total that still passes.
	PassingPoints = 300
	// MaxPoints is the highest reachable point total.
	MaxPoints = 900
)

type gradeBand struct {
	maxPoints int
	grade     float64
}

// gradeBands maps the upper bound (inclusive) of each 18 point band to its grade. Totals above
// the last band grade 1.0.
var gradeBands = []gradeBand{
	{318, 3.9}, {336, 3.8}, {354, 3.7}, {372, 3.6}, {390, 3.5},
	{408, 3.4}, {426, 3.3}, {444, 3.2}, {462, 3.1}, {480, 3.0},
	{498, 2.9}, {516, 2.8}, {534, 2.7}, {552, 2.6}, {570, 2.5},
	{588, 2.4}, {606, 2.3}, {624, 2.2}, {642, 2.1}, {660, 2.0},
	{678, 1.9}, {696, 1.8}, {714, 1.7}, {732, 1.6}, {750, 1.5},
	{768, 1.4}, {786, 1.3}, {804, 1.2}, {822, 1.1},
}

// GradeForPoints maps a weighted point total to the final grade.
func GradeForPoints(totalPoints int) models.AverageGrade {
	if totalPoints < PassingPoints {
		return models.Failed()
	}
	for _, band := range gradeBands {
		if totalPoints <= band.maxPoints {
			return models.Graded(band.grade)
		}
	}
	return models.Graded(1.0)
}
