// Package judging implements the per-criterion score card a judge fills in
// before a review is recorded.
package judging

import (
	"fmt"
	"strconv"
)

// Criteria are the fixed judging dimensions. Every criterion scores in
// [0, max] where max comes from configuration, not from this package.
var Criteria = []string{
	"Innovation & Creativity",
	"Impact",
	"Technical Implementation",
	"Design & User Experience",
	"Functionality & Working Demo",
	"Presentation & Pitch",
	"Scalability",
}

// IsCriterion reports whether name is one of the fixed criteria.
func IsCriterion(name string) bool {
	for _, c := range Criteria {
		if c == name {
			return true
		}
	}
	return false
}

// ScoreCard accumulates bounded integer scores per criterion. Criteria never
// touched contribute zero to the total, not a penalty.
type ScoreCard struct {
	max    int
	scores map[string]int
}

func NewScoreCard(max int) *ScoreCard {
	return &ScoreCard{
		max:    max,
		scores: make(map[string]int),
	}
}

// Max returns the per-criterion upper bound.
func (c *ScoreCard) Max() int {
	return c.max
}

// Set records the raw input for a criterion. An empty value clears the
// criterion. Non-numeric or out-of-range input is rejected and, like the
// empty value, drops any previously stored score for that criterion.
func (c *ScoreCard) Set(criterion, raw string) error {
	if !IsCriterion(criterion) {
		return fmt.Errorf("unknown criterion %q", criterion)
	}
	if raw == "" {
		delete(c.scores, criterion)
		return nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		delete(c.scores, criterion)
		return fmt.Errorf("criterion %q: not a number: %q", criterion, raw)
	}
	if v < 0 || v > c.max {
		delete(c.scores, criterion)
		return fmt.Errorf("criterion %q: score %d out of range 0..%d", criterion, v, c.max)
	}
	c.scores[criterion] = v
	return nil
}

// Score returns the stored value for a criterion and whether it is set.
func (c *ScoreCard) Score(criterion string) (int, bool) {
	v, ok := c.scores[criterion]
	return v, ok
}

// Total is the sum of all currently set criterion scores.
func (c *ScoreCard) Total() int {
	total := 0
	for _, v := range c.scores {
		total += v
	}
	return total
}
