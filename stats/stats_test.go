package stats

import (
	"testing"

	"github.com/matryer/is"
)

func TestRunningStat(t *testing.T) {
	is := is.New(t)
	type tc struct {
		plies []int
		mean  float64
		stdev float64
	}
	cases := []tc{
		{[]int{40, 52, 61, 47}, 50, 8.831760866},
		{[]int{12, 20, 31, 5, 17}, 17, 9.6695398},
		{[]int{7}, 7, 0},
		{[]int{}, 0, 0},
		{[]int{3, 3, 3}, 3, 0},
	}
	for _, c := range cases {
		s := &Statistic{}
		for _, plies := range c.plies {
			s.Push(float64(plies))
		}
		is.True(FuzzyEqual(s.Mean(), c.mean))
		is.True(FuzzyEqual(s.Stdev(), c.stdev))
	}
}

func TestStatExtremes(t *testing.T) {
	is := is.New(t)
	s := &Statistic{}
	for _, v := range []int{40, 52, 61, 47} {
		s.Push(float64(v))
	}
	is.Equal(s.Iterations(), 4)
	is.True(FuzzyEqual(s.Last(), 47))
	is.True(FuzzyEqual(s.Min(), 40))
	is.True(FuzzyEqual(s.Max(), 61))
	is.True(FuzzyEqual(s.StandardError(), 4.415880433))
}
