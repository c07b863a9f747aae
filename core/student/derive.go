package student

import (
	"math"
	"sort"
)

// Average returns the arithmetic mean of the subject marks, rounded to one
// decimal place (half away from zero).
func Average(marks Marks) float64 {
	if len(marks) == 0 {
		return 0
	}
	var sum int
	for _, subj := range Subjects {
		sum += marks[subj]
	}
	avg := float64(sum) / float64(len(Subjects))
	return math.Round(avg*10) / 10
}

// GradeFor maps an average to its letter grade. Band lower bounds are
// inclusive.
func GradeFor(avg float64) Grade {
	switch {
	case avg >= 90:
		return GradeAPlus
	case avg >= 75:
		return GradeA
	case avg >= 60:
		return GradeB
	case avg >= 50:
		return GradeC
	default:
		return GradeFail
	}
}

// Classify maps a mark or an average onto the 3-band performance scale.
func Classify(value float64) Performance {
	switch {
	case value >= 75:
		return PerformanceExcellent
	case value >= 50:
		return PerformanceAverage
	default:
		return PerformanceNeedsWork
	}
}

// Rank annotates the full roster with averages, grades and dense competition
// ranks: equal averages share a rank and the next distinct average gets
// rank = 1 + count of strictly higher averages ("1,2,2,4").
// Ties are ordered by id ascending so the output is deterministic.
func Rank(roster []Student) []RankedStudent {
	ranked := make([]RankedStudent, 0, len(roster))
	for _, st := range roster {
		avg := Average(st.Marks)
		ranked = append(ranked, RankedStudent{
			Student: st.Clone(),
			Average: avg,
			Grade:   GradeFor(avg),
		})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Average != ranked[j].Average {
			return ranked[i].Average > ranked[j].Average
		}
		return ranked[i].ID < ranked[j].ID
	})

	for i := range ranked {
		if i > 0 && ranked[i].Average == ranked[i-1].Average {
			ranked[i].Rank = ranked[i-1].Rank
		} else {
			ranked[i].Rank = i + 1
		}
	}
	return ranked
}

// ComputeInsight derives the insight-panel summary for one student.
// Subjects scoring in [50, 75) are neither a strength nor a weakness.
func ComputeInsight(st Student) Insight {
	ins := Insight{
		Strengths:  make([]string, 0, len(Subjects)),
		Weaknesses: make([]string, 0, len(Subjects)),
		Average:    Average(st.Marks),
	}
	ins.Status = Classify(ins.Average)

	for _, subj := range Subjects {
		mark := st.Marks[subj]
		switch {
		case mark >= 75:
			ins.Strengths = append(ins.Strengths, subj.Label())
		case mark < 50:
			ins.Weaknesses = append(ins.Weaknesses, subj.Label())
		}
	}
	return ins
}
