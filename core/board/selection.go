package board

// MaxComparison is how many students the comparison chart holds.
const MaxComparison = 2

// Selection tracks the two independent selection slots: the checkbox-driven
// comparison selection (insertion-ordered, at most 2 ids) and the row-click
// focus (0 = none). The two survive independently of each other.
type Selection struct {
	Comparison []int `json:"comparison"`
	Focused    int   `json:"focused"`
}

func (s Selection) clone() Selection {
	c := s
	c.Comparison = append([]int(nil), s.Comparison...)
	return c
}

func (s Selection) comparisonContains(id int) bool {
	for _, cid := range s.Comparison {
		if cid == id {
			return true
		}
	}
	return false
}

// toggleComparison applies a checkbox change. A check that would exceed
// MaxComparison is rejected so the caller can revert the visual check.
func (s *Selection) toggleComparison(id int, checked bool) (accepted bool) {
	if !checked {
		s.removeComparison(id)
		return true
	}
	if s.comparisonContains(id) {
		return true
	}
	if len(s.Comparison) >= MaxComparison {
		return false
	}
	s.Comparison = append(s.Comparison, id)
	return true
}

func (s *Selection) removeComparison(id int) {
	for i, cid := range s.Comparison {
		if cid == id {
			s.Comparison = append(s.Comparison[:i], s.Comparison[i+1:]...)
			return
		}
	}
}

// purge drops the id from both slots after the student is deleted.
func (s *Selection) purge(id int) {
	s.removeComparison(id)
	if s.Focused == id {
		s.Focused = 0
	}
}
