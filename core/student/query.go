package student

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/edulab/markboard/core"
)

// Category narrows the roster view by average band.
type Category string

const (
	CategoryAll   Category = "all"
	CategoryTop   Category = "top"   // average >= 75
	CategoryBelow Category = "below" // average < 50
)

// SortKey selects the display ordering of the filtered view. Sorting never
// recomputes ranks; displayed rank numbers stay tied to the global ranking.
type SortKey string

const (
	SortByRank SortKey = "rank"
	SortByName SortKey = "name"
	SortByRoll SortKey = "roll"
)

// QueryFilter applies AND composition of its fields to the ranked roster.
// Search does a case-insensitive substring match on Name or RollNo.
type QueryFilter struct {
	Search   string   `json:"search" query:"search"`
	Category Category `json:"category" query:"category"`
	Sort     SortKey  `json:"sort" query:"sort"`
}

func (qf *QueryFilter) IsEmpty() bool {
	return qf.Search == "" &&
		(qf.Category == "" || qf.Category == CategoryAll) &&
		(qf.Sort == "" || qf.Sort == SortByRank)
}

func (qf *QueryFilter) Clean() {
	qf.Search = core.CleanString(qf.Search)
	qf.Category = Category(strings.ToLower(core.CleanString(string(qf.Category))))
	qf.Sort = SortKey(strings.ToLower(core.CleanString(string(qf.Sort))))
}

// ApplyFilter produces the view list: search, then category, then sort.
// Pure: the same roster and criteria always yield the same output; the input
// slice is never modified. Unknown category/sort values behave as all/rank.
func ApplyFilter(ranked []RankedStudent, qf QueryFilter) []RankedStudent {
	view := make([]RankedStudent, 0, len(ranked))

	term := strings.ToLower(qf.Search)
	for _, rs := range ranked {
		if term != "" &&
			!strings.Contains(strings.ToLower(rs.Name), term) &&
			!strings.Contains(strings.ToLower(rs.RollNo), term) {
			continue
		}
		switch qf.Category {
		case CategoryTop:
			if rs.Average < 75 {
				continue
			}
		case CategoryBelow:
			if rs.Average >= 50 {
				continue
			}
		}
		view = append(view, rs)
	}

	switch qf.Sort {
	case SortByName:
		coll := collate.New(language.English)
		sort.SliceStable(view, func(i, j int) bool {
			return coll.CompareString(view[i].Name, view[j].Name) < 0
		})
	case SortByRoll:
		coll := collate.New(language.English)
		sort.SliceStable(view, func(i, j int) bool {
			return coll.CompareString(view[i].RollNo, view[j].RollNo) < 0
		})
	}
	return view
}
