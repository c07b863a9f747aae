package student

import (
	"strconv"
	"strings"
)

// BuildCSV renders the full ranked roster (never the filtered view) in rank
// order. Header: Rank,Roll No,Name,<subject labels>,Average,Grade.
// Fields are plain comma-joined: embedded commas in names are NOT escaped,
// a known limitation of the export format.
func BuildCSV(ranked []RankedStudent) string {
	var b strings.Builder

	header := make([]string, 0, 3+len(Subjects)+2)
	header = append(header, "Rank", "Roll No", "Name")
	for _, subj := range Subjects {
		header = append(header, subj.Label())
	}
	header = append(header, "Average", "Grade")
	b.WriteString(strings.Join(header, ","))
	b.WriteByte('\n')

	for _, rs := range ranked {
		row := make([]string, 0, len(header))
		row = append(row, strconv.Itoa(rs.Rank), rs.RollNo, rs.Name)
		for _, subj := range Subjects {
			row = append(row, strconv.Itoa(rs.Marks[subj]))
		}
		row = append(row, strconv.FormatFloat(rs.Average, 'f', 1, 64), string(rs.Grade))
		b.WriteString(strings.Join(row, ","))
		b.WriteByte('\n')
	}
	return b.String()
}

// ExportCSV recomputes the ranking and renders it as CSV.
func (svc *Service) ExportCSV() (string, error) {
	ranked, err := svc.Ranked()
	if err != nil {
		return "", err
	}
	return BuildCSV(ranked), nil
}
