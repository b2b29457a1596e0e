package model

// ClassRecord is a Schedule row joined against Students. StudentName is
// derived: it falls back to the raw student ID when the Students worksheet has
// no matching row. Date stays in its raw textual form; grouping parses it
// separately so an unparseable date never drops the record from the flat list.
type ClassRecord struct {
	TutorID     string `json:"tutorId"`
	StudentID   string `json:"studentId"`
	StudentName string `json:"studentName"`
	Subject     string `json:"subject"`
	Date        string `json:"date"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	Memo        string `json:"memo"`
}

// GroupedClasses is the dashboard view: today's classes, the coming seven
// days (soonest first) and past classes (newest first). Records whose date
// cannot be parsed appear in none of the groups.
type GroupedClasses struct {
	Today    []ClassRecord `json:"today"`
	Upcoming []ClassRecord `json:"upcoming"`
	Past     []ClassRecord `json:"past"`
}
