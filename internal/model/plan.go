package model

// PlanRecord is a Student_Plan row with its derived curriculum fields.
// SubUnitName, UnitName and ContentLink are recomputed on every read by
// joining against Curriculum_Library; a missing topic leaves them empty.
type PlanRecord struct {
	PlanID        string `json:"planId"`
	StudentID     string `json:"studentId"`
	TopicID       string `json:"topicId"`
	Status        string `json:"status"`
	CompletedBy   string `json:"completedBy"`
	DateCompleted string `json:"dateCompleted"`
	SubUnitName   string `json:"subUnitName"`
	UnitName      string `json:"unitName"`
	ContentLink   string `json:"contentLink"`
}

// Completed reports whether the row counts as done. Anything other than the
// literal "Completed" is pending, including typos and blanks.
func (p PlanRecord) Completed() bool {
	return p.Status == StatusCompleted
}

const StatusCompleted = "Completed"

// PlanSummary aggregates a student's plan rows.
type PlanSummary struct {
	Completed int `json:"completed"`
	Pending   int `json:"pending"`
}

// CurriculumTopic is a row of the Curriculum_Library worksheet.
type CurriculumTopic struct {
	TopicID     string `json:"topicId"`
	UnitName    string `json:"unitName"`
	SubUnitName string `json:"subUnitName"`
	TextbookRef string `json:"textbookRef"`
}
