package model

// Student is a row of the Students worksheet.
type Student struct {
	ID   string `json:"studentId"`
	Name string `json:"studentName"`
}
