package model

// Tutor is a row of the Tutors worksheet. All fields arrive as raw cell text;
// IDs are compared trimmed but stored as written.
type Tutor struct {
	ID       string `json:"tutorId"`
	Password string `json:"-"`
	Name     string `json:"name"`
}

// TutorIdentity is what a successful login yields. Name falls back to the raw
// tutor ID when the sheet has no Name value.
type TutorIdentity struct {
	ID   string `json:"tutorId"`
	Name string `json:"name"`
}
