package domain

import "time"

// Transcript is the archival record of a completed interview
type Transcript struct {
	CompletedAt time.Time
	ID          string
	Keywords    []string
	Position    string
	Rounds      []Round
	StartedAt   time.Time
}

// Positions is the catalogue of target roles offered during setup
var Positions = []string{
	"Frontend Developer",
	"Backend Developer",
	"Full Stack Developer",
	"DevOps Engineer",
	"Data Scientist",
	"UX/UI Designer",
}
