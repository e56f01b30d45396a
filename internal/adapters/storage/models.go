package storage

import "time"

// TranscriptModel is the GORM model for the transcripts table
type TranscriptModel struct {
	CompletedAt time.Time `gorm:"not null;index:idx_completed_at"`
	CreatedAt   time.Time
	ID          string    `gorm:"primaryKey"`
	Keywords    string    `gorm:"not null;default:''"` // comma-separated
	Position    string    `gorm:"not null"`
	StartedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time
}

// TableName specifies the table name for GORM
func (TranscriptModel) TableName() string { return "transcripts" }

// RoundModel is the GORM model for interview rounds, one row per
// question/answer/evaluation cycle, ordered by Seq within a transcript
type RoundModel struct {
	Answer       string    `gorm:"not null"`
	CreatedAt    time.Time
	Feedback     string    `gorm:"not null;default:''"`
	FollowUp     *string
	Question     string    `gorm:"not null"`
	Rating       string    `gorm:"not null"`
	Seq          int       `gorm:"primaryKey;autoIncrement:false"`
	TranscriptID string    `gorm:"primaryKey;index:idx_round_transcript"`
	UpdatedAt    time.Time
}

// TableName specifies the table name for GORM
func (RoundModel) TableName() string { return "rounds" }
