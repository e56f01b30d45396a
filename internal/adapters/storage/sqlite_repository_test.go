package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"prept/internal/domain"
	"prept/logging"
)

func TestMain(m *testing.M) {
	logging.Initialize(false, "", 0)
	os.Exit(m.Run())
}

func newTestRepo(t *testing.T) *SQLiteRepository {
	t.Helper()
	repo, err := NewSQLiteRepository(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })
	return repo
}

func sampleTranscript(id string, completedAt time.Time) *domain.Transcript {
	followUp := "Read up on channels"
	return &domain.Transcript{
		ID:          id,
		Position:    "Backend Developer",
		Keywords:    []string{"Go", "SQL"},
		StartedAt:   completedAt.Add(-10 * time.Minute),
		CompletedAt: completedAt,
		Rounds: []domain.Round{
			{
				Question: "What is a goroutine?",
				Answer:   "A lightweight thread",
				Evaluation: domain.Evaluation{
					Feedback: "Solid",
					FollowUp: &followUp,
					Rating:   domain.RatingGood,
				},
			},
			{
				Question: "What is a channel?",
				Answer:   "A typed conduit",
				Evaluation: domain.Evaluation{
					Feedback: "Great",
					Rating:   domain.RatingExcellent,
				},
			},
		},
	}
}

func TestSaveAndGet_RoundTrip(t *testing.T) {
	repo := newTestRepo(t)
	completedAt := time.Now().UTC().Truncate(time.Second)
	original := sampleTranscript("t-1", completedAt)

	require.NoError(t, repo.Save(context.Background(), original))

	loaded, err := repo.Get(context.Background(), "t-1")
	require.NoError(t, err)

	assert.Equal(t, original.ID, loaded.ID)
	assert.Equal(t, original.Position, loaded.Position)
	assert.Equal(t, original.Keywords, loaded.Keywords)
	require.Len(t, loaded.Rounds, 2)
	assert.Equal(t, "What is a goroutine?", loaded.Rounds[0].Question)
	assert.Equal(t, domain.RatingGood, loaded.Rounds[0].Evaluation.Rating)
	require.NotNil(t, loaded.Rounds[0].Evaluation.FollowUp)
	assert.Equal(t, "Read up on channels", *loaded.Rounds[0].Evaluation.FollowUp)
	assert.Nil(t, loaded.Rounds[1].Evaluation.FollowUp)
}

func TestSave_DuplicateIDReturnsExists(t *testing.T) {
	repo := newTestRepo(t)
	transcript := sampleTranscript("t-1", time.Now().UTC())

	require.NoError(t, repo.Save(context.Background(), transcript))

	err := repo.Save(context.Background(), transcript)
	assert.ErrorIs(t, err, domain.ErrTranscriptExists)
}

func TestSave_EmptyKeywordsSurviveRoundTrip(t *testing.T) {
	repo := newTestRepo(t)
	transcript := sampleTranscript("t-1", time.Now().UTC())
	transcript.Keywords = []string{}

	require.NoError(t, repo.Save(context.Background(), transcript))

	loaded, err := repo.Get(context.Background(), "t-1")
	require.NoError(t, err)
	assert.Empty(t, loaded.Keywords)
}

func TestGet_NotFound(t *testing.T) {
	repo := newTestRepo(t)

	_, err := repo.Get(context.Background(), "missing")

	assert.ErrorIs(t, err, domain.ErrTranscriptNotFound)
}

func TestList_NewestFirstWithoutRounds(t *testing.T) {
	repo := newTestRepo(t)
	now := time.Now().UTC()

	require.NoError(t, repo.Save(context.Background(), sampleTranscript("t-old", now.Add(-time.Hour))))
	require.NoError(t, repo.Save(context.Background(), sampleTranscript("t-new", now)))

	transcripts, err := repo.List(context.Background())

	require.NoError(t, err)
	require.Len(t, transcripts, 2)
	assert.Equal(t, "t-new", transcripts[0].ID)
	assert.Equal(t, "t-old", transcripts[1].ID)
	assert.Empty(t, transcripts[0].Rounds)
}

func TestDelete_RemovesTranscriptAndRounds(t *testing.T) {
	repo := newTestRepo(t)
	require.NoError(t, repo.Save(context.Background(), sampleTranscript("t-1", time.Now().UTC())))

	require.NoError(t, repo.Delete(context.Background(), "t-1"))

	_, err := repo.Get(context.Background(), "t-1")
	assert.ErrorIs(t, err, domain.ErrTranscriptNotFound)

	var count int64
	repo.db.Model(&RoundModel{}).Where("transcript_id = ?", "t-1").Count(&count)
	assert.Zero(t, count)
}

func TestDelete_NotFound(t *testing.T) {
	repo := newTestRepo(t)

	err := repo.Delete(context.Background(), "missing")

	assert.ErrorIs(t, err, domain.ErrTranscriptNotFound)
}
