package storage

import (
	"strings"

	"prept/internal/domain"
)

// toTranscriptModel converts a domain transcript to its GORM model
func toTranscriptModel(t *domain.Transcript) TranscriptModel {
	return TranscriptModel{
		CompletedAt: t.CompletedAt,
		ID:          t.ID,
		Keywords:    strings.Join(t.Keywords, ","),
		Position:    t.Position,
		StartedAt:   t.StartedAt,
	}
}

// toRoundModels converts a transcript's rounds to GORM models
func toRoundModels(t *domain.Transcript) []RoundModel {
	models := make([]RoundModel, len(t.Rounds))
	for i, round := range t.Rounds {
		models[i] = RoundModel{
			Answer:       round.Answer,
			Feedback:     round.Evaluation.Feedback,
			FollowUp:     round.Evaluation.FollowUp,
			Question:     round.Question,
			Rating:       string(round.Evaluation.Rating),
			Seq:          i,
			TranscriptID: t.ID,
		}
	}
	return models
}

// toDomainTranscript converts GORM models back to a domain transcript
func toDomainTranscript(model TranscriptModel, rounds []RoundModel) *domain.Transcript {
	t := &domain.Transcript{
		CompletedAt: model.CompletedAt,
		ID:          model.ID,
		Keywords:    splitKeywords(model.Keywords),
		Position:    model.Position,
		Rounds:      make([]domain.Round, len(rounds)),
		StartedAt:   model.StartedAt,
	}
	for i, round := range rounds {
		t.Rounds[i] = domain.Round{
			Answer: round.Answer,
			Evaluation: domain.Evaluation{
				Feedback: round.Feedback,
				FollowUp: round.FollowUp,
				Rating:   domain.Rating(round.Rating),
			},
			Question: round.Question,
		}
	}
	return t
}

func splitKeywords(s string) []string {
	if s == "" {
		return []string{}
	}
	return strings.Split(s, ",")
}
