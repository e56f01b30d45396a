package theme

import (
	"github.com/charmbracelet/lipgloss"

	"prept/internal/domain"
)

// Main UI styles
var (
	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Padding(1, 0)

	NormalStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)

	QuestionStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight)

	SubtleStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			Padding(1, 0)
)

// Dialog header styles
var (
	AppNameStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	SubtitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSecondary)

	TaglineStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)

	VersionStyle = lipgloss.NewStyle().
			Foreground(ColorVersion)
)

// Feedback panel styles
var (
	FeedbackBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.NormalBorder(), false, false, false, true).
				BorderForeground(ColorPrimary).
				PaddingLeft(1)

	FeedbackTextStyle = lipgloss.NewStyle().
				Foreground(ColorNormal)

	FollowUpStyle = lipgloss.NewStyle().
			Foreground(ColorFollowUp)
)

// Spinner style
var SpinnerStyle = lipgloss.NewStyle().
	Foreground(ColorSpinner)

// Error style
var ErrorStyle = lipgloss.NewStyle().
	Foreground(ColorError).
	Bold(true)

// ratingColors maps each rating to its badge color
var ratingColors = map[domain.Rating]Color{
	domain.RatingExcellent: ColorExcellent,
	domain.RatingGood:      ColorGood,
	domain.RatingFair:      ColorFair,
	domain.RatingPoor:      ColorPoor,
	domain.RatingError:     ColorRatingErr,
}

// RatingStyle returns the badge style for a rating. Unknown ratings fall
// back to the muted style rather than failing.
func RatingStyle(rating domain.Rating) lipgloss.Style {
	color, ok := ratingColors[rating]
	if !ok {
		return lipgloss.NewStyle().Foreground(ColorMuted).Bold(true)
	}
	return lipgloss.NewStyle().Foreground(color).Bold(true)
}
