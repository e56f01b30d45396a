package theme

import "github.com/charmbracelet/lipgloss"

// Color is an alias for lipgloss.Color for convenience
type Color = lipgloss.Color

// Brand colors
const (
	ColorPrimary   Color = "99" // Purple - app name, titles
	ColorSecondary Color = "86" // Cyan - subtitles, question headers
)

// Rating colors, matching the rating badge palette of the web client
const (
	ColorExcellent Color = "2"   // Green
	ColorGood      Color = "4"   // Blue
	ColorFair      Color = "3"   // Yellow
	ColorPoor      Color = "1"   // Red
	ColorRatingErr Color = "196" // Bright red - synthesized error rating
)

// UI semantic colors
const (
	ColorError     Color = "196" // Bright red
	ColorHighlight Color = "255" // White - emphasis
	ColorMuted     Color = "241" // Gray - secondary text
	ColorNormal    Color = "250" // Default text
	ColorSubtle    Color = "245" // Light gray - labels
	ColorVersion   Color = "240" // Dark gray
)

// Accent colors
const (
	ColorFollowUp Color = "141" // Purple - follow-up guidance
	ColorProgress Color = "33"  // Blue - progress bar fill
	ColorSpinner  Color = "205" // Pink
)
