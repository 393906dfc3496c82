package tui

// Color constants for the studybuddy TUI theme
const (
	// Base Colors
	ColorCardBackground = "#102A1E" // Dark green
	ColorBorder         = "#3A554A" // Grey-green

	// Text Colors
	ColorPrimaryText   = "#E8F2EC" // Primary text (labels, user input, titles)
	ColorSecondaryText = "#AFC6B8" // Secondary text
	ColorDisabledText  = "#6D8378" // Disabled/muted text
	ColorHelpText      = "240"     // Dark grey for help text

	// Accent Colors (Green theme)
	ColorAccentMain   = "#10B981" // Accent elements, active borders
	ColorAccentBright = "#6EE7B7" // Highlights, current card

	// State Colors
	ColorError   = "#EF4444" // Validation errors
	ColorSuccess = "#22C55E" // Success, confirmations
	ColorWarning = "#F59E0B" // Warnings
)
