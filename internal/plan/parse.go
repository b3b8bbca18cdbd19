package plan

import (
	"fmt"
	"strings"
)

// ParsePriority parses user input to a Priority. Empty or unrecognized
// input falls back to DefaultPriority.
func ParsePriority(input string) Priority {
	switch strings.TrimSpace(strings.ToLower(input)) {
	case "high", "hoch", "h":
		return PriorityHigh
	case "medium", "mittel", "m":
		return PriorityMedium
	case "low", "niedrig", "l":
		return PriorityLow
	default:
		return DefaultPriority
	}
}

// ParseMood parses user input to a Mood.
func ParseMood(input string) (Mood, error) {
	switch strings.TrimSpace(strings.ToLower(input)) {
	case "great", "grossartig", "großartig":
		return MoodGreat, nil
	case "good", "gut":
		return MoodGood, nil
	case "", "neutral":
		return MoodNeutral, nil
	case "bad", "schlecht":
		return MoodBad, nil
	case "terrible", "furchtbar":
		return MoodTerrible, nil
	default:
		return "", fmt.Errorf("invalid mood: %q", input)
	}
}

// ParseReminderOffset parses a lead time in minutes (0, 5, 15, 30, 60,
// 120) to a ReminderOffset.
func ParseReminderOffset(input string) (ReminderOffset, error) {
	switch strings.TrimSpace(input) {
	case "0":
		return OffsetAtTime, nil
	case "5":
		return OffsetFiveMin, nil
	case "15":
		return OffsetFifteenMin, nil
	case "30":
		return OffsetThirtyMin, nil
	case "60":
		return OffsetOneHour, nil
	case "120":
		return OffsetTwoHours, nil
	default:
		return "", fmt.Errorf("invalid reminder offset: %q (minutes: 0|5|15|30|60|120)", input)
	}
}
