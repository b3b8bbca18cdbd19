package plan

import "time"

// MaxTasksPerDay is the hard work-in-progress cap. A deliberate product
// decision, not configuration.
const MaxTasksPerDay = 5

// ReminderTitle is the title line of every scheduled reminder.
const ReminderTitle = "Zen Planer"

type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// DefaultPriority is used when user input is missing/invalid.
const DefaultPriority Priority = PriorityMedium

func (p Priority) IsValid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	default:
		return false
	}
}

// SortValue orders priorities for the focus flow: lower sorts first.
func (p Priority) SortValue() int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	default:
		return 2
	}
}

// DisplayName is the German label used in exports and list output.
func (p Priority) DisplayName() string {
	switch p {
	case PriorityHigh:
		return "Hoch"
	case PriorityMedium:
		return "Mittel"
	default:
		return "Niedrig"
	}
}

// ReminderOffset is the fixed lead time subtracted from a deadline to
// compute when a reminder fires.
type ReminderOffset string

const (
	OffsetAtTime     ReminderOffset = "atTime"
	OffsetFiveMin    ReminderOffset = "fiveMin"
	OffsetFifteenMin ReminderOffset = "fifteenMin"
	OffsetThirtyMin  ReminderOffset = "thirtyMin"
	OffsetOneHour    ReminderOffset = "oneHour"
	OffsetTwoHours   ReminderOffset = "twoHours"
)

func (o ReminderOffset) IsValid() bool {
	switch o {
	case OffsetAtTime, OffsetFiveMin, OffsetFifteenMin, OffsetThirtyMin, OffsetOneHour, OffsetTwoHours:
		return true
	default:
		return false
	}
}

func (o ReminderOffset) Duration() time.Duration {
	switch o {
	case OffsetFiveMin:
		return 5 * time.Minute
	case OffsetFifteenMin:
		return 15 * time.Minute
	case OffsetThirtyMin:
		return 30 * time.Minute
	case OffsetOneHour:
		return time.Hour
	case OffsetTwoHours:
		return 2 * time.Hour
	default:
		return 0
	}
}

func (o ReminderOffset) DisplayName() string {
	switch o {
	case OffsetAtTime:
		return "Zum Zeitpunkt"
	case OffsetFiveMin:
		return "5 Min vorher"
	case OffsetFifteenMin:
		return "15 Min vorher"
	case OffsetThirtyMin:
		return "30 Min vorher"
	case OffsetOneHour:
		return "1 Std vorher"
	default:
		return "2 Std vorher"
	}
}

// Mood is the five-step scale of the evening reflection.
type Mood string

const (
	MoodGreat    Mood = "great"
	MoodGood     Mood = "good"
	MoodNeutral  Mood = "neutral"
	MoodBad      Mood = "bad"
	MoodTerrible Mood = "terrible"
)

// DefaultMood is used when user input is missing/invalid.
const DefaultMood Mood = MoodNeutral

func (m Mood) IsValid() bool {
	switch m {
	case MoodGreat, MoodGood, MoodNeutral, MoodBad, MoodTerrible:
		return true
	default:
		return false
	}
}

func (m Mood) Emoji() string {
	switch m {
	case MoodGreat:
		return "😊"
	case MoodGood:
		return "😌"
	case MoodNeutral:
		return "😐"
	case MoodBad:
		return "😔"
	default:
		return "😩"
	}
}

// DisplayName is the German label used in exports and stats output.
func (m Mood) DisplayName() string {
	switch m {
	case MoodGreat:
		return "Großartig"
	case MoodGood:
		return "Gut"
	case MoodNeutral:
		return "Neutral"
	case MoodBad:
		return "Schlecht"
	default:
		return "Furchtbar"
	}
}

// Score maps moods to 5..1 for trend statistics (5 = best).
func (m Mood) Score() int {
	switch m {
	case MoodGreat:
		return 5
	case MoodGood:
		return 4
	case MoodNeutral:
		return 3
	case MoodBad:
		return 2
	default:
		return 1
	}
}
