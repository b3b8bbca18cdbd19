package plan

import (
	"fmt"
	"time"
)

// Quote is a daily mindfulness quote shown on the day view.
type Quote struct {
	Text   string
	Author string
}

// Formatted renders the quote with German quotation marks.
func (q Quote) Formatted() string {
	return fmt.Sprintf("„%s“ – %s", q.Text, q.Author)
}

var quotes = []Quote{
	{Text: "Einfachheit ist die höchste Stufe der Vollendung.", Author: "Leonardo da Vinci"},
	{Text: "Der Weg ist das Ziel.", Author: "Konfuzius"},
	{Text: "Wer rastet, der rostet nicht immer. Manchmal ruht er nur.", Author: "Unbekannt"},
	{Text: "Weniger, aber besser.", Author: "Dieter Rams"},
	{Text: "Die Ruhe ist eine Form der Stärke.", Author: "Laotse"},
	{Text: "Jeder Tag ist eine neue Gelegenheit.", Author: "Unbekannt"},
	{Text: "Was du heute kannst besorgen, das verschiebe bewusst auf morgen.", Author: "Zen Planer"},
	{Text: "Konzentriere dich auf das Wesentliche.", Author: "Marc Aurel"},
	{Text: "Geduld ist der Schlüssel zur Freude.", Author: "Rumi"},
	{Text: "Tue eine Sache nach der anderen.", Author: "Zen-Weisheit"},
}

// QuoteOfTheDay returns the quote for date's calendar day. Seeded by
// the day so it stays stable for the whole day.
func QuoteOfTheDay(date time.Time) Quote {
	seed := date.YearDay() + date.Year()*366
	return quotes[seed%len(quotes)]
}
