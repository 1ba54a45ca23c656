package effects

import (
	"math/rand/v2"
	"time"
)

// DefaultQuotes holds the stock flavor lines, indexed by tier: one, two,
// three and four or more cleared lines.
var DefaultQuotes = [4][]string{
	{
		"Watch closely. This is how it's done!",
		"Don't get comfortable, the stack is still breathing.",
	},
	{
		"Two at once. Now we're talking.",
		"Help always arrives right when it's needed.",
	},
	{
		"Three rows gone. They won't forget that.",
		"The ones who fall remember longer than the ones who push.",
	},
	{
		"Four! Where did you learn that?!",
	},
}

// QuoteTier maps a cleared-line count to an index into a quote table.
func QuoteTier(lines int) int {
	switch {
	case lines <= 1:
		return 0
	case lines >= 4:
		return 3
	default:
		return lines - 1
	}
}

// QuoteBoard shows one flavor line at a time until an explicit deadline.
type QuoteBoard struct {
	tiers    [4][]string
	duration time.Duration
	rng      *rand.Rand

	text  string
	until time.Duration
	shown bool
}

// NewQuoteBoard creates a board that keeps each line up for duration.
// A nil tier falls back to the stock lines for that tier.
func NewQuoteBoard(seed uint64, duration time.Duration, tiers [4][]string) *QuoteBoard {
	for i := range tiers {
		if len(tiers[i]) == 0 {
			tiers[i] = DefaultQuotes[i]
		}
	}
	return &QuoteBoard{
		tiers:    tiers,
		duration: duration,
		rng:      rand.New(rand.NewPCG(seed, seed^0x2545f491)),
	}
}

// Show picks a line for a clear of the given size and displays it from now.
// A newer quote replaces one still on screen.
func (q *QuoteBoard) Show(lines int, now time.Duration) string {
	pool := q.tiers[QuoteTier(lines)]
	q.text = pool[q.rng.IntN(len(pool))]
	q.until = now + q.duration
	q.shown = true
	return q.text
}

// Current returns the visible line at timestamp now.
func (q *QuoteBoard) Current(now time.Duration) (string, bool) {
	if !q.shown || now >= q.until {
		return "", false
	}
	return q.text, true
}

// Hide removes any visible line.
func (q *QuoteBoard) Hide() {
	q.shown = false
}
