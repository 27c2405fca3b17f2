package router

import "strings"

// AbuseConfig tunes the abuse/spam filter. The keyword lists can be overridden
// from configuration; the numeric thresholds have fixed defaults that match
// the shipped behaviour.
type AbuseConfig struct {
	SpamKeywords     []string
	AbuseKeywords    []string
	RepetitionLimit  int // flag when any single word appears more than this many times
	MaxMessageLength int // flag when the raw message is longer than this
	AllCapsMinLength int // all-caps messages longer than this are flagged
}

// DefaultAbuseConfig returns the stock filter settings.
func DefaultAbuseConfig() AbuseConfig {
	return AbuseConfig{
		SpamKeywords:     defaultSpamKeywords,
		AbuseKeywords:    defaultAbuseKeywords,
		RepetitionLimit:  3,
		MaxMessageLength: 500,
		AllCapsMinLength: 10,
	}
}

// abusive returns true if the message trips any of the five heuristics:
// spam keyword, abuse keyword, per-word repetition, excessive length, or
// shouting (entirely upper-case beyond a minimum length). The verdict is a
// plain OR; no heuristic is weighted.
func (c AbuseConfig) abusive(message, lower string) bool {
	if containsAny(lower, c.SpamKeywords) {
		return true
	}
	if containsAny(lower, c.AbuseKeywords) {
		return true
	}
	if c.repetitive(lower) {
		return true
	}
	if len(message) > c.MaxMessageLength {
		return true
	}
	if len(message) > c.AllCapsMinLength && message == strings.ToUpper(message) {
		return true
	}
	return false
}

// repetitive flags messages where any whitespace-delimited token repeats more
// than the configured limit, counted case-insensitively.
func (c AbuseConfig) repetitive(lower string) bool {
	counts := make(map[string]int)
	for _, tok := range strings.Fields(lower) {
		counts[tok]++
		if counts[tok] > c.RepetitionLimit {
			return true
		}
	}
	return false
}

// containsAny reports whether s contains any keyword from the list.
func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
