package router

import "time"

// ConversationState tracks whether the user has been offered, or has made,
// a continue-vs-new-complaint choice within one chat session.
type ConversationState string

const (
	StateIdle             ConversationState = "idle"
	StateWaitingForChoice ConversationState = "waiting_for_choice"
	StateComplaintMode    ConversationState = "complaint_mode"
	StateNewComplaint     ConversationState = "new_complaint"
)

// Intent is the classified purpose of one inbound chat message.
type Intent string

const (
	IntentRejectedAbusive   Intent = "rejected_abusive"
	IntentSubmitComplaint   Intent = "submit_complaint"
	IntentFeedbackCheck     Intent = "feedback_check"
	IntentThanks            Intent = "acknowledged_thanks"
	IntentContinueExisting  Intent = "continue_existing_complaint"
	IntentStartNew          Intent = "start_new_complaint"
	IntentComplaintKeyword  Intent = "complaint_keyword_detected"
	IntentAffirmative       Intent = "affirmative_generic"
	IntentNegative          Intent = "negative_generic"
	IntentComplaintDetail   Intent = "complaint_detail"
	IntentGeneralFallback   Intent = "general_fallback"
)

// SessionFlags is the minimal session context Classify needs beyond the
// conversation state.
type SessionFlags struct {
	ComplaintMode            bool
	HasPrefetchedComplaintID bool
}

// Classification is the output of one Classify call. It is computed fresh per
// message and never persisted.
type Classification struct {
	Intent      Intent
	MatchedRule string
	NextState   ConversationState
	ResponseKey TemplateKey

	// EnterComplaintMode signals the caller to start accumulating free-text
	// complaint detail. Leaving complaint mode is the caller's decision
	// (after a successful submit or a reset), not the router's.
	EnterComplaintMode bool
}

// ComplaintRef is the read-only view of a complaint the router needs for
// greetings and status responses.
type ComplaintRef struct {
	ID          string
	Number      string
	Title       string
	Status      string
	SubmittedAt time.Time
}

// HistorySnapshot is fetched once per session open. Both slices are already
// sorted descending by submission time by the store; the router never re-sorts.
type HistorySnapshot struct {
	Active []ComplaintRef // complaints still pending or in progress
	Recent []ComplaintRef // complaints submitted within the last 24h
}

// Greeting is the result of the history-aware greeting selection that runs
// when a chat session opens.
type Greeting struct {
	Key       TemplateKey
	State     ConversationState
	Complaint *ComplaintRef // the complaint the greeting references, if any
}
