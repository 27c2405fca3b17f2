package router

import "strings"

// input bundles one inbound message with the session context it is classified
// against. lower is computed once and shared by every rule predicate.
type input struct {
	message string
	lower   string
	state   ConversationState
	flags   SessionFlags
}

// rule is one entry of the priority-ordered classification table. applies is
// the match predicate; resolve builds the classification when it matches.
type rule struct {
	name    string
	applies func(in input) bool
	resolve func(in input) Classification
}

// Router classifies inbound chat messages against an ordered rule table.
// Classification is pure: the router performs no I/O and mutates nothing, so
// a single Router is safe to share across sessions.
type Router struct {
	abuse AbuseConfig
	rules []rule
}

// New creates a Router with the given abuse-filter settings.
func New(abuse AbuseConfig) *Router {
	r := &Router{abuse: abuse}
	r.rules = r.buildRules()
	return r
}

// Classify determines the intent of one trimmed, non-empty message given the
// current conversation state and session flags. It is total: the final
// fallback rule matches everything, so a classification is always returned.
//
// Rule order is load-bearing. Later rules are reachable only when every
// earlier rule failed to match; in particular the abuse filter pre-empts all
// other rules, and the submit command pre-empts the keyword rules.
func (r *Router) Classify(message string, state ConversationState, flags SessionFlags) Classification {
	in := input{
		message: message,
		lower:   strings.ToLower(message),
		state:   state,
		flags:   flags,
	}

	for _, rl := range r.rules {
		if rl.applies(in) {
			c := rl.resolve(in)
			c.MatchedRule = rl.name
			return c
		}
	}

	// Unreachable: the fallback rule always applies.
	return Classification{
		Intent:      IntentGeneralFallback,
		MatchedRule: "fallback",
		NextState:   state,
		ResponseKey: TemplateGeneralFallback,
	}
}

// buildRules assembles the priority-ordered rule table.
func (r *Router) buildRules() []rule {
	return []rule{
		{
			// 1. Abuse/spam filter. Short-circuits before anything that would
			// reach a collaborator, and never changes state.
			name: "abuse_filter",
			applies: func(in input) bool {
				return r.abuse.abusive(in.message, in.lower)
			},
			resolve: func(in input) Classification {
				return Classification{
					Intent:      IntentRejectedAbusive,
					NextState:   in.state,
					ResponseKey: TemplateAbuseWarning,
				}
			},
		},
		{
			// 2. Explicit submit command while composing a complaint.
			name: "submit_command",
			applies: func(in input) bool {
				return in.flags.ComplaintMode && strings.Contains(in.lower, "submit")
			},
			resolve: func(in input) Classification {
				return Classification{
					Intent:      IntentSubmitComplaint,
					NextState:   in.state,
					ResponseKey: TemplateSubmitConfirmed,
				}
			},
		},
		{
			// 3. Status inquiry on an existing complaint. The caller resolves
			// the target complaint and swaps in the status-specific template.
			name: "feedback_keywords",
			applies: func(in input) bool {
				return containsAny(in.lower, feedbackKeywords)
			},
			resolve: func(in input) Classification {
				return Classification{
					Intent:      IntentFeedbackCheck,
					NextState:   in.state,
					ResponseKey: TemplateStatusUnknown,
				}
			},
		},
		{
			// 4. Gratitude.
			name: "gratitude",
			applies: func(in input) bool {
				return containsAny(in.lower, gratitudeKeywords)
			},
			resolve: func(in input) Classification {
				return Classification{
					Intent:      IntentThanks,
					NextState:   in.state,
					ResponseKey: TemplateThanks,
				}
			},
		},
		{
			// 5a. Continue the existing complaint. Only reachable while the
			// session is waiting on the continue-vs-new choice, which is why
			// this fires ahead of the generic affirmative rule.
			name: "choice_continue",
			applies: func(in input) bool {
				return in.state == StateWaitingForChoice && containsAny(in.lower, continueKeywords)
			},
			resolve: func(in input) Classification {
				return Classification{
					Intent:             IntentContinueExisting,
					NextState:          StateComplaintMode,
					ResponseKey:        TemplateContinuePrompt,
					EnterComplaintMode: true,
				}
			},
		},
		{
			// 5b. Start a fresh complaint instead.
			name: "choice_new",
			applies: func(in input) bool {
				return in.state == StateWaitingForChoice && containsAny(in.lower, newComplaintKeywords)
			},
			resolve: func(in input) Classification {
				return Classification{
					Intent:             IntentStartNew,
					NextState:          StateNewComplaint,
					ResponseKey:        TemplateNewComplaintPrompt,
					EnterComplaintMode: true,
				}
			},
		},
		{
			// 6. General complaint vocabulary; asks for confirmation before
			// entering complaint mode.
			name: "complaint_keywords",
			applies: func(in input) bool {
				return containsAny(in.lower, complaintKeywords)
			},
			resolve: func(in input) Classification {
				return Classification{
					Intent:      IntentComplaintKeyword,
					NextState:   in.state,
					ResponseKey: TemplateComplaintConfirm,
				}
			},
		},
		{
			// 7. Generic affirmative: treat as consent to file a complaint.
			name: "affirmative",
			applies: func(in input) bool {
				return containsAny(in.lower, affirmativeKeywords)
			},
			resolve: func(in input) Classification {
				return Classification{
					Intent:             IntentAffirmative,
					NextState:          in.state,
					ResponseKey:        TemplateDetailPrompt,
					EnterComplaintMode: true,
				}
			},
		},
		{
			// 8. Generic negative: reassure, change nothing.
			name: "negative",
			applies: func(in input) bool {
				return containsAny(in.lower, negativeKeywords)
			},
			resolve: func(in input) Classification {
				return Classification{
					Intent:      IntentNegative,
					NextState:   in.state,
					ResponseKey: TemplateReassure,
				}
			},
		},
		{
			// 9. Fallback. In complaint mode the message is complaint detail;
			// otherwise a generic offer of help.
			name: "fallback",
			applies: func(in input) bool {
				return true
			},
			resolve: func(in input) Classification {
				if in.flags.ComplaintMode {
					return Classification{
						Intent:      IntentComplaintDetail,
						NextState:   in.state,
						ResponseKey: TemplateDetailRecorded,
					}
				}
				return Classification{
					Intent:      IntentGeneralFallback,
					NextState:   in.state,
					ResponseKey: TemplateGeneralFallback,
				}
			},
		},
	}
}
