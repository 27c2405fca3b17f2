package router

// Keyword lists used by the classification rules. Matching is case-insensitive
// substring containment, so order within a list does not matter; only the rule
// order in rules.go is load-bearing.
//
// The continue/new lists and the generic affirmative/negative lists overlap on
// purpose ("no" negates a choice in one context and is a plain refusal in
// another). Rule priority alone disambiguates; do not "fix" the lists without
// a product decision.

// feedbackKeywords trigger a status inquiry on an existing complaint.
var feedbackKeywords = []string{
	"status",
	"update",
	"no response",
	"haven't heard",
	"havent heard",
	"any news",
	"follow up",
	"followup",
	"how far",
	"when will",
}

// gratitudeKeywords acknowledge the user without changing state.
var gratitudeKeywords = []string{
	"thank you",
	"thanks",
	"thank u",
	"tnx",
	"appreciate",
	"grateful",
}

// continueKeywords resolve the waiting_for_choice state towards the existing
// complaint. Includes Nigerian Pidgin affirmatives.
var continueKeywords = []string{
	"continue",
	"yes",
	"related",
	"same one",
	"that one",
	"na",
	"abi",
	"sha",
	"ehn",
	"oya",
}

// newComplaintKeywords resolve the waiting_for_choice state towards a fresh
// complaint.
var newComplaintKeywords = []string{
	"new",
	"different",
	"another",
	"no",
	"fresh",
	"something else",
	"not related",
	"separate",
}

// complaintKeywords suggest the user wants to file a complaint.
var complaintKeywords = []string{
	"complaint",
	"issue",
	"problem",
	"concern",
	"help",
	"support",
}

// affirmativeKeywords is the broad yes-like list for the generic rule.
var affirmativeKeywords = []string{
	"yes",
	"ok",
	"okay",
	"sure",
	"yeah",
	"yep",
	"alright",
	"fine",
	"go ahead",
	"na",
	"abi",
	"sha",
	"ehn",
}

// negativeKeywords is the broad no-like list for the generic rule. "not" and
// "never" are wide enough to catch unrelated sentences; preserved as-is.
var negativeKeywords = []string{
	"no",
	"nope",
	"nah",
	"not",
	"never",
	"cancel",
	"later",
}

// defaultSpamKeywords flag promotional or link-bait content.
var defaultSpamKeywords = []string{
	"buy now",
	"click here",
	"free money",
	"lottery",
	"you have won",
	"promo code",
	"giveaway",
	"investment opportunity",
	"http://",
	"https://",
	"www.",
}

// defaultAbuseKeywords flag abusive language. Ordinary negative-sentiment
// words ("bad", "terrible", "hate") are included deliberately; see the filter
// notes in DESIGN.md before loosening this.
var defaultAbuseKeywords = []string{
	"stupid",
	"idiot",
	"useless",
	"nonsense",
	"rubbish",
	"fool",
	"mumu",
	"hate",
	"terrible",
	"horrible",
	"bad",
	"scam",
	"fraud",
	"wicked",
}
