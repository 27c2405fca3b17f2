package router

import "fmt"

// TemplateKey names one canned response body.
type TemplateKey string

const (
	TemplateAbuseWarning       TemplateKey = "abuse_warning"
	TemplateSubmitConfirmed    TemplateKey = "submit_confirmed"
	TemplateStatusPending      TemplateKey = "status_pending"
	TemplateStatusInProgress   TemplateKey = "status_in_progress"
	TemplateStatusResolved     TemplateKey = "status_resolved"
	TemplateStatusClosed       TemplateKey = "status_closed"
	TemplateStatusUnknown      TemplateKey = "status_unknown"
	TemplateStatusUnavailable  TemplateKey = "status_unavailable"
	TemplateSubmitFailed       TemplateKey = "submit_failed"
	TemplateNothingToSubmit    TemplateKey = "nothing_to_submit"
	TemplateNoComplaintFound   TemplateKey = "no_complaint_found"
	TemplateThanks             TemplateKey = "thanks"
	TemplateContinuePrompt     TemplateKey = "continue_prompt"
	TemplateNewComplaintPrompt TemplateKey = "new_complaint_prompt"
	TemplateComplaintConfirm   TemplateKey = "complaint_confirm"
	TemplateDetailPrompt       TemplateKey = "detail_prompt"
	TemplateDetailRecorded     TemplateKey = "detail_recorded"
	TemplateReassure           TemplateKey = "reassure"
	TemplateGeneralFallback    TemplateKey = "general_fallback"
	TemplateGreetingActive     TemplateKey = "greeting_active"
	TemplateGreetingRecent     TemplateKey = "greeting_recent"
	TemplateGreetingDefault    TemplateKey = "greeting_default"
)

// TemplateData carries the values a template may interpolate.
type TemplateData struct {
	ComplaintTitle  string
	ComplaintNumber string
}

// StatusTemplate maps a complaint status to its response template. Total:
// unrecognized statuses fall through to the generic template.
func StatusTemplate(status string) TemplateKey {
	switch status {
	case "pending":
		return TemplateStatusPending
	case "in_progress":
		return TemplateStatusInProgress
	case "resolved":
		return TemplateStatusResolved
	case "closed":
		return TemplateStatusClosed
	default:
		return TemplateStatusUnknown
	}
}

// Render produces the user-facing text for a template key.
func Render(key TemplateKey, data TemplateData) string {
	switch key {
	case TemplateAbuseWarning:
		return "Please keep the conversation respectful. I can only help with genuine requests."
	case TemplateSubmitConfirmed:
		return fmt.Sprintf("Your complaint %s has been submitted. Our team will review it shortly.", data.ComplaintNumber)
	case TemplateStatusPending:
		return fmt.Sprintf("Your complaint %q (%s) is pending review. I've sent a reminder to the team handling it.", data.ComplaintTitle, data.ComplaintNumber)
	case TemplateStatusInProgress:
		return fmt.Sprintf("Good news: your complaint %q (%s) is being worked on. I've nudged the team for an update.", data.ComplaintTitle, data.ComplaintNumber)
	case TemplateStatusResolved:
		return fmt.Sprintf("Your complaint %q (%s) has been resolved. If the issue persists, let me know and we can reopen it.", data.ComplaintTitle, data.ComplaintNumber)
	case TemplateStatusClosed:
		return fmt.Sprintf("Your complaint %q (%s) is closed. You can start a new complaint if you need further help.", data.ComplaintTitle, data.ComplaintNumber)
	case TemplateStatusUnknown:
		return fmt.Sprintf("I've checked on your complaint %q (%s) and sent a reminder to the team.", data.ComplaintTitle, data.ComplaintNumber)
	case TemplateStatusUnavailable:
		return "I'm having trouble checking your complaint status right now, but a reminder has been sent to the team."
	case TemplateSubmitFailed:
		return "I couldn't submit your complaint just now. Your details are still here, please type \"submit\" again in a moment."
	case TemplateNothingToSubmit:
		return "There's nothing to submit yet. Please describe your complaint first."
	case TemplateNoComplaintFound:
		return "I couldn't find a complaint on your file. Would you like to file one?"
	case TemplateThanks:
		return "You're welcome! Is there anything else I can help you with?"
	case TemplateContinuePrompt:
		return "Alright, let's continue with your existing complaint. Please describe what has happened since."
	case TemplateNewComplaintPrompt:
		return "No problem, let's start a new complaint. Please describe the issue."
	case TemplateComplaintConfirm:
		return "It sounds like you'd like to file a complaint. Shall we go ahead?"
	case TemplateDetailPrompt:
		return "Okay, please describe your complaint in as much detail as you can."
	case TemplateDetailRecorded:
		return "Noted. Add more detail if you like, or type \"submit\" when you're ready to file the complaint."
	case TemplateReassure:
		return "That's fine. I'm here whenever you need help."
	case TemplateGreetingActive:
		return fmt.Sprintf("Welcome back! You have an open complaint %q (%s). Would you like to continue with it or start a new one?", data.ComplaintTitle, data.ComplaintNumber)
	case TemplateGreetingRecent:
		return fmt.Sprintf("Hello again! You recently submitted complaint %q (%s). Is this about the same issue, or something new?", data.ComplaintTitle, data.ComplaintNumber)
	case TemplateGreetingDefault:
		return "Hello! I'm the customer care assistant. How can I help you today?"
	default:
		return "I'm here to help. Could you tell me a bit more about what you need?"
	}
}
