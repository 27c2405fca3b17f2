package router

import (
	"testing"
	"time"
)

func TestSelectGreetingActiveComplaint(t *testing.T) {
	snapshot := HistorySnapshot{
		Active: []ComplaintRef{
			{ID: "c-2", Number: "CMP-2B4F", Title: "Broken AC", Status: "in_progress", SubmittedAt: time.Now()},
			{ID: "c-1", Number: "CMP-1A3E", Title: "Late delivery", Status: "pending"},
		},
		Recent: []ComplaintRef{
			{ID: "c-3", Number: "CMP-3C5D", Title: "Wrong invoice"},
		},
	}

	g := SelectGreeting(snapshot)
	if g.Key != TemplateGreetingActive {
		t.Errorf("Key = %s, want %s", g.Key, TemplateGreetingActive)
	}
	if g.State != StateWaitingForChoice {
		t.Errorf("State = %s, want %s", g.State, StateWaitingForChoice)
	}
	if g.Complaint == nil || g.Complaint.ID != "c-2" {
		t.Errorf("Complaint = %+v, want first active (c-2)", g.Complaint)
	}
}

func TestSelectGreetingRecentComplaint(t *testing.T) {
	snapshot := HistorySnapshot{
		Recent: []ComplaintRef{
			{ID: "c-3", Number: "CMP-3C5D", Title: "Wrong invoice", Status: "resolved"},
		},
	}

	g := SelectGreeting(snapshot)
	if g.Key != TemplateGreetingRecent {
		t.Errorf("Key = %s, want %s", g.Key, TemplateGreetingRecent)
	}
	if g.State != StateWaitingForChoice {
		t.Errorf("State = %s, want %s", g.State, StateWaitingForChoice)
	}
	if g.Complaint == nil || g.Complaint.ID != "c-3" {
		t.Errorf("Complaint = %+v, want c-3", g.Complaint)
	}
}

func TestSelectGreetingEmptyHistory(t *testing.T) {
	g := SelectGreeting(HistorySnapshot{})
	if g.Key != TemplateGreetingDefault {
		t.Errorf("Key = %s, want %s", g.Key, TemplateGreetingDefault)
	}
	if g.State != StateIdle {
		t.Errorf("State = %s, want %s", g.State, StateIdle)
	}
	if g.Complaint != nil {
		t.Errorf("Complaint = %+v, want nil", g.Complaint)
	}
}
