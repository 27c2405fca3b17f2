package router

import (
	"strings"
	"testing"
)

func TestStatusTemplateMapping(t *testing.T) {
	cases := []struct {
		status string
		want   TemplateKey
	}{
		{"pending", TemplateStatusPending},
		{"in_progress", TemplateStatusInProgress},
		{"resolved", TemplateStatusResolved},
		{"closed", TemplateStatusClosed},
		{"escalated", TemplateStatusUnknown},
		{"", TemplateStatusUnknown},
	}

	for _, tc := range cases {
		if got := StatusTemplate(tc.status); got != tc.want {
			t.Errorf("StatusTemplate(%q) = %s, want %s", tc.status, got, tc.want)
		}
	}
}

func TestStatusTemplatesInterpolateTitleAndNumber(t *testing.T) {
	data := TemplateData{ComplaintTitle: "Late delivery", ComplaintNumber: "CMP-1A3E"}

	keys := []TemplateKey{
		TemplateStatusPending,
		TemplateStatusInProgress,
		TemplateStatusResolved,
		TemplateStatusClosed,
		TemplateStatusUnknown,
	}
	for _, key := range keys {
		text := Render(key, data)
		if !strings.Contains(text, data.ComplaintTitle) {
			t.Errorf("Render(%s) missing title: %q", key, text)
		}
		if !strings.Contains(text, data.ComplaintNumber) {
			t.Errorf("Render(%s) missing number: %q", key, text)
		}
	}
}

func TestRenderUnknownKeyFallsBack(t *testing.T) {
	text := Render(TemplateKey("does_not_exist"), TemplateData{})
	if text == "" {
		t.Error("expected non-empty fallback text")
	}
}
