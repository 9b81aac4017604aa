package agent

import (
	"testing"
)

func TestParseEditResult(t *testing.T) {
	tests := []struct {
		name         string
		raw          string
		wantReply    string
		wantSection  string
		wantDegraded bool
	}{
		{
			name:        "plain json",
			raw:         `{"reply": "done", "updatedSection": "New scope.", "addedText": ["New scope."]}`,
			wantReply:   "done",
			wantSection: "New scope.",
		},
		{
			name: "fenced json",
			raw: "```json\n" +
				`{"reply": "ok", "updatedSection": "Content", "addedText": []}` +
				"\n```",
			wantReply:   "ok",
			wantSection: "Content",
		},
		{
			name:        "prose before json",
			raw:         `Here is the result: {"reply": "sure", "updatedSection": "X", "addedText": []}`,
			wantReply:   "sure",
			wantSection: "X",
		},
		{
			name:        "braces inside strings",
			raw:         `{"reply": "use {curly} braces", "updatedSection": "map{a: 1}", "addedText": []}`,
			wantReply:   "use {curly} braces",
			wantSection: "map{a: 1}",
		},
		{
			name:         "free text fallback",
			raw:          "I could not produce JSON, sorry.",
			wantReply:    "I could not produce JSON, sorry.",
			wantDegraded: true,
		},
		{
			name:         "unbalanced json fallback",
			raw:          `{"reply": "truncated...`,
			wantReply:    `{"reply": "truncated...`,
			wantDegraded: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := ParseEditResult(tt.raw)

			if res.Reply != tt.wantReply {
				t.Errorf("Reply = %q, want %q", res.Reply, tt.wantReply)
			}
			if res.UpdatedSection != tt.wantSection {
				t.Errorf("UpdatedSection = %q, want %q", res.UpdatedSection, tt.wantSection)
			}
			if res.Degraded != tt.wantDegraded {
				t.Errorf("Degraded = %v, want %v", res.Degraded, tt.wantDegraded)
			}
		})
	}
}

func TestParseEditResultPropagation(t *testing.T) {
	raw := `{
		"reply": "updated",
		"updatedSection": "RF-010: push notifications",
		"addedText": ["RF-010: push notifications"],
		"propagation": {
			"action_plan": {
				"non_functional_requirements": {"content": "RNF-006: deliver within 5s", "addedText": ["RNF-006: deliver within 5s"]},
				"business_logic_flow": {"content": null, "addedText": []}
			},
			"ideation": {
				"scope": {"content": null, "addedText": []}
			}
		}
	}`

	res := ParseEditResult(raw)
	if res.Degraded {
		t.Fatal("unexpected degraded result")
	}

	nfr, ok := res.Propagation["action_plan"]["non_functional_requirements"]
	if !ok || nfr.Content == nil {
		t.Fatalf("missing propagated section: %+v", res.Propagation)
	}
	if *nfr.Content != "RNF-006: deliver within 5s" {
		t.Errorf("content = %q", *nfr.Content)
	}

	if scope := res.Propagation["ideation"]["scope"]; scope.Content != nil {
		t.Errorf("null content decoded as %q", *scope.Content)
	}
}
