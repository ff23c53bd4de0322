package cli

import (
	"strings"
	"testing"

	"github.com/ka2n/mado/api"
	"github.com/ka2n/mado/view"
	"github.com/morikuni/failure/v2"
)

func TestFormatRecord(t *testing.T) {
	rec := api.Record{
		ID: "001xx000003DGXzAAO",
		Fields: map[string]string{
			api.FieldName:     "Acme",
			api.FieldIndustry: "Tech",
			"Phone":           "555-0100",
		},
	}

	got := formatRecord(rec)
	lines := strings.Split(got, "\n")
	if len(lines) != 4 {
		t.Fatalf("formatRecord() produced %d lines, want 4:\n%s", len(lines), got)
	}
	if !strings.HasPrefix(lines[1], "Name") || !strings.Contains(lines[1], "Acme") {
		t.Errorf("name line should come first: %q", lines[1])
	}
	if !strings.Contains(got, "Tech") || !strings.Contains(got, "555-0100") {
		t.Errorf("field values missing:\n%s", got)
	}
}

func TestFormatRecordList(t *testing.T) {
	records := []api.Record{
		{ID: "1", Fields: map[string]string{api.FieldName: "Acme", api.FieldIndustry: "Tech"}},
		{ID: "2", Fields: map[string]string{api.FieldName: "Globex"}},
	}

	got := formatRecordList(records)
	lines := strings.Split(got, "\n")
	if len(lines) != 3 {
		t.Fatalf("formatRecordList() produced %d lines, want 3:\n%s", len(lines), got)
	}
	if !strings.Contains(lines[0], "NAME") {
		t.Errorf("missing header: %q", lines[0])
	}
	if !strings.Contains(lines[2], "Globex") {
		t.Errorf("missing record row: %q", lines[2])
	}
}

func TestFormatRecordListEmpty(t *testing.T) {
	if got := formatRecordList([]api.Record{}); got != "No records." {
		t.Errorf("formatRecordList(empty) = %q", got)
	}
}

func TestRenderRecordStateFailureKeepsContent(t *testing.T) {
	snap := view.Snapshot[api.Record]{
		Status: view.StatusFailed,
		Result: api.Record{ID: "1", Fields: map[string]string{api.FieldName: "Acme"}},
		Err:    failure.New(api.ErrRecordFetch, failure.Message("INSUFFICIENT_ACCESS")),
	}

	got := renderRecordState(snap)
	if got.errMsg != "INSUFFICIENT_ACCESS" {
		t.Errorf("errMsg = %q", got.errMsg)
	}
	if !strings.Contains(got.content, "Acme") {
		t.Errorf("stale result dropped from content: %q", got.content)
	}
}
