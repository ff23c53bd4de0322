package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/ka2n/mado/api"
	"github.com/ka2n/mado/view"
	"github.com/samber/lo"
)

// stateMsg is a render-ready projection of a controller snapshot, consumed by
// both the interactive view and the plain printer.
type stateMsg struct {
	status  view.Status
	content string
	errMsg  string
	err     error
}

// renderMarkdown renders markdown for the terminal
func renderMarkdown(md string) (string, error) {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return "", err
	}
	return renderer.Render(md)
}

// renderRecordState projects a single-record snapshot into display form.
// A failed settle keeps the previously fetched record visible, so the stale
// content is rendered alongside the error.
func renderRecordState(s view.Snapshot[api.Record]) stateMsg {
	msg := stateMsg{status: s.Status, err: s.Err, errMsg: s.ErrorMessage()}
	if s.Result.ID != "" {
		msg.content = formatRecord(s.Result)
	}
	return msg
}

// renderListState projects a collection snapshot into display form
func renderListState(s view.Snapshot[[]api.Record]) stateMsg {
	msg := stateMsg{status: s.Status, err: s.Err, errMsg: s.ErrorMessage()}
	if s.Status == view.StatusSucceeded || len(s.Result) > 0 {
		msg.content = formatRecordList(s.Result)
	}
	return msg
}

// formatRecord formats a record's fields for display
func formatRecord(rec api.Record) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%-12s %s\n", "ID", rec.ID)

	// Stable field order, name first
	names := lo.Keys(rec.Fields)
	sort.Strings(names)
	names = lo.Filter(names, func(n string, _ int) bool {
		return n != api.FieldName && n != api.FieldDescription
	})
	if rec.Name() != "" {
		names = append([]string{api.FieldName}, names...)
	}

	for _, name := range names {
		fmt.Fprintf(&b, "%-12s %s\n", name, rec.Field(name))
	}

	if desc := rec.Description(); desc != "" {
		md, err := api.DescriptionMarkdown(desc)
		if err != nil {
			md = desc
		}
		if out, err := renderMarkdown(md); err == nil {
			b.WriteString("\n" + out)
		} else {
			b.WriteString("\n" + md + "\n")
		}
	}

	return strings.TrimRight(b.String(), "\n")
}

// formatRecordList formats a collection of records, one line each
func formatRecordList(records []api.Record) string {
	if len(records) == 0 {
		return "No records."
	}

	lines := lo.Map(records, func(rec api.Record, _ int) string {
		return fmt.Sprintf("%-20s %-24s %s", rec.ID, rec.Name(), rec.Industry())
	})
	header := fmt.Sprintf("%-20s %-24s %s", "ID", "NAME", "INDUSTRY")
	return header + "\n" + strings.Join(lines, "\n")
}
