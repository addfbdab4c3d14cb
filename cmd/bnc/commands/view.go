package commands

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/llegomark/better-nginx-cache/internal/core/domain"
	"github.com/llegomark/better-nginx-cache/internal/ui/output"
	"github.com/llegomark/better-nginx-cache/internal/ui/style"
)

const timeLayout = "2006-01-02 15:04:05 MST"

// view renders command results with the shared palette. Styles are bound to
// a renderer for the target writer so NO_COLOR and pipes produce plain text.
type view struct {
	w     io.Writer
	title lipgloss.Style
	label lipgloss.Style
	value lipgloss.Style
	muted lipgloss.Style
	ok    lipgloss.Style
	fail  lipgloss.Style
}

func newView(w io.Writer) *view {
	r := output.Renderer(w)
	return &view{
		w:     w,
		title: r.NewStyle().Inherit(style.Title),
		label: r.NewStyle().Inherit(style.Label),
		value: r.NewStyle().Inherit(style.Value),
		muted: r.NewStyle().Inherit(style.Muted),
		ok:    r.NewStyle().Foreground(style.Green),
		fail:  r.NewStyle().Foreground(style.Red),
	}
}

func (v *view) line(format string, args ...any) {
	_, _ = fmt.Fprintf(v.w, format+"\n", args...)
}

func (v *view) field(name, value string) {
	v.line("  %s%s", v.label.Render(name), v.value.Render(value))
}

func (v *view) stats(s domain.CacheStatistics) {
	v.line("%s", v.title.Render("Cache statistics"))
	if s.CachePath == "" {
		v.field("Path", "not configured")
		return
	}
	v.field("Path", s.CachePath)
	v.field("Files", fmt.Sprintf("%d", s.FileCount))
	v.field("Size", domain.FormatBytes(s.TotalSizeBytes))
	v.field("Updated", s.ComputedAt.UTC().Format(timeLayout))
}

func (v *view) outcome(o domain.PurgeOutcome) {
	switch o.Result {
	case domain.ResultPurged:
		v.line("%s Cache purged: %s", v.ok.Render(style.Check), o.Path)
	case domain.ResultSkipped:
		v.line("%s Purge skipped %s", v.muted.Render(style.Circle), v.muted.Render("("+string(o.Reason)+")"))
	}
}

func (v *view) report(r *domain.DispatchReport) {
	if r == nil {
		return
	}
	v.line("%s", v.title.Render("Unit "+r.UnitID))
	for _, res := range r.Results {
		icon, detail := describe(res)
		switch {
		case res.Err != nil:
			icon = v.fail.Render(icon)
		case res.Outcome != nil && res.Outcome.Result == domain.ResultPurged:
			icon = v.ok.Render(icon)
		default:
			icon = v.muted.Render(icon)
		}
		v.line("  %s %s %s", icon, res.Event, v.muted.Render(detail))
	}
}

func describe(res domain.EventResult) (string, string) {
	switch {
	case res.Err != nil:
		return style.Cross, res.Err.Error()
	case res.Ignored:
		return style.Circle, "ignored"
	case res.Outcome != nil && res.Outcome.Result == domain.ResultPurged:
		return style.Check, "purged " + res.Outcome.Path
	case res.Outcome != nil:
		return style.Circle, "skipped (" + string(res.Outcome.Reason) + ")"
	case res.Verdict != nil:
		reason := string(res.Verdict.Reason)
		if res.Verdict.Overridden {
			reason += ", overridden"
		}
		return style.Circle, "no purge (" + reason + ")"
	default:
		return style.Dot, "handled"
	}
}
