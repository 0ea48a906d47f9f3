package banner

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/CodexForgeBR/stretch/internal/activity"
	"github.com/CodexForgeBR/stretch/internal/catalog"
	"github.com/CodexForgeBR/stretch/internal/logging"
	"github.com/CodexForgeBR/stretch/internal/routine"
)

// PrintStretchGroups lists the library grouped by body-system tag.
func PrintStretchGroups(w io.Writer, groups []catalog.Group) {
	for i, g := range groups {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintln(w, headerColor(g.Tag))
		for _, s := range g.Stretches {
			fmt.Fprintf(w, "  %-24s %-28s %s\n", s.ID, s.Name, defaultLabel(s.Duration))
		}
	}
}

// PrintStretchDetail shows a single stretch.
func PrintStretchDetail(w io.Writer, s catalog.Stretch) {
	fmt.Fprintln(w, headerColor(s.Name))
	fmt.Fprintf(w, "  ID:       %s\n", s.ID)
	fmt.Fprintf(w, "  Hold:     %s\n", defaultLabel(s.Duration))
	if len(s.Tags) > 0 {
		fmt.Fprintf(w, "  Tags:     %s\n", strings.Join(s.Tags, ", "))
	}
	if s.Photo != "" {
		fmt.Fprintf(w, "  Photo:    %s\n", s.Photo)
	}
	if s.Instructions != "" {
		fmt.Fprintf(w, "\n  %s\n", s.Instructions)
	}
}

// PrintRoutines lists routines with their stretch count and total length.
func PrintRoutines(w io.Writer, routines []routine.Routine, stretches routine.StretchLookup) {
	if len(routines) == 0 {
		fmt.Fprintln(w, dimColor("No routines yet. Create one with: stretch routines add <name> <stretch-id>..."))
		return
	}
	for _, r := range routines {
		fmt.Fprintf(w, "%-28s %-32s %2d stretches  %s\n",
			r.ID, r.Name, len(r.Items), logging.FormatDuration(routine.TotalSeconds(r.Items, stretches)))
	}
}

// PrintRoutineDetail shows the items of one routine.
func PrintRoutineDetail(w io.Writer, r routine.Routine, stretches routine.StretchLookup) {
	fmt.Fprintln(w, headerColor(r.Name))
	fmt.Fprintf(w, "  ID:       %s\n", r.ID)
	fmt.Fprintf(w, "  Total:    %s (about %d min)\n",
		logging.FormatDuration(routine.TotalSeconds(r.Items, stretches)), routine.TotalMinutes(r.Items, stretches))
	for i, item := range r.Items {
		fmt.Fprintf(w, "  %2d. %-28s %s\n", i+1, lookup(stretches, item.StretchID).Name,
			logging.FormatClock(routine.DurationOf(item, stretches)))
	}
}

// PrintTimeline lists the entries of one day in creation order.
func PrintTimeline(w io.Writer, date string, entries []activity.Entry) {
	fmt.Fprintln(w, headerColor(date))
	if len(entries) == 0 {
		fmt.Fprintln(w, dimColor("  Nothing logged."))
		return
	}
	for _, e := range entries {
		line := fmt.Sprintf("  %s  %s", clockOf(e.CreatedAt), activity.DisplayName(e))
		if label := activity.FormatDurationLabel(e.Duration); label != "" {
			line += " · " + label
		}
		if e.Manual {
			line += " " + dimColor("(manual)")
		}
		fmt.Fprintln(w, line)
		if e.Description != nil {
			fmt.Fprintf(w, "         %s\n", dimColor(*e.Description))
		}
		fmt.Fprintf(w, "         %s\n", dimColor("id "+e.ID))
	}
}

// PrintStrip renders the recent-days strip, one cell per day, with active
// days highlighted and today bracketed.
func PrintStrip(w io.Writer, days []activity.DaySummary, today string) {
	var names, marks strings.Builder
	for _, d := range days {
		cell := fmt.Sprintf("%2d", d.Time.Day())
		if d.Date == today {
			cell = "[" + cell + "]"
		} else {
			cell = " " + cell + " "
		}
		names.WriteString(cell)

		mark := "  · "
		if d.Active() {
			mark = successColor("  ● ")
		}
		marks.WriteString(mark)
	}
	fmt.Fprintln(w, names.String())
	fmt.Fprintln(w, marks.String())
}

// PrintMonth renders a Sunday-first month calendar. Active days carry a dot.
func PrintMonth(w io.Writer, m activity.MonthView, today string) {
	fmt.Fprintln(w, headerColor(m.Label()))
	fmt.Fprintln(w, " Su  Mo  Tu  We  Th  Fr  Sa")

	col := 0
	var line strings.Builder
	for ; col < m.Leading; col++ {
		line.WriteString("    ")
	}
	for _, d := range m.Days {
		line.WriteString(dayCell(d, today))
		col++
		if col%7 == 0 {
			fmt.Fprintln(w, strings.TrimRight(line.String(), " "))
			line.Reset()
		}
	}
	if line.Len() > 0 {
		fmt.Fprintln(w, strings.TrimRight(line.String(), " "))
	}
}

func dayCell(d activity.DaySummary, today string) string {
	num := fmt.Sprintf("%2d", d.Time.Day())
	switch {
	case d.Active():
		num = successColor(num) + successColor("●")
	case d.Date == today:
		num += "*"
	default:
		num += " "
	}
	return " " + num
}

func defaultLabel(seconds int) string {
	if seconds <= 0 {
		return "-"
	}
	return logging.FormatDuration(seconds)
}

// clockOf extracts local HH:MM from a creation stamp.
func clockOf(createdAt string) string {
	t, err := time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return "--:--"
	}
	return t.Local().Format("15:04")
}
