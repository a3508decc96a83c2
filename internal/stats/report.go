package stats

import (
	"fmt"
	"io"

	"github.com/verte-zerg/glance/internal/model"
)

// RenderSummary prints aggregate numbers for the given readings.
func RenderSummary(w io.Writer, readings []model.ReadingAggregate) error {
	if len(readings) == 0 {
		_, err := fmt.Fprintln(w, "No readings found.")
		return err
	}
	var totalWords int
	var totalPace float64
	bestPace := 0.0
	completed := 0
	for _, r := range readings {
		totalWords += r.WordsRead
		pace := Pace(r.WordsRead, r.DurationMs)
		totalPace += pace
		if pace > bestPace {
			bestPace = pace
		}
		if r.Completed {
			completed++
		}
	}
	count := float64(len(readings))
	if _, err := fmt.Fprintln(w, "Summary"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Readings: %d\n", len(readings)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Words read: %d\n", totalWords); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Avg pace: %.1f WPM\n", totalPace/count); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Best pace: %.1f WPM\n", bestPace); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Finished: %d/%d\n", completed, len(readings)); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, ""); err != nil {
		return err
	}
	return nil
}

// RenderPaceTrend prints a sparkline of pace across readings, smoothed with
// a small moving average when enough data exists.
func RenderPaceTrend(w io.Writer, readings []model.ReadingAggregate) error {
	if len(readings) < 2 {
		return nil
	}
	paces := make([]float64, len(readings))
	for i, r := range readings {
		paces[i] = Pace(r.WordsRead, r.DurationMs)
	}
	window := 1
	if len(paces) >= 5 {
		window = 3
	}
	smoothed := MovingAverage(paces, window)
	if _, err := fmt.Fprintf(w, "Pace trend: %s\n\n", Sparkline(smoothed)); err != nil {
		return err
	}
	return nil
}

// RenderHistory prints a table of readings, oldest first.
func RenderHistory(w io.Writer, readings []model.ReadingAggregate) error {
	if len(readings) == 0 {
		return nil
	}
	if _, err := fmt.Fprintln(w, "History"); err != nil {
		return err
	}
	headers := []string{"Date", "Source", "Words", "Pace", "Done"}
	rows := make([][]string, 0, len(readings))
	for _, r := range readings {
		done := "no"
		if r.Completed {
			done = "yes"
		}
		rows = append(rows, []string{
			r.EndedAt.Format("2006-01-02 15:04"),
			r.Source,
			fmt.Sprintf("%d/%d", r.WordsRead, r.WordsTotal),
			fmt.Sprintf("%.1f", Pace(r.WordsRead, r.DurationMs)),
			done,
		})
	}
	rightAlign := map[int]bool{2: true, 3: true}
	for _, line := range formatTable(headers, rows, rightAlign) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
