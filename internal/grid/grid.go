// Package grid places a queue's issues onto a day/hour/sub-hour schedule.
// Placement is a pure function of its inputs; temporal status is derived
// from the wall clock at render time and never stored.
package grid

import (
	"fmt"
	"time"

	"github.com/jiraffe/jiraffe/pkg/models"
)

// Status is the temporal state of a placed issue relative to "now".
type Status int

const (
	// StatusUpcoming means the issue's time bucket has not started yet.
	StatusUpcoming Status = iota
	// StatusCurrent means "now" falls inside the issue's time bucket.
	StatusCurrent
	// StatusOverdue means the issue's time bucket has already ended.
	StatusOverdue
)

// String returns the lower-case status name.
func (s Status) String() string {
	switch s {
	case StatusCurrent:
		return "current"
	case StatusOverdue:
		return "overdue"
	default:
		return "upcoming"
	}
}

// Marker is the minute-resolution placement of an issue inside its hour
// cell. The issue's minute is snapped down to the start of its bucket; the
// displayed and compared time is the bucket start, not the original minute.
type Marker struct {
	// Minute is the bucket's starting minute within the hour
	Minute int

	// Start is the quantized bucket start on the selected day
	Start time.Time

	// Width is the bucket length, 60/dividing minutes
	Width time.Duration
}

// StatusAt derives the marker's temporal status for the given wall-clock
// time. Exactly one status applies for any now.
func (m Marker) StatusAt(now time.Time) Status {
	end := m.Start.Add(m.Width)
	switch {
	case !now.Before(m.Start) && now.Before(end):
		return StatusCurrent
	case !now.Before(end):
		return StatusOverdue
	default:
		return StatusUpcoming
	}
}

// Entry is one issue placed in a cell. Marker is nil for common queues, for
// unscheduled issues, and for issues that fell back to the start-of-day cell.
type Entry struct {
	Issue  models.Issue
	Marker *Marker
}

// Cell is one hour-of-day slot, or the single unbounded slot of a common
// queue.
type Cell struct {
	// Hour is the hour-of-day label, -1 for the unbounded cell
	Hour int

	// Label is the rendered hour label ("09:00"), empty for the
	// unbounded cell
	Label string

	// Entries holds the issues assigned to this cell
	Entries []Entry
}

// Grid is the fully placed schedule for one queue and day.
type Grid struct {
	// Common reports whether the grid is the single unbounded cell of a
	// common queue
	Common bool

	// From and To delimit the day window the grid covers
	From, To time.Time

	// Cells are ordered from the start of the work day
	Cells []Cell
}

// PlaceIssues assigns every issue of the queue to exactly one cell of the
// day grid, or drops it when it falls outside the window.
//
// The window runs from day at from:00 through day at (to-1):59:59.999; when
// the end hour numerically precedes the start hour the work period crosses
// midnight and the window extends into the next day. With showAll false an
// issue outside the window is dropped; with showAll true only the upper
// bound applies, surfacing overdue issues from earlier days. A surviving
// issue with no time, or whose hour lies outside the window, lands in the
// first cell rather than being dropped.
//
// dividing must be positive and from/to must be valid hours; placement does
// not defend against unvalidated configuration beyond these checks. dividing
// is assumed to divide 60 evenly; with a factor that does not, the buckets
// cover only the first dividing*(60/dividing) minutes of each hour and
// issues in the remaining minutes are placed in their hour cell without a
// marker.
func PlaceIssues(queue models.Queue, day time.Time, from, to int, showAll bool, dividing int) (Grid, error) {
	if queue.IsCommon {
		return placeCommon(queue), nil
	}

	if dividing <= 0 {
		return Grid{}, fmt.Errorf("division factor must be positive, got %d", dividing)
	}
	if from < 0 || from > 23 || to < 0 || to > 24 {
		return Grid{}, fmt.Errorf("hour window %d-%d out of range", from, to)
	}
	if from == to {
		return Grid{}, fmt.Errorf("hour window is empty")
	}

	loc := day.Location()
	fromTime := time.Date(day.Year(), day.Month(), day.Day(), from, 0, 0, 0, loc)
	toTime := time.Date(day.Year(), day.Month(), day.Day(), to-1, 59, 59, int(999*time.Millisecond), loc)
	if fromTime.After(toTime) {
		// Work period crosses midnight.
		toTime = toTime.AddDate(0, 0, 1)
	}

	g := Grid{From: fromTime, To: toTime}
	cellIndex := make(map[int]int)
	for t := fromTime; t.Before(toTime); t = t.Add(time.Hour) {
		cellIndex[t.Hour()] = len(g.Cells)
		g.Cells = append(g.Cells, Cell{
			Hour:  t.Hour(),
			Label: fmt.Sprintf("%02d:00", t.Hour()),
		})
	}

	part := 60 / dividing

	for _, issue := range queue.Issues {
		if !withinWindow(issue.Time, fromTime, toTime, showAll) {
			continue
		}

		// Map the issue's wall-clock time onto the selected day.
		it := time.UnixMilli(issue.Time).In(loc)
		issueTime := time.Date(day.Year(), day.Month(), day.Day(), it.Hour(), it.Minute(), 0, 0, loc)

		if issue.Time <= 0 || issueTime.Before(fromTime) || issueTime.After(toTime) {
			// Unscheduled or out of the configured hours: park the
			// issue at the start of the day instead of dropping it.
			g.Cells[0].Entries = append(g.Cells[0].Entries, Entry{Issue: issue})
			continue
		}

		entry := Entry{Issue: issue}
		for i := 0; i < dividing; i++ {
			if i*part <= issueTime.Minute() && issueTime.Minute() < (i+1)*part {
				start := issueTime.Add(time.Duration(i*part-issueTime.Minute()) * time.Minute)
				entry.Marker = &Marker{
					Minute: i * part,
					Start:  start,
					Width:  time.Duration(part) * time.Minute,
				}
				break
			}
		}

		idx := cellIndex[issueTime.Hour()]
		g.Cells[idx].Entries = append(g.Cells[idx].Entries, entry)
	}

	return g, nil
}

// placeCommon puts every issue of a common queue into one unbounded cell;
// common queues carry no temporal semantics.
func placeCommon(queue models.Queue) Grid {
	cell := Cell{Hour: -1}
	for _, issue := range queue.Issues {
		cell.Entries = append(cell.Entries, Entry{Issue: issue})
	}
	return Grid{Common: true, Cells: []Cell{cell}}
}

// withinWindow applies the filter step: without showAll both bounds hold;
// with showAll only the upper bound does.
func withinWindow(millis int64, from, to time.Time, showAll bool) bool {
	if millis > to.UnixMilli() {
		return false
	}
	if !showAll && millis < from.UnixMilli() {
		return false
	}
	return true
}
