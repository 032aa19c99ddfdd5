package metrics

import (
	"math"
	"time"

	"hours-dashboard/models"
	projectapimodels "hours-dashboard/models/api/project"

	"github.com/pkg/errors"
)

type Scale string

const (
	DailyScale   Scale = "daily"
	MonthlyScale Scale = "monthly"
	YearlyScale  Scale = "yearly"
)

func ParseScale(value string) (Scale, error) {
	switch Scale(value) {
	case DailyScale, MonthlyScale, YearlyScale:
		return Scale(value), nil
	}
	return "", errors.Errorf("unknown scale %q, expected daily, monthly or yearly", value)
}

// MovingAverageWindow is the number of trailing buckets averaged at each scale.
func (s Scale) MovingAverageWindow() int {
	switch s {
	case DailyScale:
		return 7
	case MonthlyScale:
		return 3
	default:
		return 12
	}
}

func (s Scale) truncate(t time.Time) time.Time {
	switch s {
	case DailyScale:
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	case MonthlyScale:
		return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	default:
		return time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	}
}

func (s Scale) step(t time.Time, n int) time.Time {
	switch s {
	case DailyScale:
		return t.AddDate(0, 0, n)
	case MonthlyScale:
		return t.AddDate(0, n, 0)
	default:
		return t.AddDate(n, 0, 0)
	}
}

func (s Scale) label(t time.Time) string {
	switch s {
	case DailyScale:
		return t.Format("Jan 2")
	case MonthlyScale:
		return t.Format("Jan 2006")
	default:
		return t.Format("2006")
	}
}

// Window is the navigable date range of a chart, both ends inclusive.
type Window struct {
	Start time.Time
	End   time.Time
}

// DefaultWindow covers the last seven days up to now.
func DefaultWindow(now time.Time) Window {
	end := DailyScale.truncate(now)
	return Window{Start: end.AddDate(0, 0, -6), End: end}
}

// Shift moves the window by direction steps: 7 days, 1 month or 1 year each.
func (w Window) Shift(scale Scale, direction int) Window {
	n := direction
	if scale == DailyScale {
		n *= 7
	}
	return Window{Start: scale.step(w.Start, n), End: scale.step(w.End, n)}
}

type Point struct {
	Date  models.Date
	Hours float64
}

func TimeEntryPoints(entries []projectapimodels.TimeEntry) []Point {
	points := make([]Point, 0, len(entries))
	for _, entry := range entries {
		points = append(points, Point{Date: entry.Date, Hours: entry.Hours})
	}
	return points
}

// Series is a chart-ready aggregation. MovingAverage is NaN until its window fills.
type Series struct {
	Scale         Scale
	Buckets       []time.Time
	Labels        []string
	Hours         []float64
	Cumulative    []float64
	MovingAverage []float64
}

func Aggregate(points []Point, scale Scale, window Window) Series {
	first := scale.truncate(window.Start)
	last := scale.truncate(window.End)

	series := Series{Scale: scale}
	index := map[time.Time]int{}
	for bucket := first; !bucket.After(last); bucket = scale.step(bucket, 1) {
		index[bucket] = len(series.Buckets)
		series.Buckets = append(series.Buckets, bucket)
		series.Labels = append(series.Labels, scale.label(bucket))
	}
	series.Hours = make([]float64, len(series.Buckets))
	for _, point := range points {
		if point.Date.IsZero() {
			continue
		}
		if i, ok := index[scale.truncate(point.Date.Time)]; ok {
			series.Hours[i] += point.Hours
		}
	}

	size := scale.MovingAverageWindow()
	series.Cumulative = make([]float64, len(series.Hours))
	series.MovingAverage = make([]float64, len(series.Hours))
	running := 0.0
	for i, hours := range series.Hours {
		running += hours
		series.Cumulative[i] = running
		if i < size-1 {
			series.MovingAverage[i] = math.NaN()
			continue
		}
		sum := 0.0
		for _, h := range series.Hours[i-size+1 : i+1] {
			sum += h
		}
		series.MovingAverage[i] = sum / float64(size)
	}
	return series
}
