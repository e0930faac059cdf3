package analytics

import (
	"context"
	"sort"
	"time"

	"github.com/pkg/errors"

	"github.com/datapulse/backend/core"
	"github.com/datapulse/backend/core/activity"
	"github.com/datapulse/backend/core/course"
)

// All day bucketing uses UTC: "today" starts at 00:00 UTC and an event's day
// is the date portion of its UTC timestamp.
const (
	// recentEventWindow bounds the working set for trend metrics. Older events
	// silently age out of the charts past this horizon.
	recentEventWindow = 500

	// dailyActiveDays caps DailyActiveUsers to the most recent calendar days
	// present in the window.
	dailyActiveDays = 14

	// courseTitleLen is the display truncation for course names.
	courseTitleLen = 15

	dayFormat = "2006-01-02"
)

var NowFunc = time.Now // mockable

type (
	Repository interface {
		CountUsers(ctx context.Context) (int, error)
		CountCourses(ctx context.Context) (int, error)
		CountChatbotQueries(ctx context.Context) (int, error)
		// QueryActiveUserIDs returns the user id of every event with
		// timestamp >= since. Duplicates are fine; the service dedupes.
		QueryActiveUserIDs(ctx context.Context, since time.Time) ([]string, error)
		// QueryRecentActivities returns the most recent events, newest first.
		QueryRecentActivities(ctx context.Context, limit int) ([]activity.Activity, error)
		QueryCourseCounters(ctx context.Context) ([]course.Course, error)
		// QueryUserSignupTimes returns every user's creation time, ascending.
		QueryUserSignupTimes(ctx context.Context) ([]time.Time, error)
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Snapshot recomputes the full metrics set. It reads the bounded recent event
// window plus auxiliary counts; an empty store yields empty slices, not errors.
// Re-running with no new events yields identical output.
func (svc *Service) Snapshot(ctx context.Context) (Snapshot, error) {
	totalUsers, err := svc.repo.CountUsers(ctx)
	if err != nil {
		return Snapshot{}, errors.Wrap(err, "counting users")
	}
	totalCourses, err := svc.repo.CountCourses(ctx)
	if err != nil {
		return Snapshot{}, errors.Wrap(err, "counting courses")
	}
	totalQueries, err := svc.repo.CountChatbotQueries(ctx)
	if err != nil {
		return Snapshot{}, errors.Wrap(err, "counting chatbot queries")
	}

	activeToday, err := svc.activeToday(ctx)
	if err != nil {
		return Snapshot{}, err
	}

	recent, err := svc.repo.QueryRecentActivities(ctx, recentEventWindow)
	if err != nil {
		return Snapshot{}, errors.Wrap(err, "querying recent activities")
	}

	courses, err := svc.repo.QueryCourseCounters(ctx)
	if err != nil {
		return Snapshot{}, errors.Wrap(err, "querying course counters")
	}

	growth, err := svc.userGrowth(ctx)
	if err != nil {
		return Snapshot{}, err
	}

	return Snapshot{
		TotalUsers:        totalUsers,
		ActiveToday:       activeToday,
		TotalCourses:      totalCourses,
		TotalQueries:      totalQueries,
		DailyActiveUsers:  dailyActiveUsers(recent),
		ActivityTypes:     activityTypes(recent),
		CourseEnrollments: courseEnrollments(courses),
		UserGrowth:        growth,
		Insights:          defaultInsights(),
	}, nil
}

// activeToday counts engagement, not event volume: a user with 50 events today
// still counts once.
func (svc *Service) activeToday(ctx context.Context) (int, error) {
	now := NowFunc().UTC()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	ids, err := svc.repo.QueryActiveUserIDs(ctx, startOfDay)
	if err != nil {
		return 0, errors.Wrap(err, "querying active users")
	}
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		seen[id] = struct{}{}
	}
	return len(seen), nil
}

// dailyActiveUsers buckets the working set by UTC calendar day with a
// distinct-user set per day, ascending, keeping only the last dailyActiveDays
// buckets. Days with no activity in the window are absent, not zero-filled.
func dailyActiveUsers(events []activity.Activity) []DailyActive {
	daily := make(map[string]map[string]struct{})
	for _, ev := range events {
		day := ev.Timestamp.UTC().Format(dayFormat)
		users, ok := daily[day]
		if !ok {
			users = make(map[string]struct{})
			daily[day] = users
		}
		users[ev.UserID] = struct{}{}
	}

	out := make([]DailyActive, 0, len(daily))
	for day, users := range daily {
		out = append(out, DailyActive{Date: day, Count: len(users)})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })

	if len(out) > dailyActiveDays {
		out = out[len(out)-dailyActiveDays:]
	}
	return out
}

// activityTypes tallies each action type seen in the working set. There is no
// predefined universe of types and no guaranteed bucket order.
func activityTypes(events []activity.Activity) []ActivityType {
	tally := make(map[string]int)
	order := make([]string, 0)
	for _, ev := range events {
		if _, ok := tally[ev.ActionType]; !ok {
			order = append(order, ev.ActionType)
		}
		tally[ev.ActionType]++
	}

	out := make([]ActivityType, 0, len(tally))
	for _, name := range order {
		out = append(out, ActivityType{Name: name, Value: tally[name]})
	}
	return out
}

func courseEnrollments(courses []course.Course) []CourseEnrollment {
	out := make([]CourseEnrollment, 0, len(courses))
	for _, crs := range courses {
		out = append(out, CourseEnrollment{
			Name:  core.TruncateString(crs.Title, courseTitleLen),
			Count: crs.EnrollmentsCount,
		})
	}
	return out
}

// userGrowth buckets signups by UTC day and computes a running cumulative sum:
// one point per day that had at least one signup, monotonically non-decreasing.
func (svc *Service) userGrowth(ctx context.Context) ([]GrowthPoint, error) {
	signups, err := svc.repo.QueryUserSignupTimes(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "querying user signup times")
	}

	perDay := make(map[string]int)
	for _, t := range signups {
		perDay[t.UTC().Format(dayFormat)]++
	}
	days := make([]string, 0, len(perDay))
	for day := range perDay {
		days = append(days, day)
	}
	sort.Strings(days)

	out := make([]GrowthPoint, 0, len(days))
	var cumulative int
	for _, day := range days {
		cumulative += perDay[day]
		out = append(out, GrowthPoint{Date: day, Users: cumulative})
	}
	return out, nil
}
