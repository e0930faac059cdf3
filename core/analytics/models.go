package analytics

type (
	// DailyActive is the count of distinct users with at least one event on a
	// calendar day (UTC).
	DailyActive struct {
		Date  string `json:"date"`
		Count int    `json:"count"`
	}

	// ActivityType is one bucket of the action-type histogram.
	ActivityType struct {
		Name  string `json:"name"`
		Value int    `json:"value"`
	}

	// CourseEnrollment pairs a course's display title with its standalone
	// enrollment counter.
	CourseEnrollment struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}

	// GrowthPoint is the cumulative user count as of a signup day.
	GrowthPoint struct {
		Date  string `json:"date"`
		Users int    `json:"users"`
	}

	Insight struct {
		Title       string `json:"title"`
		Description string `json:"description"`
	}

	// Snapshot is the full set of derived metrics returned by one aggregation
	// call. It is recomputed from scratch on every request; nothing here is
	// persisted.
	Snapshot struct {
		TotalUsers        int                `json:"totalUsers"`
		ActiveToday       int                `json:"activeToday"`
		TotalCourses      int                `json:"totalCourses"`
		TotalQueries      int                `json:"totalQueries"`
		DailyActiveUsers  []DailyActive      `json:"dailyActiveUsers"`
		ActivityTypes     []ActivityType     `json:"activityTypes"`
		CourseEnrollments []CourseEnrollment `json:"courseEnrollments"`
		UserGrowth        []GrowthPoint      `json:"userGrowth"`
		Insights          []Insight          `json:"insights"`
	}
)
