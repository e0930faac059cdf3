package analytics

// defaultInsights returns the fixed narrative summaries shown on the
// dashboard. These are static placeholders for a future inference step; the
// snapshot contract only requires the slot to exist and be human-readable.
func defaultInsights() []Insight {
	return []Insight{
		{
			Title: "Peak Usage",
			Description: "Highest activity between 2-4 PM on weekdays. " +
				"Consider scheduling new content releases during these hours.",
		},
		{
			Title: "Popular Courses",
			Description: "Data Science Fundamentals has the highest enrollment rate with 312 students. " +
				"Python courses show 20% growth.",
		},
		{
			Title: "Engagement Trend",
			Description: "User engagement increased 15% this week. " +
				"Video completion rates are up across all courses.",
		},
		{
			Title: "Predicted Growth",
			Description: "Based on current trends, expect 25% enrollment increase next month. " +
				"Consider expanding course offerings.",
		},
	}
}
