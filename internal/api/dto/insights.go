package dto

import (
	"github.com/habitloop/backend/internal/domain/habits"
	"github.com/habitloop/backend/internal/domain/insights"
)

// InsightsQuery carries the date the client is asking about. The client owns
// the timezone, so "today" always arrives as an explicit calendar date.
type InsightsQuery struct {
	Date string `form:"date" binding:"required,dateonly"`
}

// StreakResponse represents per-habit streak stats in API responses
type StreakResponse struct {
	HabitID     string `json:"habit_id"`
	Title       string `json:"title"`
	Current     int    `json:"current"`
	Longest     int    `json:"longest"`
	Consistency int    `json:"consistency"`
}

// WeeklyBucketResponse is one day of the trailing-week chart
type WeeklyBucketResponse struct {
	Day       string `json:"day"`
	Date      string `json:"date"`
	Completed int    `json:"completed"`
	Total     int    `json:"total"`
}

// AnchorHabitResponse is a keystone habit with its linkage score
type AnchorHabitResponse struct {
	HabitID string  `json:"habit_id"`
	Title   string  `json:"title"`
	Score   float64 `json:"score"`
}

// InsightResponse is the selected daily insight
type InsightResponse struct {
	Text     string `json:"text"`
	Category string `json:"category"`
}

// UserInsightsResponse is the full analytics payload for one user and date
type UserInsightsResponse struct {
	Date           string                 `json:"date"`
	WeeklyData     []WeeklyBucketResponse `json:"weekly_data"`
	WeeklyRate     int                    `json:"weekly_rate"`
	BestDay        string                 `json:"best_day,omitempty"`
	WorstDay       string                 `json:"worst_day,omitempty"`
	AnchorHabits   []AnchorHabitResponse  `json:"anchor_habits"`
	HabitStreaks   []StreakResponse       `json:"habit_streaks"`
	ImprovementTip string                 `json:"improvement_tip"`
	DailyInsight   InsightResponse        `json:"daily_insight"`
}

// ToStreakResponse converts engine streak stats for one habit
func ToStreakResponse(v habits.HabitStreakView) StreakResponse {
	return StreakResponse{
		HabitID:     v.HabitID,
		Title:       v.Title,
		Current:     v.StreakStats.Current,
		Longest:     v.StreakStats.Longest,
		Consistency: v.StreakStats.Consistency,
	}
}

// ToUserInsightsResponse converts the domain payload to its API shape
func ToUserInsightsResponse(in *habits.UserInsights) UserInsightsResponse {
	weekly := make([]WeeklyBucketResponse, len(in.WeeklyData))
	for i, b := range in.WeeklyData {
		weekly[i] = WeeklyBucketResponse{
			Day:       b.DayLabel,
			Date:      b.Date,
			Completed: b.CompletedCount,
			Total:     b.ScheduledCount,
		}
	}

	anchors := make([]AnchorHabitResponse, len(in.AnchorHabits))
	for i, a := range in.AnchorHabits {
		anchors[i] = AnchorHabitResponse{HabitID: a.HabitID, Title: a.Title, Score: a.Score}
	}

	streaks := make([]StreakResponse, len(in.HabitStreaks))
	for i, s := range in.HabitStreaks {
		streaks[i] = ToStreakResponse(s)
	}

	return UserInsightsResponse{
		Date:           in.Date,
		WeeklyData:     weekly,
		WeeklyRate:     in.WeeklyRate,
		BestDay:        in.BestDay,
		WorstDay:       in.WorstDay,
		AnchorHabits:   anchors,
		HabitStreaks:   streaks,
		ImprovementTip: in.ImprovementTip,
		DailyInsight:   InsightResponse(in.DailyInsight),
	}
}

// ToInsightResponse converts a single insight
func ToInsightResponse(in *insights.Insight) InsightResponse {
	return InsightResponse{Text: in.Text, Category: in.Category}
}
