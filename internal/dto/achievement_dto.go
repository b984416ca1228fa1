package dto

type AchievementResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	UnlockedAt  string `json:"unlocked_at"`
}

type CheckAchievementsResponse struct {
	NewAchievements []AchievementResponse `json:"newAchievements"`
	Count           int                   `json:"count"`
}
