package dto

// ========== request DTOs ==========

type ContributeChallengeReq struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description" binding:"required"`
	Flag        string   `json:"flag" binding:"required"`
	Points      *int     `json:"points" binding:"required,gte=0"`
	Tags        []string `json:"tags"`
}

type SubmitFlagReq struct {
	ChallengeID string `json:"challenge_id" binding:"required"`
	Flag        string `json:"flag" binding:"required"`
}

// ========== response DTOs ==========

// ChallengeItem is a challenge as shown to players: everything except the
// flag digest.
type ChallengeItem struct {
	ID          string   `json:"_id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Points      int      `json:"points"`
	Author      string   `json:"author"`
	Tags        []string `json:"tags,omitempty"`
	IsActive    bool     `json:"is_active"`
}

type LeaderboardEntry struct {
	Username string `json:"username"`
	Score    int    `json:"score"`
}
