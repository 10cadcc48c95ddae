package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"mangestic/dto"
	"mangestic/models"
	"mangestic/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	leaderboardLimit    = 50
	leaderboardCacheKey = "leaderboard:top"
	// Short TTL keeps the board near-real-time even if an invalidation is
	// ever missed.
	leaderboardCacheTTL = 15 * time.Second
)

// SubmitFlag validates a submitted flag against the stored digest and, on a
// match, records a Solve carrying the challenge's current points. Repeat
// correct submissions create repeat solves; there is no dedup per user.
func (e *Env) SubmitFlag(c *gin.Context) {
	var req dto.SubmitFlagReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Fail(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if _, err := uuid.Parse(req.ChallengeID); err != nil {
		utils.Fail(c, http.StatusBadRequest, "Invalid challenge id")
		return
	}

	var ch models.Challenge
	if err := e.DB.Where("id = ?", req.ChallengeID).First(&ch).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Fail(c, http.StatusNotFound, "Challenge not found")
			return
		}
		utils.Fail(c, http.StatusInternalServerError, "Database error")
		return
	}
	// Inactive challenges are indistinguishable from missing ones.
	if !ch.IsActive {
		utils.Fail(c, http.StatusNotFound, "Challenge not found")
		return
	}

	if utils.Sha256Hex(req.Flag) != ch.FlagHash {
		utils.Fail(c, http.StatusBadRequest, "Incorrect flag")
		return
	}

	solve := models.Solve{
		ChallengeID: ch.ID,
		Username:    "anonymous", // no session identity is propagated yet
		Points:      ch.Points,
	}
	if err := e.DB.Create(&solve).Error; err != nil {
		utils.Fail(c, http.StatusInternalServerError, "Database error")
		return
	}

	if e.RDB != nil {
		e.RDB.Del(c.Request.Context(), leaderboardCacheKey)
	}

	utils.OK(c, gin.H{"message": "Flag accepted"})
}

// Leaderboard sums points per username across all solves, descending, top 50.
// Reads through the redis cache when one is configured.
func (e *Env) Leaderboard(c *gin.Context) {
	ctx := c.Request.Context()

	if e.RDB != nil {
		if val, err := e.RDB.Get(ctx, leaderboardCacheKey).Result(); err == nil {
			var items []dto.LeaderboardEntry
			if json.Unmarshal([]byte(val), &items) == nil {
				utils.OK(c, gin.H{"items": items})
				return
			}
		}
	}

	items := make([]dto.LeaderboardEntry, 0)
	err := e.DB.Model(&models.Solve{}).
		Select("username, SUM(points) as score").
		Group("username").
		Order("score desc").
		Limit(leaderboardLimit).
		Scan(&items).Error
	if err != nil {
		utils.Fail(c, http.StatusInternalServerError, "Database error")
		return
	}

	if e.RDB != nil {
		if data, err := json.Marshal(items); err == nil {
			e.RDB.Set(ctx, leaderboardCacheKey, data, leaderboardCacheTTL)
		}
	}

	utils.OK(c, gin.H{"items": items})
}
