package controllers

import (
	"net/http"

	"mangestic/dto"
	"mangestic/mappers"
	"mangestic/models"
	"mangestic/utils"

	"github.com/gin-gonic/gin"
)

// listChallengesLimit caps the public challenge listing.
const listChallengesLimit = 100

// ContributeChallenge stores a community-submitted challenge. Only the flag
// digest is persisted. There is no session identity yet, so the author stays
// the "anonymous" placeholder.
func (e *Env) ContributeChallenge(c *gin.Context) {
	var req dto.ContributeChallengeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Fail(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	ch := models.Challenge{
		Title:       req.Title,
		Description: req.Description,
		FlagHash:    utils.Sha256Hex(req.Flag),
		Points:      *req.Points,
		Author:      "anonymous",
		Tags:        req.Tags,
		IsActive:    true,
	}
	if err := e.DB.Create(&ch).Error; err != nil {
		utils.Fail(c, http.StatusInternalServerError, "Database error")
		return
	}

	utils.OK(c, gin.H{"challenge_id": ch.ID})
}

func (e *Env) ListChallenges(c *gin.Context) {
	var challenges []models.Challenge
	if err := e.DB.Where("is_active = ?", true).Limit(listChallengesLimit).Find(&challenges).Error; err != nil {
		utils.Fail(c, http.StatusInternalServerError, "Database error")
		return
	}

	items := make([]dto.ChallengeItem, 0, len(challenges))
	for _, ch := range challenges {
		items = append(items, mappers.MapChallengeToItem(ch))
	}

	utils.OK(c, gin.H{"items": items})
}
