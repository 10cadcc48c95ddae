package mappers

import (
	"mangestic/dto"
	"mangestic/models"
)

func MapChallengeToItem(ch models.Challenge) dto.ChallengeItem {
	return dto.ChallengeItem{
		ID:          ch.ID,
		Title:       ch.Title,
		Description: ch.Description,
		Points:      ch.Points,
		Author:      ch.Author,
		Tags:        ch.Tags,
		IsActive:    ch.IsActive,
	}
}
