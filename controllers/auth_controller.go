package controllers

import (
	"net/http"

	"mangestic/models"
	"mangestic/utils"

	"github.com/gin-gonic/gin"
)

func (e *Env) Register(c *gin.Context) {
	var req struct {
		Username string `json:"username" binding:"required"`
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Fail(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	var existing models.User
	if err := e.DB.Where("username = ? OR email = ?", req.Username, req.Email).First(&existing).Error; err == nil {
		utils.Fail(c, http.StatusBadRequest, "Username or email already exists")
		return
	}

	user := models.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: utils.Sha256Hex(req.Password),
	}
	if err := e.DB.Create(&user).Error; err != nil {
		utils.Fail(c, http.StatusInternalServerError, "Database error")
		return
	}

	utils.OK(c, gin.H{"user_id": user.ID})
}

func (e *Env) Login(c *gin.Context) {
	var req struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Fail(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	// Same message whether the user is unknown or the password is wrong, so
	// the endpoint cannot be used to enumerate usernames.
	var user models.User
	hashed := utils.Sha256Hex(req.Password)
	if err := e.DB.Where("username = ? AND password_hash = ?", req.Username, hashed).First(&user).Error; err != nil {
		utils.Fail(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	utils.OK(c, gin.H{"username": user.Username})
}
