package routes

import (
	"mangestic/controllers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter(env *controllers.Env) *gin.Engine {
	r := gin.Default()

	// Wide open on purpose: any origin, any method, any header, credentials
	// allowed. Flagged as a deployment decision, not an oversight.
	r.Use(cors.New(cors.Config{
		AllowOriginFunc:  func(origin string) bool { return true },
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"*"},
		AllowCredentials: true,
	}))

	r.GET("/", env.Root)
	r.GET("/test", env.TestDatabase)

	api := r.Group("/api")
	{
		api.POST("/register", env.Register)
		api.POST("/login", env.Login)
		api.POST("/challenges", env.ContributeChallenge)
		api.GET("/challenges", env.ListChallenges)
		api.POST("/submit-flag", env.SubmitFlag)
		api.GET("/leaderboard", env.Leaderboard)
	}

	return r
}
