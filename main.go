package main

import (
	"log"

	"mangestic/config"
	"mangestic/controllers"
	"mangestic/database"
	"mangestic/routes"
)

func main() {
	config.Load()

	db, err := database.Connect(config.AppConfig.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.MigrateTables(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	rdb := database.ConnectRedis(config.AppConfig.RedisAddr, config.AppConfig.RedisPassword, config.AppConfig.RedisDB)

	env := &controllers.Env{DB: db, RDB: rdb}
	r := routes.SetupRouter(env)

	addr := ":" + config.AppConfig.Port
	log.Println("Starting server on " + addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
