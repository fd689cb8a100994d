package main

import (
	"log"

	"github.com/lexacus/exercise-tracker/internal/api"
	"github.com/lexacus/exercise-tracker/internal/repository"
	"github.com/lexacus/exercise-tracker/internal/service"
	"github.com/lexacus/exercise-tracker/pkg/cleanup"
	"github.com/lexacus/exercise-tracker/pkg/config"
)

func init() {
	service.InitValidator()
}

func main() {
	cfg := config.New()
	dbCfg := repository.PGCfg{
		Address:  cfg.GetString("POSTGRES_DB_ADDRESS"),
		Username: cfg.GetString("POSTGRES_USER"),
		Password: cfg.GetString("POSTGRES_PASSWORD"),
		DB:       cfg.GetString("POSTGRES_DB"),
	}
	trackerService := service.NewTrackerService(
		repository.NewUsersRepo(&dbCfg),
		repository.NewExercisesRepo(&dbCfg),
	)
	serv := api.New(&api.ServerOptions{
		TrackerService: trackerService,
		StaticDir:      cfg.GetStringOr("STATIC_DIR", "./web"),
	})
	addr := cfg.GetStringOr("API_ADDRESS", ":3000")
	log.Println("Your app is listening on " + addr)
	err := serv.Run(addr)
	if err != nil {
		log.Println("Server error: " + err.Error())
	}
	cleanup.CleanUp()
}
