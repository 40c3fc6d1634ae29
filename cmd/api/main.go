package main

import (
	"log"
	"os"
	"strconv"

	"stockpulse/cmd"
	"stockpulse/internal/logger"
)

const defaultPort = 3009

func main() {
	lg := logger.New()
	lg.Infow("starting api", "commit", os.Getenv("commit_hash"))

	apiHandler, err := cmd.InitializeDependencies()
	if err != nil {
		log.Fatal(err)
	}
	defer cmd.CloseDependencies(apiHandler)

	port := defaultPort
	if p, err := strconv.Atoi(os.Getenv("PORT")); err == nil {
		port = p
	}

	err = apiHandler.StartApi(port)
	if err != nil {
		log.Fatal(err)
	}
}
