package main

import (
	"os"

	"papertrade/cmd"
	"papertrade/internal/logger"

	_ "github.com/lib/pq"
)

func main() {
	log := logger.New()
	log.Infof("commit hash: %s", os.Getenv("commit_hash"))

	apiHandler, err := cmd.InitializeDependencies()
	if err != nil {
		log.Fatal(err)
	}
	err = apiHandler.StartApi(3009)
	if err != nil {
		log.Fatal(err)
	}
}
