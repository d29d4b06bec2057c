package main

import (
	"log"
	"os"
	"portfoliodash/cmd"
	"strconv"
)

func main() {
	port := 8082
	if p := os.Getenv("PORT"); p != "" {
		parsed, err := strconv.Atoi(p)
		if err != nil {
			log.Fatalf("invalid PORT %q: %v", p, err)
		}
		port = parsed
	}

	apiHandler, err := cmd.InitializeDependencies()
	if err != nil {
		log.Fatal(err)
	}
	err = apiHandler.StartApi(port)
	if err != nil {
		log.Fatal(err)
	}
}
