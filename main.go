package main

import (
	"github.com/joho/godotenv"
	"github.com/skylark-hq/skylark/cmd"
)

func main() {
	// .env is optional; real environments set variables directly
	_ = godotenv.Load()
	cmd.Execute()
}
