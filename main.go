package main

import (
	"os"

	"github.com/skillmatch/job-recommender/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
