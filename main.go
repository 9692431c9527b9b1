package main

import (
	"os"

	"github.com/GoArtifactDepot/GoArtifactDepot/app"
)

func main() {
	err := app.Execute()
	if err != nil {
		os.Exit(1)
	}
}
