package main

import (
	_ "github.com/joho/godotenv/autoload"

	"github.com/zmajumder/portfolio/cmd"
)

// Version is set at build time via -ldflags "-X main.Version=..."
var Version = "dev"

func main() {
	cmd.SetVersion(Version)
	cmd.Execute()
}
