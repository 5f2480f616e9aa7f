package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/lvrreddy-3122005/shape-detector-solution/internal/cli"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Optional .env for local development; a missing file is fine.
	_ = godotenv.Load()

	// Log to stderr: stdout carries command output, and the MCP protocol
	// when serving.
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	if os.Getenv("SHAPE_DETECTOR_LOG_LEVEL") == "debug" {
		log.Printf("shape-detector v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
	}

	cli.Execute(fmt.Sprintf("%s (built %s, commit %s)", Version, BuildTime, GitCommit))
}
