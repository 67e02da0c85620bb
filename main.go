package main

import (
	"log"

	"scribe-cli/api"
	"scribe-cli/auth"
	"scribe-cli/cmd"
	"scribe-cli/fs"

	"gopkg.in/natefinch/lumberjack.v2"
)

func init() {
	// inter-package dependency injection to avoid circular imports
	auth.SetApiClient(api.Client)

	// file logger with rotation; terminal output goes through term, not log
	log.SetOutput(&lumberjack.Logger{
		Filename:   fs.HomeLogPath,
		MaxSize:    10, // megabytes
		MaxBackups: 3,
	})
}

func main() {
	cmd.Execute()
}
