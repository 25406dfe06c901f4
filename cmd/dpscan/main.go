package main

import (
	"flag"
	"fmt"
	"os"

	"dpscan/internal/di"
	"dpscan/internal/structures"
)

func main() {
	flags := &structures.CliFlags{}
	flag.StringVar(&flags.ConfigPath, "config", "config.yaml", "path to the YAML config file")
	flag.StringVar(&flags.PackagePath, "package", "", "path to the data package directory (overrides config)")
	flag.BoolVar(&flags.DebugMode, "debug", false, "log to console as well as files")
	flag.Parse()

	if _, err := di.InitApp(flags); err != nil {
		fmt.Fprintf(os.Stderr, "dpscan: %s\n", err)
		os.Exit(1)
	}
}
