package config

import (
	"flag"
	"os"
)

// ParseFlags parses all configuration flags from the process arguments.
//
// Flags:
//
//	-f video config file path to open at startup
//	-state editor state sidecar path
//	-no-steam-scan disable the Steam userdata scan
//	-steam-root extra Steam install directory to probe
//	-log log file path
//	-c/-config json file path with configs
func ParseFlags() *StructuredConfig {
	return parseFlags(flag.CommandLine, os.Args[1:])
}

func parseFlags(fs *flag.FlagSet, args []string) *StructuredConfig {
	var configPath string
	var statePath string
	var noSteamScan bool
	var steamRoot string
	var logPath string
	var jsonConfigPath string

	fs.StringVar(&configPath, "f", "", "Video config file path")
	fs.StringVar(&statePath, "state", "", "Editor state sidecar path")
	fs.BoolVar(&noSteamScan, "no-steam-scan", false, "Disable Steam userdata scan")
	fs.StringVar(&steamRoot, "steam-root", "", "Extra Steam install directory")
	fs.StringVar(&logPath, "log", "", "Log file path")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	fs.Parse(args)

	return &StructuredConfig{
		Editor: Editor{
			StatePath:  statePath,
			ConfigPath: configPath,
		},
		Steam: Steam{
			ScanDisabled: noSteamScan,
			ExtraRoot:    steamRoot,
		},
		Log: Log{
			Path: logPath,
		},
		JSONFilePath: jsonConfigPath,
	}
}
