// Package cli provides shared version and producer identity for the
// command-line tools.
package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"

	semver "github.com/Masterminds/semver/v3"
)

// Version information for all CLI tools.
const (
	Version   = "0.3.1"
	BuildDate = "2026-08-29"
	CommitSHA = "unknown" // Will be set during build
)

// VersionInfo contains version and build information.
type VersionInfo struct {
	Version   string `json:"version"`
	BuildDate string `json:"build_date"`
	CommitSHA string `json:"commit_sha"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
	Arch      string `json:"arch"`
}

// GetVersionInfo returns structured version information.
func GetVersionInfo() *VersionInfo {
	return &VersionInfo{
		Version:   canonicalVersion(),
		BuildDate: BuildDate,
		CommitSHA: CommitSHA,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS,
		Arch:      runtime.GOARCH,
	}
}

// Producer builds the producer string recorded in compile unit
// entries: tool name, canonical version, target triple.
func Producer(tool, triple string) string {
	return fmt.Sprintf("%s %s (%s)", tool, canonicalVersion(), triple)
}

// canonicalVersion normalizes Version through semver so builds stamped
// with sloppy tags (v-prefixed, zero-padded) still record one spelling.
func canonicalVersion() string {
	v, err := semver.NewVersion(Version)
	if err != nil {
		return Version
	}
	return v.String()
}

// PrintVersion prints version information in a consistent format.
func PrintVersion(toolName string, jsonOutput bool) {
	info := GetVersionInfo()

	if jsonOutput {
		data, err := json.MarshalIndent(map[string]interface{}{
			"tool":         toolName,
			"version_info": info,
		}, "", "  ")
		if err != nil {
			// Fallback to plain text if JSON marshaling fails
			fmt.Fprintf(os.Stderr, "Error: Failed to marshal version info to JSON: %v\n", err)
			jsonOutput = false
		} else {
			fmt.Println(string(data))
			return
		}
	}

	if !jsonOutput {
		fmt.Printf("%s v%s\n", toolName, info.Version)
		fmt.Printf("Build Date: %s\n", info.BuildDate)
		if info.CommitSHA != "unknown" && info.CommitSHA != "" {
			fmt.Printf("Commit: %s\n", info.CommitSHA)
		}
		fmt.Printf("Go Version: %s\n", info.GoVersion)
		fmt.Printf("Platform: %s/%s\n", info.Platform, info.Arch)
	}
}

// ExitWithError prints an error message and exits with code 1.
func ExitWithError(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
