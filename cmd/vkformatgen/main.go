package main

import (
	"fmt"
	"os"
	"runtime/debug"
	"time"

	"github.com/spf13/cobra"

	"github.com/pixelpipe/vkformatgen/pkg"
)

const version = "0.2.0"

var (
	outputDir   string
	checkFlag   bool
	logLevel    string
	versionFlag bool
	rootCmd     *cobra.Command
)

func getBuildTimestamp() string {
	// Try to get vcs.time from build info
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, setting := range info.Settings {
			if setting.Key == "vcs.time" {
				if t, err := time.Parse(time.RFC3339, setting.Value); err == nil {
					return t.UTC().Format(time.RFC3339)
				}
			}
		}
	}
	// Fallback to binary modification time
	if exePath, err := os.Executable(); err == nil {
		if stat, err := os.Stat(exePath); err == nil {
			return stat.ModTime().UTC().Format(time.RFC3339)
		}
	}
	return time.Now().UTC().Format(time.RFC3339)
}

func init() {
	rootCmd = &cobra.Command{
		Use:   "vkformatgen <engine-source-root>",
		Short: "Generate VkFormat to pixel format mapping headers",
		Long: `Scan an engine source tree for the VkFormat constants and the pixel
format enum declarations, and generate the formatMapping.hpp and
compressedFormatMapping.hpp table fragments.`,
		Args: cobra.ExactArgs(1),
		Run:  generate,
	}

	rootCmd.Flags().StringVarP(&outputDir, "output-dir", "o", ".", "Directory receiving the generated fragments")
	rootCmd.Flags().BoolVar(&checkFlag, "check", false, "Verify the fragments on disk are up to date instead of writing")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "", "Log level (trace, debug, info, warn, error)")
	rootCmd.Flags().BoolVarP(&versionFlag, "version", "V", false, "Show version information")
}

func main() {
	// Handle --version or -V before cobra parses other flags
	if len(os.Args) > 1 && (os.Args[1] == "--version" || os.Args[1] == "-V") {
		fmt.Printf("vkformatgen %s\n", version)
		fmt.Printf("Built: %s\n", getBuildTimestamp())
		os.Exit(0)
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func generate(cmd *cobra.Command, args []string) {
	if versionFlag {
		fmt.Printf("vkformatgen %s\n", version)
		fmt.Printf("Built: %s\n", getBuildTimestamp())
		return
	}
	pkg.GenerateWithLogLevel(args[0], outputDir, checkFlag, logLevel)
}
