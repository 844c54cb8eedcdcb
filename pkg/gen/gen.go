// Package gen drives the generation pipeline: extract the VkFormat
// constants, build the mapping records, partition them, and emit the two
// header fragments.
package gen

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/hashicorp/go-hclog"

	"github.com/pixelpipe/vkformatgen/internal/srctree"
	"github.com/pixelpipe/vkformatgen/pkg/emit"
	"github.com/pixelpipe/vkformatgen/pkg/formats"
	"github.com/pixelpipe/vkformatgen/pkg/logging"
	"github.com/pixelpipe/vkformatgen/pkg/vkheader"
)

// ErrStaleOutput is returned in check mode when a fragment on disk does
// not match what would be generated.
var ErrStaleOutput = errors.New("❌ generated output is stale")

// Options configure one generator run.
type Options struct {
	// Root is the engine source tree to scan.
	Root string
	// OutputDir receives the two fragments. Empty means the current
	// working directory.
	OutputDir string
	// Check compares against the files on disk instead of writing.
	Check bool
}

// RunWithLogLevel builds a logger with flag > environment > default
// level precedence and runs the pipeline, exiting the process on any
// fatal integrity failure.
func RunWithLogLevel(opts Options, cliLogLevel string) {
	level := logging.ResolveLevel(cliLogLevel)
	logger := logging.NewLogger("vkformatgen", level, os.Stderr)

	logger.Info("🧩 vkformatgen starting", "root", opts.Root)

	if err := Run(logger, opts); err != nil {
		logger.Error("❌ Generation failed", "error", err)
		os.Exit(1)
	}
}

// Run executes the pipeline. It returns an error on any fatal integrity
// failure; no output file is touched in that case. The record-count
// drift check only warns.
func Run(logger hclog.Logger, opts Options) error {
	tree, err := srctree.Resolve(opts.Root)
	if err != nil {
		return err
	}
	if err := tree.Validate(); err != nil {
		return err
	}

	table, err := extractTable(logger, tree.VulkanHeader())
	if err != nil {
		return err
	}

	records, err := buildRecords(logger, tree.PixelFormatHeader(), table)
	if err != nil {
		return err
	}

	if len(records) != formats.ExpectedCount {
		// Upstream header drift. Worth a human look, not worth
		// blocking generation.
		color.New(color.FgYellow).Fprintln(os.Stdout, "Unexpected number of formats")
		logger.Warn("⚠️ Unexpected number of formats",
			"got", len(records), "expected", formats.ExpectedCount)
	}

	plain, compressed := formats.Partition(records)
	logger.Debug("📊 Partitioned records",
		"plain", len(plain), "compressed", len(compressed))

	outDir := opts.OutputDir
	if outDir == "" {
		outDir = "."
	}

	if opts.Check {
		return check(logger, outDir, plain, compressed)
	}

	if err := emit.Write(outDir, plain, compressed); err != nil {
		return err
	}
	logger.Info("✅ Wrote mapping fragments", "dir", outDir)
	return nil
}

func extractTable(logger hclog.Logger, path string) (vkheader.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open Vulkan header: %w", err)
	}
	defer f.Close()

	table, err := vkheader.Extract(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	logger.Debug("🔍 Extracted VkFormat constants", "count", len(table))
	return table, nil
}

func buildRecords(logger hclog.Logger, path string, table vkheader.Table) ([]formats.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open pixel format header: %w", err)
	}
	defer f.Close()

	records, err := formats.Build(f, table)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	logger.Debug("🔍 Built mapping records", "count", len(records))
	return records, nil
}

// check renders both fragments in memory and compares them against the
// files on disk without writing anything.
func check(logger hclog.Logger, dir string, plain, compressed []formats.Record) error {
	want := map[string][]byte{
		emit.FormatMappingFile:           emit.Fragment("PixelFormat", plain),
		emit.CompressedFormatMappingFile: emit.Fragment("CompressedPixelFormat", compressed),
	}

	for _, name := range []string{emit.FormatMappingFile, emit.CompressedFormatMappingFile} {
		path := filepath.Join(dir, name)
		got, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("%w: %s: %v", ErrStaleOutput, name, err)
		}
		if !bytes.Equal(got, want[name]) {
			return fmt.Errorf("%w: %s differs", ErrStaleOutput, name)
		}
	}

	logger.Info("✅ Generated fragments are up to date", "dir", dir)
	return nil
}
