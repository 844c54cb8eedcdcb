// Package vkheader extracts numeric VkFormat constants from a Vulkan
// binding header so later stages can dereference symbols to their values.
package vkheader

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"regexp"
)

var (
	// ErrDuplicateFormat is returned when the header defines the same
	// VK_FORMAT_* symbol twice, which signals a malformed header.
	ErrDuplicateFormat = errors.New("❌ duplicate VkFormat symbol")
)

// formatLine matches enum entries like "    VK_FORMAT_R8_UNORM = 9,".
// VK_FORMAT_FEATURE_* flag bits use hex literals and never match the
// decimal value group.
var formatLine = regexp.MustCompile(`^\s+VK_FORMAT_(\w+) = (\d+),?$`)

// Table maps a VkFormat symbol (without the VK_FORMAT_ prefix) to its
// numeric value. The value is kept verbatim as the digit string from the
// header, never parsed into an integer.
type Table map[string]string

// Extract scans a Vulkan header line by line and collects every decimal
// VK_FORMAT_* constant into a Table.
func Extract(r io.Reader) (Table, error) {
	table := Table{}

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		match := formatLine.FindStringSubmatch(scanner.Text())
		if match == nil {
			continue
		}

		name, value := match[1], match[2]
		if _, exists := table[name]; exists {
			return nil, fmt.Errorf("line %d: %w: VK_FORMAT_%s", lineNo, ErrDuplicateFormat, name)
		}
		table[name] = value
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read Vulkan header: %w", err)
	}

	return table, nil
}
