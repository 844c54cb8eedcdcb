// Package formats builds the mapping between VkFormat constants and the
// engine's pixel format enum members, and splits it into the plain and
// compressed groups the generated headers are made of.
package formats

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"regexp"

	"github.com/pixelpipe/vkformatgen/pkg/vkheader"
)

var (
	// Cross-reference errors 🔗
	ErrUnknownFormat = errors.New("❌ pixel format references unknown VkFormat symbol")

	// Suffix classification errors 🏷️
	ErrNoSuffix   = errors.New("❌ no numeric-format suffix in VkFormat symbol")
	ErrURGBSuffix = errors.New("❌ unexpected URGB suffix")
)

// ExpectedCount is the number of mapping entries the pixel format header
// carried when the generator was last reviewed. A differing count means
// formats were added or removed upstream and the output needs a human look.
const ExpectedCount = 135

// Record is one row of the generated mapping table. Records are built
// once and never mutated afterwards.
type Record struct {
	Compressed  bool
	Name        string // engine enum member, without the Compressed prefix
	VulkanName  string // VkFormat symbol, without the VK_FORMAT_ prefix
	VulkanValue string // numeric value, verbatim from the Vulkan header
	Suffix      string
}

// mappingLine matches entries like "    R8Unorm = VK_FORMAT_R8_UNORM,"
// or "    CompressedBc1RGBAUnorm = VK_FORMAT_BC1_RGBA_UNORM_BLOCK,".
var mappingLine = regexp.MustCompile(`^\s+(Compressed)?(\w+) = VK_FORMAT_(\w+),?$`)

// suffixPattern finds the signedness + numeric format token embedded in a
// VkFormat symbol, e.g. UNORM in R8_UNORM or SFLOAT in BC6H_SFLOAT_BLOCK.
// SRGB parses as S + RGB; the U + RGB combination does not exist.
var suffixPattern = regexp.MustCompile(`\w+_([US](NORM|INT|FLOAT|RGB))\w*`)

// Suffix derives the numeric-format classification tag from a VkFormat
// symbol name.
func Suffix(vulkanName string) (string, error) {
	match := suffixPattern.FindStringSubmatch(vulkanName)
	if match == nil {
		return "", fmt.Errorf("%w: %s", ErrNoSuffix, vulkanName)
	}
	if match[1] == "URGB" {
		return "", fmt.Errorf("%w: %s", ErrURGBSuffix, vulkanName)
	}
	return match[1], nil
}

// Build scans the pixel format header and produces one Record per mapping
// entry, in header order. Every referenced VkFormat symbol must exist in
// the table; a missing one means the two headers drifted apart and the
// output would be meaningless.
func Build(r io.Reader, table vkheader.Table) ([]Record, error) {
	var records []Record

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		match := mappingLine.FindStringSubmatch(scanner.Text())
		if match == nil {
			continue
		}

		compressed := match[1] != ""
		name := match[2]
		vulkanName := match[3]

		value, ok := table[vulkanName]
		if !ok {
			return nil, fmt.Errorf("line %d: %w: VK_FORMAT_%s", lineNo, ErrUnknownFormat, vulkanName)
		}

		suffix, err := Suffix(vulkanName)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}

		records = append(records, Record{
			Compressed:  compressed,
			Name:        name,
			VulkanName:  vulkanName,
			VulkanValue: value,
			Suffix:      suffix,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read pixel format header: %w", err)
	}

	return records, nil
}
