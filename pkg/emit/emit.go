// Package emit renders the generated mapping tables and writes them to
// disk. Output is byte-stable for identical input so regenerated files
// diff cleanly in version control.
package emit

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pixelpipe/vkformatgen/pkg/formats"
)

// Fixed output file names, written into the output directory.
const (
	FormatMappingFile           = "formatMapping.hpp"
	CompressedFormatMappingFile = "compressedFormatMapping.hpp"
)

const licenseHeader = `/*
    This file is part of the vkformatgen pixel format tables.

    Copyright © the vkformatgen authors

    Permission is hereby granted, free of charge, to any person obtaining a
    copy of this software and associated documentation files (the "Software"),
    to deal in the Software without restriction, including without limitation
    the rights to use, copy, modify, merge, publish, distribute, sublicense,
    and/or sell copies of the Software, and to permit persons to whom the
    Software is furnished to do so, subject to the following conditions:

    The above copyright notice and this permission notice shall be included
    in all copies or substantial portions of the Software.

    THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
    IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
    FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL
    THE AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
    LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING
    FROM, OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER
    DEALINGS IN THE SOFTWARE.
*/

/* Autogenerated by vkformatgen. Do not edit! */

`

// Fragment renders one mapping table. The target parameter names the
// engine enum in the column comment, either PixelFormat or
// CompressedPixelFormat. The table is guarded by #ifdef _c so consumers
// define the macro before including the fragment.
func Fragment(target string, records []formats.Record) []byte {
	var buf bytes.Buffer
	buf.WriteString(licenseHeader)
	fmt.Fprintf(&buf, "/* VkFormat, %s, Implementation::VkFormatSuffix */\n", target)
	buf.WriteString("#ifdef _c\n")
	for _, rec := range records {
		fmt.Fprintf(&buf, "_c(%s, %s, %s) /* VK_FORMAT_%s */\n",
			rec.VulkanValue, rec.Name, rec.Suffix, rec.VulkanName)
	}
	buf.WriteString("#endif\n")
	return buf.Bytes()
}

// Write renders both fragments and writes them into dir, overwriting any
// existing files.
func Write(dir string, plain, compressed []formats.Record) error {
	files := map[string][]byte{
		FormatMappingFile:           Fragment("PixelFormat", plain),
		CompressedFormatMappingFile: Fragment("CompressedPixelFormat", compressed),
	}
	for _, name := range []string{FormatMappingFile, CompressedFormatMappingFile} {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, files[name], 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", name, err)
		}
	}
	return nil
}
