// Package srctree resolves the fixed header locations inside an engine
// source tree and validates they exist before the pipeline starts.
package srctree

import (
	"fmt"
	"os"
	"path/filepath"
)

// Relative header locations inside the engine source tree.
const (
	vulkanHeaderPath      = "src/MagnumExternal/Vulkan/flextVk.h"
	pixelFormatHeaderPath = "src/Magnum/Vk/PixelFormat.h"
)

// Tree is a validated engine source tree root.
type Tree struct {
	root string
}

// Resolve checks that root is an existing directory and returns a Tree
// for it.
func Resolve(root string) (*Tree, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("failed to access source tree %s: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("source tree %s is not a directory", root)
	}
	return &Tree{root: root}, nil
}

// VulkanHeader returns the path of the Vulkan binding header carrying
// the numeric VK_FORMAT_* constants.
func (t *Tree) VulkanHeader() string {
	return filepath.Join(t.root, filepath.FromSlash(vulkanHeaderPath))
}

// PixelFormatHeader returns the path of the header declaring the engine
// pixel format enum in terms of VK_FORMAT_* symbols.
func (t *Tree) PixelFormatHeader() string {
	return filepath.Join(t.root, filepath.FromSlash(pixelFormatHeaderPath))
}

// Validate checks that both input headers exist as regular files.
func (t *Tree) Validate() error {
	for _, path := range []string{t.VulkanHeader(), t.PixelFormatHeader()} {
		info, err := os.Stat(path)
		if err != nil {
			return fmt.Errorf("missing input header: %w", err)
		}
		if info.IsDir() {
			return fmt.Errorf("input header %s is a directory", path)
		}
	}
	return nil
}
