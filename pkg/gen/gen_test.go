package gen

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hashicorp/go-hclog"

	"github.com/pixelpipe/vkformatgen/pkg/emit"
)

// writeTree lays out a minimal engine source tree with the two input
// headers at their fixed relative locations.
func writeTree(t *testing.T, vulkanHeader, pixelFormatHeader string) string {
	t.Helper()
	root := t.TempDir()

	vkPath := filepath.Join(root, "src", "MagnumExternal", "Vulkan", "flextVk.h")
	if err := os.MkdirAll(filepath.Dir(vkPath), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(vkPath, []byte(vulkanHeader), 0644); err != nil {
		t.Fatal(err)
	}

	pfPath := filepath.Join(root, "src", "Magnum", "Vk", "PixelFormat.h")
	if err := os.MkdirAll(filepath.Dir(pfPath), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(pfPath, []byte(pixelFormatHeader), 0644); err != nil {
		t.Fatal(err)
	}

	return root
}

const testVulkanHeader = `typedef enum VkFormat {
    VK_FORMAT_R8_UNORM = 9,
    VK_FORMAT_BC1_RGBA_UNORM_BLOCK = 133,
    VK_FORMAT_PVRTC2_2BPP_UNORM_BLOCK_IMG = 1000054004,
} VkFormat;
`

const testPixelFormatHeader = `enum class PixelFormat: Int32 {
    R8Unorm = VK_FORMAT_R8_UNORM,
    CompressedBc1RGBAUnorm = VK_FORMAT_BC1_RGBA_UNORM_BLOCK,
    CompressedPvrtc2RGBA2bppUnorm = VK_FORMAT_PVRTC2_2BPP_UNORM_BLOCK_IMG,
};
`

func TestRun(t *testing.T) {
	root := writeTree(t, testVulkanHeader, testPixelFormatHeader)
	outDir := t.TempDir()

	err := Run(hclog.NewNullLogger(), Options{Root: root, OutputDir: outDir})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	plain, err := os.ReadFile(filepath.Join(outDir, emit.FormatMappingFile))
	if err != nil {
		t.Fatal(err)
	}
	compressed, err := os.ReadFile(filepath.Join(outDir, emit.CompressedFormatMappingFile))
	if err != nil {
		t.Fatal(err)
	}

	if !strings.Contains(string(plain), "_c(9, R8Unorm, UNORM) /* VK_FORMAT_R8_UNORM */\n") {
		t.Errorf("plain fragment missing R8Unorm row:\n%s", plain)
	}
	if strings.Contains(string(plain), "Bc1RGBAUnorm") {
		t.Errorf("compressed record leaked into plain fragment:\n%s", plain)
	}
	if !strings.Contains(string(compressed), "_c(133, Bc1RGBAUnorm, UNORM) /* VK_FORMAT_BC1_RGBA_UNORM_BLOCK */\n") {
		t.Errorf("compressed fragment missing Bc1RGBAUnorm row:\n%s", compressed)
	}
	if strings.Contains(string(compressed), "Pvrtc2") {
		t.Errorf("Pvrtc2 family not filtered from compressed fragment:\n%s", compressed)
	}
}

func TestRun_Idempotent(t *testing.T) {
	root := writeTree(t, testVulkanHeader, testPixelFormatHeader)
	outDir := t.TempDir()

	if err := Run(hclog.NewNullLogger(), Options{Root: root, OutputDir: outDir}); err != nil {
		t.Fatalf("first run: %v", err)
	}
	first, err := os.ReadFile(filepath.Join(outDir, emit.FormatMappingFile))
	if err != nil {
		t.Fatal(err)
	}
	firstCompressed, err := os.ReadFile(filepath.Join(outDir, emit.CompressedFormatMappingFile))
	if err != nil {
		t.Fatal(err)
	}

	if err := Run(hclog.NewNullLogger(), Options{Root: root, OutputDir: outDir}); err != nil {
		t.Fatalf("second run: %v", err)
	}
	second, err := os.ReadFile(filepath.Join(outDir, emit.FormatMappingFile))
	if err != nil {
		t.Fatal(err)
	}
	secondCompressed, err := os.ReadFile(filepath.Join(outDir, emit.CompressedFormatMappingFile))
	if err != nil {
		t.Fatal(err)
	}

	if !bytes.Equal(first, second) || !bytes.Equal(firstCompressed, secondCompressed) {
		t.Error("regenerated fragments differ from first run")
	}
}

func TestRun_URGBHaltsBeforeWriting(t *testing.T) {
	vulkanHeader := "    VK_FORMAT_R8_URGB = 9,\n"
	pixelFormatHeader := "    R8Urgb = VK_FORMAT_R8_URGB,\n"
	root := writeTree(t, vulkanHeader, pixelFormatHeader)
	outDir := t.TempDir()

	err := Run(hclog.NewNullLogger(), Options{Root: root, OutputDir: outDir})
	if err == nil {
		t.Fatal("expected error for URGB suffix, got nil")
	}

	for _, name := range []string{emit.FormatMappingFile, emit.CompressedFormatMappingFile} {
		if _, statErr := os.Stat(filepath.Join(outDir, name)); !os.IsNotExist(statErr) {
			t.Errorf("output %s written despite fatal error", name)
		}
	}
}

func TestRun_MissingHeader(t *testing.T) {
	root := t.TempDir()

	err := Run(hclog.NewNullLogger(), Options{Root: root, OutputDir: t.TempDir()})
	if err == nil {
		t.Fatal("expected error for missing input headers, got nil")
	}
}

func TestRun_CheckMode(t *testing.T) {
	root := writeTree(t, testVulkanHeader, testPixelFormatHeader)
	outDir := t.TempDir()

	// Missing outputs count as stale.
	err := Run(hclog.NewNullLogger(), Options{Root: root, OutputDir: outDir, Check: true})
	if !errors.Is(err, ErrStaleOutput) {
		t.Fatalf("error = %v, want ErrStaleOutput", err)
	}

	if err := Run(hclog.NewNullLogger(), Options{Root: root, OutputDir: outDir}); err != nil {
		t.Fatalf("generate: %v", err)
	}

	// Fresh outputs pass.
	if err := Run(hclog.NewNullLogger(), Options{Root: root, OutputDir: outDir, Check: true}); err != nil {
		t.Fatalf("check after generate: %v", err)
	}

	// A modified fragment fails again, without being rewritten.
	path := filepath.Join(outDir, emit.FormatMappingFile)
	if err := os.WriteFile(path, []byte("edited by hand"), 0644); err != nil {
		t.Fatal(err)
	}
	err = Run(hclog.NewNullLogger(), Options{Root: root, OutputDir: outDir, Check: true})
	if !errors.Is(err, ErrStaleOutput) {
		t.Fatalf("error = %v, want ErrStaleOutput", err)
	}
	out, readErr := os.ReadFile(path)
	if readErr != nil {
		t.Fatal(readErr)
	}
	if string(out) != "edited by hand" {
		t.Error("check mode rewrote the fragment on disk")
	}
}
