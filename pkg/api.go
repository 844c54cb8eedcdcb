package pkg

import (
	"github.com/pixelpipe/vkformatgen/pkg/gen"
)

func Generate(root, outputDir string) {
	gen.RunWithLogLevel(gen.Options{Root: root, OutputDir: outputDir}, "")
}

func GenerateWithLogLevel(root, outputDir string, check bool, logLevel string) {
	gen.RunWithLogLevel(gen.Options{Root: root, OutputDir: outputDir, Check: check}, logLevel)
}
