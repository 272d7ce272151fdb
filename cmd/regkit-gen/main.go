// Command regkit-gen generates typed register accessor packages from
// YAML layout definitions.
//
// Usage:
//
//	regkit-gen -layout <path> -output <dir> [-package <name>]
//
// The layout YAML names a register and its bit fields (offset, width,
// optional default, unit and named values). The generated package
// defines the regmap.Field descriptors, one accessor type per field
// with range-checked Set and Read, and enum types for fields that
// declare named values. See layouts/gpio23.yaml for a worked sample.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/tools/imports"
)

func main() {
	layoutPath := flag.String("layout", "", "Path to register layout YAML")
	outputDir := flag.String("output", "", "Output directory for the generated Go file")
	pkgName := flag.String("package", "", "Package name for generated code (default: register name)")
	flag.Parse()

	if *layoutPath == "" || *outputDir == "" {
		fmt.Fprintln(os.Stderr, "Usage: regkit-gen -layout <path> -output <dir> [-package <name>]")
		flag.PrintDefaults()
		os.Exit(1)
	}

	if err := run(*layoutPath, *outputDir, *pkgName); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(layoutPath, outputDir, pkgName string) error {
	def, err := LoadLayoutDef(layoutPath)
	if err != nil {
		return fmt.Errorf("loading layout: %w", err)
	}

	if pkgName == "" {
		pkgName = def.Register
	}

	code, err := GenerateLayout(def, pkgName)
	if err != nil {
		return fmt.Errorf("generating %s: %w", def.Register, err)
	}

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("creating output dir: %w", err)
	}

	outPath := filepath.Join(outputDir, def.Register+"_gen.go")
	if err := writeFormatted(outPath, code); err != nil {
		return fmt.Errorf("writing %s: %w", filepath.Base(outPath), err)
	}
	fmt.Printf("  generated %s\n", outPath)

	return nil
}

// writeFormatted formats Go source code with goimports and writes it to a file.
func writeFormatted(path string, code string) error {
	formatted, err := imports.Process(path, []byte(code), nil)
	if err != nil {
		// Write unformatted so you can debug the generator output
		_ = os.WriteFile(path+".broken", []byte(code), 0o644)
		return fmt.Errorf("goimports %s: %w", filepath.Base(path), err)
	}
	return os.WriteFile(path, formatted, 0o644)
}
