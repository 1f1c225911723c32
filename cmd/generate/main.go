package main

import (
	"fmt"
	"os"

	"folio.dev/internal/config"
	"folio.dev/internal/generation"
	"folio.dev/internal/render"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: generate <output-dir> [site-file]")
		os.Exit(1)
	}

	outputDir := os.Args[1]
	siteFile := ""
	if len(os.Args) > 2 {
		siteFile = os.Args[2]
	}

	site, err := config.LoadSite(siteFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load site settings: %v\n", err)
		os.Exit(1)
	}

	renderer, err := render.New(site.PlaceholderImage)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize renderer: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Generating site into %s...\n", outputDir)

	manifest, err := generation.NewSiteGenerator(site, renderer).Generate(outputDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "  ERROR: %v\n", err)
		os.Exit(1)
	}

	for _, f := range manifest.Files {
		fmt.Printf("  Created %s (%d bytes)\n", f.Path, f.Bytes)
	}

	fmt.Printf("Done! %d projects rendered.\n", manifest.Projects)
}
