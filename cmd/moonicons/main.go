// Command moonicons writes the extension's icon16.png, icon48.png and
// icon128.png into an icons directory next to this source file.
package main

import (
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"

	"github.com/gogpu/moonicon"
)

func main() {
	moonicon.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	dir := filepath.Join(sourceDir(), "icons")

	_, err := moonicon.Generate(dir, moonicon.WithProgress(func(r moonicon.Result) {
		printResult(os.Stdout, r)
	}))
	if err != nil {
		log.Fatalf("Failed to generate icons: %v", err)
	}

	fmt.Println("\nAll icons generated successfully!")
}

// printResult reports one written icon.
func printResult(w io.Writer, r moonicon.Result) {
	fmt.Fprintf(w, "✓ Generated %s (%dx%d)\n", r.Path, r.Size, r.Size)
}

// sourceDir returns the directory holding this file. Binaries built with
// -trimpath only know a relative path, so they fall back to the working
// directory.
func sourceDir() string {
	_, file, _, ok := runtime.Caller(0)
	if !ok || !filepath.IsAbs(file) {
		wd, err := os.Getwd()
		if err != nil {
			log.Fatalf("Failed to resolve working directory: %v", err)
		}
		return wd
	}
	return filepath.Dir(file)
}
