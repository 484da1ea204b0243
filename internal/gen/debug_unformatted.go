package gen

import (
	"os"
	"path/filepath"
	"strings"
)

// writeDebugUnformatted writes template output that failed to format to a
// sidecar file next to the intended output. Errors are returned but callers
// ignore them.
func writeDebugUnformatted(outDir, filename string, content []byte) error {
	if outDir == "" || filename == "" {
		return nil
	}

	if err := os.MkdirAll(outDir, dirPerm); err != nil {
		return err
	}

	debugName := strings.TrimSuffix(filename, ".go") + ".unformatted.go"

	return os.WriteFile(filepath.Join(outDir, debugName), content, filePerm)
}
