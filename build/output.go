package build

import (
	"os"
	"path/filepath"

	"shinc/common"
	"shinc/include"
)

// outputPath returns location of produced shader. Output keeps source file
// name, destination directory structure is never created.
func outputPath(dst string, sh include.Shader) string {
	return filepath.Join(dst, sh.OutputName)
}

// writeOutput writes text verbatim replacing existing file.
func writeOutput(path, text string) error {
	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		return common.NewPathError(common.ErrorKindUnwritableOutput, path, err)
	}
	return nil
}
