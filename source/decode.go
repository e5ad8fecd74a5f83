package source

import (
	"os"

	"github.com/h2non/filetype"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"shinc/common"
)

// decodeText converts file content to string. Content starting with UTF-8 or
// UTF-16 BOM is decoded to UTF-8 without BOM, anything else is kept as is.
func decodeText(data []byte) (string, error) {
	out, _, err := transform.Bytes(unicode.BOMOverride(transform.Nop), data)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// isBinary reports whether data starts with a signature of a known binary
// format (images, archives, fonts, etc.).
func isBinary(data []byte) bool {
	kind, err := filetype.Match(data)
	return err == nil && kind != filetype.Unknown
}

// readText reads and decodes file. Failures are reported as
// common.ErrorKindUnreadableFile.
func readText(path string) (string, []byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", nil, common.NewPathError(common.ErrorKindUnreadableFile, path, err)
	}
	text, err := decodeText(data)
	if err != nil {
		return "", nil, common.NewPathError(common.ErrorKindUnreadableFile, path, err)
	}
	return text, data, nil
}
