package source

import (
	"errors"
	"io/fs"
	"os"
	"strings"

	"go.uber.org/zap"

	"shinc/common"
)

// IgnoreSet holds stems of shaders excluded from processing.
type IgnoreSet map[string]struct{}

func (s IgnoreSet) Contains(stem string) bool {
	_, ok := s[stem]
	return ok
}

// ParseIgnoreList builds IgnoreSet from text with one stem per line. Lines are
// trimmed, empty lines are skipped.
func ParseIgnoreList(text string) IgnoreSet {
	set := make(IgnoreSet)
	for line := range strings.Lines(text) {
		if stem := strings.TrimSpace(line); len(stem) > 0 {
			set[stem] = struct{}{}
		}
	}
	return set
}

// LoadIgnoreSet reads ignore list from path. Missing file is not an error -
// warning is logged and empty set is returned.
func LoadIgnoreSet(path string, log *zap.Logger) (IgnoreSet, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Warn("Unable to open ignore list, proceeding without ignores", zap.String("file", path))
		return make(IgnoreSet), nil
	}
	if err != nil {
		return nil, common.NewPathError(common.ErrorKindUnreadableFile, path, err)
	}
	text, err := decodeText(data)
	if err != nil {
		return nil, common.NewPathError(common.ErrorKindUnreadableFile, path, err)
	}
	set := ParseIgnoreList(text)
	log.Debug("Ignore list loaded", zap.String("file", path), zap.Int("entries", len(set)))
	return set, nil
}
