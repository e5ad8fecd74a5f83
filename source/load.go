package source

import (
	"io/fs"
	"path/filepath"

	"go.uber.org/zap"

	"shinc/include"
)

// Options control file discovery.
type Options struct {
	// StructsDir is name of the sub-directory of the source root holding
	// fragments.
	StructsDir string
	// IgnoreList is name of the ignore list file in the source root.
	IgnoreList string
	// SkipIgnoreList prevents ignore list file from being picked up as a
	// shader.
	SkipIgnoreList bool
	// SkipBinary skips files recognized as known binary formats.
	SkipBinary bool
}

// Input is everything loaded from the source root.
type Input struct {
	Fragments []include.Fragment
	Shaders   []include.Shader
	Ignored   []string
}

// Load reads ignore list, fragments and shaders from src.
func Load(src string, opts Options, log *zap.Logger) (*Input, error) {
	if err := isDir(src); err != nil {
		return nil, err
	}

	ignore, err := LoadIgnoreSet(filepath.Join(src, opts.IgnoreList), log)
	if err != nil {
		return nil, err
	}

	in := &Input{}
	if in.Fragments, err = LoadFragments(filepath.Join(src, opts.StructsDir), opts, log); err != nil {
		return nil, err
	}
	if in.Shaders, in.Ignored, err = LoadShaders(src, ignore, opts, log); err != nil {
		return nil, err
	}
	return in, nil
}

// LoadFragments reads every regular file in dir as a fragment named after
// file stem.
func LoadFragments(dir string, opts Options, log *zap.Logger) ([]include.Fragment, error) {
	var (
		fragments []include.Fragment
		seen      = make(map[string]string)
	)
	err := Walk(dir, func(path string, _ fs.FileInfo) error {
		text, data, err := readText(path)
		if err != nil {
			return err
		}
		if opts.SkipBinary && isBinary(data) {
			log.Warn("Skipping binary file", zap.String("file", path))
			return nil
		}

		token := Stem(filepath.Base(path))
		if prev, ok := seen[token]; ok {
			log.Debug("Fragment token defined more than once", zap.String("token", token), zap.String("file", path), zap.String("previous", prev))
		}
		seen[token] = path

		fragments = append(fragments, include.Fragment{Token: token, Body: text, Path: path})
		log.Debug("Fragment loaded", zap.String("token", token), zap.String("file", path), zap.Int("size", len(text)))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return fragments, nil
}

// LoadShaders reads regular files located directly in dir as shaders. Files
// whose stem is in ignore set are skipped and their names returned
// separately. Sub-directories (fragments directory included) are never
// visited.
func LoadShaders(dir string, ignore IgnoreSet, opts Options, log *zap.Logger) ([]include.Shader, []string, error) {
	var (
		shaders []include.Shader
		ignored []string
	)
	err := Walk(dir, func(path string, _ fs.FileInfo) error {
		name := filepath.Base(path)
		if opts.SkipIgnoreList && name == opts.IgnoreList {
			return nil
		}

		stem := Stem(name)
		if ignore.Contains(stem) {
			log.Info("Ignoring shader", zap.String("file", name))
			ignored = append(ignored, name)
			return nil
		}

		text, data, err := readText(path)
		if err != nil {
			return err
		}
		if opts.SkipBinary && isBinary(data) {
			log.Warn("Skipping binary file", zap.String("file", path))
			return nil
		}

		shaders = append(shaders, include.Shader{Token: stem, OutputName: name, Path: path, Body: text})
		log.Debug("Shader loaded", zap.String("token", stem), zap.String("file", path), zap.Int("size", len(text)))
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return shaders, ignored, nil
}
