package localize

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"gopkg.in/yaml.v3"

	"localize/pkg/catalog"
)

// WithJSONDir returns an Option that loads catalog files from JSON files in
// an fs.FS. File convention: {locale}.json, each holding key to value for its
// locale, where a value is a string or an array of string fragments.
//
// Example structure:
//
//	en.json
//	en_US.json
//	is.json
func WithJSONDir(fsys fs.FS) Option {
	return func(l *Localizer) error {
		return loadDir(l, fsys, ".json", func(data []byte, v any) error {
			return json.Unmarshal(data, v)
		})
	}
}

// WithYAMLDir returns an Option that loads catalog files from YAML files in
// an fs.FS. File convention: {locale}.yaml or {locale}.yml.
func WithYAMLDir(fsys fs.FS) Option {
	return func(l *Localizer) error {
		return loadDir(l, fsys, ".yaml", func(data []byte, v any) error {
			return yaml.Unmarshal(data, v)
		})
	}
}

func loadDir(l *Localizer, fsys fs.FS, ext string, unmarshal func([]byte, any) error) error {
	return fs.WalkDir(fsys, ".", func(filePath string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		fileExt := strings.ToLower(path.Ext(filePath))

		var matches bool
		if ext == ".yaml" {
			matches = fileExt == ".yaml" || fileExt == ".yml"
		} else {
			matches = fileExt == ext
		}
		if !matches {
			return nil
		}

		loc := strings.TrimSuffix(path.Base(filePath), path.Ext(filePath))

		data, err := fs.ReadFile(fsys, filePath)
		if err != nil {
			return fmt.Errorf("reading %q: %w", filePath, err)
		}

		var messages map[string]any
		if err := unmarshal(data, &messages); err != nil {
			return fmt.Errorf("%w: parsing %q: %s", ErrInvalidFile, filePath, err)
		}

		if l.initRaw == nil {
			l.initRaw = make(catalog.Raw, len(messages))
		}
		for key, value := range messages {
			if l.initRaw[key] == nil {
				l.initRaw[key] = make(map[string]any)
			}
			l.initRaw[key][loc] = value
		}
		return nil
	})
}
