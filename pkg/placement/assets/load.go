package assets

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/pictolab/glyphgrid/pkg/geometry"
	"github.com/pictolab/glyphgrid/pkg/pictograph"

	gerr "github.com/pictolab/glyphgrid/pkg/errors"
)

const (
	defaultDirName = "default"
	specialDirName = "special"
	fileSuffix     = "_placements.json"
)

// turnsTupleKey matches "(b, r)" turns-tuple keys where each side is an
// integer, a half value, or the float marker. Separation-override keys
// deliberately do not match.
var turnsTupleKey = regexp.MustCompile(`^\((0|0\.5|1|1\.5|2|2\.5|3|fl), (0|0\.5|1|1\.5|2|2\.5|3|fl)\)$`)

// Load reads both placement stores from dir. The expected layout is
//
//	<dir>/default/<grid_mode>/<motion_type>_placements.json
//	<dir>/special/<grid_mode>/<subfolder>/<letter>_placements.json
//
// Missing grid-mode or subfolder directories are allowed (asset packs ship
// only what they override); unparsable files and schema violations are not.
func Load(dir string) (*Assets, error) {
	defaults := map[pictograph.GridMode]DefaultStore{}
	special := map[pictograph.GridMode]SpecialStore{}

	for _, grid := range pictograph.GridModes {
		ds, err := loadDefaults(filepath.Join(dir, defaultDirName, string(grid)))
		if err != nil {
			return nil, err
		}
		defaults[grid] = ds

		ss, err := loadSpecial(filepath.Join(dir, specialDirName, string(grid)))
		if err != nil {
			return nil, err
		}
		special[grid] = ss
	}

	return New(defaults, special), nil
}

// loadDefaults reads one grid mode's default placement files.
func loadDefaults(dir string) (DefaultStore, error) {
	store := DefaultStore{}
	for _, mt := range pictograph.MotionTypes {
		path := filepath.Join(dir, string(mt)+fileSuffix)
		data, err := os.ReadFile(path)
		if os.IsNotExist(err) {
			continue
		}
		if err != nil {
			return nil, gerr.Wrap(gerr.ErrCodeConfigMissing, err, "reading %s", path)
		}

		var raw map[string][]float64
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, gerr.Wrap(gerr.ErrCodeConfigParse, err, "parsing %s", path)
		}

		keys := make(map[string]geometry.Point, len(raw))
		for key, pair := range raw {
			if len(pair) != 2 {
				return nil, gerr.New(gerr.ErrCodeConfigSchema,
					"%s: key %q: adjustment needs 2 elements, got %d", path, key, len(pair))
			}
			keys[key] = geometry.Point{X: pair[0], Y: pair[1]}
		}
		store[mt] = keys
	}
	return store, nil
}

// loadSpecial reads one grid mode's special placement tree.
func loadSpecial(dir string) (SpecialStore, error) {
	store := SpecialStore{}
	for _, sub := range Subfolders {
		subdir := filepath.Join(dir, string(sub))
		entries, err := os.ReadDir(subdir)
		if os.IsNotExist(err) {
			continue
		}
		if err != nil {
			return nil, gerr.Wrap(gerr.ErrCodeConfigMissing, err, "reading %s", subdir)
		}

		letters := map[pictograph.Letter]LetterPlacements{}
		for _, entry := range entries {
			if entry.IsDir() || !strings.HasSuffix(entry.Name(), fileSuffix) {
				continue
			}
			path := filepath.Join(subdir, entry.Name())
			if err := loadSpecialFile(path, letters); err != nil {
				return nil, err
			}
		}
		store[sub] = letters
	}
	return store, nil
}

// loadSpecialFile parses one per-letter special placement file into letters.
// A file carries a top-level object keyed by letter; each letter maps
// turns-tuple strings (or separation-override keys) to entries.
func loadSpecialFile(path string, letters map[pictograph.Letter]LetterPlacements) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return gerr.Wrap(gerr.ErrCodeConfigMissing, err, "reading %s", path)
	}

	var raw map[string]map[string]Entry
	if err := json.Unmarshal(data, &raw); err != nil {
		return gerr.Wrap(gerr.ErrCodeConfigParse, err, "parsing %s", path)
	}

	for letter, placements := range raw {
		if err := validateSpecialKeys(path, letter, placements); err != nil {
			return err
		}
		dst := letters[pictograph.Letter(letter)]
		if dst == nil {
			dst = LetterPlacements{}
			letters[pictograph.Letter(letter)] = dst
		}
		for turnsKey, entry := range placements {
			dst[turnsKey] = entry
		}
	}
	return nil
}

// validateSpecialKeys rejects keys that are neither a turns tuple nor a
// separation override naming this letter.
func validateSpecialKeys(path, letter string, placements map[string]Entry) error {
	for key := range placements {
		if turnsTupleKey.MatchString(key) {
			continue
		}
		if strings.HasPrefix(key, letter+"_") {
			continue
		}
		return gerr.New(gerr.ErrCodeConfigSchema,
			"%s: letter %q: key %q is neither a turns tuple nor an override", path, letter, key)
	}
	return nil
}

// TurnsTupleKey renders the "(blue, red)" key for a pair of turn counts,
// exactly as the special placement files spell it.
func TurnsTupleKey(blue, red pictograph.Turns) string {
	return fmt.Sprintf("(%s, %s)", blue, red)
}

// SeparationOverrideKey renders the manual separation override key for a
// letter and the two motion types.
func SeparationOverrideKey(letter pictograph.Letter, blue, red pictograph.MotionType) string {
	return fmt.Sprintf("%s_%s_%s", letter, blue, red)
}
