package names

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Starter word lists written by InitCorpus. Drawn from themes that read well
// in identifiers: animals, sky objects, mythology, minerals and optics.
var starterLists = map[string][]string{
	CategoryAdjective: {
		"admiring", "agile", "amber", "ancient", "arcane", "astral",
		"blissful", "bold", "brave", "brilliant", "calm", "celestial",
		"clever", "cosmic", "crisp", "crystalline", "dazzling", "divine",
		"dreamy", "eager", "elegant", "eternal", "fabled", "festive",
		"focused", "frosty", "galactic", "gentle", "gifted", "heroic",
		"hopeful", "jolly", "keen", "legendary", "lucid", "luminous",
		"lunar", "magnetic", "modest", "mystic", "nimble", "noble",
		"orbital", "patient", "polished", "prismatic", "quiet", "quirky",
		"radiant", "rare", "serene", "silent", "solar", "stellar",
		"stoic", "swift", "tender", "upbeat", "vivid", "wise", "zealous",
	},
	CategoryNoun: {
		"badger", "bison", "comet", "condor", "crane", "dolphin",
		"dragon", "eagle", "eclipse", "falcon", "ferret", "galaxy",
		"garnet", "gecko", "griffin", "heron", "hydra", "jackal",
		"jaguar", "kraken", "lens", "lynx", "meteor", "mirror",
		"nebula", "otter", "owl", "ox", "panther", "pegasus",
		"phoenix", "photon", "prism", "pulsar", "quartz", "quasar",
		"raven", "sapphire", "sphinx", "sparrow", "titan", "topaz",
		"walrus", "wolf", "wombat", "yak", "zebra",
	},
	CategoryColor: {
		"amber", "aqua", "azure", "beige", "black", "blue", "bronze",
		"brown", "coral", "crimson", "cyan", "gold", "gray", "green",
		"indigo", "ivory", "jade", "lavender", "lime", "magenta",
		"maroon", "mint", "navy", "ochre", "olive", "orange", "pink",
		"plum", "purple", "red", "rose", "ruby", "rust", "sage",
		"salmon", "scarlet", "silver", "tan", "teal", "violet",
		"white", "yellow",
	},
}

// InitCorpus writes the starter word lists into dir, creating it if needed.
// Existing lists are left alone unless overwrite is set. It returns the
// categories it wrote, which is empty when every list already exists.
func InitCorpus(dir string, overwrite bool) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, &IOError{Op: "create", Path: dir, Err: err}
	}

	var written []string
	for _, category := range Categories {
		path := filepath.Join(dir, category)
		if !overwrite {
			if _, err := os.Stat(path); err == nil {
				continue
			} else if !errors.Is(err, fs.ErrNotExist) {
				return written, &IOError{Op: "stat", Path: path, Err: err}
			}
		}

		data := strings.Join(starterLists[category], "\n") + "\n"
		if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
			return written, &IOError{Op: "create", Path: path, Err: err}
		}
		written = append(written, category)
	}
	return written, nil
}
