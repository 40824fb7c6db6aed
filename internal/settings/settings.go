// Package settings persists the viewer's tiny JSON configuration object
// (spec §6 "Configuration persistence"): a single recognized key,
// testIndex. dbvh-bench loads it at startup; no subcommand reads the
// value, since every subcommand takes its boxes from --input. Grounded on perf-analysis's pkg/config, the one repo in the
// retrieved corpus that pairs a cobra CLI with viper-backed config.
package settings

import (
	"fmt"
	"os"

	"github.com/spf13/viper"

	"github.com/flier/dbvh/pkg/res"
)

// Settings mirrors spec §6's JSON object: `{"testIndex": N}`.
type Settings struct {
	TestIndex int `mapstructure:"testIndex" json:"testIndex"`
}

// defaultTestIndex matches the reference viewer's initial scene.
const defaultTestIndex = 0

func setDefaults(v *viper.Viper) {
	v.SetDefault("testIndex", defaultTestIndex)
}

// Load reads settings from path. A missing file is not an error: it
// yields an Ok result holding a Settings with defaultTestIndex,
// matching spec §7 kind 4 ("external I/O: silent no-op; recognised in
// the return path by absence of file"). A malformed file produces an
// Err result.
func Load(path string) res.Result[Settings] {
	v := viper.New()
	setDefaults(v)

	v.SetConfigFile(path)
	v.SetConfigType("json")

	if err := v.ReadInConfig(); err != nil {
		if os.IsNotExist(err) {
			return res.Ok(Settings{TestIndex: defaultTestIndex})
		}

		return res.Err[Settings](fmt.Errorf("settings: %w", err))
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return res.Err[Settings](fmt.Errorf("settings: unmarshal: %w", err))
	}

	return res.Ok(s)
}

// Save writes settings to path as the single-key JSON object spec §6
// describes.
func Save(path string, s Settings) error {
	v := viper.New()
	v.Set("testIndex", s.TestIndex)
	v.SetConfigType("json")

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("settings: write %s: %w", path, err)
	}

	return nil
}
