package config

import (
	"fmt"

	"github.com/nPaBwaYT/rijndael/rijndael"
	"github.com/samber/lo"
)

// SupportedLanguages lists the values accepted by cli.language
var SupportedLanguages = []string{"auto", "en", "ru"}

// Validate validates the user config
func (config *UserConfig) Validate() error {
	if _, err := rijndael.ParseVariant(config.Cipher.Variant); err != nil {
		return fmt.Errorf("Unrecognized variant '%s' for 'cipher.variant'. Permitted values: %v", config.Cipher.Variant, rijndael.Variants())
	}

	if config.Cipher.Workers < 0 {
		return fmt.Errorf("'cipher.workers' must not be negative, got %d", config.Cipher.Workers)
	}

	if config.CLI.Language != "" && !lo.Contains(SupportedLanguages, config.CLI.Language) {
		return fmt.Errorf("Unrecognized language '%s' for 'cli.language'. Permitted values: %v", config.CLI.Language, SupportedLanguages)
	}

	if config.CLI.ProgressInterval < 0 {
		return fmt.Errorf("'cli.progressInterval' must not be negative, got %s", config.CLI.ProgressInterval)
	}

	return nil
}
