package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/vaultpass/passgen-go/internal/crypto"
)

// GeneratorDefaults are the options applied when a request leaves a field unset.
type GeneratorDefaults struct {
	Length    int  `yaml:"length"`
	Uppercase bool `yaml:"uppercase"`
	Lowercase bool `yaml:"lowercase"`
	Numbers   bool `yaml:"numbers"`
	Symbols   bool `yaml:"symbols"`
}

type generatorFile struct {
	Generator GeneratorDefaults `yaml:"generator"`
}

func DefaultGeneratorDefaults() GeneratorDefaults {
	opts := crypto.DefaultOptions()
	return GeneratorDefaults{
		Length:    opts.Length,
		Uppercase: opts.Uppercase,
		Lowercase: opts.Lowercase,
		Numbers:   opts.Numbers,
		Symbols:   opts.Symbols,
	}
}

// Options converts the defaults into generator options.
func (d GeneratorDefaults) Options() crypto.Options {
	return crypto.Options{
		Length:    d.Length,
		Uppercase: d.Uppercase,
		Lowercase: d.Lowercase,
		Numbers:   d.Numbers,
		Symbols:   d.Symbols,
	}
}

// LoadGeneratorDefaults reads a YAML file with a top-level "generator" key.
// Keys missing from the file keep their built-in defaults.
func LoadGeneratorDefaults(filePath string) (GeneratorDefaults, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return GeneratorDefaults{}, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	doc := generatorFile{Generator: DefaultGeneratorDefaults()}
	if err := yaml.NewDecoder(file).Decode(&doc); err != nil {
		return GeneratorDefaults{}, fmt.Errorf("failed to parse YAML file: %w", err)
	}

	if err := doc.Generator.Validate(); err != nil {
		return GeneratorDefaults{}, err
	}

	return doc.Generator, nil
}

// Validate rejects defaults the generator would refuse.
func (d GeneratorDefaults) Validate() error {
	if err := d.Options().Validate(); err != nil {
		return fmt.Errorf("invalid generator defaults: %w", err)
	}
	return nil
}
