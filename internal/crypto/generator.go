package crypto

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"
	"strings"
)

const (
	UppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	LowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	NumberChars    = "0123456789"
	SymbolChars    = "!@#$%^&*()"

	MinLength     = 1
	MaxLength     = 99
	DefaultLength = 8
)

var (
	ErrNoCharacterTypes   = errors.New("Cannot generate password. At least one character type (uppercase, lowercase, number, symbol) must be selected when initializing the password generator.")
	ErrLengthInsufficient = errors.New("Invalid password length. Length must be at least the number of selected character types.")
	ErrRandomSource       = errors.New("reading from random source failed")
)

// RangeError reports a numeric setting outside its inclusive bounds.
type RangeError struct {
	Field string
	Value int
	Min   int
	Max   int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("Invalid password %s. %s must be greater than %d and lower than %d.",
		strings.ToLower(e.Field), e.Field, e.Min-1, e.Max+1)
}

// IsValidationError reports whether err was caused by the generator configuration
// rather than by the environment.
func IsValidationError(err error) bool {
	var rangeErr *RangeError
	return errors.As(err, &rangeErr) ||
		errors.Is(err, ErrNoCharacterTypes) ||
		errors.Is(err, ErrLengthInsufficient)
}

// Options configures the password generator.
type Options struct {
	Length    int
	Uppercase bool
	Lowercase bool
	Numbers   bool
	Symbols   bool
}

// DefaultOptions returns 8 characters with all character types enabled.
func DefaultOptions() Options {
	return Options{
		Length:    DefaultLength,
		Uppercase: true,
		Lowercase: true,
		Numbers:   true,
		Symbols:   true,
	}
}

// classes returns the character tables of the enabled types in fixed order:
// uppercase, lowercase, numbers, symbols.
func (o Options) classes() []string {
	var sets []string
	if o.Uppercase {
		sets = append(sets, UppercaseChars)
	}
	if o.Lowercase {
		sets = append(sets, LowercaseChars)
	}
	if o.Numbers {
		sets = append(sets, NumberChars)
	}
	if o.Symbols {
		sets = append(sets, SymbolChars)
	}
	return sets
}

// Validate checks the options in the same order Generate does.
func (o Options) Validate() error {
	if o.Length < MinLength || o.Length > MaxLength {
		return &RangeError{Field: "Length", Value: o.Length, Min: MinLength, Max: MaxLength}
	}
	sets := o.classes()
	if len(sets) == 0 {
		return ErrNoCharacterTypes
	}
	if o.Length < len(sets) {
		return ErrLengthInsufficient
	}
	return nil
}

// Generator produces passwords for a fixed configuration. It is safe for
// concurrent use.
type Generator struct {
	opts   Options
	random io.Reader
}

// GeneratorOption customises a Generator.
type GeneratorOption func(*Generator)

// WithRandom replaces the random source. Reads from r are serialised.
func WithRandom(r io.Reader) GeneratorOption {
	return func(g *Generator) {
		if r != nil {
			g.random = newLockedReader(r)
		}
	}
}

// NewGenerator creates a Generator. The options are not validated until Generate.
func NewGenerator(opts Options, options ...GeneratorOption) *Generator {
	g := &Generator{opts: opts, random: rand.Reader}
	for _, o := range options {
		o(g)
	}
	return g
}

// Options returns a copy of the generator configuration.
func (g *Generator) Options() Options {
	return g.opts
}

// Generate creates a password containing at least one character of every
// enabled type. Configuration errors are returned before any randomness is read.
func (g *Generator) Generate() (string, error) {
	if err := g.opts.Validate(); err != nil {
		return "", err
	}

	requiredSets := g.opts.classes()
	pool := strings.Join(requiredSets, "")
	result := make([]byte, 0, g.opts.Length)

	// Guarantee at least one character from each selected type.
	for _, charset := range requiredSets {
		ch, err := g.randChar(charset)
		if err != nil {
			return "", err
		}
		result = append(result, ch)
	}

	for len(result) < g.opts.Length {
		ch, err := g.randChar(pool)
		if err != nil {
			return "", err
		}
		result = append(result, ch)
	}

	// The prefix above is in class order, so the shuffle is never skipped.
	if err := g.shuffle(result); err != nil {
		return "", err
	}

	return string(result), nil
}

// Generate creates a password with a one-off Generator backed by crypto/rand.
func Generate(opts Options) (string, error) {
	return NewGenerator(opts).Generate()
}

// randIndex returns a uniform integer in [0, n). rand.Int rejects samples
// outside the range, so there is no modulo bias.
func (g *Generator) randIndex(n int) (int, error) {
	v, err := rand.Int(g.random, big.NewInt(int64(n)))
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrRandomSource, err)
	}
	return int(v.Int64()), nil
}

func (g *Generator) randChar(charset string) (byte, error) {
	i, err := g.randIndex(len(charset))
	if err != nil {
		return 0, err
	}
	return charset[i], nil
}

// shuffle performs a Fisher-Yates shuffle.
func (g *Generator) shuffle(data []byte) error {
	for i := len(data) - 1; i > 0; i-- {
		j, err := g.randIndex(i + 1)
		if err != nil {
			return err
		}
		data[i], data[j] = data[j], data[i]
	}
	return nil
}
