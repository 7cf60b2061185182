// Package console implements the interactive front-end of the generator:
// yes/no and integer prompts that repeat until the input is well formed.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/vaultpass/passgen-go/internal/crypto"
)

var ErrInputClosed = errors.New("input closed before an answer was given")

const (
	invalidYesNoMsg = "Invalid input. Please enter 'y' or 'n'."
	invalidIntMsg   = "Invalid input. Please enter an integer."
)

// Prompter asks questions on out and reads answers line by line from in.
type Prompter struct {
	scanner *bufio.Scanner
	out     io.Writer
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{scanner: bufio.NewScanner(in), out: out}
}

// ReadYesNo asks question until the answer is "y" or "n" (case-insensitive).
func (p *Prompter) ReadYesNo(question string) (bool, error) {
	fmt.Fprintf(p.out, "%s (y/n): ", question)
	for {
		line, err := p.readLine()
		if err != nil {
			return false, err
		}
		switch strings.ToLower(line) {
		case "y":
			return true, nil
		case "n":
			return false, nil
		}
		fmt.Fprintln(p.out, invalidYesNoMsg)
	}
}

// ReadInt asks question until the answer parses as an integer. Range checks
// are left to the generator.
func (p *Prompter) ReadInt(question string) (int, error) {
	fmt.Fprintf(p.out, "%s: ", question)
	for {
		line, err := p.readLine()
		if err != nil {
			return 0, err
		}
		if n, err := strconv.Atoi(line); err == nil {
			return n, nil
		}
		fmt.Fprintln(p.out, invalidIntMsg)
	}
}

// Configure offers manual configuration and otherwise returns defaults.
func (p *Prompter) Configure(defaults crypto.Options) (crypto.Options, error) {
	manual, err := p.ReadYesNo("Do you want to configure the password manually?")
	if err != nil || !manual {
		return defaults, err
	}

	var opts crypto.Options
	if opts.Length, err = p.ReadInt("Enter password length"); err != nil {
		return crypto.Options{}, err
	}

	questions := []struct {
		text string
		dst  *bool
	}{
		{"Include uppercase letters?", &opts.Uppercase},
		{"Include lowercase letters?", &opts.Lowercase},
		{"Include numbers?", &opts.Numbers},
		{"Include symbols?", &opts.Symbols},
	}
	for _, q := range questions {
		if *q.dst, err = p.ReadYesNo(q.text); err != nil {
			return crypto.Options{}, err
		}
	}

	return opts, nil
}

func (p *Prompter) readLine() (string, error) {
	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			return "", err
		}
		return "", ErrInputClosed
	}
	return strings.TrimSpace(p.scanner.Text()), nil
}
