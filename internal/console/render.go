package console

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/vaultpass/passgen-go/internal/crypto"
)

// Result is one generated password and, when requested, its Argon2id hash.
type Result struct {
	Password string
	Hash     string
}

// Render writes the configuration and results as a table.
func Render(w io.Writer, opts crypto.Options, results []Result) {
	withHash := false
	for _, r := range results {
		if r.Hash != "" {
			withHash = true
			break
		}
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.SetTitle("Generated Password")

	header := table.Row{"#", "Password"}
	if withHash {
		header = append(header, "Argon2id hash")
	}
	t.AppendHeader(header)

	for i, r := range results {
		row := table.Row{i + 1, r.Password}
		if withHash {
			row = append(row, r.Hash)
		}
		t.AppendRow(row)
	}

	t.SetCaption(describe(opts))
	t.Render()
}

func describe(opts crypto.Options) string {
	return fmt.Sprintf("length %d, uppercase %s, lowercase %s, numbers %s, symbols %s",
		opts.Length, yesNo(opts.Uppercase), yesNo(opts.Lowercase), yesNo(opts.Numbers), yesNo(opts.Symbols))
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
