package main

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vaultpass/passgen-go/internal/config"
	"github.com/vaultpass/passgen-go/internal/console"
	"github.com/vaultpass/passgen-go/internal/crypto"
)

var version = "1.0.0"

func main() {
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		count    int
		withHash bool
	)

	rootCmd := &cobra.Command{
		Use:   "passgen",
		Short: "Interactive cryptographically secure password generator",
		Long: `passgen v` + version + `
Generates random passwords from uppercase letters, lowercase letters, numbers
and the symbols !@#$%^&*(). Every selected character type appears at least once.

Generator defaults can be overridden with a YAML file named by GENERATOR_CONFIG.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			defaults, err := generatorDefaults()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Welcome to the password generator!")
			fmt.Fprintln(out, "==================================")

			opts, err := console.NewPrompter(cmd.InOrStdin(), out).Configure(defaults)
			if err != nil {
				return err
			}

			results, err := console.Generate(opts, count, withHash)
			if err != nil {
				return err
			}

			console.Render(out, opts, results)
			return nil
		},
	}

	rootCmd.Flags().IntVarP(&count, "count", "n", 1, "Number of passwords to generate")
	rootCmd.Flags().BoolVar(&withHash, "hash", false, "Also print an Argon2id hash of each password")

	rootCmd.AddCommand(newTokenCmd())
	return rootCmd
}

func newTokenCmd() *cobra.Command {
	var (
		subject string
		ttl     time.Duration
	)

	tokenCmd := &cobra.Command{
		Use:   "token",
		Short: "Issue an API token for the stats endpoint",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if ttl <= 0 {
				ttl = cfg.JWTExpiry
			}

			token, err := crypto.GenerateToken(subject, cfg.JWTSecret, ttl)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}

	tokenCmd.Flags().StringVarP(&subject, "subject", "s", "", "Name of the API client (required)")
	tokenCmd.Flags().DurationVar(&ttl, "ttl", 0, "Token lifetime (defaults to JWT_EXPIRY)")
	cobra.CheckErr(tokenCmd.MarkFlagRequired("subject"))

	return tokenCmd
}

func generatorDefaults() (crypto.Options, error) {
	path := os.Getenv("GENERATOR_CONFIG")
	if path == "" {
		return crypto.DefaultOptions(), nil
	}

	defaults, err := config.LoadGeneratorDefaults(path)
	if err != nil {
		return crypto.Options{}, err
	}
	return defaults.Options(), nil
}
