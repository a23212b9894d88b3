// Package main is the entry point for the rsa-toolkit-cli application.
// It loads the configuration, registers the prime, RSA and signature sub-commands
// and executes the command-line interface.
package main

import (
	"fmt"
	"log"
	"os"

	commands "github.com/MGTheTrain/rsa-toolkit/cmd/rsa-toolkit-cli/internal/commands"

	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "rsa-toolkit-cli",
		Short: "RSA toolkit CLI tool",
		Long: `rsa-toolkit-cli exercises a from-scratch RSA engine.
Supports Miller-Rabin prime generation, RSA key derivation, OAEP encryption/decryption,
and file signing and verification with Base64 signatures.

Configuration is read from the YAML file named by RSA_TOOLKIT_CONFIG (optional).
Individual settings can be overridden with RSA_TOOLKIT_* environment variables,
e.g. RSA_TOOLKIT_ENGINE_ROUNDS=10.`,
	}

	cfg, err := commands.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := initializeCommands(rootCmd, cfg); err != nil {
		return fmt.Errorf("failed to initialize commands: %w", err)
	}

	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}

// initializeCommands registers all command groups with the root command.
func initializeCommands(rootCmd *cobra.Command, cfg *commands.Config) error {
	if err := commands.InitPrimeCommands(rootCmd, cfg); err != nil {
		return fmt.Errorf("failed to initialize prime commands: %w", err)
	}

	if err := commands.InitRSACommands(rootCmd, cfg); err != nil {
		return fmt.Errorf("failed to initialize RSA commands: %w", err)
	}

	if err := commands.InitSignatureCommands(rootCmd, cfg); err != nil {
		return fmt.Errorf("failed to initialize signature commands: %w", err)
	}

	return nil
}

func init() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stderr)
}
