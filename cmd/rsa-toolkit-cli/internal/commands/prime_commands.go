package commands

import (
	"fmt"

	"github.com/MGTheTrain/rsa-toolkit/internal/domain/cryptoalg"
	"github.com/MGTheTrain/rsa-toolkit/internal/infrastructure/cryptography"
	"github.com/MGTheTrain/rsa-toolkit/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// PrimeCommandHandler encapsulates logic for handling prime generation via CLI.
type PrimeCommandHandler struct {
	primeGenerator cryptoalg.PrimeGenerator
	logger         logger.Logger
}

// NewPrimeCommandHandler initializes a new PrimeCommandHandler with logging and a prime generator.
func NewPrimeCommandHandler(cfg *Config) (*PrimeCommandHandler, error) {
	loggerInstance, err := setupLogger(&cfg.Logger)
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	primeGenerator, err := cryptography.NewPrimeGenerator(nil, loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create prime generator: %w", err)
	}

	return &PrimeCommandHandler{
		primeGenerator: primeGenerator,
		logger:         loggerInstance,
	}, nil
}

// GeneratePrimeCmd prints a probable prime of the requested bit length
func (commandHandler *PrimeCommandHandler) GeneratePrimeCmd(cmd *cobra.Command, _ []string) {
	bits, err := cmd.Flags().GetInt("bits")
	if err != nil {
		commandHandler.logger.Error("invalid bits flag: ", err)
		return
	}
	rounds, err := cmd.Flags().GetInt("rounds")
	if err != nil {
		commandHandler.logger.Error("invalid rounds flag: ", err)
		return
	}

	prime, err := commandHandler.primeGenerator.GenerateLargePrime(cmd.Context(), bits, rounds)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	fmt.Fprintln(cmd.OutOrStdout(), prime.String())
}

// InitPrimeCommands registers prime-related commands
func InitPrimeCommands(rootCmd *cobra.Command, cfg *Config) error {
	handler, err := NewPrimeCommandHandler(cfg)
	if err != nil {
		return fmt.Errorf("failed to create prime command handler: %w", err)
	}

	var generatePrimeCmd = &cobra.Command{
		Use:   "generate-prime",
		Short: "Generate a probable prime",
		Run:   handler.GeneratePrimeCmd,
	}
	generatePrimeCmd.Flags().IntP("bits", "", int(cfg.Engine.PrimeBits), "Bit length of the prime")
	generatePrimeCmd.Flags().IntP("rounds", "", int(cfg.Engine.Rounds), "Number of Miller-Rabin rounds")
	rootCmd.AddCommand(generatePrimeCmd)

	return nil
}
