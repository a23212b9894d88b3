package commands

import (
	"encoding/hex"
	"fmt"

	"github.com/MGTheTrain/rsa-toolkit/internal/app"
	"github.com/MGTheTrain/rsa-toolkit/internal/domain/cryptoalg"
	"github.com/MGTheTrain/rsa-toolkit/internal/infrastructure/cryptography"
	"github.com/MGTheTrain/rsa-toolkit/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// RSACommandHandler encapsulates logic for handling RSA operations via CLI.
// Keys only live for the duration of a single command.
type RSACommandHandler struct {
	keyPairService app.KeyPairService
	rsaProcessor   cryptoalg.RSAProcessor
	logger         logger.Logger
}

// NewRSACommandHandler initializes a new RSACommandHandler with logging, a key pair service and an RSA processor.
func NewRSACommandHandler(cfg *Config) (*RSACommandHandler, error) {
	loggerInstance, err := setupLogger(&cfg.Logger)
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	keyPairService, err := setupKeyPairService(loggerInstance)
	if err != nil {
		return nil, err
	}

	newHash, err := cryptography.NewHashFunc(cfg.Engine.HashAlgorithm)
	if err != nil {
		return nil, err
	}

	codec, err := cryptography.NewOAEPCodec(newHash, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create OAEP codec: %w", err)
	}

	rsaProcessor, err := cryptography.NewRSAProcessor(codec, loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create RSA processor: %w", err)
	}

	return &RSACommandHandler{
		keyPairService: keyPairService,
		rsaProcessor:   rsaProcessor,
		logger:         loggerInstance,
	}, nil
}

// GenerateRSAKeysCmd generates an RSA key pair and prints its public half
func (commandHandler *RSACommandHandler) GenerateRSAKeysCmd(cmd *cobra.Command, _ []string) {
	keyPair, ok := commandHandler.generateKeyPair(cmd)
	if !ok {
		return
	}
	showPrivate, err := cmd.Flags().GetBool("show-private")
	if err != nil {
		commandHandler.logger.Error("invalid show-private flag: ", err)
		return
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "modulus bits: %d\n", keyPair.ModulusBits())
	fmt.Fprintf(out, "e: %s\n", keyPair.Public.E)
	fmt.Fprintf(out, "n: %s\n", keyPair.Public.N)
	if showPrivate {
		fmt.Fprintf(out, "d: %s\n", keyPair.Private.D)
	}
}

// EncryptDecryptRSACmd encrypts a message with a fresh key pair and decrypts it again
func (commandHandler *RSACommandHandler) EncryptDecryptRSACmd(cmd *cobra.Command, _ []string) {
	message, err := cmd.Flags().GetString("message")
	if err != nil {
		commandHandler.logger.Error("invalid message flag: ", err)
		return
	}

	keyPair, ok := commandHandler.generateKeyPair(cmd)
	if !ok {
		return
	}

	encrypted, err := commandHandler.rsaProcessor.Encrypt([]byte(message), keyPair.Public)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	decrypted, err := commandHandler.rsaProcessor.Decrypt(encrypted, keyPair.Private)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "ciphertext: %s\n", hex.EncodeToString(encrypted))
	fmt.Fprintf(out, "plaintext: %s\n", decrypted)
}

func (commandHandler *RSACommandHandler) generateKeyPair(cmd *cobra.Command) (*cryptoalg.KeyPair, bool) {
	return generateKeyPairFromFlags(cmd, commandHandler.keyPairService, commandHandler.logger)
}

func generateKeyPairFromFlags(cmd *cobra.Command, keyPairService app.KeyPairService, log logger.Logger) (*cryptoalg.KeyPair, bool) {
	primeBits, err := cmd.Flags().GetInt("prime-bits")
	if err != nil {
		log.Error("invalid prime-bits flag: ", err)
		return nil, false
	}
	rounds, err := cmd.Flags().GetInt("rounds")
	if err != nil {
		log.Error("invalid rounds flag: ", err)
		return nil, false
	}

	keyPair, err := keyPairService.GenerateKeyPair(cmd.Context(), primeBits, rounds)
	if err != nil {
		log.Error(err)
		return nil, false
	}
	return keyPair, true
}

func addKeyGenerationFlags(cmd *cobra.Command, cfg *Config) {
	cmd.Flags().IntP("prime-bits", "", int(cfg.Engine.PrimeBits), "Bit length of each RSA prime")
	cmd.Flags().IntP("rounds", "", int(cfg.Engine.Rounds), "Number of Miller-Rabin rounds")
}

// InitRSACommands registers RSA-related commands
func InitRSACommands(rootCmd *cobra.Command, cfg *Config) error {
	handler, err := NewRSACommandHandler(cfg)
	if err != nil {
		return fmt.Errorf("failed to create RSA command handler: %w", err)
	}

	var generateRSAKeysCmd = &cobra.Command{
		Use:   "generate-rsa-keys",
		Short: "Generate an RSA key pair",
		Run:   handler.GenerateRSAKeysCmd,
	}
	addKeyGenerationFlags(generateRSAKeysCmd, cfg)
	generateRSAKeysCmd.Flags().BoolP("show-private", "", false, "Also print the private exponent d")
	rootCmd.AddCommand(generateRSAKeysCmd)

	var encryptDecryptRSACmd = &cobra.Command{
		Use:   "encrypt-decrypt-rsa",
		Short: "Encrypt and decrypt a message using RSA-OAEP",
		Run:   handler.EncryptDecryptRSACmd,
	}
	addKeyGenerationFlags(encryptDecryptRSACmd, cfg)
	encryptDecryptRSACmd.Flags().StringP("message", "", "", "Message to encrypt")
	rootCmd.AddCommand(encryptDecryptRSACmd)

	return nil
}
