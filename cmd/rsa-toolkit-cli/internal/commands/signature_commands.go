package commands

import (
	"fmt"
	"path/filepath"

	"github.com/MGTheTrain/rsa-toolkit/internal/app"
	"github.com/MGTheTrain/rsa-toolkit/internal/domain/cryptoalg"
	"github.com/MGTheTrain/rsa-toolkit/internal/infrastructure/cryptography"
	"github.com/MGTheTrain/rsa-toolkit/internal/pkg/logger"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// SignatureCommandHandler encapsulates logic for signing and verifying files via CLI.
type SignatureCommandHandler struct {
	keyPairService app.KeyPairService
	fs             afero.Fs
	newHash        cryptoalg.HashFunc
	logger         logger.Logger
}

// NewSignatureCommandHandler initializes a new SignatureCommandHandler reading input files from fs.
func NewSignatureCommandHandler(cfg *Config, fs afero.Fs) (*SignatureCommandHandler, error) {
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

	return &SignatureCommandHandler{
		keyPairService: keyPairService,
		fs:             fs,
		newHash:        newHash,
		logger:         loggerInstance,
	}, nil
}

// SignVerifyRSACmd signs a file with a fresh key pair and verifies the signature.
// With --tamper the first bit of an in-memory copy of the file is flipped before verifying.
func (commandHandler *SignatureCommandHandler) SignVerifyRSACmd(cmd *cobra.Command, _ []string) {
	inputFile, err := cmd.Flags().GetString("input-file")
	if err != nil {
		commandHandler.logger.Error("invalid input-file flag: ", err)
		return
	}
	tamper, err := cmd.Flags().GetBool("tamper")
	if err != nil {
		commandHandler.logger.Error("invalid tamper flag: ", err)
		return
	}
	inputFile = filepath.Clean(inputFile)

	keyPair, ok := generateKeyPairFromFlags(cmd, commandHandler.keyPairService, commandHandler.logger)
	if !ok {
		return
	}

	// Writes land in memory only; the input file is never modified.
	overlay := afero.NewCopyOnWriteFs(afero.NewReadOnlyFs(commandHandler.fs), afero.NewMemMapFs())

	signatureProcessor, err := cryptography.NewSignatureProcessor(overlay, commandHandler.newHash, commandHandler.logger)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	signature, err := signatureProcessor.Sign(inputFile, keyPair.Private)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	if tamper {
		if err := flipFirstBit(overlay, inputFile); err != nil {
			commandHandler.logger.Error(err)
			return
		}
	}

	valid, err := signatureProcessor.Verify(inputFile, signature, keyPair.Public)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "signature: %s\n", signature)
	fmt.Fprintf(out, "valid: %t\n", valid)
}

func flipFirstBit(fs afero.Fs, path string) error {
	content, err := afero.ReadFile(fs, path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if len(content) == 0 {
		return fmt.Errorf("cannot tamper with empty file %s", path)
	}

	content[0] ^= 0x01
	return afero.WriteFile(fs, path, content, 0600)
}

// InitSignatureCommands registers signature-related commands
func InitSignatureCommands(rootCmd *cobra.Command, cfg *Config) error {
	handler, err := NewSignatureCommandHandler(cfg, afero.NewOsFs())
	if err != nil {
		return fmt.Errorf("failed to create signature command handler: %w", err)
	}

	var signVerifyRSACmd = &cobra.Command{
		Use:   "sign-verify-rsa",
		Short: "Sign a file using RSA and verify the signature",
		Run:   handler.SignVerifyRSACmd,
	}
	addKeyGenerationFlags(signVerifyRSACmd, cfg)
	signVerifyRSACmd.Flags().StringP("input-file", "", "", "Path to file which needs to be signed")
	signVerifyRSACmd.Flags().BoolP("tamper", "", false, "Flip one bit of an in-memory copy before verifying")
	rootCmd.AddCommand(signVerifyRSACmd)

	return nil
}
