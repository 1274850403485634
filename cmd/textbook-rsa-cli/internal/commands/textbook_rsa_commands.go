package commands

import (
	"errors"
	"fmt"
	"io"

	"github.com/MGTheTrain/textbook-rsa/internal/app"
	"github.com/MGTheTrain/textbook-rsa/internal/domain/textbookrsa"
	"github.com/MGTheTrain/textbook-rsa/internal/infrastructure/cryptography"
	"github.com/MGTheTrain/textbook-rsa/internal/pkg/config"
	"github.com/MGTheTrain/textbook-rsa/internal/pkg/logger"
	"github.com/MGTheTrain/textbook-rsa/internal/pkg/numtheory"
	"github.com/spf13/cobra"
)

// TextbookRSACommandHandler encapsulates logic for handling textbook RSA operations via CLI.
type TextbookRSACommandHandler struct {
	settings      *config.GeneratorSettings
	cipherService textbookrsa.CipherService
	logger        logger.Logger
}

// NewTextbookRSACommandHandler initializes a handler with logging and a cipher service.
func NewTextbookRSACommandHandler() (*TextbookRSACommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	settings := config.NewGeneratorSettings()
	processor, err := cryptography.NewTextbookRSAProcessor(settings, numtheory.NewRand(settings.SeedOrNow()), loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create textbook RSA processor: %w", err)
	}

	cipherService, err := app.NewCipherService(processor, loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher service: %w", err)
	}

	return &TextbookRSACommandHandler{
		settings:      settings,
		cipherService: cipherService,
		logger:        loggerInstance,
	}, nil
}

// newKeyPairService builds a key pair service whose processor is seeded with seed
// (zero seeds from the clock) and retries at most retries times.
func (commandHandler *TextbookRSACommandHandler) newKeyPairService(seed int64, retries uint64) (textbookrsa.KeyPairService, error) {
	settings := *commandHandler.settings
	settings.Seed = seed
	settings.MaxGenerationRetries = retries

	processor, err := cryptography.NewTextbookRSAProcessor(&settings, numtheory.NewRand(settings.SeedOrNow()), commandHandler.logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create textbook RSA processor: %w", err)
	}
	return app.NewKeyPairService(processor, &settings, commandHandler.logger)
}

// GenerateKeysCmd generates a key pair from the prime range given by --lower and --upper
func (commandHandler *TextbookRSACommandHandler) GenerateKeysCmd(cmd *cobra.Command, _ []string) error {
	lower, err := cmd.Flags().GetInt64("lower")
	if err != nil {
		return fmt.Errorf("invalid lower flag: %w", err)
	}
	upper, err := cmd.Flags().GetInt64("upper")
	if err != nil {
		return fmt.Errorf("invalid upper flag: %w", err)
	}
	seed, err := cmd.Flags().GetInt64("seed")
	if err != nil {
		return fmt.Errorf("invalid seed flag: %w", err)
	}
	retries, err := cmd.Flags().GetUint64("retries")
	if err != nil {
		return fmt.Errorf("invalid retries flag: %w", err)
	}

	keyPairService, err := commandHandler.newKeyPairService(seed, retries)
	if err != nil {
		return err
	}

	keyPair, err := keyPairService.Generate(cmd.Context(), lower, upper)
	if err != nil {
		if errors.Is(err, textbookrsa.ErrKeyGeneration) {
			fmt.Fprintln(cmd.OutOrStdout(), "Could not generate keys for the given range. Try a wider range.")
		}
		return err
	}

	printKeyPair(cmd.OutOrStdout(), keyPair)
	return nil
}

// EncryptCmd encrypts --message with the public key (--e, --n)
func (commandHandler *TextbookRSACommandHandler) EncryptCmd(cmd *cobra.Command, _ []string) error {
	message, err := cmd.Flags().GetInt64("message")
	if err != nil {
		return fmt.Errorf("invalid message flag: %w", err)
	}
	e, err := cmd.Flags().GetInt64("e")
	if err != nil {
		return fmt.Errorf("invalid e flag: %w", err)
	}
	n, err := cmd.Flags().GetInt64("n")
	if err != nil {
		return fmt.Errorf("invalid n flag: %w", err)
	}

	cipherText, err := commandHandler.cipherService.Encrypt(cmd.Context(), message, textbookrsa.PublicKey{E: e, N: n})
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Encrypted message: %d\n", cipherText)
	return nil
}

// DecryptCmd decrypts --ciphertext with the private key (--d, --n)
func (commandHandler *TextbookRSACommandHandler) DecryptCmd(cmd *cobra.Command, _ []string) error {
	ciphertext, err := cmd.Flags().GetInt64("ciphertext")
	if err != nil {
		return fmt.Errorf("invalid ciphertext flag: %w", err)
	}
	d, err := cmd.Flags().GetInt64("d")
	if err != nil {
		return fmt.Errorf("invalid d flag: %w", err)
	}
	n, err := cmd.Flags().GetInt64("n")
	if err != nil {
		return fmt.Errorf("invalid n flag: %w", err)
	}

	plainText, err := commandHandler.cipherService.Decrypt(cmd.Context(), ciphertext, textbookrsa.PrivateKey{D: d, N: n})
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Decrypted message: %d\n", plainText)
	return nil
}

// ExamplesCmd runs the worked examples
func (commandHandler *TextbookRSACommandHandler) ExamplesCmd(cmd *cobra.Command, _ []string) error {
	return commandHandler.printExamples(cmd, cmd.OutOrStdout())
}

func (commandHandler *TextbookRSACommandHandler) printExamples(cmd *cobra.Command, w io.Writer) error {
	for _, example := range textbookrsa.WorkedExamples {
		switch example.Operation {
		case textbookrsa.OperationEncrypt:
			publicKey := textbookrsa.PublicKey{E: example.Exponent, N: example.Modulus}
			result, err := commandHandler.cipherService.Encrypt(cmd.Context(), example.Input, publicKey)
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "Encrypt(%d, %s) = %d\n", example.Input, publicKey, result)
		default:
			privateKey := textbookrsa.PrivateKey{D: example.Exponent, N: example.Modulus}
			result, err := commandHandler.cipherService.Decrypt(cmd.Context(), example.Input, privateKey)
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "Decrypt(%d, %s) = %d\n", example.Input, privateKey, result)
		}
	}
	return nil
}

func printKeyPair(w io.Writer, keyPair *textbookrsa.KeyPair) {
	fmt.Fprintf(w, "Key pair ID: %s\n", keyPair.ID)
	fmt.Fprintf(w, "Public key: %s\n", keyPair.Public)
	fmt.Fprintf(w, "Private key: %s\n", keyPair.Private)
}

// InitTextbookRSACommands registers textbook RSA commands
func InitTextbookRSACommands(rootCmd *cobra.Command) error {
	handler, err := NewTextbookRSACommandHandler()
	if err != nil {
		return fmt.Errorf("failed to create textbook RSA command handler: %w", err)
	}

	var generateKeysCmd = &cobra.Command{
		Use:   "generate-keys",
		Short: "Generate a textbook RSA key pair from a prime search range",
		RunE:  handler.GenerateKeysCmd,
	}
	generateKeysCmd.Flags().Int64("lower", 0, "Lower bound of the prime search range (inclusive)")
	generateKeysCmd.Flags().Int64("upper", 0, "Upper bound of the prime search range (inclusive)")
	generateKeysCmd.Flags().Int64("seed", 0, "Seed for prime and exponent selection (0 seeds from the clock)")
	generateKeysCmd.Flags().Uint64("retries", 0, "Retries when a draw fails, e.g. when p equals q")
	_ = generateKeysCmd.MarkFlagRequired("lower")
	_ = generateKeysCmd.MarkFlagRequired("upper")
	rootCmd.AddCommand(generateKeysCmd)

	var encryptCmd = &cobra.Command{
		Use:   "encrypt",
		Short: "Encrypt an integer message with a public key (e, n)",
		RunE:  handler.EncryptCmd,
	}
	encryptCmd.Flags().Int64("message", 0, "Integer message M with 0 <= M < n")
	encryptCmd.Flags().Int64("e", 0, "Public exponent e")
	encryptCmd.Flags().Int64("n", 0, "Modulus n")
	_ = encryptCmd.MarkFlagRequired("message")
	_ = encryptCmd.MarkFlagRequired("e")
	_ = encryptCmd.MarkFlagRequired("n")
	rootCmd.AddCommand(encryptCmd)

	var decryptCmd = &cobra.Command{
		Use:   "decrypt",
		Short: "Decrypt an integer ciphertext with a private key (d, n)",
		RunE:  handler.DecryptCmd,
	}
	decryptCmd.Flags().Int64("ciphertext", 0, "Integer ciphertext C with 0 <= C < n")
	decryptCmd.Flags().Int64("d", 0, "Private exponent d")
	decryptCmd.Flags().Int64("n", 0, "Modulus n")
	_ = decryptCmd.MarkFlagRequired("ciphertext")
	_ = decryptCmd.MarkFlagRequired("d")
	_ = decryptCmd.MarkFlagRequired("n")
	rootCmd.AddCommand(decryptCmd)

	var examplesCmd = &cobra.Command{
		Use:   "examples",
		Short: "Run the worked encryption and decryption examples",
		RunE:  handler.ExamplesCmd,
	}
	rootCmd.AddCommand(examplesCmd)

	var menuCmd = &cobra.Command{
		Use:   "menu",
		Short: "Start the interactive menu",
		RunE:  handler.MenuCmd,
	}
	rootCmd.AddCommand(menuCmd)

	return nil
}
