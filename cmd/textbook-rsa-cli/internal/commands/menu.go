package commands

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/MGTheTrain/textbook-rsa/internal/domain/textbookrsa"
	"github.com/spf13/cobra"
)

const (
	menuGenerate = 1
	menuEncrypt  = 2
	menuDecrypt  = 3
	menuExamples = 4
	menuExit     = 5
)

var errInvalidInput = errors.New("invalid input")

// menuSession reads prompts from in and writes results to out until exit or EOF.
// Option methods return only input errors; failed operations are printed.
type menuSession struct {
	ctx            context.Context
	cmd            *cobra.Command
	scanner        *bufio.Scanner
	out            io.Writer
	handler        *TextbookRSACommandHandler
	keyPairService textbookrsa.KeyPairService
}

// MenuCmd runs the interactive menu on the command's input and output streams
func (commandHandler *TextbookRSACommandHandler) MenuCmd(cmd *cobra.Command, _ []string) error {
	keyPairService, err := commandHandler.newKeyPairService(0, commandHandler.settings.MaxGenerationRetries)
	if err != nil {
		return err
	}

	session := &menuSession{
		ctx:            cmd.Context(),
		cmd:            cmd,
		scanner:        bufio.NewScanner(cmd.InOrStdin()),
		out:            cmd.OutOrStdout(),
		handler:        commandHandler,
		keyPairService: keyPairService,
	}
	return session.run()
}

func (s *menuSession) run() error {
	for {
		printMenu(s.out)

		option, err := s.readInt("Select an option (1-5): ")
		if err == nil {
			if option == menuExit {
				fmt.Fprintln(s.out, "Exiting. Goodbye!")
				return nil
			}
			err = s.runOption(option)
		}

		switch {
		case err == nil:
		case errors.Is(err, errInvalidInput):
			fmt.Fprintln(s.out, "Invalid input. Please enter a number between 1 and 5.")
		case errors.Is(err, io.EOF):
			fmt.Fprintln(s.out)
			return nil
		default:
			return fmt.Errorf("failed to read input: %w", err)
		}
	}
}

func (s *menuSession) runOption(option int64) error {
	switch option {
	case menuGenerate:
		return s.generateKeys()
	case menuEncrypt:
		return s.encrypt()
	case menuDecrypt:
		return s.decrypt()
	case menuExamples:
		return s.examples()
	default:
		fmt.Fprintln(s.out, "Invalid option. Please select between 1 and 5.")
		return nil
	}
}

func (s *menuSession) generateKeys() error {
	bounds, err := s.readInts(
		"Enter the lower bound for the primes: ",
		"Enter the upper bound for the primes: ",
	)
	if err != nil {
		return err
	}

	keyPair, err := s.keyPairService.Generate(s.ctx, bounds[0], bounds[1])
	if err != nil {
		s.handler.logger.Warn("Key generation failed: ", err)
		fmt.Fprintln(s.out, "Could not generate keys for the given range. Try a wider range.")
		return nil
	}

	fmt.Fprintf(s.out, "Public key: %s\n", keyPair.Public)
	fmt.Fprintf(s.out, "Private key: %s\n", keyPair.Private)
	return nil
}

func (s *menuSession) encrypt() error {
	values, err := s.readInts(
		"Enter the message to encrypt (a non-negative integer): ",
		"Enter e of the public key: ",
		"Enter n of the public key: ",
	)
	if err != nil {
		return err
	}

	cipherText, err := s.handler.cipherService.Encrypt(s.ctx, values[0], textbookrsa.PublicKey{E: values[1], N: values[2]})
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return nil
	}

	fmt.Fprintf(s.out, "Encrypted message: %d\n", cipherText)
	return nil
}

func (s *menuSession) decrypt() error {
	values, err := s.readInts(
		"Enter the encrypted message (a non-negative integer): ",
		"Enter d of the private key: ",
		"Enter n of the private key: ",
	)
	if err != nil {
		return err
	}

	plainText, err := s.handler.cipherService.Decrypt(s.ctx, values[0], textbookrsa.PrivateKey{D: values[1], N: values[2]})
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return nil
	}

	fmt.Fprintf(s.out, "Decrypted message: %d\n", plainText)
	return nil
}

func (s *menuSession) examples() error {
	fmt.Fprintln(s.out)
	if err := s.handler.printExamples(s.cmd, s.out); err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
	}
	return nil
}

func (s *menuSession) readInt(prompt string) (int64, error) {
	fmt.Fprint(s.out, prompt)
	if !s.scanner.Scan() {
		if err := s.scanner.Err(); err != nil {
			return 0, err
		}
		return 0, io.EOF
	}
	value, err := strconv.ParseInt(strings.TrimSpace(s.scanner.Text()), 10, 64)
	if err != nil {
		return 0, errInvalidInput
	}
	return value, nil
}

func (s *menuSession) readInts(prompts ...string) ([]int64, error) {
	values := make([]int64, 0, len(prompts))
	for _, prompt := range prompts {
		value, err := s.readInt(prompt)
		if err != nil {
			return nil, err
		}
		values = append(values, value)
	}
	return values, nil
}

func printMenu(w io.Writer) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "--- Options ---")
	fmt.Fprintln(w, "1. Generate RSA keys")
	fmt.Fprintln(w, "2. Encrypt a message")
	fmt.Fprintln(w, "3. Decrypt a message")
	fmt.Fprintln(w, "4. Examples")
	fmt.Fprintln(w, "5. Exit")
}
