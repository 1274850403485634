// Package main is the entry point for the textbook-rsa-cli application.
// It initializes the root command, registers the textbook RSA sub-commands
// and executes the command-line interface.
package main

import (
	"fmt"
	"log"
	"os"

	commands "github.com/MGTheTrain/textbook-rsa/cmd/textbook-rsa-cli/internal/commands"

	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "textbook-rsa-cli",
		Short: "Textbook RSA over small integers",
		Long: `textbook-rsa-cli generates textbook RSA key pairs from a prime search range
and encrypts or decrypts single integers below the modulus.

It has no padding and no side-channel resistance. Use it for teaching only.
Run "textbook-rsa-cli menu" for the interactive menu.`,
		SilenceUsage: true,
	}

	if err := initializeCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize commands: %w", err)
	}

	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}

// initializeCommands registers all command groups with the root command.
func initializeCommands(rootCmd *cobra.Command) error {
	if err := commands.InitTextbookRSACommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize textbook RSA commands: %w", err)
	}
	return nil
}

func init() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stderr)
}
