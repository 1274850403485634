//go:build unit
// +build unit

package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMenuCmd(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "Examples then exit",
			input:    "4\n5\n",
			expected: []string{"Encrypt(42, (7, 221)) = 185", "Decrypt(185, (103, 221)) = 42", "Exiting. Goodbye!"},
		},
		{
			name:     "Encrypt",
			input:    "2\n42\n7\n221\n5\n",
			expected: []string{"Encrypted message: 185"},
		},
		{
			name:     "Decrypt",
			input:    "3\n185\n103\n221\n5\n",
			expected: []string{"Decrypted message: 42"},
		},
		{
			name:     "Encrypt message not below modulus",
			input:    "2\n300\n7\n221\n5\n",
			expected: []string{"Error: ", "Exiting. Goodbye!"},
		},
		{
			name:     "Generate from range without primes",
			input:    "1\n24\n28\n5\n",
			expected: []string{"Could not generate keys for the given range. Try a wider range."},
		},
		{
			name:     "Generate",
			input:    "1\n100\n200\n5\n",
			expected: []string{"Public key: (", "Private key: ("},
		},
		{
			name:     "Generate from range above int64 square root",
			input:    "1\n1000000000000000\n1000000000002000\n5\n",
			expected: []string{"Could not generate keys for the given range. Try a wider range.", "Exiting. Goodbye!"},
		},
		{
			name:     "Invalid bound mid-option returns to menu",
			input:    "1\n10\nabc\n4\n5\n",
			expected: []string{"Invalid input. Please enter a number between 1 and 5.", "Encrypt(42, (7, 221)) = 185"},
		},
		{
			name:     "Non-numeric input continues",
			input:    "abc\n2\nxyz\n5\n",
			expected: []string{"Invalid input. Please enter a number between 1 and 5.", "Exiting. Goodbye!"},
		},
		{
			name:     "Out of range option continues",
			input:    "9\n5\n",
			expected: []string{"Invalid option. Please select between 1 and 5.", "Exiting. Goodbye!"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := runCommand(t, tt.input, "menu")

			require.NoError(t, err)
			for _, expected := range tt.expected {
				assert.Contains(t, out, expected)
			}
		})
	}
}

func TestMenuCmd_EndOfInput(t *testing.T) {
	out, err := runCommand(t, "4\n", "menu")

	require.NoError(t, err)
	assert.Contains(t, out, "Encrypt(15, (5, 899)) = 619")
	assert.NotContains(t, out, "Goodbye")
}
