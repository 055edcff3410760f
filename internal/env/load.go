package env

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Load reads the given file (e.g. ".env") and sets environment variables for each
// KEY=VALUE line that is not already set, so the real environment wins over the file.
// The file may be missing; that is not an error.
func Load(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("env: %w", err)
	}
	return nil
}
