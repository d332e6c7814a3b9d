package bootstrap

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
)

// Loadenv reads .env (or the given files) into the process environment.
// Variables already set are left alone. It reports whether a file was found.
func Loadenv(files ...string) (bool, error) {
	if err := godotenv.Load(files...); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("load env: %w", err)
	}
	return true, nil
}
