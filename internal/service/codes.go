package service

import (
	"errors"
	"fmt"

	"github.com/stpnv0/EventGate/internal/domain"
)

const maxCodeAttempts = 5

// insertWithFreshCode keeps generating codes until insert stops reporting
// conflict. Generated codes are short, so collisions are expected.
func insertWithFreshCode(generate func() (string, error), insert func(code string) error, conflict error) error {
	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		code, err := generate()
		if err != nil {
			return fmt.Errorf("generate code: %w", err)
		}

		err = insert(code)
		if err == nil {
			return nil
		}
		if !errors.Is(err, conflict) {
			return err
		}
	}

	return domain.ErrCodeExhausted
}
