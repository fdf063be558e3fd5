package app

import (
	"fmt"
	"strconv"
	"strings"

	"opentdb-quiz/internal/domain"
)

// ParseChoice turns a 1-based number typed by the user into the selection text.
func ParseChoice(raw string, selection []string) (string, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return "", fmt.Errorf("%w: %q is not a number", domain.ErrInvalidSelection, strings.TrimSpace(raw))
	}
	return ChoiceAt(n, selection)
}

// ChoiceAt validates n against 1..len(selection).
func ChoiceAt(n int, selection []string) (string, error) {
	if n < 1 || n > len(selection) {
		return "", fmt.Errorf("%w: choose a number between 1 and %d", domain.ErrInvalidSelection, len(selection))
	}
	return selection[n-1], nil
}
