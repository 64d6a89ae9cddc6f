package service

import (
	"errors"

	"alumni-jobboard-backend/internal/domain"
	"alumni-jobboard-backend/internal/repository"
)

// storeError maps a repository failure onto the domain taxonomy.
func storeError(err error, message string) error {
	if errors.Is(err, repository.ErrNotFound) {
		return domain.NewError(domain.KindNotFound, message, err)
	}
	return domain.NewError(domain.KindStoreUnavailable, message, err)
}

func invalidInput(message string) error {
	return domain.NewError(domain.KindInvalidInput, message, nil)
}

// resultLabel is the metric label for an operation outcome.
func resultLabel(ok string, err error) string {
	if err == nil {
		return ok
	}
	return string(domain.KindOf(err))
}
