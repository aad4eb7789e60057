package gorm

import (
	"errors"

	"gorm.io/gorm"

	"github.com/miles/straymaps/repository"
)

func convertError(err error) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return repository.ErrNotFound
	default:
		return err
	}
}
