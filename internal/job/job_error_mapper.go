package job

import (
	"errors"

	joberrors "careernest/internal/job/errors"

	"go.mongodb.org/mongo-driver/mongo"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, mongo.ErrNoDocuments) {
		return joberrors.ErrJobNotFound
	}
	return err
}
