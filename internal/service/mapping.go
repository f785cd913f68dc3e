package service

import (
	"errors"

	"github.com/jinzhu/copier"
	"github.com/lshigami/Surveyor/internal/apperr"
	"github.com/lshigami/Surveyor/internal/dto"
	"github.com/lshigami/Surveyor/internal/model"
	"github.com/lshigami/Surveyor/internal/repository"
	"github.com/rs/zerolog/log"
)

// mapTo copies the matching fields of src into a fresh T.
func mapTo[T any](src any) (T, error) {
	var dst T
	if err := copier.Copy(&dst, src); err != nil {
		return dst, apperr.Internal(err, "map %T", dst)
	}
	return dst, nil
}

// mapSlice is mapTo for lists; an empty input yields an empty, non-nil slice.
func mapSlice[T any, S any](src []S) ([]T, error) {
	dst := make([]T, 0, len(src))
	if len(src) == 0 {
		return dst, nil
	}
	if err := copier.Copy(&dst, &src); err != nil {
		return nil, apperr.Internal(err, "map []%T", *new(T))
	}
	return dst, nil
}

func wrapSurveys(surveys []model.Survey) ([]dto.ResponseModel[dto.SurveyResponse], error) {
	out := make([]dto.ResponseModel[dto.SurveyResponse], 0, len(surveys))
	for i := range surveys {
		resp, err := mapTo[dto.SurveyResponse](&surveys[i])
		if err != nil {
			return nil, err
		}
		out = append(out, dto.ResponseModel[dto.SurveyResponse]{ID: surveys[i].ID, Data: resp})
	}
	return out, nil
}

// storageErr turns a repository failure into a service error: a missing row
// becomes notFound, anything else an Internal error.
func storageErr(err error, notFound *apperr.Error, format string, args ...any) error {
	if repository.IsNotFound(err) && notFound != nil {
		return notFound
	}
	return apperr.Internal(err, format, args...)
}

// logFailure logs unexpected failures at error level. Client errors such as
// a missing record are expected and only traced at debug level.
func logFailure(err error, msg, idKey string, id uint) {
	if errors.Is(err, apperr.ErrInternal) {
		log.Error().Err(err).Uint(idKey, id).Msg(msg)
		return
	}
	log.Debug().Err(err).Uint(idKey, id).Msg(msg)
}
