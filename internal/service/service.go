package service

import (
	"context"
	"errors"
	"log/slog"
	"mime/multipart"
	"strings"

	"catalog-service/internal/repository"
	apperrors "catalog-service/pkg/errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MediaStore persists uploaded images and hands back their public URLs
type MediaStore interface {
	Save(file *multipart.FileHeader) (string, error)
	Remove(url string) error
}

// discardUpload removes a stored file whose owning document is gone or was
// never written. Failures only leave an orphaned file behind, so they are logged.
func discardUpload(media MediaStore, url string) {
	if url == "" {
		return
	}
	if err := media.Remove(url); err != nil {
		slog.Warn("failed to remove upload", "url", url, "error", err)
	}
}

func required(field, value string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", apperrors.Invalid("%s is required", field)
	}
	return value, nil
}

func parseID(field, value string) (primitive.ObjectID, error) {
	oid, err := repository.ObjectID(value)
	if err != nil {
		return primitive.NilObjectID, apperrors.Invalid("%s must be a valid id", field)
	}
	return oid, nil
}

// ensureRef parses a reference and checks that the referenced document exists
func ensureRef[T any](ctx context.Context, field, value string, get func(context.Context, string) (*T, error)) (primitive.ObjectID, error) {
	if strings.TrimSpace(value) == "" {
		return primitive.NilObjectID, apperrors.Invalid("%s is required", field)
	}
	oid, err := parseID(field, value)
	if err != nil {
		return primitive.NilObjectID, err
	}
	if _, err := get(ctx, value); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return primitive.NilObjectID, apperrors.Invalid("%s does not reference an existing document", field)
		}
		return primitive.NilObjectID, err
	}
	return oid, nil
}

// ensureOptionalRef is ensureRef for references that may be left empty
func ensureOptionalRef[T any](ctx context.Context, field, value string, get func(context.Context, string) (*T, error)) (*primitive.ObjectID, error) {
	if strings.TrimSpace(value) == "" {
		return nil, nil
	}
	oid, err := ensureRef(ctx, field, value, get)
	if err != nil {
		return nil, err
	}
	return &oid, nil
}
