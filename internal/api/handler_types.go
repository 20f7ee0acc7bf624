package api

import (
	"time"

	"github.com/claire-lyons/folli/internal/db"
	"github.com/claire-lyons/folli/internal/reference"
	"github.com/go-playground/validator/v10"
)

type Handler struct {
	repos     *db.Repositories
	secretKey []byte
	location  *time.Location
	reference *reference.Store
	validate  *validator.Validate
}

const authTokenTTL = 30 * 24 * time.Hour

func NewHandler(repos *db.Repositories, secretKey []byte, location *time.Location, store *reference.Store) *Handler {
	if location == nil {
		location = time.UTC
	}
	return &Handler{
		repos:     repos,
		secretKey: secretKey,
		location:  location,
		reference: store,
		validate:  validator.New(),
	}
}
