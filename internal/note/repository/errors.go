package repository

import "errors"

var (
	ErrFailedToList   = errors.New("failed to list notes")
	ErrFailedToGet    = errors.New("failed to get note")
	ErrFailedToCreate = errors.New("failed to create note")
	ErrFailedToUpdate = errors.New("failed to update note")
	ErrFailedToDelete = errors.New("failed to delete note")
	ErrFailedProfile  = errors.New("failed to get profile")
)
