package domain

import "errors"

var (
	ErrEntityNotFound  = errors.New("entity not found")
	ErrFolderNotFound  = errors.New("folder not found")
	ErrMessageNotFound = errors.New("message not found")
	ErrThemeNotFound   = errors.New("theme not found")
)
