package utils

import (
	"mime/multipart"
	"path/filepath"
	"strings"

	"goblog/apperror"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
)

// avatarSize bounds the stored thumbnail; aspect ratio is preserved.
const avatarSize = 125

// SaveAvatar stores an uploaded profile picture under dir and returns the
// generated filename. The name is random, only the original extension is
// kept. Anything that fails to decode as an image rejects the upload.
func SaveAvatar(file *multipart.FileHeader, dir string) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", apperror.NewValidation("Could not read the uploaded file")
	}
	defer src.Close()

	img, err := imaging.Decode(src, imaging.AutoOrientation(true))
	if err != nil {
		return "", apperror.NewValidation("The uploaded file is not a valid image")
	}

	thumb := imaging.Fit(img, avatarSize, avatarSize, imaging.Lanczos)

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if ext == "" {
		ext = ".jpg"
	}
	filename := uuid.NewString() + ext

	if err := imaging.Save(thumb, filepath.Join(dir, filename)); err != nil {
		return "", apperror.NewValidation("Could not save the uploaded image")
	}

	return filename, nil
}
