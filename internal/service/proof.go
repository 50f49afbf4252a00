package service

import (
	"path/filepath"
	"strings"

	apperrors "teampro-backend/internal/errors"

	"github.com/gabriel-vasile/mimetype"
)

const proofContentType = "image/jpeg"

// checkProof accepts a JPEG image no larger than maxBytes. The declared file name, when
// present, must carry a JPEG extension; the content is sniffed regardless.
func checkProof(data []byte, filename string, maxBytes int64) (string, error) {
	if int64(len(data)) > maxBytes {
		return "", apperrors.ErrInvalidProof
	}
	if filename != "" {
		switch strings.ToLower(filepath.Ext(filename)) {
		case ".jpg", ".jpeg":
		default:
			return "", apperrors.ErrInvalidProof
		}
	}
	if !mimetype.Detect(data).Is(proofContentType) {
		return "", apperrors.ErrInvalidProof
	}
	return proofContentType, nil
}
