package utils

import (
	"context"
	"mime/multipart"
	"os"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// InitCloudinary initializes the Cloudinary client
func InitCloudinary() (*cloudinary.Cloudinary, error) {
	err := godotenv.Load()
	if err != nil {
		log.Warn().Msg("Error loading .env file. Using environment variables directly.")
	}

	cld, err := cloudinary.NewFromParams(
		os.Getenv("CLOUDINARY_CLOUD_NAME"),
		os.Getenv("CLOUDINARY_API_KEY"),
		os.Getenv("CLOUDINARY_API_SECRET"))
	if err != nil {
		return nil, err
	}
	return cld, nil
}

// UploadImage sends an uploaded photo to Cloudinary and returns the secure
// URL. Without Cloudinary credentials the upload is stubbed to a local path.
func UploadImage(ctx context.Context, file *multipart.FileHeader, publicID, folder string) (string, error) {
	if os.Getenv("CLOUDINARY_CLOUD_NAME") == "" {
		log.Info().Str("file", file.Filename).Str("folder", folder).Msg("Cloudinary not configured, upload stubbed")
		return "/uploads/" + folder + "/" + publicID, nil
	}

	cld, err := InitCloudinary()
	if err != nil {
		return "", err
	}

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	resp, err := cld.Upload.Upload(ctx, src, uploader.UploadParams{
		PublicID:       publicID,
		Folder:         folder,
		UploadPreset:   os.Getenv("CLOUDINARY_UPLOAD_PRESET"),
		Transformation: "c_thumb,w_400,h_400",
	})
	if err != nil {
		return "", err
	}
	return resp.SecureURL, nil
}

// ValidateImageUpload enforces the upload rules for photos: the file must be
// an image and stay under the size limit.
func ValidateImageUpload(file *multipart.FileHeader, maxBytes int64) error {
	contentType := file.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		return ErrNotAnImage
	}
	if file.Size > maxBytes {
		return ErrImageTooLarge
	}
	return nil
}
