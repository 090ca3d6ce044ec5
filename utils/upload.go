// utils/upload.go
package utils

import (
	"context"
	"fmt"
	"mime/multipart"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// ImageUploader stores a profile image on an external host and returns its
// public URL.
type ImageUploader interface {
	UploadImage(ctx context.Context, file multipart.File, filename string) (string, error)
}

// CloudinaryUploader implements ImageUploader against Cloudinary.
type CloudinaryUploader struct {
	cld *cloudinary.Cloudinary
}

// NewCloudinaryUploader builds an uploader from the CLOUDINARY_URL
// environment variable.
func NewCloudinaryUploader() (*CloudinaryUploader, error) {
	cld, err := cloudinary.New()
	if err != nil {
		return nil, fmt.Errorf("cloudinary init: %w", err)
	}
	return &CloudinaryUploader{cld: cld}, nil
}

// UploadImage uploads the file and returns its HTTPS delivery URL.
func (u *CloudinaryUploader) UploadImage(ctx context.Context, file multipart.File, filename string) (string, error) {
	resp, err := u.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		Folder:       "profiles",
		ResourceType: "image",
	})
	if err != nil {
		return "", fmt.Errorf("cloudinary upload: %w", err)
	}
	return resp.SecureURL, nil
}
