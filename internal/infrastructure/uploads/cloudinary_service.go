package uploads

import (
	"bytes"
	"context"
	"fmt"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"

	"github.com/Mental-Health-Matters/Psych/domain"
)

// CloudinaryServiceImpl implements domain.UploadService against the
// Cloudinary image-hosting API.
type CloudinaryServiceImpl struct {
	client *cloudinary.Cloudinary
	folder string
}

// NewCloudinaryService creates a new Cloudinary upload service
func NewCloudinaryService(cloudName, apiKey, apiSecret string) (domain.UploadService, error) {
	client, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to init cloudinary client: %w", err)
	}
	return &CloudinaryServiceImpl{client: client, folder: "profile_pictures"}, nil
}

// UploadImage implements domain.UploadService. A response without a secure
// URL counts as a failed upload.
func (c *CloudinaryServiceImpl) UploadImage(ctx context.Context, data []byte) (string, error) {
	resp, err := c.client.Upload.Upload(ctx, bytes.NewReader(data), uploader.UploadParams{
		ResourceType: "image",
		Folder:       c.folder,
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrUploadFailed, err)
	}
	if resp == nil || resp.SecureURL == "" {
		return "", domain.ErrUploadFailed
	}
	return resp.SecureURL, nil
}
