package services

import (
	"context"
	"mime/multipart"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

const uploadFolder = "foodie_menu"

// UploadService pushes menu images to Cloudinary and hands back the
// hosted URL. Images are never stored locally.
type UploadService struct {
	cld *cloudinary.Cloudinary
}

func NewUploadService(cloudinaryURL string) (*UploadService, error) {
	cld, err := cloudinary.NewFromURL(cloudinaryURL)
	if err != nil {
		return nil, err
	}
	return &UploadService{cld: cld}, nil
}

func (s *UploadService) UploadImage(ctx context.Context, file multipart.File) (string, error) {
	res, err := s.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		Folder:         uploadFolder,
		Transformation: "c_limit,w_1200",
	})
	if err != nil {
		return "", err
	}
	return res.SecureURL, nil
}
