package oss

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"videotube/config"
	"videotube/pkg/errno"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/pkg/errors"
)

var minioClient *minio.Client

func Init() error {
	conf := config.ConfigInfo.Minio
	var err error
	minioClient, err = minio.New(conf.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(conf.AccessKey, conf.SecretKey, ""),
		Secure: conf.UseSSL,
	})
	if err != nil {
		return errors.WithMessage(err, "minio client init failed")
	}
	return nil
}

func ensureBucket(ctx context.Context, bucket string) error {
	exists, err := minioClient.BucketExists(ctx, bucket)
	if err != nil {
		return errors.WithMessage(err, "check bucket failed")
	}
	if !exists {
		if err := minioClient.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
			return errors.WithMessage(err, "create bucket failed")
		}
	}
	return nil
}

// UploadVideo stores a local video file and returns its durable URL.
// Failures surface immediately; nothing here retries.
func UploadVideo(ctx context.Context, localPath string) (string, error) {
	return upload(ctx, config.ConfigInfo.Minio.VideoBucket, "videos", localPath, "video/mp4")
}

// UploadImage stores a local image file (thumbnail, avatar, cover) and
// returns its durable URL.
func UploadImage(ctx context.Context, localPath string) (string, error) {
	contentType := "image/jpeg"
	if strings.EqualFold(filepath.Ext(localPath), ".png") {
		contentType = "image/png"
	}
	return upload(ctx, config.ConfigInfo.Minio.ImageBucket, "images", localPath, contentType)
}

func upload(ctx context.Context, bucket, prefix, localPath, contentType string) (string, error) {
	if err := ensureBucket(ctx, bucket); err != nil {
		return "", errno.UpstreamErr.WithMessage(err.Error())
	}
	objectName := prefix + "/" + uuid.New().String() + filepath.Ext(localPath)
	_, err := minioClient.FPutObject(ctx, bucket, objectName, localPath, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", errno.UpstreamErr.WithMessage("upload failed: " + err.Error())
	}
	return fmt.Sprintf("%s/%s/%s", config.ConfigInfo.Minio.PublicBase, bucket, objectName), nil
}
