package photostorage

import (
	"context"
	"io"
	e "storemap/internal/core/domain/errors"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

type Minio struct {
	client *minio.Client
	bucket string
}

func NewMinioClient(endpoint, accessKey, secretKey string, useSSL bool) (*minio.Client, error) {
	return minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
}

func NewMinio(client *minio.Client, bucket string) *Minio {
	if client == nil {
		panic(e.NewNilArgumentError("client"))
	}
	return &Minio{client: client, bucket: bucket}
}

func (s *Minio) Save(
	ctx context.Context,
	key string,
	contentType string,
	content io.Reader,
	size int64,
) error {
	_, err := s.client.PutObject(
		ctx,
		s.bucket,
		key,
		content,
		size,
		minio.PutObjectOptions{ContentType: contentType},
	)
	return err
}
