package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	gcs "cloud.google.com/go/storage"
	"google.golang.org/api/option"
)

// GCSFileStorage Google Cloud Storage (Firebase Storageバケット互換)
type GCSFileStorage struct {
	bucketName string
	bucket     *gcs.BucketHandle
}

// NewGCSFileStorage 引数の情報でGCSストレージを生成します
//
// credFileが空の場合はApplication Default Credentialsを使用します。
func NewGCSFileStorage(bucket, credFile string) (*GCSFileStorage, error) {
	var opts []option.ClientOption
	if credFile != "" {
		opts = append(opts, option.WithCredentialsFile(credFile))
	}
	client, err := gcs.NewClient(context.Background(), opts...)
	if err != nil {
		return nil, err
	}
	return &GCSFileStorage{
		bucketName: bucket,
		bucket:     client.Bucket(bucket),
	}, nil
}

// SaveByKey srcの内容をkeyで指定されたオブジェクトに書き込みます
func (fs *GCSFileStorage) SaveByKey(src io.Reader, key, contentType string) error {
	w := fs.bucket.Object(key).NewWriter(context.Background())
	w.ContentType = contentType
	if _, err := io.Copy(w, src); err != nil {
		_ = w.Close()
		return err
	}
	return w.Close()
}

// OpenFileByKey オブジェクトを取得します
func (fs *GCSFileStorage) OpenFileByKey(key string) (io.ReadCloser, error) {
	r, err := fs.bucket.Object(key).NewReader(context.Background())
	if err != nil {
		if errors.Is(err, gcs.ErrObjectNotExist) {
			return nil, ErrFileNotFound
		}
		return nil, err
	}
	return r, nil
}

// DeleteByKey オブジェクトを削除します
func (fs *GCSFileStorage) DeleteByKey(key string) error {
	err := fs.bucket.Object(key).Delete(context.Background())
	if errors.Is(err, gcs.ErrObjectNotExist) {
		return ErrFileNotFound
	}
	return err
}

// GenerateAccessURL keyで指定されたオブジェクトの直接アクセスURLを発行する
//
// 署名付きURLを発行できないクレデンシャルの場合は公開オブジェクトURLにフォールバックする。
func (fs *GCSFileStorage) GenerateAccessURL(key string) (string, error) {
	if _, err := fs.bucket.Object(key).Attrs(context.Background()); err != nil {
		if errors.Is(err, gcs.ErrObjectNotExist) {
			return "", ErrFileNotFound
		}
		return "", err
	}
	u, err := fs.bucket.SignedURL(key, &gcs.SignedURLOptions{
		Method:  "GET",
		Expires: time.Now().Add(24 * time.Hour),
	})
	if err == nil {
		return u, nil
	}
	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", fs.bucketName, key), nil
}
