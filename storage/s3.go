package storage

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// S3FileStorage S3互換オブジェクトストレージ
type S3FileStorage struct {
	bucket string
	client *s3.Client
}

// NewS3FileStorage 引数の情報でS3ストレージを生成します
func NewS3FileStorage(bucket, region, endpoint, apiKey, apiSecret string, forcePathStyle bool) (*S3FileStorage, error) {
	cfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithRegion(region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(apiKey, apiSecret, "")),
	)
	if err != nil {
		return nil, err
	}

	client := s3.NewFromConfig(cfg, func(opt *s3.Options) {
		if endpoint != "" {
			opt.BaseEndpoint = aws.String(endpoint)
		}
		opt.UsePathStyle = forcePathStyle
	})

	return &S3FileStorage{
		bucket: bucket,
		client: client,
	}, nil
}

// SaveByKey srcの内容をkeyで指定されたファイルに書き込みます
func (fs *S3FileStorage) SaveByKey(src io.Reader, key, contentType string) error {
	uploader := manager.NewUploader(fs.client)
	_, err := uploader.Upload(context.Background(), &s3.PutObjectInput{
		Bucket:      aws.String(fs.bucket),
		Key:         aws.String(key),
		Body:        src,
		ContentType: aws.String(contentType),
	})
	return err
}

// OpenFileByKey ファイルを取得します
func (fs *S3FileStorage) OpenFileByKey(key string) (io.ReadCloser, error) {
	out, err := fs.client.GetObject(context.Background(), &s3.GetObjectInput{
		Bucket: aws.String(fs.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var nsk *types.NoSuchKey
		if errors.As(err, &nsk) {
			return nil, ErrFileNotFound
		}
		return nil, err
	}
	return out.Body, nil
}

// DeleteByKey ファイルを削除します
func (fs *S3FileStorage) DeleteByKey(key string) error {
	_, err := fs.client.DeleteObject(context.Background(), &s3.DeleteObjectInput{
		Bucket: aws.String(fs.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var nsk *types.NoSuchKey
		if errors.As(err, &nsk) {
			return ErrFileNotFound
		}
		return err
	}
	return nil
}

// GenerateAccessURL keyで指定されたファイルの署名付きURLを発行する
func (fs *S3FileStorage) GenerateAccessURL(key string) (string, error) {
	pc := s3.NewPresignClient(fs.client)
	req, err := pc.PresignGetObject(context.Background(), &s3.GetObjectInput{
		Bucket: aws.String(fs.bucket),
		Key:    aws.String(key),
	}, func(options *s3.PresignOptions) {
		options.Expires = 24 * time.Hour
	})
	if err != nil {
		return "", err
	}
	return req.URL, nil
}
