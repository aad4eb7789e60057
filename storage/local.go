package storage

import (
	"io"
	"os"
	"path/filepath"
	"strings"
)

// LocalFileStorage ローカルファイルストレージ
type LocalFileStorage struct {
	dirName string
	baseURL string
}

// NewLocalFileStorage LocalFileStorageを生成します
//
// baseURLを指定した場合、GenerateAccessURLはbaseURL/keyを返します。
func NewLocalFileStorage(dir, baseURL string) *LocalFileStorage {
	fs := &LocalFileStorage{baseURL: strings.TrimSuffix(baseURL, "/")}
	if dir != "" {
		fs.dirName = dir
	} else {
		fs.dirName = "./storage"
	}
	return fs
}

// SaveByKey srcの内容をkeyで指定されたファイルに書き込みます
func (fs *LocalFileStorage) SaveByKey(src io.Reader, key, _ string) error {
	name := fs.getFilePath(key)
	if err := os.MkdirAll(filepath.Dir(name), 0o755); err != nil {
		return err
	}
	file, err := os.Create(name)
	if err != nil {
		return err
	}
	defer file.Close()

	if _, err := io.Copy(file, src); err != nil {
		return err
	}
	return nil
}

// OpenFileByKey ファイルを取得します
func (fs *LocalFileStorage) OpenFileByKey(key string) (io.ReadCloser, error) {
	reader, err := os.Open(fs.getFilePath(key))
	if err != nil {
		return nil, ErrFileNotFound
	}
	return reader, nil
}

// DeleteByKey ファイルを削除します
func (fs *LocalFileStorage) DeleteByKey(key string) error {
	name := fs.getFilePath(key)
	if _, err := os.Stat(name); err != nil {
		return ErrFileNotFound
	}
	return os.Remove(name)
}

// GenerateAccessURL keyで指定されたファイルの直接アクセスURLを発行する
func (fs *LocalFileStorage) GenerateAccessURL(key string) (string, error) {
	if fs.baseURL == "" {
		return "", nil
	}
	if _, err := os.Stat(fs.getFilePath(key)); err != nil {
		return "", ErrFileNotFound
	}
	return fs.baseURL + "/" + key, nil
}

// GetDir ファイルの保存先を取得する
func (fs *LocalFileStorage) GetDir() string {
	return fs.dirName
}

func (fs *LocalFileStorage) getFilePath(key string) string {
	return filepath.Join(fs.dirName, filepath.FromSlash(key))
}
