package repository

import "errors"

var (
	// ErrNilID 汎用エラー 引数のIDがNilです
	ErrNilID = errors.New("nil id")
	// ErrNotFound 汎用エラー 見つかりません
	ErrNotFound = errors.New("not found")
)
