package utils

import "sync"

// KeyTryLock キーによる非ブロッキングロック
//
// 同じキーの処理が進行中の間、後続の取得は失敗する。待機はしない。
type KeyTryLock struct {
	inUse sync.Map
}

// NewKeyTryLock KeyTryLockを生成します
func NewKeyTryLock() *KeyTryLock {
	return &KeyTryLock{}
}

// TryLock キーのロックを試みます。取得できた場合にtrueを返します
func (l *KeyTryLock) TryLock(key any) bool {
	_, loaded := l.inUse.LoadOrStore(key, struct{}{})
	return !loaded
}

// Unlock キーをアンロックします
func (l *KeyTryLock) Unlock(key any) {
	l.inUse.Delete(key)
}
