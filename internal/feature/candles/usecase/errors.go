// Package usecase はcandlesフィーチャーのビジネスロジックを実装します。
package usecase

import "errors"

var (
	// ErrInvalidCode は銘柄コードが4桁の数字でない場合に返されます。
	ErrInvalidCode = errors.New("invalid instrument code")
	// ErrNoCache はローカル価格キャッシュが存在しない場合にCacheRepositoryが返します。
	ErrNoCache = errors.New("no cached series")
)
