// Package domain はreportsフィーチャーのドメインモデルとエラーを定義します。
package domain

import "errors"

var (
	// ErrReportNotFound は指定日のレポート成果物が存在しない場合に返されます。
	ErrReportNotFound = errors.New("report not found")
)
