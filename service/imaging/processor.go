// Package imaging 報告写真の変換処理
package imaging

import (
	"image"
	"io"
)

// Processor 画像処理機
type Processor interface {
	// Photo 報告写真用にsrcをPhotoMaxSizeに収まるよう変換します
	Photo(src io.ReadSeeker) (image.Image, error)
	// Fit srcをwidth x heightに収まるよう変換します
	Fit(src io.ReadSeeker, width, height int) (image.Image, error)
}
