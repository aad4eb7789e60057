package imaging

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"image/png"
)

// PlaceholderKey 写真が取得できない報告に割り当てる代替画像のストレージキー
const PlaceholderKey = "no_image_available.png"

// GeneratePlaceholder 代替画像を生成します
func GeneratePlaceholder(width, height int) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.NRGBA{R: 0xE0, G: 0xE0, B: 0xE0, A: 0xFF}), image.Point{}, draw.Src)

	// 中央に対角線を引いて「画像なし」を示す
	line := color.NRGBA{R: 0x9E, G: 0x9E, B: 0x9E, A: 0xFF}
	for i := 0; i < width && i < height; i++ {
		img.SetNRGBA(i, i*height/width, line)
		img.SetNRGBA(width-1-i, i*height/width, line)
	}
	return img
}

// EncodePNG imgをPNGにエンコードします
func EncodePNG(img image.Image) (*bytes.Reader, error) {
	var b bytes.Buffer
	if err := png.Encode(&b, img); err != nil {
		return nil, err
	}
	return bytes.NewReader(b.Bytes()), nil
}
