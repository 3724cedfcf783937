package mnist

import (
	"fmt"
	"io"
	"os"
)

// 1枚あたりの標準的な画像サイズ。
const (
	ImgRows = 28
	ImgCols = 28
)

// PrintImage はフラットな画像1枚を28列ごとに区切って標準出力にアスキーアート表示します。
// 0.5 より大きいピクセルは `*`、それ以外は `_` になります。デバッグ用。
func PrintImage(img []float32) {
	FprintImage(os.Stdout, img)
}

func FprintImage(w io.Writer, img []float32) {
	for i := 0; i < len(img); i += ImgCols {
		end := i + ImgCols
		if end > len(img) {
			end = len(img)
		}
		for _, p := range img[i:end] {
			if p > 0.5 {
				fmt.Fprint(w, "*")
			} else {
				fmt.Fprint(w, "_")
			}
		}
		fmt.Fprintln(w)
	}
}
