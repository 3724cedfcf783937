package idx

import (
	"encoding/binary"
	"errors"
	"fmt"
)

const (
	// LabelHeaderLen はラベルファイルのヘッダー長です。
	// マジックナンバー(4バイト)とラベル数(4バイト)だが、中身は読み飛ばす。
	LabelHeaderLen = 8

	// ImageHeaderLen は画像ファイルのヘッダー長です。
	// マジックナンバー・画像数・行数・列数の各4バイト。
	ImageHeaderLen = 16
)

// ErrCorrupt はIDXデータが途中で切れている場合のエラーです。
// ネットワークエラーと違い再試行しても直らないので、errors.Is で区別できるようにしておく。
var ErrCorrupt = errors.New("idx: corrupt data")

// Labels はラベルファイルの展開済みバイト列をデコードします。
// ヘッダー以降の全バイトがそのままラベル値(0-9)になります。
func Labels(data []byte) ([]byte, error) {
	if len(data) < LabelHeaderLen {
		return nil, fmt.Errorf("%w: label data is %d bytes, want at least %d", ErrCorrupt, len(data), LabelHeaderLen)
	}

	labels := make([]byte, len(data)-LabelHeaderLen)
	copy(labels, data[LabelHeaderLen:])
	return labels, nil
}

// Images は画像ファイルの展開済みバイト列をデコードします。
// 画像数と画像サイズはヘッダーのビッグエンディアン32bit値から取り、
// 各ピクセルは 255 で割って [0.0, 1.0] のfloat32に正規化します。
func Images(data []byte) ([][]float32, error) {
	if len(data) < ImageHeaderLen {
		return nil, fmt.Errorf("%w: image data is %d bytes, want at least %d", ErrCorrupt, len(data), ImageHeaderLen)
	}

	count := int(binary.BigEndian.Uint32(data[4:8]))
	rows := int(binary.BigEndian.Uint32(data[8:12]))
	cols := int(binary.BigEndian.Uint32(data[12:16]))
	imageSize := rows * cols

	need := ImageHeaderLen + count*imageSize
	if len(data) < need {
		return nil, fmt.Errorf(
			"%w: image data is %d bytes, want %d (count=%d, %dx%d)",
			ErrCorrupt, len(data), need, count, rows, cols,
		)
	}

	raw := data[ImageHeaderLen:]
	images := make([][]float32, count)
	for i := range images {
		img := make([]float32, imageSize)
		for j, b := range raw[i*imageSize : (i+1)*imageSize] {
			img[j] = float32(b) / 255.0
		}
		images[i] = img
	}
	return images, nil
}
