package mnist

import (
	"fmt"

	"github.com/sw965/omw/mathx/bitsx"
	"gonum.org/v1/gonum/blas/blas32"
)

// ToVectors はフラットな画像データを blas32.Vector のスライスに変換します。
// Data は元のスライスを共有します。
func ToVectors(images [][]float32) []blas32.Vector {
	vecs := make([]blas32.Vector, len(images))
	for i, img := range images {
		vecs[i] = blas32.Vector{
			N:    len(img),
			Inc:  1,
			Data: img,
		}
	}
	return vecs
}

// OneHotLabels はラベル(0-9)を one-hot な blas32.Vector に変換します。
// 損失計算の教師信号としてそのまま使える形式。
func OneHotLabels(labels []byte, numClasses int) ([]blas32.Vector, error) {
	vecs := make([]blas32.Vector, len(labels))
	for i, label := range labels {
		if int(label) >= numClasses {
			return nil, fmt.Errorf("label out of range at index %d: %d", i, label)
		}
		data := make([]float32, numClasses)
		data[label] = 1.0
		vecs[i] = blas32.Vector{
			N:    numClasses,
			Inc:  1,
			Data: data,
		}
	}
	return vecs, nil
}

// Binarize は float32の画像データを閾値で2値化して bitsx.Matrix に変換します。
// 各画像は 1行×画像サイズ列 の行列になります。
func Binarize(images [][]float32, threshold float32) ([]bitsx.Matrix, error) {
	result := make([]bitsx.Matrix, len(images))
	for i, img := range images {
		mat, err := bitsx.NewZerosMatrix(1, len(img))
		if err != nil {
			return nil, err
		}

		for j, val := range img {
			// 閾値以上ならビットを立てる
			if val >= threshold {
				if err := mat.Set(0, j); err != nil {
					return nil, err
				}
			}
		}
		result[i] = mat
	}
	return result, nil
}
