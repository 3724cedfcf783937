package mnist

import (
	"github.com/chewxy/math32"
	omath "github.com/sw965/omw/math"
)

// Mean は画像1枚の平均ピクセル値を返します。
func Mean(img []float32) float32 {
	if len(img) == 0 {
		panic("vector length is zero")
	}
	return omath.Mean(img...)
}

// Std は画像1枚のピクセル値の標準偏差を返します。
func Std(img []float32) float32 {
	mean := Mean(img)

	//分散を求める
	meanDeviationSqSum := float32(0.0)
	for _, e := range img {
		d := e - mean
		meanDeviationSqSum += d * d
	}
	vari := 1.0 / float32(len(img)) * meanDeviationSqSum

	return math32.Sqrt(vari + 1e-5)
}

// Standardize は画像1枚を平均0・標準偏差1に標準化した新しいスライスを返します。
func Standardize(img []float32) []float32 {
	mean := Mean(img)
	std := Std(img)

	z := make([]float32, len(img))
	for i, e := range img {
		z[i] = (e - mean) / std
	}
	return z
}
