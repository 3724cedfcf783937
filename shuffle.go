package mnist

import "math/rand"

// ShuffleTrain は訓練データのラベルと画像を同じ順序でシャッフルします。
func (d *Dataset) ShuffleTrain(rng *rand.Rand) {
	rng.Shuffle(len(d.TrainLabels), func(i, j int) {
		d.TrainLabels[i], d.TrainLabels[j] = d.TrainLabels[j], d.TrainLabels[i]
		d.TrainImages[i], d.TrainImages[j] = d.TrainImages[j], d.TrainImages[i]
	})
}

// ShuffleTest はテストデータのラベルと画像を同じ順序でシャッフルします。
func (d *Dataset) ShuffleTest(rng *rand.Rand) {
	rng.Shuffle(len(d.TestLabels), func(i, j int) {
		d.TestLabels[i], d.TestLabels[j] = d.TestLabels[j], d.TestLabels[i]
		d.TestImages[i], d.TestImages[j] = d.TestImages[j], d.TestImages[i]
	})
}
