package mnist

import (
	"path/filepath"

	"github.com/sw965/mnist/idx"
)

// DefaultBaseURL はアーカイブの取得元です。New はこのURLを設定します。
const DefaultBaseURL = "https://raw.githubusercontent.com/fgnt/mnist/master"

const (
	trainImagesFile = "train-images-idx3-ubyte.gz"
	trainLabelsFile = "train-labels-idx1-ubyte.gz"
	testImagesFile  = "t10k-images-idx3-ubyte.gz"
	testLabelsFile  = "t10k-labels-idx1-ubyte.gz"
)

// Dataset は訓練用とテスト用の画像・ラベルを保持します。
// 画像は1枚あたり 行数×列数 (通常は28×28=784) のフラットなfloat32スライスで、
// 各ピクセルは [0.0, 1.0] に正規化されています。
// ラベルと画像は同じインデックスで対応します。
type Dataset struct {
	TrainLabels []byte
	TrainImages [][]float32
	TestLabels  []byte
	TestImages  [][]float32

	// 設定。Load を呼ぶ前に変更できる。
	BaseURL string
	SaveDir string
}

// New は saveDir をキャッシュ先とする Dataset を作ります。
func New(saveDir string) *Dataset {
	return &Dataset{
		BaseURL: DefaultBaseURL,
		SaveDir: saveDir,
	}
}

// Load は4つのアーカイブをダウンロード(済みならスキップ)し、
// 展開・デコードして全データをメモリに読み込みます。
// 途中で失敗した場合、それ以前に読み込めたフィールドはそのまま残ります。
func (d *Dataset) Load() error {
	if err := DownloadFiles(d.SaveDir, d.BaseURL); err != nil {
		return err
	}

	labels, images, err := d.loadSplit(trainLabelsFile, trainImagesFile)
	if err != nil {
		return err
	}
	d.TrainLabels = labels
	d.TrainImages = images

	labels, images, err = d.loadSplit(testLabelsFile, testImagesFile)
	if err != nil {
		return err
	}
	d.TestLabels = labels
	d.TestImages = images
	return nil
}

func (d *Dataset) loadSplit(labelFile, imageFile string) ([]byte, [][]float32, error) {
	labelData, err := ReadGzip(filepath.Join(d.SaveDir, labelFile))
	if err != nil {
		return nil, nil, err
	}
	labels, err := idx.Labels(labelData)
	if err != nil {
		return nil, nil, err
	}

	imageData, err := ReadGzip(filepath.Join(d.SaveDir, imageFile))
	if err != nil {
		return nil, nil, err
	}
	images, err := idx.Images(imageData)
	if err != nil {
		return nil, nil, err
	}
	return labels, images, nil
}
