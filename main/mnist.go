package main

import (
	"fmt"
	"log"

	"github.com/sw965/mnist"
	orand "github.com/sw965/omw/math/rand"
	"gonum.org/v1/gonum/blas/blas32"
	"gonum.org/v1/netlib/blas/netlib"
)

func main() {
	blas32.Use(netlib.Implementation{})

	data := mnist.New("mnist-data")
	if err := data.Load(); err != nil {
		log.Fatalf("読み込み失敗: %v", err)
	}

	fmt.Println("Train data size:", len(data.TrainImages))
	fmt.Println("Test data size:", len(data.TestImages))
	fmt.Println("Train labels size:", len(data.TrainLabels))
	fmt.Println("Test labels size:", len(data.TestLabels))

	rng := orand.NewMt19937()
	data.ShuffleTrain(rng)

	fmt.Println("label:", data.TrainLabels[0])
	mnist.PrintImage(data.TrainImages[0])

	// 最初の1枚の平均ピクセル値をBLASの内積で計算してみる
	xs := mnist.ToVectors(data.TrainImages)
	x := xs[0]
	ones := blas32.Vector{
		N:    x.N,
		Inc:  1,
		Data: make([]float32, x.N),
	}
	for i := range ones.Data {
		ones.Data[i] = 1.0
	}
	fmt.Println("mean pixel:", blas32.Dot(x, ones)/float32(x.N))
	fmt.Println("std pixel:", mnist.Std(x.Data))
}
