package mnist

import (
	"bytes"
	"compress/gzip"
	"fmt"
	"os"
)

// ReadGzip は gzip ファイルを丸ごと展開してメモリに読み込みます。
func ReadGzip(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrFilesystem, err)
	}
	defer f.Close()

	gr, err := gzip.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrFilesystem, err)
	}
	defer gr.Close()

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(gr); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrFilesystem, err)
	}
	return buf.Bytes(), nil
}
