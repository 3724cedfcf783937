package mnist

import (
	"fmt"

	"github.com/sw965/omw/encoding/gobx"
)

// SaveGob はデコード済みのデータセットを gob 形式で1ファイルに保存します。
// 毎回IDXを解析し直すよりも読み込みが速い。
func (d *Dataset) SaveGob(path string) error {
	if err := gobx.Save(d, path); err != nil {
		return fmt.Errorf("%w: %s", ErrFilesystem, err)
	}
	return nil
}

// LoadGob は SaveGob で保存したデータセットを読み込みます。
func LoadGob(path string) (Dataset, error) {
	d, err := gobx.Load[Dataset](path)
	if err != nil {
		return Dataset{}, fmt.Errorf("%w: %s", ErrFilesystem, err)
	}
	return d, nil
}
