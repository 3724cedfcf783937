package mnist

import (
	"errors"

	"github.com/sw965/mnist/idx"
)

// errors.Is で判定できる閉じたエラー種別。
// 再試行すれば直る可能性があるもの(ネットワーク)と、
// 直らないもの(ファイル破損)を呼び出し側で区別できるようにする。
var (
	// ErrTransport はダウンロード失敗(接続エラー・200以外のステータス)を表します。
	ErrTransport = errors.New("mnist: transport error")

	// ErrFilesystem はディレクトリ作成・ファイル読み書き・gzip展開の失敗を表します。
	ErrFilesystem = errors.New("mnist: filesystem error")

	// ErrCorrupt はIDXデータの破損を表します。idx.ErrCorrupt と同一です。
	ErrCorrupt = idx.ErrCorrupt
)
