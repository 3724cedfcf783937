package mnist

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
)

var archiveFiles = []string{
	trainImagesFile,
	trainLabelsFile,
	testImagesFile,
	testLabelsFile,
}

// DownloadFiles は4つのアーカイブが saveDir に揃っている事を保証します。
// 既に存在するファイルはダウンロードしません(存在チェックのみで中身は検証しない)。
func DownloadFiles(saveDir, baseURL string) error {
	if err := os.MkdirAll(saveDir, 0755); err != nil {
		return fmt.Errorf("%w: %s", ErrFilesystem, err)
	}

	for _, name := range archiveFiles {
		path := filepath.Join(saveDir, name)
		if err := ensureFile(path, baseURL+"/"+name); err != nil {
			return err
		}
	}
	return nil
}

func ensureFile(path, url string) error {
	if _, err := os.Stat(path); err == nil {
		fmt.Printf("File: %s\n", filepath.Base(path))
		return nil
	}

	fmt.Printf("Downloading %s...\n", url)
	resp, err := http.Get(url)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrTransport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: bad status: %s", ErrTransport, resp.Status)
	}

	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrFilesystem, err)
	}
	defer out.Close()

	if _, err := io.Copy(out, resp.Body); err != nil {
		return fmt.Errorf("%w: %s", ErrFilesystem, err)
	}
	return nil
}
