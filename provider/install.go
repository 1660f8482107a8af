package provider

import (
	"context"
	"crypto/sha256"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"

	"github.com/youngoor/youngoor/filesystem"
	"github.com/youngoor/youngoor/log"
	"github.com/youngoor/youngoor/util"
	"github.com/youngoor/youngoor/where"
)

// Install downloads a Lua source into where.Sources.
// It reports whether the file on disk changed; identical content is not rewritten.
func Install(ctx context.Context, client *http.Client, rawURL string) (string, bool, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", false, err
	}

	name := path.Base(u.Path)
	if path.Ext(name) != ".lua" {
		return "", false, fmt.Errorf("%s does not point at a .lua file", rawURL)
	}
	name = util.SanitizeFilename(util.FileStem(name)) + ".lua"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", false, err
	}

	resp, err := client.Do(req)
	if err != nil {
		return "", false, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", false, fmt.Errorf("download %s: %s", rawURL, http.StatusText(resp.StatusCode))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", false, err
	}

	localPath := filepath.Join(where.Sources(), name)
	fs := filesystem.API()

	if local, err := fs.ReadFile(localPath); err == nil && sha256.Sum256(local) == sha256.Sum256(body) {
		log.Infof("source %s is up to date", name)
		return localPath, false, nil
	}

	tmpPath := localPath + ".tmp"
	if err := fs.WriteFile(tmpPath, body, os.ModePerm); err != nil {
		return "", false, err
	}

	if err := fs.Rename(tmpPath, localPath); err != nil {
		_ = fs.Remove(tmpPath)
		return "", false, err
	}

	log.Infof("installed source %s from %s", name, rawURL)
	return localPath, true, nil
}
