package gconfig

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func TestNoSecretFieldsLoggedDirectly(t *testing.T) {
	secretKeys := []string{
		"value", "secret", "token",
		"access_key_id", "secret_access_key", "session_token",
	}

	_, thisFile, _, _ := runtime.Caller(0)
	root := filepath.Clean(filepath.Join(filepath.Dir(thisFile), "..", ".."))

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() {
			switch d.Name() {
			case ".git", "tmp", "vendor", "node_modules", "_examples":
				return filepath.SkipDir
			}
			return nil
		}
		if filepath.Ext(path) != ".go" {
			return nil
		}
		if strings.HasSuffix(path, "logging_lint_test.go") {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		content := string(data)
		for _, key := range secretKeys {
			for _, needle := range []string{
				fmt.Sprintf(`logger.Field{Key: "%s"`, key),
				fmt.Sprintf(`logger.F("%s"`, key),
				fmt.Sprintf(`zap.String("%s"`, key),
			} {
				if strings.Contains(content, needle) {
					return fmt.Errorf("secret-like field %q logged in %s; use logger.Secret", key, path)
				}
			}
		}
		return nil
	})
	if err != nil {
		t.Fatalf("log-safety lint failed: %v", err)
	}
}
