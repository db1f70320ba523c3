package testbed

import (
	"fmt"
	"path/filepath"
	"strings"
)

// numbered turns shots/hands.png into shots/hands-0002.png for n == 2.
func numbered(path string, n int) string {
	ext := filepath.Ext(path)
	return fmt.Sprintf("%s-%04d%s", strings.TrimSuffix(path, ext), n, ext)
}
