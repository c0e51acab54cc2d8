// Package storage provides blob store implementations and object key
// generation for uploaded assets.
package storage

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ObjectKey generates a collision-resistant storage key of the form
// <folder>/<epoch-millis>-<random-suffix><ext>, keeping the original
// file's extension so the served asset gets a sensible content type.
func ObjectKey(folder, filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return fmt.Sprintf("%s/%d-%s%s", folder, time.Now().UnixMilli(), suffix, ext)
}
