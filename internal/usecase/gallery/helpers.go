package gallery

import (
	"fmt"
	"math/rand/v2"
	"mime"
	"path"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
)

const (
	storageRoot  = "images"
	suffixLength = 6
	suffixChars  = "0123456789abcdefghijklmnopqrstuvwxyz"
)

// generateFilename builds <unix millis>_<random>.<ext>, keeping the original
// extension as typed (photo.PNG -> .PNG).
func generateFilename(now time.Time, originalName string) string {
	name := fmt.Sprintf("%d_%s", now.UnixMilli(), randomSuffix())

	ext := path.Ext(originalName)
	if ext == "." || ext == "" {
		return name
	}

	return name + ext
}

// storagePath places filename under images/<year>/<month>/.
func storagePath(now time.Time, filename string) string {
	return fmt.Sprintf("%s/%04d/%02d/%s", storageRoot, now.Year(), int(now.Month()), filename)
}

func randomSuffix() string {
	b := make([]byte, suffixLength)
	for i := range b {
		b[i] = suffixChars[rand.IntN(len(suffixChars))]
	}

	return string(b)
}

// detectMimeType trusts a declared type and sniffs the content otherwise.
func detectMimeType(declared string, data []byte) string {
	if declared != "" {
		mediaType, _, err := mime.ParseMediaType(declared)
		if err == nil && mediaType != "application/octet-stream" {
			return mediaType
		}
	}

	detected := mimetype.Detect(data).String()
	if i := strings.IndexByte(detected, ';'); i >= 0 {
		detected = detected[:i]
	}

	return detected
}
