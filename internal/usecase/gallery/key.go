package gallery

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

var unsafeKeyChars = regexp.MustCompile(`[^a-z0-9.\-_]`)

// sanitizeFilename lowercases the original name and replaces everything
// outside [a-z0-9.-_] with a hyphen, so the derived key is always URL-safe.
func sanitizeFilename(name string) string {
	return unsafeKeyChars.ReplaceAllString(strings.ToLower(name), "-")
}

// buildObjectKey derives the storage key for a new upload. The owner id leads
// the path so the bucket policy can scope writes to the uploader's namespace;
// the timestamp and random token keep keys unique across same-named files.
func buildObjectKey(ownerID uuid.UUID, filename string) string {
	return fmt.Sprintf("%s/%d-%s-%s", ownerID, time.Now().Unix(), uuid.New().String(), sanitizeFilename(filename))
}
