package storage

import (
	"path"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

var unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9_.-]+`)

// Layout maps stored image paths to blob keys. Stored paths are prefixed
// with the namespace, e.g. "uploads/<owner>/<accommodation>/images/<file>";
// the blob store root corresponds to the namespace directory.
type Layout struct {
	Namespace string
}

// NewLayout creates a layout for the given namespace
func NewLayout(namespace string) Layout {
	ns := strings.Trim(namespace, "/")
	if ns == "" {
		ns = "uploads"
	}
	return Layout{Namespace: ns}
}

// OwnerDir is the stored path of an owner's folder
func (l Layout) OwnerDir(owner string) string {
	return path.Join(l.Namespace, owner)
}

// AccommodationDir is the stored path of an accommodation's folder
func (l Layout) AccommodationDir(owner string, accommodationID uuid.UUID) string {
	return path.Join(l.Namespace, owner, accommodationID.String())
}

// ImagePath is the stored path of an image attached to an accommodation
func (l Layout) ImagePath(owner string, accommodationID uuid.UUID, basename string) string {
	return path.Join(l.AccommodationDir(owner, accommodationID), "images", basename)
}

// UnattachedPath is the stored path of an image not yet attached to an accommodation
func (l Layout) UnattachedPath(owner, basename string) string {
	return path.Join(l.Namespace, owner, basename)
}

// IsNamespaced reports whether stored lives under the namespace
func (l Layout) IsNamespaced(stored string) bool {
	return strings.HasPrefix(path.Clean(stored), l.Namespace+"/")
}

// Within reports whether stored lies inside the stored directory dir
func (l Layout) Within(stored, dir string) bool {
	return strings.HasPrefix(path.Clean(stored), path.Clean(dir)+"/")
}

// Key converts a namespaced stored path to a blob key
func (l Layout) Key(stored string) string {
	return strings.TrimPrefix(path.Clean(stored), l.Namespace+"/")
}

// PublicURL joins the public base URL and a stored path
func PublicURL(baseURL, stored string) string {
	return strings.TrimRight(baseURL, "/") + "/" + strings.TrimLeft(stored, "/")
}

// SanitizeFilename reduces name to a safe basename; empty when nothing usable remains
func SanitizeFilename(name string) string {
	base := path.Base(strings.ReplaceAll(name, "\\", "/"))
	base = strings.ReplaceAll(base, " ", "_")
	base = unsafeFilenameChars.ReplaceAllString(base, "")
	base = strings.TrimLeft(base, ".")
	return base
}

// UniqueFilename prefixes a sanitized name with a random id so concurrent
// uploads of the same name never collide
func UniqueFilename(name string) string {
	return uuid.NewString()[:8] + "_" + SanitizeFilename(name)
}

// Extension returns the lower-case extension of name without the dot
func Extension(name string) string {
	return strings.ToLower(strings.TrimPrefix(path.Ext(name), "."))
}
