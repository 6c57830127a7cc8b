package storage

import (
	"path"
	"strings"

	"github.com/google/uuid"
)

// NewObjectName returns "<prefix>-<uuid>.<ext>". Every call yields a fresh
// name so concurrent requests never overwrite each other's audio.
func NewObjectName(prefix, ext string) string {
	ext = strings.TrimPrefix(ext, ".")
	name := prefix + "-" + uuid.NewString()
	if ext != "" {
		name += "." + ext
	}
	return name
}

// generated reports whether name was produced by NewObjectName with prefix.
func generated(name, prefix string) bool {
	rest, ok := strings.CutPrefix(name, prefix+"-")
	if !ok {
		return false
	}
	id := strings.TrimSuffix(rest, path.Ext(rest))
	_, err := uuid.Parse(id)
	return err == nil && len(id) == 36
}

func validName(name string) bool {
	return name != "" && name != "." && name != ".." &&
		!strings.ContainsAny(name, `/\`) && !strings.HasPrefix(name, ".")
}
