package delivery

import (
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"
)

// audioPrefix names generated voice files; see storage.NewObjectName.
const audioPrefix = "voice"

// StaticHandler serves regular files from dir. Directories, hidden files
// and paths escaping dir are reported as not found.
type StaticHandler struct {
	dir string
}

func NewStaticHandler(dir string) *StaticHandler {
	return &StaticHandler{dir: dir}
}

func (h *StaticHandler) Serve(w http.ResponseWriter, r *http.Request) {
	name := path.Clean("/" + chi.URLParam(r, "*"))
	for _, seg := range strings.Split(name, "/") {
		if strings.HasPrefix(seg, ".") {
			http.NotFound(w, r)
			return
		}
	}

	f, err := os.Open(filepath.Join(h.dir, filepath.FromSlash(name)))
	if err != nil {
		http.NotFound(w, r)
		return
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil || !info.Mode().IsRegular() {
		http.NotFound(w, r)
		return
	}

	if strings.EqualFold(filepath.Ext(name), ".mp3") {
		w.Header().Set("Content-Type", "audio/mpeg")
	}
	http.ServeContent(w, r, info.Name(), info.ModTime(), f)
}
