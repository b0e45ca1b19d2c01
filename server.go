package sealtag

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/time/rate"
)

// An Error is a content error which did not prevent loading.
type Error struct {
	URLPath string `json:"urlpath"`
	Message string `json:"message"`
}

type FS struct {
	Fsys   fs.FS
	GitDir string // for git reload, optional
}

func DirFS(dir string) *FS {
	return &FS{
		Fsys:   os.DirFS(dir),
		GitDir: dir,
	}
}

type Server struct {
	Config
	FS  *FS
	Log *slog.Logger // optional

	reloadMu sync.Mutex
	loaded   atomic.Pointer[snapshot] // set by Reload
}

// snapshot is the result of one load, so that root and errs always match.
type snapshot struct {
	root *Dir
	errs []Error
}

func (srv *Server) logger() *slog.Logger {
	if srv.Log != nil {
		return srv.Log
	}
	return slog.Default()
}

// Reload loads the root fs. Content errors are collected and can be retrieved with Errors or ErrorsHandler.
//
// Concurrent calls are serialized, so a slow reload can't overwrite the result of a later one.
func (srv *Server) Reload() error {
	srv.reloadMu.Lock()
	defer srv.reloadMu.Unlock()

	var errs = []Error{} // initialize it to get json "[]" instead of "null"
	root, err := Load(srv.Config, nil, srv.FS.Fsys, "/", &errs)
	if err != nil {
		return fmt.Errorf("loading root fs: %w", err)
	}
	srv.loaded.Store(&snapshot{root: root, errs: errs})

	for _, e := range errs {
		srv.logger().Warn("content error", "urlpath", e.URLPath, "message", e.Message)
	}
	srv.logger().Info("reloaded", "errors", len(errs))
	return nil
}

// Errors returns the content errors of the last successful reload.
func (srv *Server) Errors() []Error {
	if loaded := srv.loaded.Load(); loaded != nil {
		return loaded.errs
	}
	return []Error{}
}

func (srv *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	loaded := srv.loaded.Load()
	if loaded == nil {
		http.Error(w, "not loaded", http.StatusServiceUnavailable)
		return
	}
	reqpath := strings.FieldsFunc(r.URL.Path, func(r rune) bool { return r == '/' })
	serve(loaded.root, reqpath, w, r)
}

// serve processes the given reqpath, calling the handler of each directory it passes by, until one handler returns false or the path is done.
func serve(dir *Dir, reqpath []string, w http.ResponseWriter, r *http.Request) {
	for {
		if dir.Handler != nil {
			cont := dir.Handler(reqpath, w, r)
			if !cont {
				return
			}
		}

		if len(reqpath) == 0 {
			http.NotFound(w, r)
			return
		}

		next, ok := dir.Subdirs[Slugify(reqpath[0])] // reqpath is unescaped
		if ok {
			reqpath = reqpath[1:]
			dir = next
			continue
		}

		// no subdir with that name found, now try as a file
		if r.Method == http.MethodGet && len(reqpath) == 1 && !strings.HasPrefix(reqpath[0], ".") {
			http.ServeFileFS(w, r, dir.Fsys, reqpath[0])
			return
		}

		http.NotFound(w, r)
		return
	}
}

func (srv *Server) ErrorsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		enc := json.NewEncoder(w)
		enc.SetIndent("", "\t")
		enc.Encode(srv.Errors())
	}
}

// ReloadHandler returns a rate-limited handler which calls srv.Reload.
func (srv *Server) ReloadHandler(secret string) http.HandlerFunc {
	limiter := rate.NewLimiter(rate.Every(time.Minute), 2)
	return func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("secret") != secret {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte("unauthorized"))
			return
		}
		if !limiter.Allow() {
			w.WriteHeader(http.StatusTooManyRequests)
			w.Write([]byte("too many requests"))
			return
		}
		start := time.Now()
		if err := srv.Reload(); err != nil {
			srv.logger().Error("reload failed", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(fmt.Sprintf("reload failed: %v", err)))
			return
		}
		w.Write([]byte(fmt.Sprintf("reload took %d milliseconds", time.Since(start).Milliseconds())))
	}
}
