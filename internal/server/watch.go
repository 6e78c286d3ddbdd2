package server

import (
	"context"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// reloadHub tracks live-reload websocket clients.
type reloadHub struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]struct{}
}

func newReloadHub() *reloadHub {
	return &reloadHub{clients: make(map[*websocket.Conn]struct{})}
}

func (h *reloadHub) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("flyout: websocket upgrade: %v", err)
		return
	}

	h.mu.Lock()
	h.clients[conn] = struct{}{}
	h.mu.Unlock()

	// Drain the connection so close frames are noticed; clients never
	// send meaningful messages.
	go func() {
		defer func() {
			h.mu.Lock()
			delete(h.clients, conn)
			h.mu.Unlock()
			conn.Close()
		}()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
					log.Printf("flyout: websocket read: %v", err)
				}
				return
			}
		}
	}()
}

// broadcast tells every connected client to reload.
func (h *reloadHub) broadcast() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.clients {
		if err := conn.WriteMessage(websocket.TextMessage, []byte("reload")); err != nil {
			log.Printf("flyout: websocket write: %v", err)
			conn.Close()
			delete(h.clients, conn)
		}
	}
}

// Watch monitors the site tree and calls rebuild on page changes, then
// notifies connected browsers. Rebuilds rewrite the watched files, so
// events are suppressed for a short cooldown after each rebuild.
func (s *Server) Watch(ctx context.Context, rebuild func() error) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := watchDir(watcher, s.flyoutCfg.SiteDir); err != nil {
		return err
	}

	log.Printf("docflyout watching %s", s.flyoutCfg.SiteDir)

	var debounceTimer *time.Timer
	var mu sync.Mutex
	var suppressUntil time.Time

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}

			// New directories (e.g. a freshly published version) need
			// watching too, including any subtree they arrived with.
			// This must happen before the extension filter, which would
			// drop the directory event, and before the rebuild cooldown.
			isNewDir := false
			if event.Op&fsnotify.Create != 0 {
				if info, statErr := os.Stat(event.Name); statErr == nil && info.IsDir() {
					if err := watchDir(watcher, event.Name); err != nil {
						log.Printf("Watcher error: %v", err)
					}
					isNewDir = true
				}
			}
			if !isNewDir {
				ext := filepath.Ext(event.Name)
				if ext != ".html" && ext != ".htm" && ext != ".css" && ext != ".js" {
					continue
				}
			}

			mu.Lock()
			suppressed := time.Now().Before(suppressUntil)
			mu.Unlock()
			if suppressed {
				continue
			}

			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.AfterFunc(100*time.Millisecond, func() {
				log.Printf("Change detected: %s", filepath.Base(event.Name))
				if err := rebuild(); err != nil {
					log.Printf("Re-injection error: %v", err)
					return
				}
				mu.Lock()
				suppressUntil = time.Now().Add(500 * time.Millisecond)
				mu.Unlock()
				s.reload.broadcast()
			})

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Printf("Watcher error: %v", err)
		}
	}
}

// watchDir recursively adds a directory tree to the watcher.
func watchDir(watcher *fsnotify.Watcher, dir string) error {
	return filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			name := info.Name()
			if name == "node_modules" || (len(name) > 0 && name[0] == '.' && path != dir) {
				return filepath.SkipDir
			}
			return watcher.Add(path)
		}
		return nil
	})
}

// reloadSnippet is appended to HTML pages served in watch mode.
const reloadSnippet = `<script>
(function () {
  var ws = new WebSocket((location.protocol === 'https:' ? 'wss://' : 'ws://') + location.host + '/__reload');
  ws.onmessage = function (e) {
    if (e.data === 'reload') {
      console.log('[docflyout] Reloading...');
      window.location.reload();
    }
  };
  ws.onclose = function () {
    console.log('[docflyout] Connection lost, reconnecting...');
    setTimeout(function () { window.location.reload(); }, 1000);
  };
})();
</script>`
