package engine

import (
	"fmt"
	"path/filepath"
	"time"

	"GopherTrace/internal/logger"
	"GopherTrace/internal/renderer"

	"github.com/alitto/pond/v2"
	"go.uber.org/zap"
)

// SnapshotWriter saves copies of the pixel buffer as PNG files on a single
// background worker so the frame loop never waits on the disk.
type SnapshotWriter struct {
	dir  string
	pool pond.Pool
	now  func() time.Time
}

func NewSnapshotWriter(dir string) *SnapshotWriter {
	return &SnapshotWriter{
		dir:  dir,
		pool: pond.NewPool(1),
		now:  time.Now,
	}
}

// Save copies buffer immediately and writes the copy in the background. The
// returned task reports the write error.
func (s *SnapshotWriter) Save(buffer *renderer.PixelBuffer) (string, pond.Task) {
	frame := buffer.Clone()
	path := filepath.Join(s.dir, fmt.Sprintf("snapshot-%s.png", s.now().Format("20060102-150405.000")))
	task := s.pool.SubmitErr(func() error {
		if err := frame.SavePNG(path); err != nil {
			logger.Log.Error("Snapshot failed", zap.String("path", path), zap.Error(err))
			return err
		}
		logger.Log.Info("Snapshot saved", zap.String("path", path),
			zap.Int("width", frame.Width()), zap.Int("height", frame.Height()))
		return nil
	})
	return path, task
}

// Close waits for queued snapshots to finish.
func (s *SnapshotWriter) Close() {
	s.pool.StopAndWait()
}
