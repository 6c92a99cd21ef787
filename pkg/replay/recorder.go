// Package replay records game snapshots to JSONL files and reads them back.
package replay

import (
	"bufio"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/xtaxx12/snake-game/pkg/game"
)

// Frame is one recorded line
type Frame struct {
	SessionID string        `json:"sessionId"`
	At        time.Time     `json:"at"`
	State     game.Snapshot `json:"state"`
}

// Recorder handles asynchronous logging of game frames
type Recorder struct {
	sessionID string
	path      string
	file      *os.File
	writer    *bufio.Writer
	frameChan chan Frame
	wg        sync.WaitGroup
	mu        sync.Mutex
	closed    bool
	dropped   int
}

// NewRecorder creates a recorder writing to dir with a fresh session ID.
// Filename format: game_{sessionID}_{timestamp}.jsonl
func NewRecorder(dir string) (*Recorder, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create records dir: %w", err)
	}

	sessionID := uuid.New().String()
	filename := fmt.Sprintf("game_%s_%d.jsonl", sessionID, time.Now().Unix())
	path := filepath.Join(dir, filename)

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create record file: %w", err)
	}

	r := &Recorder{
		sessionID: sessionID,
		path:      path,
		file:      f,
		writer:    bufio.NewWriter(f),
		frameChan: make(chan Frame, 1000), // Buffer up to 1000 frames
	}

	r.wg.Add(1)
	go r.writeLoop()

	return r, nil
}

// SessionID returns the ID stamped on every frame
func (r *Recorder) SessionID() string {
	return r.sessionID
}

// Path returns the file being written
func (r *Recorder) Path() string {
	return r.path
}

// Record queues a snapshot. Non-blocking: drops the frame if the writer
// has fallen 1000 frames behind.
func (r *Recorder) Record(s game.Snapshot) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return
	}

	select {
	case r.frameChan <- Frame{SessionID: r.sessionID, At: time.Now(), State: s}:
	default:
		r.dropped++
	}
}

// Close flushes the buffer and closes the file
func (r *Recorder) Close() error {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return nil
	}
	r.closed = true
	close(r.frameChan)
	dropped := r.dropped
	r.mu.Unlock()

	r.wg.Wait()
	if dropped > 0 {
		log.Printf("replay %s: dropped %d frames", r.sessionID, dropped)
	}
	if err := r.writer.Flush(); err != nil {
		r.file.Close()
		return fmt.Errorf("failed to flush record file: %w", err)
	}
	return r.file.Close()
}

func (r *Recorder) writeLoop() {
	defer r.wg.Done()

	encoder := json.NewEncoder(r.writer)
	for frame := range r.frameChan {
		if err := encoder.Encode(frame); err != nil {
			log.Printf("Error recording frame: %v", err)
		}
	}
}

// ReadFile loads every frame of a recording in order
func ReadFile(path string) ([]Frame, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open recording: %w", err)
	}
	defer f.Close()

	var frames []Frame
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 64*1024), 4*1024*1024)
	for line := 1; scanner.Scan(); line++ {
		if len(scanner.Bytes()) == 0 {
			continue
		}
		var frame Frame
		if err := json.Unmarshal(scanner.Bytes(), &frame); err != nil {
			return nil, fmt.Errorf("%s:%d: %w", path, line, err)
		}
		frames = append(frames, frame)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read recording: %w", err)
	}
	return frames, nil
}

// Latest returns the most recently modified recording in dir
func Latest(dir string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", fmt.Errorf("failed to list recordings: %w", err)
	}

	var (
		latest  string
		latestT time.Time
	)
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".jsonl" {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		if latest == "" || info.ModTime().After(latestT) {
			latest = filepath.Join(dir, e.Name())
			latestT = info.ModTime()
		}
	}
	if latest == "" {
		return "", fmt.Errorf("no recordings in %s", dir)
	}
	return latest, nil
}
