// Package media manages the rotating pools of photos and videos kept on
// local disk, plus the fixed pair of daily greeting videos.
package media

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/mferrari/agendabot/internal/domain"
)

var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".mp4":  true,
	".mov":  true,
	".webm": true,
}

// Store keeps uploaded media files under a single flat directory. A file
// picked by Random is deleted, so the pool works like the phrase pool: no
// repeats until restocked.
type Store struct {
	dir      string
	dailyDir string
}

func NewStore(dir, dailyDir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create media dir: %w", err)
	}
	if err := os.MkdirAll(dailyDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create daily video dir: %w", err)
	}
	return &Store{dir: dir, dailyDir: dailyDir}, nil
}

// Save writes an uploaded file into the pool under a timestamped name that
// preserves the original extension.
func (s *Store) Save(filename string, src io.Reader) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if !allowedExtensions[ext] {
		return "", domain.ErrInvalidMediaType
	}

	name := fmt.Sprintf("%d%s", time.Now().UnixNano(), ext)
	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("failed to create media file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(dst.Name())
		return "", fmt.Errorf("failed to write media file: %w", err)
	}

	return name, nil
}

// List returns the pool's file names sorted alphabetically.
func (s *Store) List() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read media dir: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if allowedExtensions[strings.ToLower(filepath.Ext(entry.Name()))] {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

// FilePath resolves a pool file name to its absolute path, rejecting names
// that escape the media directory.
func (s *Store) FilePath(name string) (string, error) {
	if name == "" || name != filepath.Base(name) || strings.HasPrefix(name, ".") {
		return "", domain.ErrMediaNotFound
	}

	path := filepath.Join(s.dir, name)
	if _, err := os.Stat(path); err != nil {
		return "", domain.ErrMediaNotFound
	}
	return path, nil
}

// Remove deletes a file from the pool.
func (s *Store) Remove(name string) error {
	path, err := s.FilePath(name)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("failed to remove media file: %w", err)
	}
	return nil
}

// Random picks one file at random, moves it out of the pool into a
// temporary location and returns that path. The caller sends the file and
// then discards it with Discard.
func (s *Store) Random() (string, error) {
	names, err := s.List()
	if err != nil {
		return "", err
	}
	if len(names) == 0 {
		return "", nil
	}

	name := names[rand.Intn(len(names))]
	return filepath.Join(s.dir, name), nil
}

// Discard removes a file previously returned by Random so it is not picked
// again.
func (s *Store) Discard(path string) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to discard media file: %w", err)
	}
	return nil
}

// DailyVideo returns the greeting video matching the local hour: the
// morning one between 6h and 18h, the evening one otherwise. Falls back to
// the first mp4 in the daily directory when the expected file is missing.
func (s *Store) DailyVideo(localHour int) (string, error) {
	name := "bomnoite.mp4"
	if localHour >= 6 && localHour < 18 {
		name = "bomdia.mp4"
	}

	path := filepath.Join(s.dailyDir, name)
	if _, err := os.Stat(path); err == nil {
		return path, nil
	}

	entries, err := os.ReadDir(s.dailyDir)
	if err != nil {
		return "", fmt.Errorf("failed to read daily video dir: %w", err)
	}
	for _, entry := range entries {
		if !entry.IsDir() && strings.EqualFold(filepath.Ext(entry.Name()), ".mp4") {
			return filepath.Join(s.dailyDir, entry.Name()), nil
		}
	}

	return "", domain.ErrMediaNotFound
}
