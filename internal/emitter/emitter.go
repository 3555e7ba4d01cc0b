package emitter

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/Belphemur/SubtitleFetcher/internal/apperrors"
	"github.com/Belphemur/SubtitleFetcher/internal/config"
	"github.com/Belphemur/SubtitleFetcher/internal/models"
)

// Emitter turns an extraction payload into a saved file
type Emitter interface {
	// Save writes payload under filename and returns the path actually written
	Save(payload models.Payload, filename string) (string, error)
}

// FileEmitter saves payloads into a directory of an afero filesystem
type FileEmitter struct {
	fs        afero.Fs
	dir       string
	overwrite bool
}

// NewFileEmitter creates an emitter writing into dir. When overwrite is false, an
// existing file is kept and the new one gets a " (n)" suffix.
func NewFileEmitter(fs afero.Fs, dir string, overwrite bool) *FileEmitter {
	if dir == "" {
		dir = "."
	}
	return &FileEmitter{fs: fs, dir: dir, overwrite: overwrite}
}

// NewOSFileEmitter creates an emitter on the real filesystem
func NewOSFileEmitter(dir string, overwrite bool) *FileEmitter {
	return NewFileEmitter(afero.NewOsFs(), dir, overwrite)
}

// Save writes the payload through a temporary file that is renamed into place.
// The temporary file never outlives the call.
func (e *FileEmitter) Save(payload models.Payload, filename string) (string, error) {
	logger := config.GetLogger()

	name := SanitizeFilename(filename)
	if name == "" {
		return "", &apperrors.SaveError{Filename: filename, Err: fmt.Errorf("unusable filename %q", filename)}
	}

	if err := e.fs.MkdirAll(e.dir, 0o755); err != nil {
		return "", &apperrors.SaveError{Filename: name, Err: err}
	}

	target, err := e.resolveTarget(name)
	if err != nil {
		return "", &apperrors.SaveError{Filename: name, Err: err}
	}

	tmp, err := afero.TempFile(e.fs, e.dir, ".subfetch-*.part")
	if err != nil {
		return "", &apperrors.SaveError{Filename: name, Err: err}
	}
	tmpName := tmp.Name()
	defer func() {
		// Already gone after a successful rename.
		if err := e.fs.Remove(tmpName); err != nil && !os.IsNotExist(err) {
			logger.Debug().Err(err).Str("path", tmpName).Msg("Failed to remove temporary file")
		}
	}()

	if _, err := tmp.Write(payload.Bytes()); err != nil {
		_ = tmp.Close()
		return "", &apperrors.SaveError{Filename: name, Err: err}
	}
	if err := tmp.Close(); err != nil {
		return "", &apperrors.SaveError{Filename: name, Err: err}
	}
	if err := e.fs.Rename(tmpName, target); err != nil {
		return "", &apperrors.SaveError{Filename: name, Err: err}
	}

	logger.Info().
		Str("path", target).
		Bool("text", payload.IsText()).
		Int("size", payload.Len()).
		Msg("Saved subtitle file")

	return target, nil
}

// resolveTarget picks the destination path, numbering it like a browser download
// when a file with the same name already exists.
func (e *FileEmitter) resolveTarget(name string) (string, error) {
	target := filepath.Join(e.dir, name)
	if e.overwrite {
		return target, nil
	}

	ext := filepath.Ext(name)
	stem := strings.TrimSuffix(name, ext)
	for i := 1; ; i++ {
		exists, err := afero.Exists(e.fs, target)
		if err != nil {
			return "", err
		}
		if !exists {
			return target, nil
		}
		if i > 999 {
			return "", fmt.Errorf("too many files named %s in %s", name, e.dir)
		}
		target = filepath.Join(e.dir, fmt.Sprintf("%s (%d)%s", stem, i, ext))
	}
}

// SanitizeFilename makes a backend supplied name safe to use as a single path element.
// Path separators and control characters become underscores; "." and ".." are rejected.
func SanitizeFilename(name string) string {
	name = strings.Map(func(r rune) rune {
		switch {
		case r == '/' || r == '\\':
			return '_'
		case r < 0x20 || r == 0x7f:
			return '_'
		}
		return r
	}, name)
	name = strings.TrimSpace(name)

	if name == "." || name == ".." {
		return ""
	}
	return name
}
