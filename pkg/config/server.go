package config

import (
	"errors"
	"fmt"
	"github.com/dustin/go-humanize"
	"meshconv/pkg/format"
	"os"
	"path/filepath"
	"strings"
)

const (
	DefaultPort           = "5000"
	DefaultMaxUploadSize  = 16 * humanize.MiByte
	DefaultStorageDirName = "cad_viewer_uploads"

	// MaxUploadSizeLimit keeps the upload cap, plus multipart overhead, representable as an int64 body limit.
	MaxUploadSizeLimit = humanize.EiByte
)

// ServerConfig is fixed at process start and handed to each component when it is built.
type ServerConfig struct {
	Port           string
	StorageDir     string
	MaxUploadSize  uint64
	AllowedOrigins []string
	AllowedFormats []format.Format
}

func (c *ServerConfig) PopulateUnsetConfigVars() {
	if c.Port == "" {
		c.Port = DefaultPort
	}
	if c.StorageDir == "" {
		c.StorageDir = filepath.Join(os.TempDir(), DefaultStorageDirName)
	}
	if c.MaxUploadSize == 0 {
		c.MaxUploadSize = DefaultMaxUploadSize
	}
	if len(c.AllowedOrigins) == 0 {
		c.AllowedOrigins = []string{"*"}
	}
	if len(c.AllowedFormats) == 0 {
		c.AllowedFormats = format.All()
	}
}

func (c ServerConfig) Validate() error {
	var errs []error
	if c.Port == "" {
		errs = append(errs, errors.New("port must be set"))
	}
	if c.StorageDir == "" {
		errs = append(errs, errors.New("storage dir must be set"))
	}
	if c.MaxUploadSize == 0 {
		errs = append(errs, errors.New("max upload size must be greater than zero"))
	} else if c.MaxUploadSize > MaxUploadSizeLimit {
		errs = append(errs, fmt.Errorf("max upload size %s exceeds the %s limit",
			humanize.IBytes(c.MaxUploadSize), humanize.IBytes(MaxUploadSizeLimit)))
	}
	if len(c.AllowedFormats) == 0 {
		errs = append(errs, errors.New("at least one format must be allowed"))
	}
	return errors.Join(errs...)
}

// AllowsAllOrigins reports whether CORS should accept any origin.
func (c ServerConfig) AllowsAllOrigins() bool {
	for _, origin := range c.AllowedOrigins {
		if origin == "*" {
			return true
		}
	}
	return len(c.AllowedOrigins) == 0
}

// ParseSize reads sizes such as "16MiB", "20 MB" or "1048576".
func ParseSize(s string) (uint64, error) {
	size, err := humanize.ParseBytes(s)
	if err != nil {
		return 0, fmt.Errorf("invalid size %q: %w", s, err)
	}
	return size, nil
}

// ParseFormats reads format tokens, ignoring blanks and duplicates.
func ParseFormats(tokens []string) ([]format.Format, error) {
	var formats []format.Format
	seen := make(map[format.Format]bool)
	for _, token := range tokens {
		if strings.TrimSpace(token) == "" {
			continue
		}
		f, err := format.Parse(token)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", err, token)
		}
		if !seen[f] {
			seen[f] = true
			formats = append(formats, f)
		}
	}
	return formats, nil
}
