package fsutil

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/halcyonlabs/lib-sysguard/sysguard"
	"github.com/halcyonlabs/lib-sysguard/sysguard/ident"
	"github.com/halcyonlabs/lib-sysguard/sysguard/log"
	"github.com/halcyonlabs/lib-sysguard/sysguard/rng"
)

// randomDirNameLen matches the unguessability requirement for
// client-reachable directory names.
const randomDirNameLen = 64

// CreateRandomDir creates a secure, random directory under parent and returns
// its name (not the full path).
func CreateRandomDir(parent string) (string, error) {
	name := rng.GetFilename(randomDirNameLen)

	if err := os.MkdirAll(filepath.Join(parent, name), 0o700); err != nil {
		return "", fmt.Errorf("create random dir: %w", err)
	}

	return name, nil
}

// TempFilePath copies srcDir/srcFilename into the system temp directory under
// a randomized name, registers the copy for later deletion, and returns the
// destination path.
func TempFilePath(srcDir, srcFilename string) (string, error) {
	src := filepath.Join(srcDir, srcFilename)
	dst := filepath.Join(os.TempDir(), ident.EncodeID(rng.GetNext(), 0)+"_"+srcFilename)

	if err := copyFile(src, dst); err != nil {
		return "", err
	}

	RegisterForDeletion(dst)

	return dst, nil
}

func copyFile(src, dst string) (err error) {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("open source: %w", err)
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("create destination: %w", err)
	}

	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close destination: %w", cerr)
		}
	}()

	if _, err := io.Copy(out, in); err != nil {
		return fmt.Errorf("copy contents: %w", err)
	}

	return nil
}

var (
	registryMu sync.Mutex
	registry   []string
)

// RegisterForDeletion records path for removal by CleanupRegistered.
func RegisterForDeletion(path string) {
	registryMu.Lock()
	defer registryMu.Unlock()

	registry = append(registry, path)
}

// CleanupRegistered removes every registered path and clears the registry.
// Missing files are fine; other removal failures are warned and skipped,
// never returned as errors.
func CleanupRegistered(ctx context.Context) {
	registryMu.Lock()
	paths := registry
	registry = nil
	registryMu.Unlock()

	for _, path := range paths {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			sysguard.NewLoggerFromContext(ctx).Log(ctx, log.LevelWarn,
				"failed to remove registered temp file",
				log.String("path", path), log.Err(err))
		}
	}
}
