package execute

import (
	"errors"
	"fmt"
	"os/exec"
	"runtime"
	"strings"

	"github.com/ThatOtherAndrew/backdrop/internal/logger"
)

var ErrEmptyURL = errors.New("empty url")

// Opener returns the command that hands a URL to the desktop's default
// browser.
func Opener() (name string, args []string) {
	switch runtime.GOOS {
	case "darwin":
		return "open", nil
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler"}
	default:
		return "xdg-open", nil
	}
}

// Open starts the browser on url and returns without waiting for it.
func Open(url string) error {
	if url == "" {
		return ErrEmptyURL
	}
	if strings.HasPrefix(url, "-") {
		return fmt.Errorf("refusing to open %q", url)
	}

	name, args := Opener()
	if err := Command(name, append(args, url)...); err != nil {
		return fmt.Errorf("open %s: %w", url, err)
	}
	logger.For("execute").Debug("opened", "url", url, "with", name)
	return nil
}

// Command starts name detached from this process.
func Command(name string, args ...string) error {
	if name == "" {
		return nil
	}

	cmd := exec.Command(name, args...)
	detach(cmd)
	cmd.Stdin = nil
	cmd.Stdout = nil
	cmd.Stderr = nil

	if err := cmd.Start(); err != nil {
		return err
	}
	go func() { _ = cmd.Wait() }()
	return nil
}
