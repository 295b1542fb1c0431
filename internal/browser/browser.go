// Package browser opens URLs with the platform's default handler.
package browser

import (
	"fmt"
	"net/url"
	"os/exec"
)

// Opener launches the platform URL handler.
type Opener struct {
	start func(name string, args ...string) error
}

// New returns an Opener that starts the platform handler without waiting
// for it.
func New() *Opener {
	return &Opener{start: startDetached}
}

// Open validates rawURL and hands it to the platform handler.
// Only http and https URLs are opened.
func (o *Opener) Open(rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("open %q: %w", rawURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("open %q: unsupported scheme %q", rawURL, u.Scheme)
	}

	name, args := platformCommand(u.String())
	if err := o.start(name, args...); err != nil {
		return fmt.Errorf("open %q with %s: %w", rawURL, name, err)
	}
	return nil
}

func startDetached(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return err
	}
	go func() { _ = cmd.Wait() }()
	return nil
}
