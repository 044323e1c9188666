// Package spinning provides a friendly spinning symbol to show while a program is
// calculating something, and a graceful handling of interrupts.
package spinning

import (
	"context"
	"fmt"
	"github.com/janpfeifer/goGroups/internal/generics"
	"github.com/pkg/errors"
	"io"
	"k8s.io/klog/v2"
	"os"
	"os/signal"
	"slices"
	"sync"
	"syscall"
	"time"
)

// Spinning displays a spinning symbol on a separate goroutine, until Done is called.
type Spinning struct {
	wg     sync.WaitGroup
	cancel func()
}

var (
	ThemeAscii = []rune("|/-\\")
	ThemeMoon  = []rune("🌑🌒🌓🌔🌕🌖🌗🌘")

	// Theme defaults to ThemeAscii, but it can be set to anything else before calling New.
	Theme = ThemeAscii

	// Themes by name, see ThemeByName.
	Themes = map[string][]rune{
		"ascii": ThemeAscii,
		"moon":  ThemeMoon,
	}

	// Period between updates of the spinning symbol.
	Period = 250 * time.Millisecond
)

// SafeInterrupt will capture SigInt (Ctrl+C) and SigTerm and call the provided onInterrupt.
// If the program haven't exited after gracePeriod, it will call Reset to reset the terminal
// and exit.
func SafeInterrupt(onInterrupt func(), gracePeriod time.Duration) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		s := <-sigChan
		fmt.Println()
		klog.Errorf("Got interrupted (signal %q), shutting down... (%s)", s, gracePeriod)
		if onInterrupt != nil {
			go onInterrupt()
		}
		time.Sleep(gracePeriod)
		Reset(os.Stdout)
		klog.Fatalf("Graceful shutting down %s period expired, exiting.", gracePeriod)
	}()
}

// Reset terminal: make cursor visible, restore default terminal colors.
func Reset(w io.Writer) {
	_, _ = fmt.Fprint(w, "\033[?25h\033[39;49;0m\n")
}

// ThemeByName returns one of the Themes, or an error listing the known names.
func ThemeByName(name string) ([]rune, error) {
	theme, found := Themes[name]
	if !found {
		return nil, errors.Errorf("unknown spinning theme %q, valid themes are %q",
			name, slices.Collect(generics.SortedKeys(Themes)))
	}
	return theme, nil
}

// New starts a spinning display on w that runs on a separate goroutine.
// It stops when Spinning.Done is called or when ctx is cancelled.
func New(ctx context.Context, w io.Writer) *Spinning {
	s := &Spinning{}
	ctx, s.cancel = context.WithCancel(ctx)
	theme := Theme
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(Period)
		defer ticker.Stop()
		_, _ = fmt.Fprint(w, "\033[?25l") // Hide cursor.
		defer fmt.Fprint(w, "\033[?25h")  // Restore cursor.

		_, _ = fmt.Fprint(w, " ")
		for idx := 0; ; idx = (idx + 1) % len(theme) {
			_, _ = fmt.Fprintf(w, "\b%c", theme[idx])
			select {
			case <-ctx.Done():
				_, _ = fmt.Fprint(w, "\b \b")
				return
			case <-ticker.C:
				// continue
			}
		}
	}()
	return s
}

// Done stops the spinning display and waits for it to clean up. It can be called more than once.
func (s *Spinning) Done() {
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.wg.Wait()
}
