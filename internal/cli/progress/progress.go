package progress

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"golang.org/x/term"
)

type Status int

const (
	StatusPending Status = iota
	StatusRunning
	StatusSuccess
	StatusFailed
)

type Item struct {
	Name     string
	Info     string
	Status   Status
	Duration time.Duration
	Error    error
}

// Tracker shows progress for steps run one after another. On a terminal the
// running step gets a spinner line; otherwise timestamped lines are written.
type Tracker struct {
	mu           sync.Mutex
	wg           sync.WaitGroup
	out          io.Writer
	items        []Item
	current      int
	startTime    time.Time
	isTTY        bool
	useColor     bool
	caps         terminalCapabilities
	stopChan     chan struct{}
	stopOnce     sync.Once
	spinnerFrame int
	actionVerb   string
}

var spinnerFrames = []string{"✦", "✸", "✹", "❋", "✹", "✸"}

func NewTrackerWithVerb(names []string, verb string) *Tracker {
	return NewTrackerWithInfoAndVerb(names, nil, verb)
}

// NewTrackerWithInfoAndVerb creates a tracker on stdout; infos are shown next to the names.
func NewTrackerWithInfoAndVerb(names []string, infos []string, verb string) *Tracker {
	_, noColor := os.LookupEnv("NO_COLOR")
	isTTY := term.IsTerminal(int(os.Stdout.Fd()))
	caps := detectCapabilities()
	return newTrackerWithWriter(names, infos, verb, os.Stdout, isTTY, !noColor && isTTY && caps.supportsANSI, caps)
}

func newTrackerWithWriter(
	names []string,
	infos []string,
	verb string,
	out io.Writer,
	isTTY bool,
	useColor bool,
	caps terminalCapabilities,
) *Tracker {
	items := make([]Item, len(names))
	for i, name := range names {
		items[i] = Item{Name: name, Status: StatusPending}
		if i < len(infos) {
			items[i].Info = infos[i]
		}
	}
	return &Tracker{
		out:        out,
		items:      items,
		current:    -1,
		isTTY:      isTTY,
		useColor:   useColor,
		caps:       caps,
		stopChan:   make(chan struct{}),
		actionVerb: verb,
	}
}

// Start begins the spinner animation in TTY mode.
func (t *Tracker) Start() {
	if t.isTTY {
		t.wg.Add(1)
		go t.animate()
	}
}

// Run executes step as item index and records its result.
func (t *Tracker) Run(index int, step func() error) error {
	t.StartItem(index)
	err := step()
	t.CompleteItem(index, err)
	return err
}

func (t *Tracker) StartItem(index int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.current = index
	t.items[index].Status = StatusRunning
	t.startTime = time.Now()

	if !t.isTTY {
		item := t.items[index]
		fmt.Fprintf(t.out, "[%s] %s %s %s...\n", time.Now().Format("15:04:05"), t.counter(index), t.actionVerb, t.displayName(item))
	}
}

// CompleteItem records the result and prints the final line of the item.
func (t *Tracker) CompleteItem(index int, err error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	item := &t.items[index]
	item.Duration = time.Since(t.startTime)
	item.Status = StatusSuccess
	if err != nil {
		item.Status = StatusFailed
		item.Error = err
	}

	sym := t.paint("32", "+")
	suffix := formatDuration(item.Duration)
	if err != nil {
		sym = t.paint("31", "x")
		suffix += " FAILED"
	}

	if !t.isTTY {
		fmt.Fprintf(t.out, "[%s] %s %s (%s)\n", time.Now().Format("15:04:05"), sym, item.Name, suffix)
		return
	}
	// error details are printed by the root command
	fmt.Fprint(t.out, clearLine(t.caps))
	fmt.Fprintf(t.out, "  %s %s  %s  %s\n", sym, t.paint("2", t.counter(index)), t.displayName(*item), t.paint("2", "("+suffix+")"))
}

// Stop ends the animation. It can be called more than once.
func (t *Tracker) Stop() {
	t.stopOnce.Do(func() {
		close(t.stopChan)
	})
	t.wg.Wait()

	if t.isTTY {
		t.mu.Lock()
		fmt.Fprint(t.out, clearLine(t.caps))
		if t.useColor {
			fmt.Fprint(t.out, "\033[0m")
		}
		t.mu.Unlock()
	}
}

func (t *Tracker) counter(index int) string {
	return fmt.Sprintf("[%d/%d]", index+1, len(t.items))
}

func (t *Tracker) paint(code string, text string) string {
	if !t.useColor {
		return text
	}
	return "\033[" + code + "m" + text + "\033[0m"
}

func (t *Tracker) displayName(item Item) string {
	if item.Info == "" {
		return item.Name
	}
	return item.Name + " " + t.paint("2", "("+item.Info+")")
}

func (t *Tracker) statusLine() string {
	item := t.items[t.current]
	spinner := spinnerFrames[t.spinnerFrame%len(spinnerFrames)]
	line := fmt.Sprintf("  %s %s  %s  %s",
		t.paint("1", spinner), t.counter(t.current), t.displayName(item), t.paint("2", formatDuration(time.Since(t.startTime))))
	return clearLine(t.caps) + truncateToWidth(line, t.caps.terminalWidth)
}

func (t *Tracker) animate() {
	defer t.wg.Done()
	ticker := time.NewTicker(200 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-t.stopChan:
			return
		case <-ticker.C:
			t.mu.Lock()
			if t.current >= 0 && t.items[t.current].Status == StatusRunning {
				t.spinnerFrame++
				fmt.Fprint(t.out, t.statusLine())
			}
			t.mu.Unlock()
		}
	}
}

func formatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	m := d / time.Minute
	s := (d % time.Minute) / time.Second

	if m > 0 {
		return fmt.Sprintf("%dm %02ds", m, s)
	}
	return fmt.Sprintf("%ds", s)
}

// Summary counts finished items, e.g. "2 succeeded, 1 failed in 5s".
func (t *Tracker) Summary() string {
	t.mu.Lock()
	defer t.mu.Unlock()

	var totalDuration time.Duration
	successCount, failCount := 0, 0
	for _, item := range t.items {
		totalDuration += item.Duration
		switch item.Status {
		case StatusSuccess:
			successCount++
		case StatusFailed:
			failCount++
		}
	}

	var parts []string
	if successCount > 0 {
		parts = append(parts, fmt.Sprintf("%d succeeded", successCount))
	}
	if failCount > 0 {
		parts = append(parts, fmt.Sprintf("%d failed", failCount))
	}
	if len(parts) == 0 {
		return "nothing done"
	}
	return fmt.Sprintf("%s in %s", strings.Join(parts, ", "), formatDuration(totalDuration))
}
