// Package ui is the terminal frontend for an interactive session: it
// renders presenter updates and turns typed commands into presenter calls.
package ui

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/mattn/go-runewidth"

	"github.com/mamix14/SystemInfoTool/internal/present"
	"github.com/mamix14/SystemInfoTool/internal/report"
)

const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorBlue   = "\033[34m"
)

// Terminal renders presenter output to a writer and keeps the latest slot
// texts for the show command. The mutex covers both writer and state: the
// presenter loop and the command loop call in from different goroutines.
type Terminal struct {
	mu          sync.Mutex
	out         io.Writer
	color       bool
	slots       map[report.Category]string
	scanEnabled bool
}

// NewTerminal builds a frontend writing to out. Colors are optional for
// dumb terminals and piped output.
func NewTerminal(out io.Writer, color bool) *Terminal {
	return &Terminal{
		out:   out,
		color: color,
		slots: make(map[report.Category]string, len(report.Order)),
	}
}

func (t *Terminal) ShowSlot(category report.Category, text string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.slots[category] = text
}

func (t *Terminal) ShowStatus(text string, tone present.Tone) {
	t.mu.Lock()
	defer t.mu.Unlock()
	fmt.Fprintf(t.out, "%s\n", t.paint(text, tone))
}

func (t *Terminal) SetScanEnabled(enabled bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.scanEnabled = enabled
}

func (t *Terminal) paint(text string, tone present.Tone) string {
	if !t.color {
		return text
	}
	code := colorBlue
	switch tone {
	case present.ToneBusy:
		code = colorYellow
	case present.ToneGood:
		code = colorGreen
	case present.ToneBad:
		code = colorRed
	}
	return code + text + colorReset
}

// printSlot writes one stored slot with an underlined label.
func (t *Terminal) printSlot(category report.Category) {
	t.mu.Lock()
	defer t.mu.Unlock()

	label := strings.ToUpper(string(category))
	fmt.Fprintf(t.out, "\n%s\n%s\n", label, strings.Repeat("─", runewidth.StringWidth(label)))

	text := t.slots[category]
	if strings.TrimSpace(text) == "" {
		fmt.Fprintln(t.out, "(empty - run a scan first)")
		return
	}
	fmt.Fprintln(t.out, text)
}

func (t *Terminal) printTabs() {
	t.mu.Lock()
	defer t.mu.Unlock()

	fmt.Fprintln(t.out, "Available tabs:")
	for _, category := range report.Order {
		marker := " "
		if strings.TrimSpace(t.slots[category]) != "" {
			marker = "*"
		}
		fmt.Fprintf(t.out, "  %s %s\n", marker, category)
	}
}

func (t *Terminal) printHelp() {
	t.mu.Lock()
	defer t.mu.Unlock()

	fmt.Fprintln(t.out, "Commands:")
	fmt.Fprintln(t.out, "  scan          run a system scan")
	fmt.Fprintln(t.out, "  tabs          list tabs (* marks scanned ones)")
	fmt.Fprintln(t.out, "  show <tab>    print one tab, e.g. show cpu")
	fmt.Fprintln(t.out, "  export        write all tabs to a text file")
	fmt.Fprintln(t.out, "  help          this text")
	fmt.Fprintln(t.out, "  quit          leave")
}

func (t *Terminal) println(s string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	fmt.Fprintln(t.out, s)
}

// Session reads commands from in until quit, EOF or ctx cancellation and
// drives the presenter. The presenter's Run loop must already be running.
func (t *Terminal) Session(ctx context.Context, p *present.Presenter, exportDir string, in io.Reader) error {
	t.println("System Information Tool")
	t.printHelp()

	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
	}()

	for {
		t.println("")
		select {
		case <-ctx.Done():
			return ctx.Err()
		case line, ok := <-lines:
			if !ok {
				return nil
			}
			cmd, arg, _ := strings.Cut(strings.TrimSpace(line), " ")
			arg = strings.TrimSpace(arg)

			switch strings.ToLower(cmd) {
			case "":
			case "scan":
				p.StartScan(ctx)
			case "tabs":
				t.printTabs()
			case "show":
				category, ok := report.Lookup(arg)
				if !ok {
					t.println(fmt.Sprintf("unknown tab %q, one of: %s", arg, tabNames()))
					continue
				}
				t.printSlot(category)
			case "export":
				// Status line reports the outcome either way.
				_, _ = p.Export(exportDir)
			case "help":
				t.printHelp()
			case "quit", "exit":
				return nil
			default:
				t.println(fmt.Sprintf("unknown command %q, try help", cmd))
			}
		}
	}
}

func tabNames() string {
	names := make([]string, 0, len(report.Order))
	for _, category := range report.Order {
		names = append(names, strings.ToLower(string(category)))
	}
	return strings.Join(names, ", ")
}
