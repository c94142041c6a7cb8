package ui

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mamix14/SystemInfoTool/internal/present"
	"github.com/mamix14/SystemInfoTool/internal/report"
)

// syncBuffer lets the test read output while the session writes it.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// cannedScanner fills every slot instantly.
type cannedScanner struct{}

func (cannedScanner) Scan(ctx context.Context, emit func(report.Section)) {
	for _, category := range report.Order {
		emit(report.Section{Category: category, Text: "canned " + string(category)})
	}
}

func TestSessionCommandsWithoutScan(t *testing.T) {
	out := &syncBuffer{}
	term := NewTerminal(out, false)

	p := present.New(cannedScanner{}, term)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go p.Run(ctx)

	in := strings.NewReader("tabs\nshow cpu\nshow nosuch\nbogus\nquit\n")
	err := term.Session(ctx, p, t.TempDir(), in)
	require.NoError(t, err)

	got := out.String()
	assert.Contains(t, got, "System Information Tool")
	assert.Contains(t, got, "Available tabs:")
	assert.Contains(t, got, "CPU\n───\n")
	assert.Contains(t, got, "(empty - run a scan first)")
	assert.Contains(t, got, `unknown tab "nosuch"`)
	assert.Contains(t, got, `unknown command "bogus"`)
}

func TestSessionScanAndExport(t *testing.T) {
	out := &syncBuffer{}
	term := NewTerminal(out, false)

	p := present.New(cannedScanner{}, term)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go p.Run(ctx)

	dir := t.TempDir()
	pr, pw := io.Pipe()

	done := make(chan error, 1)
	go func() { done <- term.Session(ctx, p, dir, pr) }()

	_, err := io.WriteString(pw, "scan\n")
	require.NoError(t, err)
	require.Eventually(t, func() bool {
		return strings.Contains(out.String(), "Scan complete!")
	}, 2*time.Second, 10*time.Millisecond)

	_, err = io.WriteString(pw, "export\nquit\n")
	require.NoError(t, err)
	require.NoError(t, <-done)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.True(t, strings.HasPrefix(entries[0].Name(), "system_info_"))

	data, err := os.ReadFile(filepath.Join(dir, entries[0].Name()))
	require.NoError(t, err)
	for _, category := range report.Order {
		assert.Contains(t, string(data), report.SectionHeader(category))
		assert.Contains(t, string(data), "canned "+string(category))
	}
}

func TestPaintTones(t *testing.T) {
	colored := NewTerminal(io.Discard, true)
	assert.Equal(t, colorGreen+"ok"+colorReset, colored.paint("ok", present.ToneGood))
	assert.Equal(t, colorRed+"bad"+colorReset, colored.paint("bad", present.ToneBad))
	assert.Equal(t, colorYellow+"busy"+colorReset, colored.paint("busy", present.ToneBusy))
	assert.Equal(t, colorBlue+"hi"+colorReset, colored.paint("hi", present.ToneNeutral))

	plain := NewTerminal(io.Discard, false)
	assert.Equal(t, "ok", plain.paint("ok", present.ToneGood))
}
