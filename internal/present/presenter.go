// Package present owns the interactive session state: the nine report
// slots, the scan lifecycle, and export. All state lives on a single
// foreground loop; the scan worker and the frontend talk to it only through
// posted closures, so no lock guards the slots.
package present

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/sirupsen/logrus"

	"github.com/mamix14/SystemInfoTool/internal/report"
)

// Tone classifies a status line so the frontend can color it.
type Tone int

const (
	ToneNeutral Tone = iota
	ToneBusy
	ToneGood
	ToneBad
)

// Frontend renders presenter output. Implementations are called only from
// the presenter loop, never concurrently.
type Frontend interface {
	ShowSlot(category report.Category, text string)
	ShowStatus(text string, tone Tone)
	SetScanEnabled(enabled bool)
}

// Scanner produces the report sections. Scan must emit every category in
// slot order and must not return an error; a defect surfaces as a panic.
type Scanner interface {
	Scan(ctx context.Context, emit func(report.Section))
}

// Presenter drives one interactive session.
type Presenter struct {
	scanner  Scanner
	frontend Frontend

	tasks chan func()
	done  chan struct{}
	ran   atomic.Bool

	// Loop-owned state. Touched only from inside tasks.
	slots    map[report.Category]string
	scanning bool

	log *logrus.Entry
}

// New builds a Presenter. Run must be called before any other method has an
// effect.
func New(scanner Scanner, frontend Frontend) *Presenter {
	return &Presenter{
		scanner:  scanner,
		frontend: frontend,
		tasks:    make(chan func()),
		done:     make(chan struct{}),
		slots:    make(map[report.Category]string, len(report.Order)),
		log:      logrus.WithField("component", "presenter"),
	}
}

// Run executes the session loop until ctx is canceled. It blocks; callers
// drive input from other goroutines via StartScan, Export and Snapshot.
func (p *Presenter) Run(ctx context.Context) {
	if !p.ran.CompareAndSwap(false, true) {
		panic("present: Run called twice")
	}
	defer close(p.done)

	p.frontend.SetScanEnabled(true)
	p.frontend.ShowStatus("Ready to scan", ToneNeutral)

	for {
		select {
		case <-ctx.Done():
			return
		case task := <-p.tasks:
			task()
		}
	}
}

// post hands a closure to the loop. A closed session drops the task.
func (p *Presenter) post(fn func()) {
	select {
	case p.tasks <- fn:
	case <-p.done:
	}
}

// StartScan begins a scan unless one is already running, in which case it is
// a no-op. The scan itself runs on one background goroutine; every state and
// frontend update happens back on the loop.
func (p *Presenter) StartScan(ctx context.Context) {
	p.post(func() {
		if p.scanning {
			return
		}
		p.scanning = true
		p.slots = make(map[report.Category]string, len(report.Order))

		p.frontend.SetScanEnabled(false)
		p.frontend.ShowStatus("Scanning system...", ToneBusy)
		for _, category := range report.Order {
			p.frontend.ShowSlot(category, "")
		}

		go p.scanWorker(ctx)
	})
}

func (p *Presenter) scanWorker(ctx context.Context) {
	defer func() {
		if r := recover(); r != nil {
			p.log.WithField("panic", r).Error("scan worker crashed")
			p.post(func() {
				p.scanning = false
				p.frontend.ShowStatus(fmt.Sprintf("Error during scan: %v", r), ToneBad)
				p.frontend.SetScanEnabled(true)
			})
		}
	}()

	p.scanner.Scan(ctx, func(s report.Section) {
		p.post(func() {
			p.slots[s.Category] = s.Text
			p.frontend.ShowSlot(s.Category, s.Text)
		})
	})

	p.post(func() {
		p.scanning = false
		p.frontend.ShowStatus("Scan complete!", ToneGood)
		p.frontend.SetScanEnabled(true)
	})
}

// Snapshot returns a copy of the current slot texts. Unscanned slots are
// absent from the map.
func (p *Presenter) Snapshot() map[report.Category]string {
	reply := make(chan map[report.Category]string, 1)
	p.post(func() {
		out := make(map[report.Category]string, len(p.slots))
		for k, v := range p.slots {
			out[k] = v
		}
		reply <- out
	})
	select {
	case snapshot := <-reply:
		return snapshot
	case <-p.done:
		return nil
	}
}

// Export writes the current slots to a report file in dir and announces the
// result on the status line. It returns the written filename.
func (p *Presenter) Export(dir string) (string, error) {
	type result struct {
		name string
		err  error
	}
	reply := make(chan result, 1)

	p.post(func() {
		name, err := WriteReport(dir, p.slots)
		if err != nil {
			p.frontend.ShowStatus("Export failed: "+err.Error(), ToneBad)
		} else {
			p.frontend.ShowStatus("Exported to "+name, ToneGood)
		}
		reply <- result{name: name, err: err}
	})

	select {
	case r := <-reply:
		return r.name, r.err
	case <-p.done:
		return "", context.Canceled
	}
}
