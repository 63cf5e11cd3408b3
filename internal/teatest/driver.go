// Package teatest drives bubbletea models synchronously in tests.
//
// Instead of running a tea.Program, the driver feeds messages through
// Update directly and drains every returned Cmd in the calling
// goroutine, so model behavior can be asserted deterministically.
//
// Cmds that block, like a snapshot watcher waiting on its change
// channel, are executed with a short timeout and skipped when they do
// not return promptly.
package teatest

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// maxDrainDepth caps recursive command draining.
const maxDrainDepth = 100

// cmdTimeout separates Cmds that produce a message immediately (data
// loads against an in-memory source) from ones that wait on a channel.
const cmdTimeout = 10 * time.Millisecond

// Driver is a synchronous test harness for a tea.Model.
type Driver struct {
	T     *testing.T
	Model tea.Model

	// Quitting is set when tea.QuitMsg is seen during drain. The real
	// runtime intercepts that message before the model does, so the
	// driver detects it explicitly.
	Quitting bool
}

// Option configures the Driver during construction.
type Option func(*Driver)

// WithSize sends an initial WindowSizeMsg before any other processing.
func WithSize(w, h int) Option {
	return func(d *Driver) {
		d.T.Helper()
		updated, _ := d.Model.Update(tea.WindowSizeMsg{Width: w, Height: h})
		d.Model = updated
	}
}

// New creates a Driver for the given model. Call DrainInit afterwards
// to process the model's Init command.
func New(t *testing.T, model tea.Model, opts ...Option) *Driver {
	t.Helper()
	d := &Driver{T: t, Model: model}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// DrainInit executes the model's Init command and drains the results.
func (d *Driver) DrainInit() {
	d.T.Helper()
	d.drainCmd(d.Model.Init(), 0)
}

// Send dispatches a message through Update and drains resulting Cmds.
func (d *Driver) Send(msg tea.Msg) {
	d.T.Helper()
	if d.Quitting {
		return
	}
	updated, cmd := d.Model.Update(msg)
	d.Model = updated
	d.drainCmd(cmd, 0)
}

// PressKey sends a character key.
func (d *Driver) PressKey(r rune) {
	d.T.Helper()
	d.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
}

// PressUp sends the Up arrow key.
func (d *Driver) PressUp() {
	d.T.Helper()
	d.Send(tea.KeyMsg{Type: tea.KeyUp})
}

// PressDown sends the Down arrow key.
func (d *Driver) PressDown() {
	d.T.Helper()
	d.Send(tea.KeyMsg{Type: tea.KeyDown})
}

// PressTab sends the Tab key.
func (d *Driver) PressTab() {
	d.T.Helper()
	d.Send(tea.KeyMsg{Type: tea.KeyTab})
}

// View returns the rendered output of the current model.
func (d *Driver) View() string {
	return d.Model.View()
}

func (d *Driver) drainCmd(cmd tea.Cmd, depth int) {
	d.T.Helper()
	if cmd == nil || depth >= maxDrainDepth {
		if depth >= maxDrainDepth {
			d.T.Logf("teatest.Driver: drain depth limit (%d) reached", maxDrainDepth)
		}
		return
	}

	msg := execCmdWithTimeout(cmd)
	if msg == nil {
		return
	}

	if batch, ok := msg.(tea.BatchMsg); ok {
		for _, sub := range batch {
			if sub == nil {
				continue
			}
			d.drainCmd(sub, depth+1)
		}
		return
	}

	if _, isQuit := msg.(tea.QuitMsg); isQuit {
		d.Quitting = true
		updated, _ := d.Model.Update(msg)
		d.Model = updated
		return
	}

	updated, next := d.Model.Update(msg)
	d.Model = updated
	d.drainCmd(next, depth+1)
}

// execCmdWithTimeout runs a Cmd in a goroutine and abandons it when it
// does not produce a message within cmdTimeout.
func execCmdWithTimeout(cmd tea.Cmd) tea.Msg {
	ch := make(chan tea.Msg, 1)
	go func() {
		ch <- cmd()
	}()
	select {
	case msg := <-ch:
		return msg
	case <-time.After(cmdTimeout):
		return nil
	}
}
