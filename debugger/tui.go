package debugger

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// TUI is the terminal front end: an output pane over an input line, with
// up/down history recall.
type TUI struct {
	session *Session
	app     *tview.Application
	output  *tview.TextView
	input   *tview.InputField

	histPos int
}

// NewTUI builds the interface around an existing session.
func NewTUI(session *Session) *TUI {
	t := &TUI{
		session: session,
		app:     tview.NewApplication(),
	}

	t.output = tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(true).
		SetChangedFunc(func() { t.app.Draw() })
	t.output.SetBorder(true).SetTitle(" riscv-emu ")

	t.input = tview.NewInputField().
		SetLabel("> ").
		SetFieldBackgroundColor(tcell.ColorDefault)
	t.input.SetDoneFunc(func(key tcell.Key) {
		if key != tcell.KeyEnter {
			return
		}
		line := t.input.GetText()
		t.input.SetText("")
		t.evaluate(line)
	})
	t.input.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyUp:
			t.recall(-1)
			return nil
		case tcell.KeyDown:
			t.recall(1)
			return nil
		case tcell.KeyCtrlC:
			t.app.Stop()
			return nil
		}
		return event
	})

	flex := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(t.output, 0, 1, false).
		AddItem(t.input, 1, 0, true)

	t.app.SetRoot(flex, true)
	return t
}

// Run enters the event loop; it returns when the user quits.
func (t *TUI) Run() error {
	fmt.Fprintln(t.output, "type 'help' for commands, ctrl-c to quit")
	t.histPos = len(t.session.History())
	return t.app.Run()
}

func (t *TUI) evaluate(line string) {
	if line == "quit" || line == "exit" {
		t.app.Stop()
		return
	}
	fmt.Fprintf(t.output, "[yellow]> %s[-]\n", tview.Escape(line))
	out, err := t.session.Execute(line)
	if err != nil {
		fmt.Fprintf(t.output, "[red]error: %v[-]\n", err)
	} else if out != "" {
		fmt.Fprintln(t.output, tview.Escape(out))
	}
	t.histPos = len(t.session.History())
	t.output.ScrollToEnd()
}

// recall moves through the command history; dir is -1 for older and +1 for
// newer entries.
func (t *TUI) recall(dir int) {
	hist := t.session.History()
	if len(hist) == 0 {
		return
	}
	t.histPos += dir
	if t.histPos < 0 {
		t.histPos = 0
	}
	if t.histPos >= len(hist) {
		t.histPos = len(hist)
		t.input.SetText("")
		return
	}
	t.input.SetText(hist[t.histPos])
}
