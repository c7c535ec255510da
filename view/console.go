package view

import (
	"bytes"
	"fmt"
	"log"
	"time"

	"github.com/jroimartin/gocui"
	"github.com/logrusorgru/aurora"

	"toruslife/universe"
	"toruslife/utils"
)

type keyBinding struct {
	key     interface{}
	name    string
	descr   string
	handler func(v *gocui.View) error
}

// ConsoleUI is the interactive terminal frontend.
//
// The universe has no internal locking, so all mutation is funneled through
// the gocui main loop: key handlers run there directly, and the run ticker
// goroutine submits its steps via Gui.Update, which executes them on the
// same loop.
type ConsoleUI struct {
	u      *universe.Universe
	config utils.Config
	g      *gocui.Gui
	k      []keyBinding

	generation int
	tickTime   time.Duration
	running    bool
	stopCh     chan struct{}

	liveFiller string
	deadFiller string
}

// NewConsoleUI creates the interactive UI over an already seeded universe.
func NewConsoleUI(u *universe.Universe, config utils.Config) *ConsoleUI {
	t := &ConsoleUI{
		u:          u,
		config:     config,
		liveFiller: aurora.Green(string(universe.AliveGlyph)).String(),
		deadFiller: string(universe.DeadGlyph),
	}

	var err error
	t.g, err = gocui.NewGui(gocui.OutputNormal)
	if err != nil {
		log.Panicln(err)
	}

	t.k = []keyBinding{
		{gocui.KeyCtrlC, "^C", "Exit", t.cmdQuit},
		{'n', "N", "Next generation", t.cmdStep},
		{'r', "R", "Run", t.cmdRun},
		{'s', "S", "Stop", t.cmdStop},
		{'c', "C", "Clear", t.cmdClear},
		{'w', "W", "Random reseed", t.cmdReseedRandom},
		{'g', "G", "Glider reseed", t.cmdReseedGlider},
	}
	t.g.SetManagerFunc(t.layout)
	t.initKeyBindings()

	return t
}

func (t *ConsoleUI) initKeyBindings() {
	for _, kb := range t.k {
		h := kb.handler
		if err := t.g.SetKeybinding("", kb.key, gocui.ModNone, func(gui *gocui.Gui, view *gocui.View) error { return h(view) }); err != nil {
			log.Panicln(err)
		}
	}
}

// Start runs the UI until the user quits.
func (t *ConsoleUI) Start() {
	defer t.g.Close()
	if err := t.g.MainLoop(); err != nil && err != gocui.ErrQuit {
		log.Panicln(err)
	}
}

// step advances one generation and refreshes every view. Must run on the
// gocui main loop.
func (t *ConsoleUI) step() {
	start := time.Now()
	t.u.Tick()
	t.tickTime = time.Since(start)
	t.generation++
	t.refresh()
}

func (t *ConsoleUI) refresh() {
	t.renderBoard()
	t.renderStatus()
}

func (t *ConsoleUI) renderBoard() {
	t.g.Update(func(g *gocui.Gui) error {
		v, err := g.View("board")
		if err != nil {
			return err
		}
		v.Clear()

		maxW, maxH := v.Size()
		cropped := int(t.u.Width()) > maxW || int(t.u.Height()) > maxH

		var b bytes.Buffer
		for row := uint(0); row < t.u.Height(); row++ {
			// discard the rows outside the view area
			if int(row) >= maxH {
				break
			}
			if row != 0 {
				b.WriteByte('\n')
			}
			if cropped && int(row) == maxH-1 {
				b.WriteString(aurora.Red("The board is larger than the viewing area").String())
				break
			}
			for col := uint(0); col < t.u.Width(); col++ {
				if int(col) >= maxW {
					break
				}
				if t.u.Cell(row, col) {
					b.WriteString(t.liveFiller)
				} else {
					b.WriteString(t.deadFiller)
				}
			}
		}
		_, _ = fmt.Fprint(v, b.String())
		return nil
	})
}

func (t *ConsoleUI) renderStatus() {
	t.g.Update(func(g *gocui.Gui) error {
		v, err := g.View("status")
		if err != nil {
			return nil
		}
		v.Clear()

		mode := aurora.Colorize("waiting", aurora.BlueFg).String()
		if t.running {
			mode = aurora.Colorize("running", aurora.CyanFg).String()
		}
		_, _ = fmt.Fprintln(v, t.renderProp("Dimension", "%v x %v", t.u.Width(), t.u.Height()))
		_, _ = fmt.Fprintln(v, t.renderProp("Generation", "%v", t.generation))
		_, _ = fmt.Fprintln(v, t.renderProp("Live cells", "%v", t.u.Population()))
		_, _ = fmt.Fprintln(v, t.renderProp("Tick time", "%v", t.tickTime.Round(time.Microsecond)))
		_, _ = fmt.Fprintln(v, t.renderProp("Mode", "%v", mode))
		return nil
	})
}

func (t *ConsoleUI) renderProp(name string, valueFormat string, values ...interface{}) string {
	return fmt.Sprintf(" "+aurora.Colorize(name, aurora.GreenFg).String()+": "+valueFormat, values...)
}

func (t *ConsoleUI) layout(g *gocui.Gui) error {
	maxX, maxY := g.Size()
	leftColumnWidth := 24

	if v, err := g.SetView("header", -1, -1, maxX+1, 1); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Frame = false
		v.BgColor = gocui.ColorCyan
		v.FgColor = gocui.ColorBlack
		_, _ = fmt.Fprintln(v, " Game of Life on a torus")
	}

	if v, err := g.SetView("status", 0, 1, leftColumnWidth, maxY-3); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Title = "Status"
		v.Frame = true
		t.renderStatus()
	}

	if v, err := g.SetView("board", leftColumnWidth+1, 1, maxX-1, maxY-3); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Title = "Board"
		v.Frame = true
		t.renderBoard()
	} else {
		t.renderBoard()
	}

	if v, err := g.SetView("help", -1, maxY-3, maxX, maxY-1); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Frame = false
		b := bytes.Buffer{}
		b.WriteString("KEYBINDINGS: ")
		for i, k := range t.k {
			if i != 0 {
				b.WriteString(", ")
			}
			b.WriteString(aurora.Green(k.name).String())
			b.WriteString(": ")
			b.WriteString(k.descr)
		}
		_, _ = fmt.Fprintln(v, b.String())
	}

	return nil
}

func (t *ConsoleUI) cmdQuit(_ *gocui.View) error {
	if t.running {
		close(t.stopCh)
		t.running = false
	}
	return gocui.ErrQuit
}

func (t *ConsoleUI) cmdStep(_ *gocui.View) error {
	if !t.running {
		t.step()
	}
	return nil
}

func (t *ConsoleUI) cmdRun(_ *gocui.View) error {
	if t.running {
		return nil
	}
	t.running = true
	t.stopCh = make(chan struct{})
	go t.runLoop(t.stopCh)
	t.renderStatus()
	return nil
}

// runLoop drives continuous ticking. It never touches the universe itself;
// each step is queued onto the gocui main loop.
func (t *ConsoleUI) runLoop(stopCh chan struct{}) {
	ticker := time.NewTicker(t.config.FrameRate)
	defer ticker.Stop()
	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C:
			t.g.Update(func(g *gocui.Gui) error {
				if t.running {
					t.step()
				}
				return nil
			})
		}
	}
}

func (t *ConsoleUI) cmdStop(_ *gocui.View) error {
	if t.running {
		close(t.stopCh)
		t.running = false
		t.renderStatus()
	}
	return nil
}

// cmdClear resets every cell. Resizing to the current width is the
// documented full-reset path.
func (t *ConsoleUI) cmdClear(_ *gocui.View) error {
	t.u.SetWidth(t.u.Width())
	t.generation = 0
	t.refresh()
	return nil
}

func (t *ConsoleUI) cmdReseedRandom(_ *gocui.View) error {
	t.u = universe.New(t.u.Width(), t.u.Height(), nil)
	t.generation = 0
	t.refresh()
	return nil
}

func (t *ConsoleUI) cmdReseedGlider(_ *gocui.View) error {
	t.u = universe.WithSeededGlider(t.u.Width(), t.u.Height())
	t.generation = 0
	t.refresh()
	return nil
}
