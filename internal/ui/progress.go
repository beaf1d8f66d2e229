package ui

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const barWidth = 40

// indicators implements Progress.
type indicators struct {
	theme    *Theme
	headless *HeadlessManager
	w        io.Writer
}

// NewProgress creates a Progress backed by the given theme and headless
// manager, drawing to w. A nil w uses os.Stderr so indicators never mix
// with command output.
func NewProgress(theme *Theme, hm *HeadlessManager, w io.Writer) Progress {
	if w == nil {
		w = os.Stderr
	}
	return &indicators{theme: theme, headless: hm, w: w}
}

// plain reports whether indicators should print lines instead of animating.
func (p *indicators) plain() bool {
	return p.headless.IsHeadless() || p.theme.NoColor
}

// Start creates a determinate progress bar over total steps.
func (p *indicators) Start(title string, total int) ProgressBar {
	if p.plain() {
		return newLineIndicator(p.w, title, total)
	}
	return startTeaIndicator(p.theme, title, total, p.w)
}

// Spinner creates an indeterminate spinner.
func (p *indicators) Spinner(title string) Spinner {
	if p.plain() {
		return newLineIndicator(p.w, title, 0)
	}
	return startTeaIndicator(p.theme, title, 0, p.w)
}

type (
	titleMsg  string
	stepMsg   int
	finishMsg struct{}
)

// indicatorModel draws a spinner when total is zero and a bar otherwise.
type indicatorModel struct {
	spin     spinner.Model
	bar      progress.Model
	title    string
	done     int
	total    int
	finished bool
}

func newIndicatorModel(theme *Theme, title string, total int) indicatorModel {
	spin := spinner.New(spinner.WithSpinner(spinner.Dot))
	fill := progress.WithDefaultGradient()
	if !theme.NoColor {
		spin.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Colors.Primary))
		fill = progress.WithGradient(theme.Colors.Primary, theme.Colors.Secondary)
	}
	return indicatorModel{
		spin:  spin,
		bar:   progress.New(fill, progress.WithWidth(barWidth)),
		title: title,
		total: total,
	}
}

func (m indicatorModel) spinning() bool {
	return m.total == 0
}

func (m indicatorModel) Init() tea.Cmd {
	if m.spinning() {
		return m.spin.Tick
	}
	return nil
}

func (m indicatorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case titleMsg:
		m.title = string(msg)
	case stepMsg:
		m.done = min(m.done+int(msg), m.total)
	case finishMsg:
		m.done = m.total
		m.finished = true
		return m, tea.Quit
	case spinner.TickMsg:
		if m.spinning() {
			var cmd tea.Cmd
			m.spin, cmd = m.spin.Update(msg)
			return m, cmd
		}
	case progress.FrameMsg:
		next, cmd := m.bar.Update(msg)
		m.bar = next.(progress.Model)
		return m, cmd
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.finished = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m indicatorModel) View() string {
	if m.finished {
		return ""
	}
	if m.spinning() {
		return m.spin.View() + " " + m.title + "\n"
	}
	frac := float64(m.done) / float64(m.total)
	return m.bar.ViewAs(frac) + fmt.Sprintf(" [%d/%d] %s\n", m.done, m.total, m.title)
}

// teaIndicator runs an indicatorModel on its own goroutine. It serves as
// both Spinner and ProgressBar.
type teaIndicator struct {
	program *tea.Program
	once    sync.Once
}

func startTeaIndicator(theme *Theme, title string, total int, w io.Writer) *teaIndicator {
	p := tea.NewProgram(newIndicatorModel(theme, title, total), tea.WithOutput(w), tea.WithInput(nil))
	go func() {
		_, _ = p.Run()
	}()
	return &teaIndicator{program: p}
}

func (i *teaIndicator) SetTitle(title string) { i.program.Send(titleMsg(title)) }
func (i *teaIndicator) Increment(n int)       { i.program.Send(stepMsg(n)) }
func (i *teaIndicator) Stop()                 { i.finish() }
func (i *teaIndicator) Done()                 { i.finish() }

// finish stops the program once and waits for its final frame.
func (i *teaIndicator) finish() {
	i.once.Do(func() {
		i.program.Send(finishMsg{})
		i.program.Wait()
	})
}

// lineIndicator prints one line per change, for pipes and CI logs.
// A zero total behaves as a spinner.
type lineIndicator struct {
	w     io.Writer
	title string
	done  int
	total int
}

func newLineIndicator(w io.Writer, title string, total int) *lineIndicator {
	li := &lineIndicator{w: w, title: title, total: total}
	if total == 0 {
		li.println(title)
	}
	return li
}

func (l *lineIndicator) SetTitle(title string) {
	l.title = title
	if l.total == 0 {
		l.println(title)
	}
}

func (l *lineIndicator) Increment(n int) {
	l.done = min(l.done+n, l.total)
	l.println(fmt.Sprintf("[%d/%d] %s", l.done, l.total, l.title))
}

func (l *lineIndicator) Done() {
	l.done = l.total
	l.println(fmt.Sprintf("[%d/%d] %s", l.done, l.total, l.title))
}

func (l *lineIndicator) Stop() {}

func (l *lineIndicator) println(s string) {
	_, _ = fmt.Fprintln(l.w, s)
}
