package chat

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/diogo/askweb/internal/models"
)

// TypingInterval is the delay between indicator frames
const TypingInterval = 300 * time.Millisecond

// TypingFrames are appended to "Thinking" in order, cycling
var TypingFrames = []string{"…", "..", ".", ".."}

// TypingTickMsg advances the indicator with the matching ID
type TypingTickMsg struct {
	ID int
}

// Typing is an animated placeholder bubble shown while a request is in flight
type Typing struct {
	id      int
	Node    *Bubble
	step    int
	stopped bool
}

// Stop cancels the animation. The caller removes Node.
func (t *Typing) Stop() {
	t.stopped = true
}

// Stopped reports whether Stop was called
func (t *Typing) Stopped() bool {
	return t.stopped
}

// advance shows the next frame
func (t *Typing) advance() {
	t.Node.SetText(FrameText(t.step))
	t.step++
}

// FrameText returns the indicator text for step
func FrameText(step int) string {
	return "Thinking" + TypingFrames[step%len(TypingFrames)]
}

// Indicators creates typing indicators in a log and drives their timers
type Indicators struct {
	log    *MessageLog
	nextID int
	active map[int]*Typing

	// Schedule returns the command delivering the next tick for id.
	// Defaults to a tea.Tick of TypingInterval.
	Schedule func(id int) tea.Cmd
}

// NewIndicators creates an indicator factory bound to log
func NewIndicators(log *MessageLog) *Indicators {
	return &Indicators{
		log:      log,
		active:   make(map[int]*Typing),
		Schedule: scheduleTick,
	}
}

func scheduleTick(id int) tea.Cmd {
	return tea.Tick(TypingInterval, func(time.Time) tea.Msg {
		return TypingTickMsg{ID: id}
	})
}

// ShowTyping appends an empty bot bubble and starts its interval.
// The first frame appears on the first tick.
func (ind *Indicators) ShowTyping() (*Typing, tea.Cmd) {
	ind.nextID++
	t := &Typing{
		id:   ind.nextID,
		Node: ind.log.AddMessage(models.RoleBot, ""),
	}
	ind.active[t.id] = t
	return t, ind.schedule(t.id)
}

// HandleTick advances the indicator and schedules the next tick.
// Ticks for stopped or unknown indicators are dropped.
func (ind *Indicators) HandleTick(msg TypingTickMsg) tea.Cmd {
	t, ok := ind.active[msg.ID]
	if !ok {
		return nil
	}
	if t.Stopped() {
		delete(ind.active, msg.ID)
		return nil
	}
	t.advance()
	return ind.schedule(t.id)
}

// Release stops t and removes its node. Safe to call more than once.
func (ind *Indicators) Release(t *Typing) {
	if t == nil {
		return
	}
	t.Stop()
	delete(ind.active, t.id)
	ind.log.Remove(t.Node)
}

// Active returns the number of running indicators
func (ind *Indicators) Active() int {
	return len(ind.active)
}

func (ind *Indicators) schedule(id int) tea.Cmd {
	if ind.Schedule == nil {
		return nil
	}
	return ind.Schedule(id)
}

// IsTyping reports whether messageID belongs to a running indicator
func (ind *Indicators) IsTyping(messageID string) bool {
	for _, t := range ind.active {
		if !t.Stopped() && t.Node.ID() == messageID {
			return true
		}
	}
	return false
}
