// Package replay records and replays games as a seed plus a per-tick input
// log. Because the engine is deterministic for a given seed and tick rate,
// feeding the recorded frames back reproduces the game exactly.
package replay

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/vselivanov/blockfall/internal/core"
)

// Event is one tick's triggered actions. Ticks without input are not
// recorded.
type Event struct {
	Tick    uint64   `yaml:"tick"`
	Actions []string `yaml:"actions"`
}

// Recording is a complete replay: everything needed to reproduce a game.
type Recording struct {
	GameID    string    `yaml:"game_id"`
	Seed      int64     `yaml:"seed"`
	TickRate  int       `yaml:"tick_rate"`
	Ticks     uint64    `yaml:"ticks"`
	Score     int       `yaml:"score"`
	Level     int       `yaml:"level"`
	CreatedAt time.Time `yaml:"created_at,omitempty"`
	Events    []Event   `yaml:"events"`
}

// EncodeEvents serializes the event log to YAML for storage.
func EncodeEvents(events []Event) ([]byte, error) {
	data, err := yaml.Marshal(events)
	if err != nil {
		return nil, fmt.Errorf("replay: cannot encode events: %w", err)
	}
	return data, nil
}

// DecodeEvents parses an event log previously produced by EncodeEvents.
func DecodeEvents(data []byte) ([]Event, error) {
	var events []Event
	if err := yaml.Unmarshal(data, &events); err != nil {
		return nil, fmt.Errorf("replay: cannot decode events: %w", err)
	}
	return events, nil
}

// Recorder accumulates a recording while a game runs.
type Recorder struct {
	rec Recording
}

// NewRecorder starts a recording for the given game and seed.
func NewRecorder(gameID string, seed int64, tickRate int) *Recorder {
	return &Recorder{rec: Recording{
		GameID:   gameID,
		Seed:     seed,
		TickRate: tickRate,
	}}
}

// Observe logs the frame passed to the engine at the given tick. Frames
// with no triggered actions are skipped.
func (r *Recorder) Observe(tick uint64, in core.InputFrame) {
	actions := in.List()
	if len(actions) == 0 {
		return
	}
	ev := Event{Tick: tick}
	for _, a := range actions {
		ev.Actions = append(ev.Actions, a.String())
	}
	r.rec.Events = append(r.rec.Events, ev)
}

// Finish stamps the final outcome and returns the completed recording.
func (r *Recorder) Finish(ticks uint64, state core.GameState) Recording {
	r.rec.Ticks = ticks
	r.rec.Score = state.Score
	r.rec.Level = state.Level
	r.rec.CreatedAt = time.Now()
	return r.rec
}

// Player feeds a recorded event log back as per-tick input frames.
type Player struct {
	events []Event
	next   int
}

// NewPlayer creates a player over the recording's event log.
func NewPlayer(events []Event) *Player {
	return &Player{events: events}
}

// FrameAt returns the input frame for the given tick. Events are consumed
// in order, so ticks must be queried monotonically.
func (p *Player) FrameAt(tick uint64) core.InputFrame {
	in := core.NewInputFrame()
	for p.next < len(p.events) && p.events[p.next].Tick <= tick {
		if p.events[p.next].Tick == tick {
			for _, name := range p.events[p.next].Actions {
				if a, ok := core.ParseAction(name); ok {
					in.Set(a)
				}
			}
		}
		p.next++
	}
	return in
}

// Done reports whether all recorded events have been consumed.
func (p *Player) Done() bool {
	return p.next >= len(p.events)
}
