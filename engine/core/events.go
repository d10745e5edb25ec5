package core

// Event represents a game event emitted by a tick
type Event struct {
	Type     EventType
	Time     float64 // encounter clock in ms
	Pos      Vec2    // where it happened
	RatID    int
	FlowerID int
	AgentID  string
	Stage    int // bloom stage for EvtBloomStage, wave index for EvtWaveStart
}

type EventType uint16

const (
	EvtGameStart EventType = iota
	EvtRatSpawned
	EvtRatCaught
	EvtFlowerHit
	EvtFlowerDied
	EvtBloomStage
	EvtWaveStart
	EvtVictory
	EvtDefeat
)

var eventNames = [...]string{
	EvtGameStart:  "game_start",
	EvtRatSpawned: "rat_spawned",
	EvtRatCaught:  "rat_caught",
	EvtFlowerHit:  "flower_hit",
	EvtFlowerDied: "flower_died",
	EvtBloomStage: "bloom_stage",
	EvtWaveStart:  "wave_start",
	EvtVictory:    "victory",
	EvtDefeat:     "defeat",
}

func (t EventType) String() string {
	if int(t) < len(eventNames) {
		return eventNames[t]
	}
	return "unknown"
}

// EventBus dispatches events to listeners
type EventBus struct {
	listeners map[EventType][]EventHandler
	any       []EventHandler
	queue     []Event
}

type EventHandler func(e Event)

func NewEventBus() *EventBus {
	return &EventBus{
		listeners: make(map[EventType][]EventHandler),
	}
}

// On registers a handler for an event type
func (eb *EventBus) On(t EventType, h EventHandler) {
	eb.listeners[t] = append(eb.listeners[t], h)
}

// OnAny registers a handler that receives every event
func (eb *EventBus) OnAny(h EventHandler) {
	eb.any = append(eb.any, h)
}

// Emit queues events for dispatch
func (eb *EventBus) Emit(events ...Event) {
	eb.queue = append(eb.queue, events...)
}

// Pending returns the number of queued events
func (eb *EventBus) Pending() int { return len(eb.queue) }

// Dispatch processes all queued events
func (eb *EventBus) Dispatch() {
	for _, e := range eb.queue {
		for _, h := range eb.listeners[e.Type] {
			h(e)
		}
		for _, h := range eb.any {
			h(e)
		}
	}
	eb.queue = eb.queue[:0]
}
