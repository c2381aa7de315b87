package flounder

import "github.com/vovakirdan/flounder/internal/core"

// EventKind identifies a gameplay occurrence a host may react to with
// sound, UI or logging.
type EventKind int

const (
	EventLevelStarted EventKind = iota
	EventJump
	EventDoubleJump
	EventLanded
	EventDamaged
	EventEnemyKilled
	EventBossHit
	EventBossDefeated
	EventCollectiblePicked
	EventProjectileFired
	EventProjectileBlocked
	EventFellOut
	EventLevelAdvanced
	EventGameOver
	EventVictory
	EventPaused
	EventResumed
)

var eventNames = [...]string{
	EventLevelStarted:      "level_started",
	EventJump:              "jump",
	EventDoubleJump:        "double_jump",
	EventLanded:            "landed",
	EventDamaged:           "damaged",
	EventEnemyKilled:       "enemy_killed",
	EventBossHit:           "boss_hit",
	EventBossDefeated:      "boss_defeated",
	EventCollectiblePicked: "collectible_picked",
	EventProjectileFired:   "projectile_fired",
	EventProjectileBlocked: "projectile_blocked",
	EventFellOut:           "fell_out",
	EventLevelAdvanced:     "level_advanced",
	EventGameOver:          "game_over",
	EventVictory:           "victory",
	EventPaused:            "paused",
	EventResumed:           "resumed",
}

func (k EventKind) String() string {
	if k >= 0 && int(k) < len(eventNames) {
		return eventNames[k]
	}
	return "unknown"
}

// Event is one occurrence during a frame. Pos and Color are hints for
// effects; Detail carries a short kind-specific value (enemy subtype,
// damage source, remaining boss health).
type Event struct {
	Kind   EventKind
	Pos    core.Vec2
	Color  core.Color
	Level  int
	Detail string
}

// maxEvents bounds the queue when a host stops draining it.
const maxEvents = 256

type eventQueue struct {
	events []Event
}

func (q *eventQueue) push(e Event) {
	if len(q.events) >= maxEvents {
		copy(q.events, q.events[1:])
		q.events = q.events[:len(q.events)-1]
	}
	q.events = append(q.events, e)
}

func (q *eventQueue) drain() []Event {
	out := q.events
	q.events = nil
	return out
}

func (q *eventQueue) len() int {
	return len(q.events)
}
