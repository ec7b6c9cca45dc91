package systems

import (
	"log"
	stdmath "math"

	cfg "github.com/automoto/lunar-posadas/config"
	"github.com/yohamta/donburi/features/math"
)

// Sign is a direction component quantized against a dead zone.
type Sign int

const (
	SignNegative Sign = iota - 1
	SignZero
	SignPositive
)

// SignOf quantizes v. Magnitudes within deadZone, and NaN, count as zero.
func SignOf(v, deadZone float64) Sign {
	switch {
	case v > deadZone:
		return SignPositive
	case v < -deadZone:
		return SignNegative
	}
	return SignZero
}

type sector struct {
	family   cfg.Family
	mirrored bool
}

// sectors maps (sign(x), sign(y)) to a facing. y points away from the viewer.
// Down diagonals share the plain side art; up diagonals get the side-back
// art. (0, 0) is absent on purpose: no input keeps the previous facing.
var sectors = map[[2]Sign]sector{
	{SignZero, SignPositive}: {cfg.FamilyBack, false},
	{SignZero, SignNegative}: {cfg.FamilyFront, false},

	{SignPositive, SignZero}:     {cfg.FamilySide, false},
	{SignPositive, SignNegative}: {cfg.FamilySide, false},
	{SignNegative, SignZero}:     {cfg.FamilySide, true},
	{SignNegative, SignNegative}: {cfg.FamilySide, true},

	{SignPositive, SignPositive}: {cfg.FamilySideBack, false},
	{SignNegative, SignPositive}: {cfg.FamilySideBack, true},
}

// Classification is the animation a character should show this tick.
type Classification struct {
	ID       cfg.AnimationID
	Mirrored bool
	Changed  bool // ID differs from the previous animation
}

// Classify picks the animation for a movement direction and speed. A zero
// direction keeps prev and prevMirrored untouched, so a character that
// stops keeps facing where it last faced. Negative speed is treated as zero.
func Classify(dir math.Vec2, speed float64, prev cfg.AnimationID, prevMirrored bool) Classification {
	deadZone := cfg.Player.DirectionDeadZone
	s, ok := sectors[[2]Sign{SignOf(dir.X, deadZone), SignOf(dir.Y, deadZone)}]
	if !ok {
		return Classification{ID: prev, Mirrored: prevMirrored}
	}

	gait := cfg.GaitIdle
	if sanitizeSpeed(speed) > 0 {
		gait = cfg.GaitWalk
	}

	id := cfg.AnimationFor(s.family, gait)
	return Classification{
		ID:       id,
		Mirrored: s.mirrored && s.family.Mirrorable(),
		Changed:  id != prev,
	}
}

var warnedNegativeSpeed bool

// sanitizeSpeed clamps speeds that have no animation (negative, NaN) to zero.
func sanitizeSpeed(speed float64) float64 {
	if stdmath.IsNaN(speed) {
		return 0
	}
	if speed < 0 {
		if !warnedNegativeSpeed {
			warnedNegativeSpeed = true
			log.Printf("Warning: negative movement speed %v clamped to 0", speed)
		}
		return 0
	}
	return speed
}
