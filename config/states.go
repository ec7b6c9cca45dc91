package config

import (
	"errors"
	"fmt"
)

// AnimationID identifies one of the player's directional animations.
type AnimationID int

// Family is the direction an animation faces, independent of gait.
type Family int

// Gait separates standing still from walking within a family.
type Gait int

const (
	FamilyFront    Family = iota // Toward the viewer
	FamilyBack                   // Away from the viewer
	FamilySide                   // Right-facing side art
	FamilySideBack               // Right-facing, turned away
	familyCount
)

const (
	GaitIdle Gait = iota
	GaitWalk
	gaitCount
)

const (
	AnimationNone AnimationID = -1

	IdleFront AnimationID = iota
	IdleBack
	IdleSide
	IdleSideBack
	WalkFront
	WalkBack
	WalkSide
	WalkSideBack
)

// AllAnimations lists every animation the player can reach. The registry must
// hold a config for each of them before the first tick.
var AllAnimations = []AnimationID{
	IdleFront, IdleBack, IdleSide, IdleSideBack,
	WalkFront, WalkBack, WalkSide, WalkSideBack,
}

// ErrUnknownAnimationName is returned when a definitions file names an
// animation that does not exist.
var ErrUnknownAnimationName = errors.New("unknown animation name")

// AnimationToName maps AnimationID to its name in the definitions file.
var AnimationToName = map[AnimationID]string{
	IdleFront:    "idle_front",
	IdleBack:     "idle_back",
	IdleSide:     "idle_side",
	IdleSideBack: "idle_side_back",
	WalkFront:    "walk_front",
	WalkBack:     "walk_back",
	WalkSide:     "walk_side",
	WalkSideBack: "walk_side_back",
}

var nameToAnimation = func() map[string]AnimationID {
	m := make(map[string]AnimationID, len(AnimationToName))
	for id, name := range AnimationToName {
		m[name] = id
	}
	return m
}()

func (a AnimationID) String() string {
	if name, ok := AnimationToName[a]; ok {
		return name
	}
	return "unknown"
}

// Valid reports whether a names a declarable animation.
func (a AnimationID) Valid() bool {
	_, ok := AnimationToName[a]
	return ok
}

// Family returns the facing of a. Only valid for declarable animations.
func (a AnimationID) Family() Family {
	return Family((a - IdleFront) % AnimationID(familyCount))
}

// Gait returns whether a is an idle or walking animation.
func (a AnimationID) Gait() Gait {
	return Gait((a - IdleFront) / AnimationID(familyCount))
}

// AnimationFor composes the animation for a facing and a gait.
func AnimationFor(f Family, g Gait) AnimationID {
	if f < 0 || f >= familyCount || g < 0 || g >= gaitCount {
		return AnimationNone
	}
	return IdleFront + AnimationID(int(g)*int(familyCount)+int(f))
}

// ParseAnimationID resolves a definitions-file name.
func ParseAnimationID(name string) (AnimationID, error) {
	if id, ok := nameToAnimation[name]; ok {
		return id, nil
	}
	return AnimationNone, fmt.Errorf("config: %w: %q", ErrUnknownAnimationName, name)
}

func (f Family) String() string {
	switch f {
	case FamilyFront:
		return "front"
	case FamilyBack:
		return "back"
	case FamilySide:
		return "side"
	case FamilySideBack:
		return "side_back"
	}
	return "unknown"
}

// Mirrorable reports whether art for f may be flipped horizontally. Only the
// side families have left-facing variants derived by mirroring.
func (f Family) Mirrorable() bool {
	return f == FamilySide || f == FamilySideBack
}

func (g Gait) String() string {
	switch g {
	case GaitIdle:
		return "idle"
	case GaitWalk:
		return "walk"
	}
	return "unknown"
}
