package systems

import (
	"github.com/automoto/lunar-posadas/components"
	cfg "github.com/automoto/lunar-posadas/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// UpdateInput polls raw input and updates the Input component.
// Must run BEFORE UpdatePlayer in the system order.
func UpdateInput(ecs *ecs.ECS) {
	input := GetOrCreateInput(ecs)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}
	input.Analog = math.Vec2{}

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	// Poll all actions - only set Pressed state
	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
			}
		}

		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					input.Current[actionID] = true
				}
			}
		}
	}

	if stick, ok := readAnalogStick(gamepadIDs); ok {
		input.Analog = stick
	}
}

// readAnalogStick returns the first left stick outside the deadzone, with
// y flipped so that pushing the stick up is positive.
func readAnalogStick(gamepads []ebiten.GamepadID) (math.Vec2, bool) {
	deadzone := cfg.Input.AnalogDeadzone

	for _, gpID := range gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}

		horizontal := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		vertical := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical)

		stick := math.Vec2{X: applyDeadzone(horizontal, deadzone), Y: -applyDeadzone(vertical, deadzone)}
		if stick.X != 0 || stick.Y != 0 {
			return stick, true
		}
	}
	return math.Vec2{}, false
}

func applyDeadzone(v, deadzone float64) float64 {
	if v > -deadzone && v < deadzone {
		return 0
	}
	return v
}

// GetOrCreateInput returns the singleton Input component, creating if needed
func GetOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
		// Zero-value InputData is correct (all bools false)
	}
	return components.Input.Get(entry)
}

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}

// MovementVector combines held directions and the analog stick into a
// vector no longer than 1, y up. Opposite keys cancel.
func MovementVector(input *components.InputData) math.Vec2 {
	var v math.Vec2
	if input.Current[cfg.ActionMoveUp] {
		v.Y += 1
	}
	if input.Current[cfg.ActionMoveDown] {
		v.Y -= 1
	}
	if input.Current[cfg.ActionMoveRight] {
		v.X += 1
	}
	if input.Current[cfg.ActionMoveLeft] {
		v.X -= 1
	}
	if v.X == 0 && v.Y == 0 {
		v = input.Analog
	}
	return normalize(v)
}
