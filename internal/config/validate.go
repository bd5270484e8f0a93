package config

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalid is returned (wrapped) for configurations the simulation cannot run with.
var ErrInvalid = errors.New("invalid config")

// Validate checks that every size, speed, duration and cap is usable.
func (c SpaceWarConfig) Validate() error {
	checks := []struct {
		ok   bool
		name string
	}{
		{positive(c.Screen.Width), "screen.width"},
		{positive(c.Screen.Height), "screen.height"},
		{positive(c.Ship.Size), "ship.size"},
		{positive(c.Ship.MaxVelocity), "ship.max_velocity"},
		{positive(c.Ship.Thrust), "ship.thrust"},
		{positive(c.Ship.RotationStep), "ship.rotation_step"},
		{c.Ship.MovementRepeatMS > 0, "ship.movement_repeat_ms"},
		{c.Ship.MaxTorpedoes >= 0, "ship.max_torpedoes"},
		{c.Phaser.CooldownMS > 0, "phaser.cooldown_ms"},
		{c.Phaser.DurationMS >= 0, "phaser.duration_ms"},
		{positive(c.Phaser.Length), "phaser.length"},
		{positive(c.Phaser.Width), "phaser.width"},
		{c.Torpedo.CooldownMS > 0, "torpedo.cooldown_ms"},
		{c.Torpedo.LifetimeMS >= 0, "torpedo.lifetime_ms"},
		{positive(c.Torpedo.Speed), "torpedo.speed"},
		{nonNegative(c.Torpedo.Standoff), "torpedo.standoff"},
		{positive(c.Torpedo.Size), "torpedo.size"},
		{nonNegative(c.Collision.Keep), "collision.keep"},
		{nonNegative(c.Collision.Transfer), "collision.transfer"},
		{c.Input.HoldWindowMS > 0, "input.hold_window_ms"},
	}

	var errs []error
	for _, check := range checks {
		if !check.ok {
			errs = append(errs, fmt.Errorf("%w: %s out of range", ErrInvalid, check.name))
		}
	}

	for _, kb := range []struct {
		name string
		keys KeyBindings
	}{
		{"input.player1", c.Input.Player1},
		{"input.player2", c.Input.Player2},
	} {
		if err := kb.keys.validate(kb.name); err != nil {
			errs = append(errs, err)
		}
	}

	if err := c.Input.checkConflicts(); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

// positive reports whether v is a finite number above zero. NaN fails too.
func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 0)
}

func nonNegative(v float64) bool {
	return v >= 0 && !math.IsInf(v, 0)
}

func (k KeyBindings) validate(name string) error {
	for control, keys := range k.byControl() {
		if len(keys) == 0 {
			return fmt.Errorf("%w: %s.%s has no keys", ErrInvalid, name, control)
		}
	}
	return nil
}

func (k KeyBindings) byControl() map[string][]string {
	return map[string][]string{
		"rotate_left":  k.RotateLeft,
		"rotate_right": k.RotateRight,
		"thrust":       k.Thrust,
		"fire_phaser":  k.FirePhaser,
		"fire_torpedo": k.FireTorpedo,
	}
}

// reservedKeys are handled by the driver itself.
var reservedKeys = map[string]bool{"p": true, "r": true, "esc": true, "ctrl+c": true}

// checkConflicts rejects a key bound twice or bound over a driver key.
func (c InputConfig) checkConflicts() error {
	seen := make(map[string]string)
	for _, kb := range []struct {
		name string
		keys KeyBindings
	}{
		{"player1", c.Player1},
		{"player2", c.Player2},
	} {
		for control, keys := range kb.keys.byControl() {
			for _, key := range keys {
				owner := kb.name + "." + control
				if reservedKeys[key] {
					return fmt.Errorf("%w: key %q of %s is reserved", ErrInvalid, key, owner)
				}
				if prev, ok := seen[key]; ok {
					return fmt.Errorf("%w: key %q bound to both %s and %s", ErrInvalid, key, prev, owner)
				}
				seen[key] = owner
			}
		}
	}
	return nil
}
