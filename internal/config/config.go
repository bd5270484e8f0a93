// Package config provides YAML-based configuration loading for the
// spacewar simulation and its terminal driver.
package config

import "time"

// SpaceWarConfig contains every tunable of a match.
type SpaceWarConfig struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Ship      ShipConfig      `yaml:"ship"`
	Phaser    PhaserConfig    `yaml:"phaser"`
	Torpedo   TorpedoConfig   `yaml:"torpedo"`
	Collision CollisionConfig `yaml:"collision"`
	Input     InputConfig     `yaml:"input"`
}

// ScreenConfig defines the world size in world units. Positions wrap at
// these bounds.
type ScreenConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// ShipConfig defines ship handling.
type ShipConfig struct {
	Size             float64 `yaml:"size"`               // Square silhouette side
	MaxVelocity      float64 `yaml:"max_velocity"`       // Per-axis velocity cap
	Thrust           float64 `yaml:"thrust"`             // Velocity added per thrust action
	RotationStep     float64 `yaml:"rotation_step"`      // Degrees per rotate action
	MovementRepeatMS int     `yaml:"movement_repeat_ms"` // Repeat interval while rotate/thrust is held
	MaxTorpedoes     int     `yaml:"max_torpedoes"`      // Live torpedoes allowed per ship
}

// PhaserConfig defines the ray-cast beam.
type PhaserConfig struct {
	CooldownMS int     `yaml:"cooldown_ms"`
	DurationMS int     `yaml:"duration_ms"` // How long a beam stays visible
	Length     float64 `yaml:"length"`
	Width      float64 `yaml:"width"`
}

// TorpedoConfig defines the projectile weapon.
type TorpedoConfig struct {
	CooldownMS int     `yaml:"cooldown_ms"`
	LifetimeMS int     `yaml:"lifetime_ms"`
	Speed      float64 `yaml:"speed"`    // Muzzle speed added to the ship velocity
	Standoff   float64 `yaml:"standoff"` // Spawn distance ahead of the ship center
	Size       float64 `yaml:"size"`
}

// CollisionConfig defines the ship-ship velocity exchange:
// v' = keep*v_self + transfer*v_other.
type CollisionConfig struct {
	Keep     float64 `yaml:"keep"`
	Transfer float64 `yaml:"transfer"`
}

// InputConfig defines terminal driver input handling.
type InputConfig struct {
	HoldWindowMS int         `yaml:"hold_window_ms"` // A key counts as held this long after its last press
	Player1      KeyBindings `yaml:"player1"`
	Player2      KeyBindings `yaml:"player2"`
}

// KeyBindings lists the keys bound to each control of one player.
type KeyBindings struct {
	RotateLeft  []string `yaml:"rotate_left"`
	RotateRight []string `yaml:"rotate_right"`
	Thrust      []string `yaml:"thrust"`
	FirePhaser  []string `yaml:"fire_phaser"`
	FireTorpedo []string `yaml:"fire_torpedo"`
}

// MovementRepeat returns the rotate/thrust repeat interval.
func (c ShipConfig) MovementRepeat() time.Duration {
	return ms(c.MovementRepeatMS)
}

// Cooldown returns the minimum time between two phaser shots.
func (c PhaserConfig) Cooldown() time.Duration {
	return ms(c.CooldownMS)
}

// Duration returns how long a beam lives.
func (c PhaserConfig) Duration() time.Duration {
	return ms(c.DurationMS)
}

// Cooldown returns the minimum time between two torpedo launches.
func (c TorpedoConfig) Cooldown() time.Duration {
	return ms(c.CooldownMS)
}

// Lifetime returns how long a torpedo flies before expiring.
func (c TorpedoConfig) Lifetime() time.Duration {
	return ms(c.LifetimeMS)
}

// HoldWindow returns how long a key stays held after its last press.
func (c InputConfig) HoldWindow() time.Duration {
	return ms(c.HoldWindowMS)
}

func ms(n int) time.Duration {
	return time.Duration(n) * time.Millisecond
}
