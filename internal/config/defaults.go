package config

import (
	_ "embed"
)

//go:embed defaults/spacewar.yaml
var defaultSpaceWarYAML []byte

// DefaultSpaceWarConfig returns the built-in configuration. It matches the
// embedded defaults/spacewar.yaml.
func DefaultSpaceWarConfig() SpaceWarConfig {
	return SpaceWarConfig{
		Screen: ScreenConfig{
			Width:  800,
			Height: 600,
		},
		Ship: ShipConfig{
			Size:             30,
			MaxVelocity:      10,
			Thrust:           1.0,
			RotationStep:     22.5,
			MovementRepeatMS: 80,
			MaxTorpedoes:     7,
		},
		Phaser: PhaserConfig{
			CooldownMS: 300,
			DurationMS: 100,
			Length:     150,
			Width:      2,
		},
		Torpedo: TorpedoConfig{
			CooldownMS: 100,
			LifetimeMS: 10000,
			Speed:      2.5,
			Standoff:   36,
			Size:       12,
		},
		Collision: CollisionConfig{
			Keep:     0.2,
			Transfer: 0.75,
		},
		Input: InputConfig{
			HoldWindowMS: 150,
			Player1: KeyBindings{
				RotateLeft:  []string{"a"},
				RotateRight: []string{"d"},
				Thrust:      []string{"w"},
				FirePhaser:  []string{"q"},
				FireTorpedo: []string{"e"},
			},
			Player2: KeyBindings{
				RotateLeft:  []string{"j", "left"},
				RotateRight: []string{"l", "right"},
				Thrust:      []string{"i", "up"},
				FirePhaser:  []string{"u"},
				FireTorpedo: []string{"o"},
			},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultSpaceWarYAML
}
