package spacewar

import (
	"github.com/vovakirdan/tui-spacewar/internal/config"
	"github.com/vovakirdan/tui-spacewar/internal/core"
)

// ResolveShipCollisions bounces every overlapping pair of live ships once.
// Each ship keeps Keep of its own velocity and gains Transfer of the other's;
// then the second ship of the pair is nudged by its new velocity along each
// axis that still overlaps. Ships take no damage. It returns the number of
// pairs that collided.
func ResolveShipCollisions(ships []*Ship, cfg config.CollisionConfig) int {
	collisions := 0
	for i := 0; i < len(ships); i++ {
		for j := i + 1; j < len(ships); j++ {
			a, b := ships[i], ships[j]
			if !a.Alive() || !b.Alive() {
				continue
			}
			ab, bb := a.ent.Silhouette().Bounds, b.ent.Silhouette().Bounds
			if !ab.Intersects(bb) {
				continue
			}
			collisions++

			va, vb := a.ent.body.Vel, b.ent.body.Vel
			a.ent.body.Vel = va.Scale(cfg.Keep).Add(vb.Scale(cfg.Transfer))
			b.ent.body.Vel = vb.Scale(cfg.Keep).Add(va.Scale(cfg.Transfer))

			dx, dy := core.Overlap(ab, bb)
			if dx != 0 {
				b.ent.body.Pos.X += b.ent.body.Vel.X
			}
			if dy != 0 {
				b.ent.body.Pos.Y += b.ent.body.Vel.Y
			}
			b.ent.refresh()
		}
	}
	return collisions
}
