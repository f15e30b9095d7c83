package system

import "github.com/milk9111/worldsaround/ecs"

// PlayerHits returns the first enemy whose footprint overlaps a player's.
func PlayerHits(list *ecs.EntityList, tileW, tileH int) (*ecs.Entity, bool) {
	for player := range list.Query(ecs.KindPlayer, ecs.KindPosition) {
		pb, ok := Footprint(player, tileW, tileH)
		if !ok {
			continue
		}
		for enemy := range list.Query(ecs.KindEnemy, ecs.KindPosition) {
			if eb, ok := Footprint(enemy, tileW, tileH); ok && pb.Intersects(eb) {
				return enemy, true
			}
		}
	}
	return nil, false
}
