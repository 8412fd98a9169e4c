package generation

import "github.com/zyedidia/generic/mapset"

// connectRooms links the rooms with a minimum spanning tree over their
// centers, grown from the spawn room. Ties go to the first pair found,
// scanning connected rooms in the order they joined and candidates in
// slice order, so the tree depends only on the room slice.
func connectRooms(rooms []Room) {
	if len(rooms) < 2 {
		return
	}

	start := 0
	for i, r := range rooms {
		if r.Type == RoomSpawn {
			start = i
			break
		}
	}

	connected := mapset.New[int]()
	connected.Put(start)
	order := []int{start}
	rooms[start].IsMainPath = true

	for connected.Size() < len(rooms) {
		from, to := -1, -1
		best := 0
		for _, i := range order {
			for j := range rooms {
				if connected.Has(j) {
					continue
				}
				d := distanceSquared(rooms[i], rooms[j])
				if from < 0 || d < best {
					from, to, best = i, j, d
				}
			}
		}

		rooms[from].Connections = append(rooms[from].Connections, to)
		rooms[to].Connections = append(rooms[to].Connections, from)
		rooms[to].IsMainPath = true

		connected.Put(to)
		order = append(order, to)
	}
}
