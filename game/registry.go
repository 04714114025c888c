package game

// InitialCastles returns the castles a new game starts with, all
// unclaimed and idle. The returned order is stable: the board is always
// printed in this order.
func InitialCastles() []*Castle {
	return []*Castle{
		{Name: "Northkeep", Point: 10, Defense: 9, Stability: 9},
		{Name: "Eastwatch", Point: 6, Defense: 3, Stability: 7},
		{Name: "Riverhold", Point: 8, Defense: 1, Stability: 3},
		{Name: "Stonegate", Point: 8, Defense: 5, Stability: 6},
	}
}
