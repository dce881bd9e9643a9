package component

// World tag names. Tags drive bulk purges on floor change and let systems
// tell actors apart without extra marker components.
const (
	TagPlayer  = "player"
	TagMonster = "monster"
	TagItem    = "item"
	TagTrap    = "trap"
)
