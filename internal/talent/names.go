package talent

// namePool is the fixed pool candidate names are drawn from. Generation
// walks it in order and falls back to suffixed names once every entry is
// taken, so a small pool never blocks candidate creation.
var namePool = []string{
	"Mia Chen",
	"Leo Zhang",
	"Ava Liu",
	"Noah Wang",
	"Iris Sun",
	"Ethan Zhao",
	"Luna Wu",
	"Oscar Lin",
	"Nina Huang",
	"Felix Xu",
	"Clara Yang",
	"Hugo Zheng",
	"Stella Ma",
	"Ivan Zhu",
	"Ruby Hu",
	"Marco Deng",
	"Elsa Han",
	"Victor Cao",
	"Daisy Peng",
	"Simon Dong",
	"Vera Yuan",
	"Bruno Jiang",
	"Alice Xie",
	"Caleb Tang",
	"Fiona Qin",
	"Derek Luo",
	"Grace Shen",
	"Henry Pan",
	"Julia Feng",
	"Kevin Bai",
}
