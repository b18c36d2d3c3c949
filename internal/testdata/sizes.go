package testdata

// Size is a named input length for table-driven benchmarks.
type Size struct {
	Name string
	N    int
}

// Sizes spans single-block inputs through inputs that exercise the tree modes.
var Sizes = []Size{
	{"1B", 1},
	{"64B", 64},
	{"1KiB", 1024},
	{"8KiB", 8 * 1024},
	{"8KiB+1B", 8*1024 + 1},
	{"64KiB", 64 * 1024},
	{"1MiB", 1024 * 1024},
}
