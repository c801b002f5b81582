package config

// searchConfiguration holds the search parameters that are genuinely
// data, as opposed to the pruning/reduction constants in
// internal/search/params.go which are tuned in code (spec.md §2).
type searchConfiguration struct {
	HashSizeMB int
	UsePonder  bool
}

func init() {
	Settings.Search.HashSizeMB = 64
	Settings.Search.UsePonder = true
}
