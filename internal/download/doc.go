package download

// Package download implements the per-request pipeline on top of the
// extraction client: metadata fetch, download into an isolated temporary
// directory, output location, and directory cleanup on every exit path.
