package server

// Package server exposes the download pipeline over HTTP: a gin engine with
// allow-all CORS, the bundled single-page UI, and the metadata/download/audio
// API routes. File responses clean up their temporary directory once the
// body has been written or the client has gone away.
