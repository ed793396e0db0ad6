package download

// Package download implements the fetch stage of the clip pipeline: a single
// HTTP GET whose body is streamed into a uniquely named scratch artifact.
// The artifact only appears under its final name once fully written.
