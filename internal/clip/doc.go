package clip

// Package clip implements the trim stage of the pipeline. It formats the
// seek/duration arguments for ffmpeg and stream-copies the requested range of
// a downloaded file into a new artifact without re-encoding. Units are
// whatever ffmpeg interprets for -ss/-t; no conversion or media inspection
// happens here.
