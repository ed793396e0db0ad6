package platform

// Package platform contains OS/platform integration: the locked scratch
// directory that holds downloaded and clipped artifacts, unique artifact
// naming, and handing a finished clip to the OS share/reveal mechanism.
