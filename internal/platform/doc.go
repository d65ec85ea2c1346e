package platform

// Package platform contains OS/platform integration: filesystem helpers,
// media type mapping for picked files, saving converted images to a
// directory, and OS open/reveal of saved files.
