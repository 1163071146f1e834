package version

// Version is the release version of the snake binary.
var Version = "1.0.0"
