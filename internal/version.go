package internal

// Version is the build version, set at link time with
// -ldflags "-X github.com/Vicen621-Facultad/votacion/internal.Version=..."
var Version = "dev"
