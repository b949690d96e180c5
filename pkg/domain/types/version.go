package types

// AppVersion is overwritten at build time with -ldflags.
var AppVersion = "dev"
