package version

// Version is the chronometer version. It is overridden at build time with
// -ldflags "-X github.com/cloudposse/chronometer/pkg/version.Version=v1.2.3".
var Version = "0.0.1-dev"
