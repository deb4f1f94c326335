package version

import "github.com/fatih/color"

// Build metadata for the keylint CLI.
// Всё, кроме Version, заполняется через -ldflags при сборке релиза.

const (
	major = "0"
	minor = "1"
	patch = "0"
	pre   = "dev"
)

func renderVersion() string {
	m := color.New(color.FgYellow, color.Bold).Sprint(major)
	n := color.New(color.FgGreen, color.Bold).Sprint(minor)
	p := color.New(color.FgBlue, color.Bold).Sprint(patch)
	v := m + "." + n + "." + p
	if pre != "" {
		v += "-" + pre
	}
	return v
}

var (
	// Version is the semantic version of the CLI.
	Version = renderVersion()

	// GitCommit is an optional git commit hash.
	GitCommit = ""

	// GitMessage is an optional git commit message.
	GitMessage = ""

	// BuildDate is an optional build date in ISO-8601.
	BuildDate = ""
)
