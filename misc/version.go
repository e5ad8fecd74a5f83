// Package misc keeps build time information.
package misc

// Set by the linker: -ldflags "-X shinc/misc.version=... -X shinc/misc.gitHash=..."
var (
	version = "dev"
	gitHash = "unknown"
)

const appName = "shinc"

func GetAppName() string {
	return appName
}

func GetVersion() string {
	return version
}

func GetGitHash() string {
	return gitHash
}
