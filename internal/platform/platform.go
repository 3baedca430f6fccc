// Package platform identifies the host platform and supplies the
// platform-specific constants the rest of the pipeline needs: cmake
// generators, the code-signing tool, and the set of signable file
// extensions.
package platform

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// Platform is one of the three supported host platforms.
type Platform string

const (
	Windows Platform = "win"
	MacOS   Platform = "osx"
	Linux   Platform = "linux"
)

// Visual Studio generators for the two Windows bitnesses. Other
// platforms build with the default generator.
const (
	GeneratorWin32 = "Visual Studio 14 2015"
	GeneratorWin64 = "Visual Studio 14 2015 Win64"
)

func (p Platform) String() string { return string(p) }

// Resolve maps the running OS to a Platform. Unsupported hosts are a
// startup error; nothing else in the pipeline runs without a platform.
func Resolve() (Platform, error) {
	switch runtime.GOOS {
	case "windows":
		return Windows, nil
	case "darwin":
		return MacOS, nil
	case "linux":
		return Linux, nil
	}
	return "", fmt.Errorf("unsupported platform %s", runtime.GOOS)
}

// SignTool returns the path of the code-signing executable for p, or
// empty when the platform has no signing story. On Windows the tool
// lives under the SDK root named by WindowsSdkDir; a missing variable
// is an error, surfaced only when a caller actually wants to sign.
func SignTool(p Platform) (string, error) {
	switch p {
	case Windows:
		sdk := os.Getenv("WindowsSdkDir")
		if sdk == "" {
			return "", errors.New("WindowsSdkDir is not set")
		}
		return filepath.Join(sdk, "bin", "x86", "signtool.exe"), nil
	case MacOS:
		return "/usr/bin/codesign", nil
	}
	return "", nil
}

// SignableExts returns the file extensions eligible for code-signing
// on p. Empty means the platform does not sign.
func SignableExts(p Platform) []string {
	switch p {
	case Windows:
		return []string{".dll"}
	case MacOS:
		return []string{".dylib"}
	}
	return nil
}
