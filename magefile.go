//go:build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const binaryName = "cadlogin"

// Installs the cadlogin server in $GOPATH/bin, stamped with the git version.
func Install() error {
	ldflags, err := versionFlags()
	if err != nil {
		return err
	}
	return sh.Run("go", "install", "-ldflags", ldflags)
}

// Builds the cadlogin server for the given platform into cadlogin-<platform>.
// Possible platforms are "linux64", "rpi32" and "osxintel".
func Build(platform string) error {
	mg.Deps(Test)

	envMap, err := env(platform)
	if err != nil {
		return err
	}
	ldflags, err := versionFlags()
	if err != nil {
		return err
	}
	output := fmt.Sprintf("%s-%s", binaryName, platform)
	return sh.RunWith(envMap, "go", "build", "-ldflags", ldflags, "-o", output)
}

// Runs the test suite.
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// versionFlags sets the client version shown in the login page footer.
func versionFlags() (string, error) {
	version, err := sh.Output("git", "describe", "--always", "--long", "--dirty")
	if err != nil {
		return "", err
	}
	return "-X main.version=" + version, nil
}

func env(platform string) (map[string]string, error) {
	platforms := map[string]map[string]string{
		"linux64":  {"GOOS": "linux", "GOARCH": "amd64"},
		"rpi32":    {"GOOS": "linux", "GOARCH": "arm", "GOARM": "7"},
		"osxintel": {"GOOS": "darwin", "GOARCH": "amd64"},
	}
	if envMap, ok := platforms[platform]; ok {
		return envMap, nil
	}
	return nil, fmt.Errorf("Platform '%s' not supported", platform)
}
