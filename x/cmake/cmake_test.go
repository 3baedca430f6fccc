package cmake

import (
	"reflect"
	"strings"
	"testing"
)

func TestConfigureArgs(t *testing.T) {
	c := New("/src", "/src/builds/win64-dynamic", "/src/builds/install/win64-dynamic")
	c.Generator("Visual Studio 14 2015 Win64")
	c.Define("BUILD_SHARED_LIBS", "ON")

	args := c.configureArgs()
	want := []string{
		"-S", "/src",
		"-B", "/src/builds/win64-dynamic",
		"-G", "Visual Studio 14 2015 Win64",
		"-DCMAKE_INSTALL_PREFIX=/src/builds/install/win64-dynamic",
		"-DBUILD_SHARED_LIBS=ON",
	}
	if !reflect.DeepEqual(args, want) {
		t.Errorf("configureArgs = %v, want %v", args, want)
	}
}

func TestConfigureArgsNoGenerator(t *testing.T) {
	c := New("/src", "/src/builds/linux-static", "/src/builds/install/linux-static")

	args := c.configureArgs()
	joined := strings.Join(args, " ")
	if strings.Contains(joined, "-G") {
		t.Errorf("configureArgs includes a generator: %v", args)
	}
	if args[len(args)-1] != "-DCMAKE_INSTALL_PREFIX=/src/builds/install/linux-static" {
		t.Errorf("install prefix missing or misplaced: %v", args)
	}
}

func TestDefinesArgsSorted(t *testing.T) {
	c := New("", "", "")
	c.Define("USE_STATIC_CRT", "ON")
	c.Define("BUILD_SHARED_LIBS", "ON")
	c.Define("CLANG_FORMAT_SUFFIX", "none")

	want := []string{
		"-DBUILD_SHARED_LIBS=ON",
		"-DCLANG_FORMAT_SUFFIX=none",
		"-DUSE_STATIC_CRT=ON",
	}
	if got := c.definesArgs(); !reflect.DeepEqual(got, want) {
		t.Errorf("definesArgs = %v, want %v", got, want)
	}
}

func TestDefinesArgsEmpty(t *testing.T) {
	c := New("", "", "")
	if args := c.definesArgs(); args != nil {
		t.Errorf("definesArgs on empty = %v, want nil", args)
	}
}

func TestBuildArgs(t *testing.T) {
	c := New("/src", "/src/builds/osx-dynamic", "")

	got := c.buildArgs("Release", "--target", "install")
	want := []string{"--build", "/src/builds/osx-dynamic", "--config", "Release", "--target", "install"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("buildArgs = %v, want %v", got, want)
	}

	got = c.buildArgs("Debug")
	want = []string{"--build", "/src/builds/osx-dynamic", "--config", "Debug"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("buildArgs = %v, want %v", got, want)
	}
}
