//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
)

type Build mg.Namespace

var demos = []string{"solarsystem", "robotarm"}

// Builds both demos into bin/.
func (Build) All() error {
	for _, d := range demos {
		if _, err := executeCmd("go", withArgs("build", "-o", "bin/"+d, "./cmd/"+d), withEnv("CGO_ENABLED=1"), withStream()); err != nil {
			return err
		}
	}
	return nil
}

// Builds the demos with the GLFW tag set used by go-gl on Wayland.
func (Build) Wayland() error {
	for _, d := range demos {
		if _, err := executeCmd("go", withArgs("build", "-tags", "wayland", "-o", "bin/"+d, "./cmd/"+d), withStream()); err != nil {
			return err
		}
	}
	return nil
}

// Runs the unit tests with the race detector.
func Test() error {
	_, err := executeCmd("go", withArgs("test", "-race", "./..."), withStream())
	return err
}

// Runs go vet.
func Lint() error {
	_, err := executeCmd("go", withArgs("vet", "./..."), withStream())
	return err
}
