//go:build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/mg"
)

type Run mg.Namespace

// Runs the solar system demo. Extra flags come from ORRERY_ARGS.
func (Run) Solar() error {
	fmt.Println("Run solar system...")
	_, err := executeCmd("go", withArgs(runArgs("./cmd/solarsystem")...), withStream())
	return err
}

// Runs the robot arm demo. Extra flags come from ORRERY_ARGS.
func (Run) RobotArm() error {
	fmt.Println("Run robot arm...")
	_, err := executeCmd("go", withArgs(runArgs("./cmd/robotarm")...), withStream())
	return err
}

// Runs the solar system demo reloading shaders from the source tree.
func (Run) Shaders() error {
	_, err := executeCmd("go",
		withArgs("run", "./cmd/solarsystem", "-hot-reload", "internal/engine/shader/glsl/shaders", "-debug"),
		withStream(),
	)
	return err
}
