//go:build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/mg"
)

type Run mg.Namespace

// Opens the window with both hands.
func (Run) Window() error {
	fmt.Println("Run pointillist...")
	_, err := executeCmd("go", withArgs("run", "."), withStream())
	return err
}

// Runs 300 frames without a window.
func (Run) Headless() error {
	_, err := executeCmd("go", withArgs("run", ".", "-headless", "-ticks", "300"), withStream())
	return err
}

// Renders a few frames headless and writes snapshots/hands.png.
func (Run) Snapshot() error {
	_, err := executeCmd("go", withArgs("run", ".", "-headless", "-ticks", "30", "-snapshot", "snapshots/hands.png"), withStream())
	return err
}
