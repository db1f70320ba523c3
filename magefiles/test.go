//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
)

type Test mg.Namespace

// Runs every package test.
func (Test) Unit() error {
	_, err := executeCmd("go", withArgs("test", "./..."), withStream())
	return err
}

// Runs the tests with the race detector.
func (Test) Race() error {
	_, err := executeCmd("go", withArgs("test", "-race", "./..."), withStream())
	return err
}

// Runs the samplers' tests from the engine directory.
func (Test) Engine() error {
	_, err := executeCmd("go", withArgs("test", "./pointcloud/...", "./hand/..."), withDir("engine"), withStream())
	return err
}
