//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
)

type Build mg.Namespace

// Tidies the module and builds the pointillist binary into bin/.
func (Build) Binary() error {
	if err := goTidy(); err != nil {
		return err
	}
	_, err := executeCmd("go", withArgs("build", "-o", "bin/pointillist", "."), withStream())
	return err
}

// Runs go mod tidy.
func (Build) Tidy() error {
	return goTidy()
}
