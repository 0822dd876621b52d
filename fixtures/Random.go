// Package fixtures generates random values for testing purposes.
package fixtures

import (
	"sync"

	"github.com/Pallinder/go-randomdata"
	uuid "github.com/satori/go.uuid"
)

// randomdata is not safe for concurrent use, and tests here run parallel
var mutex sync.Mutex

// Number returns a random int from the [min, max) range.
func Number(min, max int) int {
	mutex.Lock()
	defer mutex.Unlock()
	return randomdata.Number(min, max)
}

// Numbers returns a slice with the given length, populated with random ints.
func Numbers(length int) []int {
	mutex.Lock()
	defer mutex.Unlock()

	ns := make([]int, length)
	for i := range ns {
		ns[i] = randomdata.Number(-1000, 1000)
	}
	return ns
}

// Strings returns a slice with the given length, populated with random names.
func Strings(length int) []string {
	mutex.Lock()
	defer mutex.Unlock()

	ss := make([]string, length)
	for i := range ss {
		ss[i] = randomdata.SillyName()
	}
	return ss
}

// Boolean returns a random bool value.
func Boolean() bool {
	mutex.Lock()
	defer mutex.Unlock()
	return randomdata.Boolean()
}

// UniqueID returns a universally unique string identifier.
func UniqueID() string {
	return uuid.NewV4().String()
}
