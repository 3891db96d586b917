package crt

import "fmt"

// SeparateChaining - Collision resolution technique where all entries hashing to the same bucket are kept in
// a per-bucket list.
const SeparateChaining int = 1

// LinearProbing - Collision resolution technique where entries live in a flat slot array and collisions are
// resolved by scanning forward, with wraparound, until the key or an empty slot is found.
const LinearProbing int = 2

// SeparateChainingName - Configuration name of the SeparateChaining technique
const SeparateChainingName = "chaining"

// LinearProbingName - Configuration name of the LinearProbing technique
const LinearProbingName = "linear"

// Parse - Returns the collision resolution technique given its configuration name.
// An empty name gives the default technique, which is SeparateChaining.
func Parse(name string) (technique int, err error) {
	switch name {
	case "", SeparateChainingName:
		technique = SeparateChaining
	case LinearProbingName:
		technique = LinearProbing
	default:
		err = UnknownTechnique{msg: fmt.Sprintf("unknown collision method %q, should be %q or %q", name, SeparateChainingName, LinearProbingName)}
	}

	return
}

// Name - Returns the configuration name of a collision resolution technique
func Name(technique int) (name string, err error) {
	switch technique {
	case SeparateChaining:
		name = SeparateChainingName
	case LinearProbing:
		name = LinearProbingName
	default:
		err = UnknownTechnique{msg: fmt.Sprintf("unknown collision resolution technique %d", technique)}
	}

	return
}
