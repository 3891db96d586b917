package crt

// MapFull - Custom error to inform that the probing table has neither an empty nor a deleted slot left
// on the probe path of a key that is to be added. Given the growth policy this should never happen, so
// receiving it means the growth policy itself is broken.
type MapFull struct {
	msg string
}

// NewMapFull - Returns a MapFull error carrying a custom message
func NewMapFull(msg string) MapFull {
	return MapFull{msg: msg}
}

// Error - Used to notify that the table is full
func (E MapFull) Error() string {
	if E.msg == "" {
		return "hash map full, no empty or deleted slot found while probing"
	}
	return E.msg
}

// UnknownTechnique - Custom error to inform that a collision resolution technique name or number is not recognized
type UnknownTechnique struct {
	msg string
}

// Error - Used to notify that the collision resolution technique is unknown
func (U UnknownTechnique) Error() string {
	if U.msg == "" {
		return "unknown collision resolution technique"
	}
	return U.msg
}
