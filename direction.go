package aseprite

import (
	"encoding/json"
	"fmt"
)

// Direction is the playback direction of a frame tag.
type Direction int

const (
	DirectionForward Direction = iota
	DirectionReverse
	DirectionPingpong
)

// direction tokens as they appear in the JSON export.
const (
	directionForwardToken  = "forward"
	directionReverseToken  = "reverse"
	directionPingpongToken = "pingpong"
)

// ParseDirection converts a JSON direction token into a Direction.
// Tokens outside forward/reverse/pingpong are rejected.
func ParseDirection(token string) (Direction, error) {
	switch token {
	case directionForwardToken:
		return DirectionForward, nil
	case directionReverseToken:
		return DirectionReverse, nil
	case directionPingpongToken:
		return DirectionPingpong, nil
	default:
		return 0, fmt.Errorf("unknown direction %q", token)
	}
}

// IsValid returns true if the direction is one of the three known values.
func (d Direction) IsValid() bool {
	return d == DirectionForward || d == DirectionReverse || d == DirectionPingpong
}

// String returns the JSON token for the direction.
func (d Direction) String() string {
	switch d {
	case DirectionForward:
		return directionForwardToken
	case DirectionReverse:
		return directionReverseToken
	case DirectionPingpong:
		return directionPingpongToken
	default:
		return fmt.Sprintf("direction(%d)", int(d))
	}
}

// MarshalJSON encodes the direction as its JSON token.
func (d Direction) MarshalJSON() ([]byte, error) {
	if !d.IsValid() {
		return nil, fmt.Errorf("cannot serialize %s", d)
	}

	return json.Marshal(d.String())
}

// UnmarshalJSON decodes a direction token, rejecting unknown ones.
func (d *Direction) UnmarshalJSON(data []byte) error {
	var token string
	if err := json.Unmarshal(data, &token); err != nil {
		return err
	}

	parsed, err := ParseDirection(token)
	if err != nil {
		return err
	}

	*d = parsed

	return nil
}
