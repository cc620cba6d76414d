package handlers

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// InMsg is one inbound websocket frame
type InMsg struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data,omitempty"`
}

// OutMsg is one outbound websocket frame
type OutMsg struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data,omitempty"`
}

// ErrPayload describes a rejected request to the client that sent it
type ErrPayload struct {
	Code string `json:"code"`
	Msg  string `json:"msg"`
}

type ConnectedPayload struct {
	Player string `json:"player"`
	Host   string `json:"host"`
}

type HostSetupPayload struct {
	Host   string `json:"host"`
	Player string `json:"player"`
}

type JoinLobbyPayload struct {
	Join   string `json:"join"`
	Player string `json:"player"`
}

type GameSetupPayload struct {
	Host        string    `json:"host"`
	Rows        textInt   `json:"rows"`
	Cols        textInt   `json:"cols"`
	PlayerCount textInt   `json:"playerCount"`
	TargetScore textFloat `json:"targetScore"`
}

type ColourSelectedPayload struct {
	Host   string  `json:"host"`
	Turn   textInt `json:"turn"`
	Colour string  `json:"colour"`
}

type GameStartedPayload struct {
	Host string `json:"host"`
}

type MovePlayedPayload struct {
	Host string   `json:"host"`
	Row  *textInt `json:"row"`
	Col  *textInt `json:"col"`
}

// textInt decodes a JSON number or a numeric string; form inputs arrive as text.
type textInt int

func (n *textInt) UnmarshalJSON(b []byte) error {
	f, err := parseNumber(b)
	if err != nil {
		return err
	}
	if f != math.Trunc(f) || f > math.MaxInt32 || f < math.MinInt32 {
		return fmt.Errorf("not an integer: %s", b)
	}
	*n = textInt(f)
	return nil
}

// textFloat decodes a JSON number or a numeric string.
type textFloat float64

func (n *textFloat) UnmarshalJSON(b []byte) error {
	f, err := parseNumber(b)
	if err != nil {
		return err
	}
	*n = textFloat(f)
	return nil
}

func parseNumber(b []byte) (float64, error) {
	s := strings.TrimSpace(string(b))
	if unquoted, err := strconv.Unquote(s); err == nil {
		s = strings.TrimSpace(unquoted)
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("not a number: %s", b)
	}
	return f, nil
}
