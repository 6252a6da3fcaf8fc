package app

import (
	"fmt"
)

// View is the page a client currently shows.
type View int

const (
	ViewHome View = iota
	ViewLogin
	ViewRegister
	ViewSearch
	ViewProfile
)

var viewNames = [...]string{
	ViewHome:     "home",
	ViewLogin:    "login",
	ViewRegister: "register",
	ViewSearch:   "search",
	ViewProfile:  "profile",
}

func (v View) String() string {
	if v < 0 || int(v) >= len(viewNames) {
		return fmt.Sprintf("View(%d)", int(v))
	}
	return viewNames[v]
}

func ParseView(s string) (View, bool) {
	for v, name := range viewNames {
		if name == s {
			return View(v), true
		}
	}
	return ViewHome, false
}

// Back returns the view the back link of v leads to. Navigation keeps no
// history: every view has a fixed parent.
func (v View) Back() View {
	switch v {
	case ViewRegister:
		return ViewLogin
	case ViewHome, ViewLogin, ViewSearch, ViewProfile:
		return ViewHome
	}
	return ViewHome
}

func (v View) MarshalText() ([]byte, error) {
	if v < 0 || int(v) >= len(viewNames) {
		return nil, fmt.Errorf("unknown view %d", int(v))
	}
	return []byte(viewNames[v]), nil
}

func (v *View) UnmarshalText(text []byte) error {
	parsed, ok := ParseView(string(text))
	if !ok {
		return fmt.Errorf("unknown view %q", text)
	}
	*v = parsed
	return nil
}
