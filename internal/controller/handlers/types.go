package handlers

import (
	"github.com/SujitD0/Student-Dashboard/internal/controller/callbacks/callbacktypes"
)

// Handlers processes commands and dialog text messages
type Handlers struct {
	deps *callbacktypes.Handler
}

func NewHandlers(deps *callbacktypes.Handler) *Handlers {
	return &Handlers{deps: deps}
}
