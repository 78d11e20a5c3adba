package server

import (
	"encoding/json"
	"fmt"
	"net/http"
)

func unknownSessionIDMsg(unknownID string) string {
	return fmt.Sprintf("unknown session ID '%s'", unknownID)
}

func (g *GameServer) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	bytes, err := json.Marshal(payload)
	if err != nil {
		g.log.WithError(err).Error("could not marshal response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(bytes)
}

func writeText(w http.ResponseWriter, status int, text string) {
	w.Header().Add("Content-Type", "text/plain")
	w.WriteHeader(status)
	w.Write([]byte(text))
}
