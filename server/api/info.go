package api

import (
	"net/http"

	"github.com/stevenskevin/lua-2pda/internal/luapda"
	"github.com/stevenskevin/lua-2pda/internal/version"
	"github.com/stevenskevin/lua-2pda/server/result"
)

// InfoModel describes the running server and the recognizer it embeds.
type InfoModel struct {
	Version struct {
		Server string `json:"server"`
		Engine string `json:"engine"`
	} `json:"version"`

	Stats struct {
		States      int `json:"states"`
		StackSymbs  int `json:"stack_symbols"`
		Transitions int `json:"transitions"`
	} `json:"stats"`
}

// HTTPGetInfo returns a HandlerFunc that retrieves information on the API
// and the recognizer's transition table. Open to unauthenticated clients.
func (api API) HTTPGetInfo() http.HandlerFunc {
	return httpEndpoint(api.UnauthDelay, api.epGetInfo)
}

func (api API) epGetInfo(req *http.Request) result.Result {
	var resp InfoModel
	resp.Version.Server = version.ServerCurrent
	resp.Version.Engine = version.Current

	stats := luapda.Definition().Stats()
	resp.Stats.States = stats.States
	resp.Stats.StackSymbs = stats.StackSymbs
	resp.Stats.Transitions = stats.Transitions

	return result.OK(resp, "got API info")
}
