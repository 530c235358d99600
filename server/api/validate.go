package api

import (
	"net/http"

	"github.com/stevenskevin/lua-2pda/server/result"
)

// ValidateRequest is the body of a POST to /validate.
type ValidateRequest struct {
	Source string `json:"source"`
}

// ValidateModel is the JSON representation of a recognition outcome.
type ValidateModel struct {
	ID       string `json:"id"`
	Accepted bool   `json:"accepted"`

	// Failure is omitted entirely when Accepted is true.
	Failure *FailureModel `json:"failure,omitempty"`
}

// FailureModel locates and explains a rejected chunk.
type FailureModel struct {
	ByteIndex int    `json:"byte_index"`
	Line      int    `json:"line"`
	Column    int    `json:"column"`
	Message   string `json:"message"`
}

// HTTPValidate returns a HandlerFunc that recognizes a submitted chunk of
// Lua 5.3 source and records the outcome. Open to unauthenticated clients.
func (api API) HTTPValidate() http.HandlerFunc {
	return httpEndpoint(api.UnauthDelay, api.epValidate)
}

func (api API) epValidate(req *http.Request) result.Result {
	var body ValidateRequest
	if err := parseJSON(req, &body); err != nil {
		return result.BadRequest(err.Error(), "could not parse request: %v", err)
	}

	outcome, err := api.Backend.Validate(req.Context(), body.Source)
	if err != nil {
		return result.InternalServerError("validate: %v", err)
	}

	resp := ValidateModel{
		ID:       outcome.Record.ID.String(),
		Accepted: outcome.Record.Accepted,
	}
	if !outcome.Record.Accepted {
		resp.Failure = &FailureModel{
			ByteIndex: outcome.Record.FailureIndex,
			Line:      outcome.Position.Line,
			Column:    outcome.Position.Col,
			Message:   outcome.Record.FailureMessage,
		}
	}

	return result.OK(resp, "validated chunk %s (accepted=%v)", resp.ID, resp.Accepted)
}
