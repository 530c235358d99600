package api

import (
	"errors"
	"net/http"

	"github.com/stevenskevin/lua-2pda/server/result"
	"github.com/stevenskevin/lua-2pda/server/serr"
)

// HistoryEntryModel is the JSON representation of one recorded validation.
type HistoryEntryModel struct {
	ID          string `json:"id"`
	Accepted    bool   `json:"accepted"`
	SubmittedAt string `json:"submitted_at"`
}

// HTTPGetHistory returns a HandlerFunc listing previously-recorded
// validations, most recent first. Requires a valid bearer token.
func (api API) HTTPGetHistory() http.HandlerFunc {
	return httpEndpoint(api.UnauthDelay, api.epGetHistory)
}

func (api API) epGetHistory(req *http.Request) result.Result {
	recs, err := api.Backend.History(req.Context(), nil, nil)
	if err != nil {
		return result.InternalServerError("get history: %v", err)
	}

	resp := make([]HistoryEntryModel, len(recs))
	for i, rec := range recs {
		resp[i] = HistoryEntryModel{
			ID:          rec.ID.String(),
			Accepted:    rec.Accepted,
			SubmittedAt: rec.SubmittedAt.Format(http.TimeFormat),
		}
	}

	return result.OK(resp, "listed %d history records", len(resp))
}

// HTTPGetHistoryEntry returns a HandlerFunc retrieving a single recorded
// validation, including the original source and, if rejected, the
// failure detail. Requires a valid bearer token.
func (api API) HTTPGetHistoryEntry() http.HandlerFunc {
	return httpEndpoint(api.UnauthDelay, api.epGetHistoryEntry)
}

func (api API) epGetHistoryEntry(req *http.Request) result.Result {
	id := requireIDParam(req)

	rec, err := api.Backend.HistoryByID(req.Context(), id)
	if err != nil {
		if errors.Is(err, serr.ErrNotFound) {
			return result.NotFound("history record %s not found", id)
		}
		return result.InternalServerError("get history record: %v", err)
	}

	resp := ValidateModel{
		ID:       rec.ID.String(),
		Accepted: rec.Accepted,
	}
	if !rec.Accepted {
		resp.Failure = &FailureModel{
			ByteIndex: rec.FailureIndex,
			Message:   rec.FailureMessage,
		}
	}

	return result.OK(resp, "retrieved history record %s", resp.ID)
}
