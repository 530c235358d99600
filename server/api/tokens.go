package api

import (
	"net/http"

	"github.com/stevenskevin/lua-2pda/server/result"
	"github.com/stevenskevin/lua-2pda/server/tokens"
)

// TokenRequest is the body of a POST to /tokens.
type TokenRequest struct {
	APIKey string `json:"api_key"`
}

// TokenModel is the JSON representation of a minted bearer token.
type TokenModel struct {
	Token string `json:"token"`
}

// HTTPCreateToken returns a HandlerFunc that mints a new bearer token for
// a caller presenting the server's configured API key. The resulting
// token, not the API key, is what gates the history endpoints.
func (api API) HTTPCreateToken() http.HandlerFunc {
	return httpEndpoint(api.UnauthDelay, api.epCreateToken)
}

func (api API) epCreateToken(req *http.Request) result.Result {
	var body TokenRequest
	if err := parseJSON(req, &body); err != nil {
		return result.BadRequest(err.Error(), "could not parse request: %v", err)
	}

	if api.APIKey == "" || body.APIKey != api.APIKey {
		return result.Unauthorized("The supplied API key is incorrect", "rejected token request: bad API key")
	}

	tok, err := tokens.Generate(api.TokenSecret)
	if err != nil {
		return result.InternalServerError("could not generate token: %v", err)
	}

	return result.Created(TokenModel{Token: tok}, "minted bearer token")
}
