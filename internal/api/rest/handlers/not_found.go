package handlers

import (
	"net/http"

	"github.com/CameronXie/eth-order-api/internal/api/rest/response"
	"github.com/CameronXie/eth-order-api/internal/apperror"
)

// NewNotFoundHandler answers every request it receives with the uniform 404 body.
func NewNotFoundHandler(responder *response.ErrorResponder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		responder.Respond(w, r, apperror.NotFound())
	})
}
