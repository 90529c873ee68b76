package http

import (
	"net/http"

	"github.com/defensedrill/auth/pkg/httpx"
	"github.com/defensedrill/auth/pkg/jwtx"
)

// JWKSHandler exposes the JSON Web Key Set for public key discovery, so
// resource services can verify session tokens without sharing secrets.
//
//	@Summary		Get JWKS
//	@Description	Returns the JSON Web Key Set used to verify session tokens.
//	@Tags			well-known
//	@Produce		json
//	@Success		200	{object}	jwtx.JWKS	"The JSON Web Key Set"
//	@Router			/.well-known/jwks.json [get].
func JWKSHandler(keys *jwtx.KeySet) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, keys.PublicJWKS())
	}
}
