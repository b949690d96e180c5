package server

import (
	"net/http"

	"github.com/fmi4go/fmutest/pkg/domain/interfaces"
	"github.com/fmi4go/fmutest/pkg/domain/model"
	"github.com/fmi4go/fmutest/pkg/domain/types"
	"github.com/fmi4go/fmutest/pkg/utils/ctxutil"
	"github.com/m-mizutani/goerr"
)

type middlewareFunc func(next http.Handler) http.Handler

const authQuery = "data.auth"

func authWithPolicy(policy interfaces.Policy) middlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			input := model.AuthQueryInput{
				Method: r.Method,
				Path:   r.URL.Path,
				Header: map[string]string{},
			}

			for key := range r.Header {
				input.Header[key] = r.Header.Get(key)
			}

			var output model.AuthQueryOutput
			if err := policy.Query(r.Context(), authQuery, input, &output); err != nil {
				handleError(w, r, goerr.Wrap(err, "failed to evaluate auth policy"))
				return
			}
			ctxutil.Logger(r.Context()).Debug("auth query result", "input", input, "output", output)

			if !output.Allow {
				handleError(w, r, types.ErrForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
