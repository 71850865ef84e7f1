package param

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/gorilla/schema"
)

var decoder = schema.NewDecoder()

func init() {
	decoder.SetAliasTag("json")
	decoder.IgnoreUnknownKeys(true)
	decoder.ZeroEmpty(true)
}

// Binding binds json body, query string and chi route params onto v, in that
// order, so route params win.
func Binding(r *http.Request, v interface{}) error {
	if r.Body != nil && r.Method != http.MethodGet {
		if err := json.NewDecoder(r.Body).Decode(v); err != nil && err.Error() != "EOF" {
			return err
		}
	}

	values := r.URL.Query()
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		for i, key := range rctx.URLParams.Keys {
			values.Set(key, rctx.URLParams.Values[i])
		}
	}

	if len(values) == 0 {
		return nil
	}

	return decoder.Decode(v, values)
}
