package pkgrouter

import (
	"encoding/json"
	"net/http"

	"github.com/lucy1234dev/server/internal/pkg/pkgerror"
)

// BindJSON decodes the JSON request body into v.
//
// Unknown fields are ignored. Any decoding failure is reported as an invalid
// format error so the error codec answers 400.
func BindJSON(r *http.Request, v any) error {
	if r.Body == nil || r.Body == http.NoBody {
		return pkgerror.NewInvalidFormat()
	}

	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return pkgerror.NewInvalidFormat()
	}

	return nil
}
