package validators

import (
	"net/http"
	"strings"

	pkgerrors "github.com/bespoked-bikes/sales-backend/pkg/errors"
	"github.com/bespoked-bikes/sales-backend/pkg/types"
)

// DateQueryParam parses an optional YYYY-MM-DD query parameter. A
// missing or blank parameter yields nil.
func DateQueryParam(r *http.Request, name string) (*types.Date, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return nil, nil
	}
	parsed, err := types.ParseDate(raw)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid "+name).
			WithDetails(map[string]string{name: "must be formatted YYYY-MM-DD"})
	}
	return &parsed, nil
}
