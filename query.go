package sportysky

import (
	"net/url"
	"strconv"
	"strings"
)

// Query parameter names understood by the API.
const (
	ParamFormat = "f"
	ParamToken  = "token"
	ParamModels = "models"
	ParamQuery  = "query"
	ParamLimit  = "limit"
)

// Query is the set of query parameters sent with a request.
type Query map[string]string

// Values converts q to url.Values.
func (q Query) Values() url.Values {
	v := make(url.Values, len(q))
	for k, val := range q {
		v.Set(k, val)
	}
	return v
}

// Clone returns a copy of q.
func (q Query) Clone() Query {
	c := make(Query, len(q))
	for k, v := range q {
		c[k] = v
	}
	return c
}

// Encode returns q in URL-encoded form, sorted by key.
func (q Query) Encode() string {
	return q.Values().Encode()
}

// Bounds is a geographic bounding box in decimal degrees.
type Bounds struct {
	North float64 // Northern latitude
	West  float64 // Western longitude
	South float64 // Southern latitude
	East  float64 // Eastern longitude
}

// String returns "north,west,south,east".
func (b Bounds) String() string {
	return strings.Join([]string{
		formatFloat(b.North),
		formatFloat(b.West),
		formatFloat(b.South),
		formatFloat(b.East),
	}, ",")
}

// formatFloat renders f in the shortest decimal form that parses back to f,
// without an exponent: 48.85 -> "48.85", 49.0 -> "49".
func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// joinModels serializes a model list the way the API expects it.
func joinModels(models []string) string {
	return strings.Join(models, ",")
}
