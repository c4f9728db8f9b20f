package errors

import "luaprint/pkg/token"

// Location re-exports token.Location so callers that only care about
// error reporting don't need to import pkg/token directly.
type Location = token.Location
