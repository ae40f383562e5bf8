package models

import "encoding/json"

// Account is an opaque user account object owned by the web UI.
// The backend stores it verbatim and never inspects its fields.
type Account = json.RawMessage
